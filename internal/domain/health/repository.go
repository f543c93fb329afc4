package health

import (
	"context"

	"pet-health-tracker/internal/platform/apperror"
)

var (
	ErrRecordNotFound      = apperror.NotFound("Health record")
	ErrMedicationNotFound  = apperror.NotFound("Medication")
	ErrVaccinationNotFound = apperror.NotFound("Vaccination")
	ErrVetVisitNotFound    = apperror.NotFound("Vet visit")
)

// Repository es el contrato común de los cuatro tipos de registro.
//
// Create y ListByPet verifican primero que la mascota sea de accountID y
// devuelven pets.ErrNotFound si no. GetByID, Update y Delete atan fila,
// mascota y cuenta en una sola sentencia y devuelven el NotFound de la entidad.
type Repository[T any] interface {
	Create(ctx context.Context, accountID, petID int64, v T) (T, error)
	GetByID(ctx context.Context, accountID, petID, id int64) (T, error)

	// ListByPet ordena por la fecha natural de la entidad DESC, desempate id DESC.
	ListByPet(ctx context.Context, accountID, petID int64) ([]T, error)

	// Update sobrescribe todos los campos editables; created_at no cambia.
	Update(ctx context.Context, accountID, petID, id int64, v T) (T, error)
	Delete(ctx context.Context, accountID, petID, id int64) error
}

type (
	RecordRepository      = Repository[Record]
	MedicationRepository  = Repository[Medication]
	VaccinationRepository = Repository[Vaccination]
	VetVisitRepository    = Repository[VetVisit]
)

// Repositories agrupa los cuatro repos para construir el Service.
type Repositories struct {
	Records      RecordRepository
	Medications  MedicationRepository
	Vaccinations VaccinationRepository
	VetVisits    VetVisitRepository
}

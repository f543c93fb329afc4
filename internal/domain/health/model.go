package health

import (
	"time"

	"pet-health-tracker/internal/platform/civil"
)

// Todas las entidades cuelgan de una mascota; la cuenta dueña se resuelve
// siempre a través de pets.user_id.

// Record es un control general: peso, temperatura y notas en una fecha.
type Record struct {
	ID    int64
	PetID int64

	RecordDate  civil.Date
	Weight      *float64 // kg, DECIMAL(6,2)
	Temperature *float64 // DECIMAL(4,2)
	Notes       *string

	CreatedAt time.Time
	UpdatedAt time.Time // se refresca en cada update; no se usa para concurrencia
}

// Medication. Active es independiente de EndDate: nunca se reconcilian.
type Medication struct {
	ID    int64
	PetID int64

	Name      string
	Dosage    *string
	Frequency *string
	StartDate civil.Date
	EndDate   civil.NullDate
	Notes     *string
	Active    bool

	CreatedAt time.Time
}

type Vaccination struct {
	ID    int64
	PetID int64

	VaccineName     string
	VaccinationDate civil.Date
	NextDueDate     civil.NullDate
	Veterinarian    *string
	Notes           *string

	CreatedAt time.Time
}

type VetVisit struct {
	ID    int64
	PetID int64

	VisitDate    civil.Date
	Veterinarian *string
	Reason       *string
	Diagnosis    *string
	Treatment    *string
	Cost         *float64 // DECIMAL(10,2)
	Notes        *string

	CreatedAt time.Time
}

package pets

import (
	"context"

	"pet-health-tracker/internal/platform/apperror"
)

// ErrNotFound cubre "no existe" y "es de otra cuenta"; nunca se distinguen.
var ErrNotFound = apperror.NotFound("Pet")

// Repository: toda operación va acotada a accountID dentro de la misma sentencia.
type Repository interface {
	Create(ctx context.Context, accountID int64, p Pet) (Pet, error)
	GetByID(ctx context.Context, accountID, petID int64) (Pet, error)
	ListByOwner(ctx context.Context, accountID int64) ([]Pet, error)

	// Update sobrescribe todos los campos editables (no es PATCH).
	Update(ctx context.Context, accountID int64, p Pet) (Pet, error)
	Delete(ctx context.Context, accountID, petID int64) error
}

package accounts

import (
	"context"

	"pet-health-tracker/internal/platform/apperror"
)

// ErrEmailTaken lo devuelven los adapters ante una violación de unicidad en email.
var ErrEmailTaken = apperror.Conflict("User already exists")

type Repository interface {
	Create(ctx context.Context, a Account) (Account, error)
	GetByID(ctx context.Context, id int64) (Account, error)
	GetByEmail(ctx context.Context, email string) (Account, error)
	UpdateProfile(ctx context.Context, a Account) (Account, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}

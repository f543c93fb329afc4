package pets

import (
	"time"

	"pet-health-tracker/internal/platform/civil"
)

// Límites de columnas (VARCHAR) de la tabla pets.
const (
	MaxNameLen      = 100
	MaxSpeciesLen   = 50
	MaxBreedLen     = 100
	MaxGenderLen    = 20
	MaxColorLen     = 50
	MaxMicrochipLen = 50
)

// Pet representa el perfil de una mascota. Pertenece a exactamente una cuenta.
type Pet struct {
	ID        int64
	AccountID int64

	Name    string
	Species string // texto libre: dog, cat, rabbit...

	Breed           *string
	DateOfBirth     civil.NullDate
	Gender          *string
	Color           *string
	MicrochipNumber *string
	PhotoURL        *string

	CreatedAt time.Time
}

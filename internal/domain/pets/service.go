package pets

import (
	"context"
	"log/slog"
	"time"

	"pet-health-tracker/internal/platform/civil"
	"pet-health-tracker/internal/platform/fields"
)

const missingRequired = "Name and species are required"

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// Input es el perfil completo; create y update usan la misma forma.
type Input struct {
	Name            string
	Species         string
	Breed           *string
	DateOfBirth     civil.NullDate
	Gender          *string
	Color           *string
	MicrochipNumber *string
	PhotoURL        *string
}

func (s *Service) Create(ctx context.Context, accountID int64, in Input) (Pet, error) {
	p, err := in.normalize()
	if err != nil {
		return Pet{}, err
	}
	p.AccountID = accountID
	p.CreatedAt = s.now().UTC()

	created, err := s.repo.Create(ctx, accountID, p)
	if err != nil {
		return Pet{}, err
	}

	slog.InfoContext(ctx, "pet created",
		slog.Int64("account_id", accountID),
		slog.Int64("pet_id", created.ID),
	)
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, accountID, petID int64) (Pet, error) {
	return s.repo.GetByID(ctx, accountID, petID)
}

func (s *Service) ListByOwner(ctx context.Context, accountID int64) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, accountID)
}

// Update reemplaza el perfil: los opcionales omitidos quedan en NULL.
func (s *Service) Update(ctx context.Context, accountID, petID int64, in Input) (Pet, error) {
	p, err := in.normalize()
	if err != nil {
		return Pet{}, err
	}
	p.ID = petID
	p.AccountID = accountID

	return s.repo.Update(ctx, accountID, p)
}

func (s *Service) Delete(ctx context.Context, accountID, petID int64) error {
	if err := s.repo.Delete(ctx, accountID, petID); err != nil {
		return err
	}

	slog.InfoContext(ctx, "pet deleted",
		slog.Int64("account_id", accountID),
		slog.Int64("pet_id", petID),
	)
	return nil
}

func (in Input) normalize() (Pet, error) {
	var (
		p   Pet
		err error
	)

	if p.Name, err = fields.Required("name", in.Name, MaxNameLen, missingRequired); err != nil {
		return Pet{}, err
	}
	if p.Species, err = fields.Required("species", in.Species, MaxSpeciesLen, missingRequired); err != nil {
		return Pet{}, err
	}
	if p.Breed, err = fields.Optional("breed", in.Breed, MaxBreedLen); err != nil {
		return Pet{}, err
	}
	if p.Gender, err = fields.Optional("gender", in.Gender, MaxGenderLen); err != nil {
		return Pet{}, err
	}
	if p.Color, err = fields.Optional("color", in.Color, MaxColorLen); err != nil {
		return Pet{}, err
	}
	if p.MicrochipNumber, err = fields.Optional("microchipNumber", in.MicrochipNumber, MaxMicrochipLen); err != nil {
		return Pet{}, err
	}
	if p.PhotoURL, err = fields.Optional("photoUrl", in.PhotoURL, fields.Unlimited); err != nil {
		return Pet{}, err
	}
	p.DateOfBirth = in.DateOfBirth

	return p, nil
}

package health

import (
	"context"
	"log/slog"
	"time"
)

// Collection expone las operaciones de un tipo de registro de salud.
type Collection[T any, I Input[T]] struct {
	kind string
	repo Repository[T]
	now  func() time.Time
}

func newCollection[T any, I Input[T]](kind string, repo Repository[T], now func() time.Time) *Collection[T, I] {
	return &Collection[T, I]{kind: kind, repo: repo, now: now}
}

func (c *Collection[T, I]) Create(ctx context.Context, accountID, petID int64, in I) (T, error) {
	v, err := in.build(petID, c.now().UTC())
	if err != nil {
		var zero T
		return zero, err
	}

	created, err := c.repo.Create(ctx, accountID, petID, v)
	if err != nil {
		var zero T
		return zero, err
	}

	slog.InfoContext(ctx, c.kind+" created",
		slog.Int64("account_id", accountID),
		slog.Int64("pet_id", petID),
	)
	return created, nil
}

func (c *Collection[T, I]) List(ctx context.Context, accountID, petID int64) ([]T, error) {
	return c.repo.ListByPet(ctx, accountID, petID)
}

func (c *Collection[T, I]) Get(ctx context.Context, accountID, petID, id int64) (T, error) {
	return c.repo.GetByID(ctx, accountID, petID, id)
}

// Update es reemplazo completo; para Record también refresca updated_at.
func (c *Collection[T, I]) Update(ctx context.Context, accountID, petID, id int64, in I) (T, error) {
	v, err := in.build(petID, c.now().UTC())
	if err != nil {
		var zero T
		return zero, err
	}
	return c.repo.Update(ctx, accountID, petID, id, v)
}

func (c *Collection[T, I]) Delete(ctx context.Context, accountID, petID, id int64) error {
	if err := c.repo.Delete(ctx, accountID, petID, id); err != nil {
		return err
	}

	slog.InfoContext(ctx, c.kind+" deleted",
		slog.Int64("account_id", accountID),
		slog.Int64("pet_id", petID),
		slog.Int64("id", id),
	)
	return nil
}

type Service struct {
	Records      *Collection[Record, RecordInput]
	Medications  *Collection[Medication, MedicationInput]
	Vaccinations *Collection[Vaccination, VaccinationInput]
	VetVisits    *Collection[VetVisit, VetVisitInput]
}

func NewService(repos Repositories) *Service {
	return newServiceWithClock(repos, time.Now)
}

func newServiceWithClock(repos Repositories, now func() time.Time) *Service {
	return &Service{
		Records:      newCollection[Record, RecordInput]("health record", repos.Records, now),
		Medications:  newCollection[Medication, MedicationInput]("medication", repos.Medications, now),
		Vaccinations: newCollection[Vaccination, VaccinationInput]("vaccination", repos.Vaccinations, now),
		VetVisits:    newCollection[VetVisit, VetVisitInput]("vet visit", repos.VetVisits, now),
	}
}

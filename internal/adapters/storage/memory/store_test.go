package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"pet-health-tracker/internal/domain/accounts"
	"pet-health-tracker/internal/domain/health"
	"pet-health-tracker/internal/domain/pets"
	"pet-health-tracker/internal/platform/civil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func mustAccount(t *testing.T, s *Store, email string) accounts.Account {
	t.Helper()
	a, err := s.Accounts().Create(context.Background(), accounts.Account{Email: email, PasswordHash: "h", FirstName: "A", LastName: "B", CreatedAt: t0})
	require.NoError(t, err)
	return a
}

func mustPet(t *testing.T, s *Store, accountID int64, name string, at time.Time) pets.Pet {
	t.Helper()
	p, err := s.Pets().Create(context.Background(), accountID, pets.Pet{Name: name, Species: "Cat", CreatedAt: at})
	require.NoError(t, err)
	return p
}

func TestAccounts_UniqueEmail(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	a := mustAccount(t, s, "ana@example.com")
	_, err := s.Accounts().Create(ctx, accounts.Account{Email: "ana@example.com"})
	assert.ErrorIs(t, err, accounts.ErrEmailTaken)

	b := mustAccount(t, s, "bob@example.com")
	b.Email = "ana@example.com"
	_, err = s.Accounts().UpdateProfile(ctx, b)
	assert.ErrorIs(t, err, accounts.ErrEmailTaken)

	// conservar el propio email no es conflicto
	a.FirstName = "Ana"
	got, err := s.Accounts().UpdateProfile(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.FirstName)
	assert.Equal(t, "h", got.PasswordHash)
}

func TestPets_ScopedAndOrdered(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	ana := mustAccount(t, s, "ana@example.com")
	bob := mustAccount(t, s, "bob@example.com")

	first := mustPet(t, s, ana.ID, "Mia", t0)
	mustPet(t, s, ana.ID, "Luna", t0.Add(time.Hour))
	mustPet(t, s, ana.ID, "Tom", t0.Add(time.Hour))

	list, err := s.Pets().ListByOwner(ctx, ana.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Tom", list[0].Name)
	assert.Equal(t, "Luna", list[1].Name)
	assert.Equal(t, "Mia", list[2].Name)

	_, err = s.Pets().GetByID(ctx, bob.ID, first.ID)
	assert.ErrorIs(t, err, pets.ErrNotFound)
	assert.ErrorIs(t, s.Pets().Delete(ctx, bob.ID, first.ID), pets.ErrNotFound)

	first.Name = "Mia II"
	first.CreatedAt = time.Time{}
	updated, err := s.Pets().Update(ctx, ana.ID, first)
	require.NoError(t, err)
	assert.True(t, t0.Equal(updated.CreatedAt))
}

func TestChildren_OrderedAndScoped(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	ana := mustAccount(t, s, "ana@example.com")
	bob := mustAccount(t, s, "bob@example.com")
	mia := mustPet(t, s, ana.ID, "Mia", t0)
	repos := s.Health()

	for _, d := range []string{"2024-03-01", "2024-01-01", "2024-02-01", "2024-03-01"} {
		_, err := repos.VetVisits.Create(ctx, ana.ID, mia.ID, health.VetVisit{VisitDate: civil.MustParseDate(d), CreatedAt: t0})
		require.NoError(t, err)
	}

	list, err := repos.VetVisits.ListByPet(ctx, ana.ID, mia.ID)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, int64(4), list[0].ID)
	assert.Equal(t, int64(1), list[1].ID)
	assert.Equal(t, "2024-02-01", list[2].VisitDate.String())
	assert.Equal(t, "2024-01-01", list[3].VisitDate.String())

	_, err = repos.VetVisits.ListByPet(ctx, bob.ID, mia.ID)
	assert.ErrorIs(t, err, pets.ErrNotFound)
	_, err = repos.VetVisits.GetByID(ctx, bob.ID, mia.ID, 1)
	assert.ErrorIs(t, err, health.ErrVetVisitNotFound)
	_, err = repos.VetVisits.Create(ctx, bob.ID, mia.ID, health.VetVisit{VisitDate: civil.MustParseDate("2024-01-01")})
	assert.ErrorIs(t, err, pets.ErrNotFound)
}

func TestChildren_UpdateKeepsCreatedAt(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	ana := mustAccount(t, s, "ana@example.com")
	mia := mustPet(t, s, ana.ID, "Mia", t0)
	repos := s.Health()

	med, err := repos.Medications.Create(ctx, ana.ID, mia.ID, health.Medication{Name: "X", StartDate: civil.MustParseDate("2024-01-01"), Active: true, CreatedAt: t0})
	require.NoError(t, err)

	later := t0.Add(24 * time.Hour)
	updated, err := repos.Medications.Update(ctx, ana.ID, mia.ID, med.ID, health.Medication{Name: "Y", StartDate: civil.MustParseDate("2024-01-02"), CreatedAt: later})
	require.NoError(t, err)
	assert.Equal(t, "Y", updated.Name)
	assert.False(t, updated.Active)
	assert.Equal(t, med.ID, updated.ID)
	assert.True(t, t0.Equal(updated.CreatedAt))
}

func TestDelete_Cascades(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	ana := mustAccount(t, s, "ana@example.com")
	mia := mustPet(t, s, ana.ID, "Mia", t0)
	repos := s.Health()

	rec, err := repos.Records.Create(ctx, ana.ID, mia.ID, health.Record{RecordDate: civil.MustParseDate("2024-03-01")})
	require.NoError(t, err)
	require.NoError(t, s.Pets().Delete(ctx, ana.ID, mia.ID))
	assert.Empty(t, s.records.rows)

	_, err = repos.Records.GetByID(ctx, ana.ID, mia.ID, rec.ID)
	assert.ErrorIs(t, err, health.ErrRecordNotFound)

	tom := mustPet(t, s, ana.ID, "Tom", t0)
	_, err = repos.Vaccinations.Create(ctx, ana.ID, tom.ID, health.Vaccination{VaccineName: "Rabies", VaccinationDate: civil.MustParseDate("2024-03-01")})
	require.NoError(t, err)

	require.NoError(t, s.Accounts().Delete(ctx, ana.ID))
	assert.Empty(t, s.pets)
	assert.Empty(t, s.vaccinations.rows)
	assert.Error(t, s.Accounts().Delete(ctx, ana.ID))
}

func TestStore_ConcurrentCreates(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	ana := mustAccount(t, s, "ana@example.com")
	mia := mustPet(t, s, ana.ID, "Mia", t0)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Health().Records.Create(ctx, ana.ID, mia.ID, health.Record{RecordDate: civil.MustParseDate("2024-03-01")})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	list, err := s.Health().Records.ListByPet(ctx, ana.ID, mia.ID)
	require.NoError(t, err)
	assert.Len(t, list, 20)
}

package memory

import (
	"context"
	"sort"

	"pet-health-tracker/internal/domain/pets"
)

type petRow struct {
	accountID int64
	pet       pets.Pet
}

type petRepo struct {
	s *Store
}

func (s *Store) Pets() pets.Repository {
	return petRepo{s}
}

func (r petRepo) Create(_ context.Context, accountID int64, p pets.Pet) (pets.Pet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.accounts[accountID]; !ok {
		return pets.Pet{}, errAccountNotFound
	}

	r.s.petsSeq++
	p.ID = r.s.petsSeq
	p.AccountID = accountID
	r.s.pets[p.ID] = petRow{accountID: accountID, pet: p}
	return p, nil
}

func (r petRepo) GetByID(_ context.Context, accountID, petID int64) (pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	row, ok := r.s.pets[petID]
	if !ok || row.accountID != accountID {
		return pets.Pet{}, pets.ErrNotFound
	}
	return row.pet, nil
}

func (r petRepo) ListByOwner(_ context.Context, accountID int64) ([]pets.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]pets.Pet, 0)
	for _, row := range r.s.pets {
		if row.accountID == accountID {
			out = append(out, row.pet)
		}
	}

	// created_at DESC, id DESC como en SQL
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r petRepo) Update(_ context.Context, accountID int64, p pets.Pet) (pets.Pet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	row, ok := r.s.pets[p.ID]
	if !ok || row.accountID != accountID {
		return pets.Pet{}, pets.ErrNotFound
	}

	p.AccountID = accountID
	p.CreatedAt = row.pet.CreatedAt
	row.pet = p
	r.s.pets[p.ID] = row
	return p, nil
}

func (r petRepo) Delete(_ context.Context, accountID, petID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if !r.s.ownsPetLocked(accountID, petID) {
		return pets.ErrNotFound
	}
	r.s.deletePetLocked(petID)
	return nil
}

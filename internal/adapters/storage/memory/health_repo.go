package memory

import (
	"context"
	"sort"

	"pet-health-tracker/internal/domain/health"
	"pet-health-tracker/internal/domain/pets"
	"pet-health-tracker/internal/platform/civil"
)

// childTable es una tabla hija de pets. adopt fija id y pet_id y, en
// update, conserva los campos que el SQL no toca (created_at).
type childTable[T any] struct {
	s        *Store
	rows     map[int64]T
	seq      int64
	notFound error

	petID func(T) int64
	date  func(T) civil.Date
	id    func(T) int64
	adopt func(v T, id, petID int64, prev *T) T
}

func (t *childTable[T]) Create(_ context.Context, accountID, petID int64, v T) (T, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	var zero T
	if !t.s.ownsPetLocked(accountID, petID) {
		return zero, pets.ErrNotFound
	}

	t.seq++
	v = t.adopt(v, t.seq, petID, nil)
	t.rows[t.seq] = v
	return v, nil
}

func (t *childTable[T]) GetByID(_ context.Context, accountID, petID, id int64) (T, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	v, ok := t.getLocked(accountID, petID, id)
	if !ok {
		var zero T
		return zero, t.notFound
	}
	return v, nil
}

func (t *childTable[T]) ListByPet(_ context.Context, accountID, petID int64) ([]T, error) {
	t.s.mu.RLock()
	defer t.s.mu.RUnlock()

	if !t.s.ownsPetLocked(accountID, petID) {
		return nil, pets.ErrNotFound
	}

	out := make([]T, 0)
	for _, v := range t.rows {
		if t.petID(v) == petID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if c := t.date(out[i]).Compare(t.date(out[j])); c != 0 {
			return c > 0
		}
		return t.id(out[i]) > t.id(out[j])
	})
	return out, nil
}

func (t *childTable[T]) Update(_ context.Context, accountID, petID, id int64, v T) (T, error) {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	prev, ok := t.getLocked(accountID, petID, id)
	if !ok {
		var zero T
		return zero, t.notFound
	}
	v = t.adopt(v, id, petID, &prev)
	t.rows[id] = v
	return v, nil
}

func (t *childTable[T]) Delete(_ context.Context, accountID, petID, id int64) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	if _, ok := t.getLocked(accountID, petID, id); !ok {
		return t.notFound
	}
	delete(t.rows, id)
	return nil
}

func (t *childTable[T]) getLocked(accountID, petID, id int64) (T, bool) {
	v, ok := t.rows[id]
	if !ok || t.petID(v) != petID || !t.s.ownsPetLocked(accountID, petID) {
		var zero T
		return zero, false
	}
	return v, true
}

func (t *childTable[T]) deleteByPetLocked(petID int64) {
	for id, v := range t.rows {
		if t.petID(v) == petID {
			delete(t.rows, id)
		}
	}
}

func newRecordTable(s *Store) *childTable[health.Record] {
	return &childTable[health.Record]{
		s: s, rows: make(map[int64]health.Record), notFound: health.ErrRecordNotFound,
		petID: func(r health.Record) int64 { return r.PetID },
		date:  func(r health.Record) civil.Date { return r.RecordDate },
		id:    func(r health.Record) int64 { return r.ID },
		adopt: func(r health.Record, id, petID int64, prev *health.Record) health.Record {
			r.ID, r.PetID = id, petID
			if prev != nil {
				r.CreatedAt = prev.CreatedAt
			}
			return r
		},
	}
}

func newMedicationTable(s *Store) *childTable[health.Medication] {
	return &childTable[health.Medication]{
		s: s, rows: make(map[int64]health.Medication), notFound: health.ErrMedicationNotFound,
		petID: func(m health.Medication) int64 { return m.PetID },
		date:  func(m health.Medication) civil.Date { return m.StartDate },
		id:    func(m health.Medication) int64 { return m.ID },
		adopt: func(m health.Medication, id, petID int64, prev *health.Medication) health.Medication {
			m.ID, m.PetID = id, petID
			if prev != nil {
				m.CreatedAt = prev.CreatedAt
			}
			return m
		},
	}
}

func newVaccinationTable(s *Store) *childTable[health.Vaccination] {
	return &childTable[health.Vaccination]{
		s: s, rows: make(map[int64]health.Vaccination), notFound: health.ErrVaccinationNotFound,
		petID: func(v health.Vaccination) int64 { return v.PetID },
		date:  func(v health.Vaccination) civil.Date { return v.VaccinationDate },
		id:    func(v health.Vaccination) int64 { return v.ID },
		adopt: func(v health.Vaccination, id, petID int64, prev *health.Vaccination) health.Vaccination {
			v.ID, v.PetID = id, petID
			if prev != nil {
				v.CreatedAt = prev.CreatedAt
			}
			return v
		},
	}
}

func newVetVisitTable(s *Store) *childTable[health.VetVisit] {
	return &childTable[health.VetVisit]{
		s: s, rows: make(map[int64]health.VetVisit), notFound: health.ErrVetVisitNotFound,
		petID: func(v health.VetVisit) int64 { return v.PetID },
		date:  func(v health.VetVisit) civil.Date { return v.VisitDate },
		id:    func(v health.VetVisit) int64 { return v.ID },
		adopt: func(v health.VetVisit, id, petID int64, prev *health.VetVisit) health.VetVisit {
			v.ID, v.PetID = id, petID
			if prev != nil {
				v.CreatedAt = prev.CreatedAt
			}
			return v
		},
	}
}

var (
	_ health.RecordRepository      = (*childTable[health.Record])(nil)
	_ health.MedicationRepository  = (*childTable[health.Medication])(nil)
	_ health.VaccinationRepository = (*childTable[health.Vaccination])(nil)
	_ health.VetVisitRepository    = (*childTable[health.VetVisit])(nil)
)

package memory

import (
	"context"
	"strings"

	"pet-health-tracker/internal/domain/accounts"
	"pet-health-tracker/internal/platform/apperror"
)

var errAccountNotFound = apperror.NotFound("User")

type accountRepo struct {
	s *Store
}

func (r accountRepo) Create(_ context.Context, a accounts.Account) (accounts.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.emailTakenLocked(a.Email, 0) {
		return accounts.Account{}, accounts.ErrEmailTaken
	}

	r.s.accountsSeq++
	a.ID = r.s.accountsSeq
	r.s.accounts[a.ID] = a
	return a, nil
}

func (r accountRepo) GetByID(_ context.Context, id int64) (accounts.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.accounts[id]
	if !ok {
		return accounts.Account{}, errAccountNotFound
	}
	return a, nil
}

func (r accountRepo) GetByEmail(_ context.Context, email string) (accounts.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, a := range r.s.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return accounts.Account{}, errAccountNotFound
}

func (r accountRepo) UpdateProfile(_ context.Context, a accounts.Account) (accounts.Account, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.accounts[a.ID]
	if !ok {
		return accounts.Account{}, errAccountNotFound
	}
	if r.emailTakenLocked(a.Email, a.ID) {
		return accounts.Account{}, accounts.ErrEmailTaken
	}

	cur.Email = a.Email
	cur.FirstName = a.FirstName
	cur.LastName = a.LastName
	r.s.accounts[a.ID] = cur
	return cur, nil
}

func (r accountRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.accounts[id]
	if !ok {
		return errAccountNotFound
	}
	cur.PasswordHash = hash
	r.s.accounts[id] = cur
	return nil
}

// Delete arrastra mascotas y registros, igual que ON DELETE CASCADE.
func (r accountRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.accounts[id]; !ok {
		return errAccountNotFound
	}
	for petID, p := range r.s.pets {
		if p.accountID == id {
			r.s.deletePetLocked(petID)
		}
	}
	delete(r.s.accounts, id)
	return nil
}

func (r accountRepo) emailTakenLocked(email string, except int64) bool {
	for id, a := range r.s.accounts {
		if id != except && strings.EqualFold(a.Email, email) {
			return true
		}
	}
	return false
}

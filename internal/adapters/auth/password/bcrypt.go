// Package password implementa auth.PasswordHasher con bcrypt.
package password

import (
	"errors"
	"fmt"

	"pet-health-tracker/internal/ports/auth"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultCost = 12

	// bcrypt trunca en silencio después de 72 bytes.
	MaxBytes = 72
)

var (
	ErrMismatch = errors.New("password: mismatch")
	ErrTooLong  = fmt.Errorf("password: must be %d bytes or fewer", MaxBytes)
)

type Hasher struct {
	cost int
}

var _ auth.PasswordHasher = (*Hasher)(nil)

func NewHasher() *Hasher {
	return &Hasher{cost: DefaultCost}
}

// NewHasherWithCost se usa en tests con bcrypt.MinCost.
func NewHasherWithCost(cost int) *Hasher {
	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(plain string) (string, error) {
	if len(plain) > MaxBytes {
		return "", ErrTooLong
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("password: hashing: %w", err)
	}
	return string(b), nil
}

func (h *Hasher) Compare(hash, plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return fmt.Errorf("password: comparing: %w", err)
}

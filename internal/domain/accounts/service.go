package accounts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"pet-health-tracker/internal/platform/apperror"
	"pet-health-tracker/internal/ports/auth"
)

const (
	minPasswordLen = 6
	maxPasswordLen = 72
	maxEmailLen    = 255
	maxNameLen     = 100
)

var errInvalidCredentials = apperror.Unauthorized("Invalid credentials")

type Service struct {
	repo   Repository
	hasher auth.PasswordHasher
	tokens auth.TokenIssuer
	now    func() time.Time
}

func NewService(repo Repository, hasher auth.PasswordHasher, tokens auth.TokenIssuer) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		now:    time.Now,
	}
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type ProfileInput struct {
	Email     string
	FirstName string
	LastName  string
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (Session, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return Session{}, err
	}
	first, last, err := normalizeNames(in.FirstName, in.LastName)
	if err != nil {
		return Session{}, err
	}
	if err := checkPassword("password", in.Password); err != nil {
		return Session{}, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return Session{}, fmt.Errorf("accounts: hash password: %w", err)
	}

	a, err := s.repo.Create(ctx, Account{
		Email:        email,
		PasswordHash: hash,
		FirstName:    first,
		LastName:     last,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return Session{}, err
	}

	slog.InfoContext(ctx, "account registered", slog.Int64("account_id", a.ID))
	return s.session(ctx, a)
}

// Login responde lo mismo para email inexistente y contraseña incorrecta.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return Session{}, apperror.Validation("", "Email and password are required")
	}

	a, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, apperror.ErrNotFound) {
		return Session{}, errInvalidCredentials
	}
	if err != nil {
		return Session{}, err
	}

	if err := s.hasher.Compare(a.PasswordHash, password); err != nil {
		return Session{}, errInvalidCredentials
	}
	return s.session(ctx, a)
}

func (s *Service) Me(ctx context.Context, accountID int64) (Account, error) {
	return s.repo.GetByID(ctx, accountID)
}

func (s *Service) UpdateProfile(ctx context.Context, accountID int64, in ProfileInput) (Account, error) {
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return Account{}, err
	}
	first, last, err := normalizeNames(in.FirstName, in.LastName)
	if err != nil {
		return Account{}, err
	}

	return s.repo.UpdateProfile(ctx, Account{
		ID:        accountID,
		Email:     email,
		FirstName: first,
		LastName:  last,
	})
}

func (s *Service) ChangePassword(ctx context.Context, accountID int64, current, next string) error {
	if current == "" || next == "" {
		return apperror.Validation("", "Current and new password are required")
	}
	if err := checkPassword("newPassword", next); err != nil {
		return err
	}

	a, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if err := s.hasher.Compare(a.PasswordHash, current); err != nil {
		return apperror.Unauthorized("Current password is incorrect")
	}

	hash, err := s.hasher.Hash(next)
	if err != nil {
		return fmt.Errorf("accounts: hash password: %w", err)
	}
	return s.repo.UpdatePassword(ctx, accountID, hash)
}

// DeleteAccount exige la contraseña; el store borra en cascada mascotas y registros.
func (s *Service) DeleteAccount(ctx context.Context, accountID int64, password string) error {
	if password == "" {
		return apperror.Validation("password", "Password is required")
	}

	a, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if err := s.hasher.Compare(a.PasswordHash, password); err != nil {
		return apperror.Unauthorized("Password is incorrect")
	}

	if err := s.repo.Delete(ctx, accountID); err != nil {
		return err
	}

	slog.InfoContext(ctx, "account deleted", slog.Int64("account_id", accountID))
	return nil
}

func (s *Service) session(ctx context.Context, a Account) (Session, error) {
	token, exp, err := s.tokens.Issue(ctx, auth.Identity{AccountID: a.ID, Email: a.Email})
	if err != nil {
		return Session{}, fmt.Errorf("accounts: issue token: %w", err)
	}
	return Session{Account: a, Token: token, ExpiresAt: exp}, nil
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return "", apperror.Validation("email", "Email is required")
	}
	if len(email) > maxEmailLen {
		return "", apperror.Validation("email", "Email is too long")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", apperror.Validation("email", "Email is invalid")
	}
	return email, nil
}

func normalizeNames(first, last string) (string, string, error) {
	first, last = strings.TrimSpace(first), strings.TrimSpace(last)
	if first == "" || last == "" {
		return "", "", apperror.Validation("", "First name and last name are required")
	}
	if len(first) > maxNameLen || len(last) > maxNameLen {
		return "", "", apperror.Validation("", fmt.Sprintf("Names must be at most %d characters", maxNameLen))
	}
	return first, last, nil
}

func checkPassword(field, p string) error {
	if len(p) < minPasswordLen {
		return apperror.Validation(field, fmt.Sprintf("Password must be at least %d characters", minPasswordLen))
	}
	if len(p) > maxPasswordLen {
		return apperror.Validation(field, fmt.Sprintf("Password must be at most %d bytes", maxPasswordLen))
	}
	return nil
}

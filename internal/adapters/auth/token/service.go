// Package token emite y verifica JWT HS256 firmados con el secreto del servicio.
// Implementa auth.TokenIssuer y auth.AuthVerifier.
package token

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"pet-health-tracker/internal/ports/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Config struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

type Service struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

var (
	_ auth.TokenIssuer  = (*Service)(nil)
	_ auth.AuthVerifier = (*Service)(nil)
)

type claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

func NewService(cfg Config) (*Service, error) {
	if len(cfg.Secret) < 16 {
		return nil, errors.New("token: secret must be at least 16 characters")
	}
	if cfg.TTL <= 0 {
		return nil, errors.New("token: ttl must be positive")
	}
	if cfg.Issuer == "" {
		cfg.Issuer = "pet-health-tracker"
	}
	return &Service{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		ttl:    cfg.TTL,
		now:    time.Now,
	}, nil
}

func (s *Service) Issue(_ context.Context, id auth.Identity) (string, time.Time, error) {
	if id.AccountID <= 0 {
		return "", time.Time{}, errors.New("token: account id required")
	}

	now := s.now()
	exp := now.Add(s.ttl)

	c := claims{
		Email: id.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(id.AccountID, 10),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("token: signing: %w", err)
	}
	return signed, exp, nil
}

// Verify devuelve auth.ErrInvalidToken para cualquier token no aceptable,
// envolviendo la causa concreta.
func (s *Service) Verify(_ context.Context, raw string) (auth.Claims, error) {
	parsed, err := jwt.ParseWithClaims(raw, &claims{},
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %w", auth.ErrInvalidToken, err)
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return auth.Claims{}, auth.ErrInvalidToken
	}

	accountID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || accountID <= 0 {
		return auth.Claims{}, fmt.Errorf("%w: bad subject %q", auth.ErrInvalidToken, c.Subject)
	}

	out := auth.Claims{
		AccountID: accountID,
		Email:     c.Email,
		TokenID:   c.ID,
	}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Time
	}
	return out, nil
}

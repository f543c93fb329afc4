package auth

import (
	"context"
	"errors"
	"time"
)

// ErrInvalidToken cubre firma inválida, token expirado o claims mal formados.
var ErrInvalidToken = errors.New("invalid or expired token")

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer emite tokens para una cuenta ya autenticada.
type TokenIssuer interface {
	Issue(ctx context.Context, id Identity) (token string, expiresAt time.Time, err error)
}

// PasswordHasher abstrae el algoritmo de hash de contraseñas.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

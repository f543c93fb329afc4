package auth

import "time"

// Claims representa la información extraída del token.
type Claims struct {
	AccountID int64
	Email     string

	// TokenID es el jti; vacío cuando la identidad viene del header de dev.
	TokenID   string
	ExpiresAt time.Time
}

// Identity es lo mínimo que se necesita para emitir un token.
type Identity struct {
	AccountID int64
	Email     string
}

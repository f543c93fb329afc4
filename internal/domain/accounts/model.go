package accounts

import "time"

// Account es el dueño de las mascotas. Borrarlo borra en cascada todo lo suyo.
type Account struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
}

// Session es lo que devuelven register y login.
type Session struct {
	Account   Account
	Token     string
	ExpiresAt time.Time
}

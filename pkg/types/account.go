package types

import (
	"errors"
	"time"
)

// Account and session errors.
var (
	ErrDuplicateAccount   = errors.New("an account with that email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotSignedIn        = errors.New("not signed in")
)

// Account is one credential pair. Passwords are stored as bcrypt hashes.
type Account struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

// Package auth manages the credential store and the signed-in session.
// Accounts live under one record key; the active session is the signed-in
// account's email under another, cleared on sign-out.
package auth

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mesh-intelligence/platboard/pkg/types"
)

// Service registers accounts and tracks the active session.
type Service struct {
	store types.RecordStore
}

// NewService creates a service bound to the given store.
func NewService(store types.RecordStore) *Service {
	return &Service{store: store}
}

func (s *Service) accounts() ([]types.Account, error) {
	list := []types.Account{}
	if err := s.store.Get(types.KeyAccounts, &list); err != nil {
		return nil, fmt.Errorf("read accounts: %w", err)
	}
	return list, nil
}

// Register creates an account with a bcrypt-hashed password and signs it in.
// Returns ErrDuplicateAccount if the email is already on file.
func (s *Service) Register(email, password string) (types.Account, error) {
	list, err := s.accounts()
	if err != nil {
		return types.Account{}, err
	}

	for _, a := range list {
		if a.Email == email {
			return types.Account{}, types.ErrDuplicateAccount
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return types.Account{}, fmt.Errorf("hash password: %w", err)
	}

	account := types.Account{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	list = append(list, account)

	if err := s.store.Set(types.KeyAccounts, list); err != nil {
		return types.Account{}, fmt.Errorf("write accounts: %w", err)
	}
	if err := s.store.Set(types.KeyActiveAccount, account.Email); err != nil {
		return types.Account{}, fmt.Errorf("write session: %w", err)
	}
	return account, nil
}

// Login verifies the credentials and signs the account in.
// Returns ErrInvalidCredentials on any mismatch.
func (s *Service) Login(email, password string) (types.Account, error) {
	list, err := s.accounts()
	if err != nil {
		return types.Account{}, err
	}

	for _, a := range list {
		if a.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
			break
		}
		if err := s.store.Set(types.KeyActiveAccount, a.Email); err != nil {
			return types.Account{}, fmt.Errorf("write session: %w", err)
		}
		return a, nil
	}
	return types.Account{}, types.ErrInvalidCredentials
}

// SignOut clears the active session. Idempotent.
func (s *Service) SignOut() error {
	if err := s.store.Set(types.KeyActiveAccount, ""); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// Current returns the signed-in account. Returns ErrNotSignedIn when no
// session is active or the session points at an account no longer on file.
func (s *Service) Current() (types.Account, error) {
	var email string
	if err := s.store.Get(types.KeyActiveAccount, &email); err != nil {
		return types.Account{}, fmt.Errorf("read session: %w", err)
	}
	if email == "" {
		return types.Account{}, types.ErrNotSignedIn
	}

	list, err := s.accounts()
	if err != nil {
		return types.Account{}, err
	}
	for _, a := range list {
		if a.Email == email {
			return a, nil
		}
	}
	return types.Account{}, types.ErrNotSignedIn
}

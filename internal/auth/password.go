package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/oguzk/mobilebill/internal/models"
)

var ErrInvalidCredentials = errors.New("invalid subscriber_no or password")

// UserStorage defines the interface for user lookup operations.
// This allows the authenticator to be independent of the storage implementation.
type UserStorage interface {
	FindUser(ctx context.Context, subscriberNo string) (*models.User, error)
}

// PasswordAuthenticator implements password-based authentication using bcrypt.
//
// The upstream system compared plaintext passwords in SQL. Hashing at rest is
// a deliberate hardening: observable login behavior is unchanged because
// seeding hashes the configured passwords before insert.
type PasswordAuthenticator struct {
	storage UserStorage
}

// NewPasswordAuthenticator creates a new password-based authenticator.
func NewPasswordAuthenticator(storage UserStorage) *PasswordAuthenticator {
	return &PasswordAuthenticator{
		storage: storage,
	}
}

// Authenticate verifies the subscriber number and password, returning the
// user if valid.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, subscriberNo, credential string) (*models.User, error) {
	user, err := a.storage.FindUser(ctx, subscriberNo)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credential)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// HashPassword returns the bcrypt hash of a plaintext password. Used by the
// seeding path before inserting user rows.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

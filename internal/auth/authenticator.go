package auth

import (
	"context"

	"github.com/oguzk/mobilebill/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// This abstraction allows swapping between different auth methods without
// changing the service layer code.
type Authenticator interface {
	// Authenticate verifies the subscriber's credentials and returns the
	// user if successful. Returns ErrInvalidCredentials otherwise.
	Authenticate(ctx context.Context, subscriberNo, credential string) (*models.User, error)
}

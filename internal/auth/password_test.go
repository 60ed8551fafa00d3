package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/oguzk/mobilebill/internal/models"
)

// stubUserStorage backs the authenticator with an in-memory user map.
type stubUserStorage struct {
	users map[string]*models.User
}

func (s *stubUserStorage) FindUser(_ context.Context, subscriberNo string) (*models.User, error) {
	return s.users[subscriberNo], nil
}

func TestPasswordAuthenticator(t *testing.T) {
	hash, err := HashPassword("pw1")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	authenticator := NewPasswordAuthenticator(&stubUserStorage{
		users: map[string]*models.User{
			"alice": {SubscriberNo: "alice", PasswordHash: hash},
		},
	})
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		user, err := authenticator.Authenticate(ctx, "alice", "pw1")
		if err != nil {
			t.Fatalf("Authenticate failed: %v", err)
		}
		if user.SubscriberNo != "alice" {
			t.Errorf("expected alice, got %q", user.SubscriberNo)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := authenticator.Authenticate(ctx, "alice", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown subscriber", func(t *testing.T) {
		_, err := authenticator.Authenticate(ctx, "mallory", "pw1")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

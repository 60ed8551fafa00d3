package service

import (
	"context"
	"log/slog"

	"github.com/oguzk/mobilebill/internal/auth"
)

// AuthService implements subscriber login.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// Login verifies the subscriber's credentials and returns a signed token
// whose subject is the subscriber number.
//
// Returns ErrMissingField when either field is empty and
// auth.ErrInvalidCredentials when the pair does not match a user.
func (s *AuthService) Login(ctx context.Context, subscriberNo, password string) (string, error) {
	if subscriberNo == "" || password == "" {
		return "", ErrMissingField
	}

	user, err := s.authenticator.Authenticate(ctx, subscriberNo, password)
	if err != nil {
		s.logger.Warn("Login failed", "subscriber_no", subscriberNo, "error", err)
		return "", err
	}

	token, err := s.jwtManager.Generate(user.SubscriberNo)
	if err != nil {
		s.logger.Error("Failed to generate token", "subscriber_no", user.SubscriberNo, "error", err)
		return "", err
	}

	s.logger.Info("Subscriber logged in", "subscriber_no", user.SubscriberNo)
	return token, nil
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/campbellos/backend/internal/auth"
	"github.com/campbellos/backend/internal/config"
	"github.com/campbellos/backend/internal/domain"
	"github.com/campbellos/backend/internal/repository"
	"github.com/campbellos/backend/pkg/util/errorutil"
)

// AuthService coordinates dashboard login.
type AuthService struct {
	users       repository.UserRepository
	sessions    auth.SessionStore
	tokenMgr    *auth.TokenManager
	idleTimeout time.Duration
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository, sessions auth.SessionStore) *AuthService {
	return &AuthService{
		users:       users,
		sessions:    sessions,
		tokenMgr:    auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTLHours),
		idleTimeout: cfg.IdleTimeout(),
	}
}

// TokenManager exposes the manager for middleware wiring.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Login authenticates by email/password and starts an activity-tracked
// session. deviceType is recorded in the token claims only.
func (s *AuthService) Login(ctx context.Context, email, password, deviceType string) (*domain.User, string, error) {
	if email == "" || password == "" {
		return nil, "", errorutil.NewValidationError("Email and password are required", nil)
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", errorutil.NewUnauthorized("Invalid credentials")
		}
		return nil, "", err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", errorutil.NewUnauthorized("Invalid credentials")
	}

	sessionID := uuid.NewString()
	if err := s.sessions.Start(ctx, sessionID, s.idleTimeout); err != nil {
		return nil, "", err
	}

	token, _, err := s.tokenMgr.GenerateToken(user, defaultString(deviceType, "unknown"), sessionID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout ends the session so the token stops working immediately.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.End(ctx, sessionID)
}

package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/campbellos/backend/internal/domain"
	"github.com/campbellos/backend/internal/repository"
	"github.com/campbellos/backend/pkg/util/errorutil"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller.
type Principal struct {
	User       *domain.User
	DeviceType string
	SessionID  string
}

// Middleware validates bearer tokens, enforces the inactivity window and
// loads the user onto the request context.
type Middleware struct {
	tokens      *TokenManager
	users       repository.UserRepository
	sessions    SessionStore
	idleTimeout time.Duration
}

// NewMiddleware constructs the middleware.
func NewMiddleware(tokens *TokenManager, users repository.UserRepository, sessions SessionStore, idleTimeout time.Duration) *Middleware {
	return &Middleware{tokens: tokens, users: users, sessions: sessions, idleTimeout: idleTimeout}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return errorutil.NewUnauthorized("Missing token")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return errorutil.NewUnauthorized("Missing token")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return errorutil.NewUnauthorized("Invalid token")
	}

	if claims.SessionID != "" && m.sessions != nil {
		alive, err := m.sessions.Touch(c.Context(), claims.SessionID, m.idleTimeout)
		if err != nil {
			return errorutil.NewInternalError(err)
		}
		if !alive {
			return errorutil.NewUnauthorized("Session expired due to inactivity")
		}
	}

	user, err := m.users.GetByID(c.Context(), claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errorutil.NewNotFound("User", nil)
		}
		return errorutil.NewInternalError(err)
	}

	c.Locals(principalKey, &Principal{
		User:       user,
		DeviceType: claims.DeviceType,
		SessionID:  claims.SessionID,
	})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}

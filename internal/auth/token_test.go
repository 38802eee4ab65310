package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campbellos/backend/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 8)
	user := &domain.User{ID: "u-1", Role: domain.RoleOps}

	token, expiresAt, err := tm.GenerateToken(user, "mobile", "sess-1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(8*time.Hour), expiresAt, time.Minute)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.Subject)
	assert.Equal(t, domain.RoleOps, claims.Role)
	assert.Equal(t, "mobile", claims.DeviceType)
	assert.Equal(t, "sess-1", claims.SessionID)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a", 8).GenerateToken(&domain.User{ID: "u-1"}, "", "")
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b", 8).ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", 8)
	_, err := tm.ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestTokenTTLDefaultsToEightHours(t *testing.T) {
	tm := NewTokenManager("test-secret", 0)
	_, expiresAt, err := tm.GenerateToken(&domain.User{ID: "u-1"}, "", "")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(8*time.Hour), expiresAt, time.Minute)
}

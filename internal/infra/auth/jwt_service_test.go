package auth

import (
	"strings"
	"testing"
	"time"

	"identity/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.AccessTTL = ttl

	return cfg
}

func TestJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(newTestJWTConfig("", 0))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "secret")
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret", 0))
	require.NoError(t, err)

	token, err := svc.IssueAccessToken(42, "test@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)
}

func TestJWTService_DefaultExpiryIsTwoHours(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret", 0))
	require.NoError(t, err)

	assert.Equal(t, 2*time.Hour, svc.AccessTokenDuration())

	token, err := svc.IssueAccessToken(42, "test@example.com")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	require.NotNil(t, claims.IssuedAt)
	assert.Equal(t, 2*time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTService_ConfiguredTTLWins(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret", 15*time.Minute))
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, svc.AccessTokenDuration())
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret", 0))
	require.NoError(t, err)

	token, err := svc.IssueAccessToken(42, "test@example.com")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.ValidateToken(tampered)
	assert.Error(t, err)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig("issuer-secret", 0))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestJWTConfig("other-secret", 0))
	require.NoError(t, err)

	token, err := issuer.IssueAccessToken(42, "test@example.com")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test-secret", time.Nanosecond))
	require.NoError(t, err)

	token, err := svc.IssueAccessToken(42, "test@example.com")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

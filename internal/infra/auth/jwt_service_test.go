package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sankalpsthakur/astronova-sub007/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"
	cfg.Auth = &config.AuthConfig{
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}

	return cfg
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	cfg := testConfig()
	cfg.SecretKey.Access = ""

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	userID := uuid.New()
	access, refresh, err := svc.GenerateTokens(userID)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	claims, err := svc.ValidateAccessToken(access)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "access", claims.Type)

	refreshClaims, err := svc.ValidateRefreshToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
}

func TestJWTService_RejectsCrossTypeTokens(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	access, refresh, err := svc.GenerateTokens(uuid.New())
	require.NoError(t, err)

	// An access token must not pass refresh validation and vice versa:
	// they are signed with different secrets and carry different types.
	_, err = svc.ValidateRefreshToken(access)
	assert.Error(t, err)

	_, err = svc.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_Durations(t *testing.T) {
	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, svc.AccessTokenDuration())
	assert.Equal(t, 7*24*time.Hour, svc.RefreshTokenDuration())
}

package auth

import (
	"testing"

	"stockhub/config"
	"stockhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) service.TokenService {
	cfg := &config.Config{}
	cfg.SecretKey.Session = "session-secret"
	cfg.SecretKey.Action = "action-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSessionSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})

	assert.Error(t, err)
}

func TestNewJWTService_ActionSecretFallsBackToSession(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Session = "session-secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	claims := service.Claims{TenantID: uuid.New(), Username: "acme"}
	token, err := svc.GenerateActionToken(claims)
	require.NoError(t, err)

	parsed, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, claims.TenantID, parsed.TenantID)
}

func TestJWTService_SessionRoundtrip(t *testing.T) {
	svc := newTestJWTService(t)

	claims := service.Claims{TenantID: uuid.New(), Username: "acme"}

	token, err := svc.GenerateSessionToken(claims)
	require.NoError(t, err)

	parsed, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, claims.TenantID, parsed.TenantID)
	assert.Equal(t, "acme", parsed.Username)
}

func TestJWTService_ActionRoundtrip(t *testing.T) {
	svc := newTestJWTService(t)

	claims := service.Claims{TenantID: uuid.New()}

	token, err := svc.GenerateActionToken(claims)
	require.NoError(t, err)

	parsed, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, claims.TenantID, parsed.TenantID)
}

func TestJWTService_Validate_TamperedToken(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.GenerateSessionToken(service.Claims{TenantID: uuid.New()})
	require.NoError(t, err)

	_, err = svc.Validate(token + "x")

	assert.Error(t, err)
}

func TestJWTService_Validate_WrongSecret(t *testing.T) {
	svc := newTestJWTService(t)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Session = "another-secret"
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := other.GenerateSessionToken(service.Claims{TenantID: uuid.New()})
	require.NoError(t, err)

	_, err = svc.Validate(token)

	assert.Error(t, err)
}

func TestJWTService_Validate_Garbage(t *testing.T) {
	svc := newTestJWTService(t)

	_, err := svc.Validate("not-a-token")

	assert.Error(t, err)
}

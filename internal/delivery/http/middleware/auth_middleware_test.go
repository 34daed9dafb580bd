package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"stockhub/internal/domain/service"
	mockSvc "stockhub/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuthMiddleware(t *testing.T, tokenSvc service.TokenService, header string) (echo.Context, *httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := NewAuthMiddleware(tokenSvc).Authenticate(func(c echo.Context) error {
		reached = true

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return c, rec, reached
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	_, rec, reached := runAuthMiddleware(t, tokenSvc, "")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	_, rec, reached := runAuthMiddleware(t, tokenSvc, "Token abc")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("bad").Return(nil, errors.New("expired"))

	_, rec, reached := runAuthMiddleware(t, tokenSvc, "Bearer bad")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func runSigningMiddleware(t *testing.T, tokenSvc service.TokenService, target, header string) (echo.Context, *httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := NewAuthMiddleware(tokenSvc).AuthenticateSigning(func(c echo.Context) error {
		reached = true

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return c, rec, reached
}

func TestAuthenticateSigning_QueryTokenWithoutSession(t *testing.T) {
	tenantID := uuid.New()
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().
		Validate("action-token").
		Return(&service.Claims{TenantID: tenantID}, nil)

	c, rec, reached := runSigningMiddleware(t, tokenSvc,
		"/api/orders/ORD-1001/sign?token=action-token", "")

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)

	got, ok := TenantID(c)
	assert.True(t, ok)
	assert.Equal(t, tenantID, got)
}

func TestAuthenticateSigning_BearerFallback(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().
		Validate("action-token").
		Return(&service.Claims{TenantID: uuid.New()}, nil)

	_, rec, reached := runSigningMiddleware(t, tokenSvc,
		"/api/orders/ORD-1001/sign", "Bearer action-token")

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticateSigning_MissingToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	_, rec, reached := runSigningMiddleware(t, tokenSvc, "/api/orders/ORD-1001/sign", "")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateSigning_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("stale").Return(nil, errors.New("expired"))

	_, rec, reached := runSigningMiddleware(t, tokenSvc,
		"/api/orders/ORD-1001/sign?token=stale", "")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ValidTokenSetsTenant(t *testing.T) {
	tenantID := uuid.New()
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().
		Validate("good").
		Return(&service.Claims{TenantID: tenantID, Username: "acme"}, nil)

	c, rec, reached := runAuthMiddleware(t, tokenSvc, "Bearer good")

	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)

	got, ok := TenantID(c)
	assert.True(t, ok)
	assert.Equal(t, tenantID, got)
	assert.Equal(t, "acme", c.Get(ContextKeyUsername))
}

package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "stockhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newTestErrorMiddleware() *ErrorMiddleware {
	return NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestHandleHTTPError_AppError(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newTestContext(t)

	m.HandleHTTPError(errors.WithStack(domainerrors.ErrTransactionNotFound), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
	assert.Contains(t, rec.Body.String(), "Order not found.")
}

func TestHandleHTTPError_UnknownRouteLegacyBody(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newTestContext(t)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error_message":"This route does not exist"}`, rec.Body.String())
}

func TestHandleHTTPError_GenericErrorLegacyBody(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newTestContext(t)

	m.HandleHTTPError(errors.New("database exploded"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error_message":"Internal server error, contact support if the problem persists"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "database exploded")
}

func TestHandleHTTPError_CommittedResponseUntouched(t *testing.T) {
	m := newTestErrorMiddleware()
	c, rec := newTestContext(t)

	c.Response().WriteHeader(http.StatusOK)
	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
}

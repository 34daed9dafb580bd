package handler

import (
	"log/slog"
	"net/http"

	"stockhub/internal/delivery/http/middleware"
	"stockhub/internal/delivery/http/response"
	domainerrors "stockhub/internal/domain/errors"
	"stockhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ClientHandler holds dependencies for client registry handlers.
type ClientHandler struct {
	uc     usecase.ClientUsecase
	logger *slog.Logger
}

// NewClientHandler is the constructor for ClientHandler, injected by Fx.
func NewClientHandler(uc usecase.ClientUsecase, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{
		uc:     uc,
		logger: logger,
	}
}

// Get looks up a client by national id, history included.
func (h *ClientHandler) Get(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	dni := c.Param("dni")
	if dni == "" {
		return response.BadRequest(c, "INVALID_DNI", "Client national id is required")
	}

	client, err := h.uc.GetClient(c.Request().Context(), tenantID, dni)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, client, "")
}

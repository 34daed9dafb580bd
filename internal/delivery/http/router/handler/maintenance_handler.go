package handler

import (
	"log/slog"
	"net/http"

	"stockhub/internal/delivery/http/middleware"
	"stockhub/internal/delivery/http/response"
	domainerrors "stockhub/internal/domain/errors"
	"stockhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MaintenanceHandler holds dependencies for maintenance log handlers.
type MaintenanceHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewMaintenanceHandler is the constructor for MaintenanceHandler, injected by Fx.
func NewMaintenanceHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *MaintenanceHandler {
	return &MaintenanceHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create appends a maintenance record to a product's log.
func (h *MaintenanceHandler) Create(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	var input *usecase.MaintenanceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid maintenance input")
	}

	maintenance, err := h.uc.CreateMaintenance(c.Request().Context(), tenantID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, maintenance, "Maintenance record created")
}

// ListByProduct returns a product's maintenance log, newest first.
func (h *MaintenanceHandler) ListByProduct(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_PRODUCT_ID", "Invalid product id")
	}

	maintenances, err := h.uc.ListMaintenances(c.Request().Context(), tenantID, productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, maintenances, "")
}

// Update overwrites a maintenance record.
func (h *MaintenanceHandler) Update(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	maintenanceID, err := uuid.Parse(c.Param("maintenanceId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_MAINTENANCE_ID", "Invalid maintenance id")
	}

	var input *usecase.MaintenanceInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid maintenance input")
	}

	maintenance, err := h.uc.UpdateMaintenance(c.Request().Context(), tenantID, maintenanceID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, maintenance, "Maintenance record updated")
}

// Delete removes a maintenance record.
func (h *MaintenanceHandler) Delete(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	maintenanceID, err := uuid.Parse(c.Param("maintenanceId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_MAINTENANCE_ID", "Invalid maintenance id")
	}

	if err := h.uc.DeleteMaintenance(c.Request().Context(), tenantID, maintenanceID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Maintenance record deleted")
}

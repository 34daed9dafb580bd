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

// EmployeeHandler holds dependencies for staff management handlers.
type EmployeeHandler struct {
	uc     usecase.EmployeeUsecase
	logger *slog.Logger
}

// NewEmployeeHandler is the constructor for EmployeeHandler, injected by Fx.
func NewEmployeeHandler(uc usecase.EmployeeUsecase, logger *slog.Logger) *EmployeeHandler {
	return &EmployeeHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create registers a staff member.
func (h *EmployeeHandler) Create(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	var input *usecase.EmployeeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid employee input")
	}

	employee, err := h.uc.CreateEmployee(c.Request().Context(), tenantID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, employee, "Employee created")
}

// List returns all staff members of the tenant.
func (h *EmployeeHandler) List(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	employees, err := h.uc.ListEmployees(c.Request().Context(), tenantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, employees, "")
}

// Delete removes a staff member.
func (h *EmployeeHandler) Delete(c echo.Context) error {
	tenantID, ok := middleware.TenantID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	employeeID, err := uuid.Parse(c.Param("employeeId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_EMPLOYEE_ID", "Invalid employee id")
	}

	if err := h.uc.DeleteEmployee(c.Request().Context(), tenantID, employeeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Employee deleted")
}

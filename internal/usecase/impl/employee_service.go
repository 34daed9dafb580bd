package impl

import (
	"context"
	"log/slog"

	"stockhub/internal/domain/entity"
	domainerrors "stockhub/internal/domain/errors"
	"stockhub/internal/domain/repository"
	"stockhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// employeeService implements the EmployeeUsecase interface.
type employeeService struct {
	employees repository.EmployeeRepository
	logger    *slog.Logger
}

// NewEmployeeService is the constructor for employeeService.
func NewEmployeeService(
	employees repository.EmployeeRepository,
	logger *slog.Logger,
) usecase.EmployeeUsecase {
	return &employeeService{
		employees: employees,
		logger:    logger,
	}
}

// CreateEmployee registers a staff member under the tenant.
func (srv *employeeService) CreateEmployee(ctx context.Context, tenantID uuid.UUID, input *usecase.EmployeeInput) (*entity.Employee, error) {
	role := entity.Role(input.Role)
	if !role.Valid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown employee role")
	}

	employee := &entity.Employee{
		TenantID: tenantID,
		Name:     input.Name,
		Phone:    input.Phone,
		Email:    input.Email,
		Role:     role,
	}

	if err := srv.employees.Create(ctx, employee); err != nil {
		return nil, err
	}

	srv.logger.Info("Employee created", "tenantID", tenantID, "employeeID", employee.ID)

	return employee, nil
}

// ListEmployees returns the tenant's staff.
func (srv *employeeService) ListEmployees(ctx context.Context, tenantID uuid.UUID) ([]*entity.Employee, error) {
	return srv.employees.ListByTenant(ctx, tenantID)
}

// DeleteEmployee removes a staff member.
func (srv *employeeService) DeleteEmployee(ctx context.Context, tenantID, employeeID uuid.UUID) error {
	if err := srv.employees.Delete(ctx, tenantID, employeeID); err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return domainerrors.ErrEmployeeNotFound
		}

		return err
	}

	return nil
}

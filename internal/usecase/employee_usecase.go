package usecase

import (
	"context"

	"stockhub/internal/domain/entity"

	"github.com/google/uuid"
)

// EmployeeUsecase defines the interface for staff management.
type EmployeeUsecase interface {
	CreateEmployee(ctx context.Context, tenantID uuid.UUID, input *EmployeeInput) (*entity.Employee, error)
	ListEmployees(ctx context.Context, tenantID uuid.UUID) ([]*entity.Employee, error)
	DeleteEmployee(ctx context.Context, tenantID, employeeID uuid.UUID) error
}

// EmployeeInput defines the data for registering an employee.
type EmployeeInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

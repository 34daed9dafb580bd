package repository

import (
	"context"
	"errors"

	"stockhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEmployeeNotFound is returned when no employee matches the lookup.
var ErrEmployeeNotFound = errors.New("employee not found")

// EmployeeRepository persists tenant staff records.
type EmployeeRepository interface {
	// Create persists a new employee.
	Create(ctx context.Context, employee *entity.Employee) error

	// ListByTenant returns every employee of the tenant.
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entity.Employee, error)

	// Delete removes an employee of the tenant.
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

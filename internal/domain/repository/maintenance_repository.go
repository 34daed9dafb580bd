package repository

import (
	"context"
	"errors"

	"stockhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMaintenanceNotFound is returned when no maintenance record matches the lookup.
var ErrMaintenanceNotFound = errors.New("maintenance record not found")

// MaintenanceRepository persists standalone maintenance records referenced by
// product id.
type MaintenanceRepository interface {
	// FindByID retrieves one maintenance record of the tenant.
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Maintenance, error)

	// ListByProduct returns the maintenance history of a product, newest first.
	ListByProduct(ctx context.Context, tenantID, productID uuid.UUID) ([]*entity.Maintenance, error)

	// Create persists a new maintenance record.
	Create(ctx context.Context, record *entity.Maintenance) error

	// Update modifies an existing maintenance record of the tenant.
	Update(ctx context.Context, record *entity.Maintenance) error

	// Delete removes a maintenance record of the tenant.
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

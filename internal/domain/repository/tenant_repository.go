// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"stockhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTenantNotFound is returned when no tenant matches the lookup.
var ErrTenantNotFound = errors.New("tenant not found")

// TenantRepository defines the standard operations for tenant persistence.
type TenantRepository interface {
	// FindByID retrieves a single tenant by its store-assigned id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error)

	// FindByUsername retrieves a single tenant by its unique login name.
	FindByUsername(ctx context.Context, username string) (*entity.Tenant, error)

	// FindByEmail retrieves a single tenant by its account email.
	FindByEmail(ctx context.Context, email string) (*entity.Tenant, error)

	// Create persists a new tenant.
	Create(ctx context.Context, tenant *entity.Tenant) error

	// Update modifies an existing tenant.
	Update(ctx context.Context, tenant *entity.Tenant) error
}

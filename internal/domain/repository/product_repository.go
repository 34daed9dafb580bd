package repository

import (
	"context"
	"errors"

	"stockhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when no product matches the lookup.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines tenant-scoped catalog persistence. Every method
// takes the owning tenant id; rows of other tenants are never reachable.
type ProductRepository interface {
	// FindByID retrieves one product of the tenant, with the owning tenant resolved.
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Product, error)

	// CountByTenant returns the total number of products the tenant owns.
	CountByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)

	// ListPage returns one page of the tenant's products, newest first.
	ListPage(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]*entity.Product, error)

	// Search returns the tenant's products whose name contains the query
	// (case-insensitive). When tags are given, results must carry every tag.
	Search(ctx context.Context, tenantID uuid.UUID, query string, tags []string) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product of the tenant.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product of the tenant.
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

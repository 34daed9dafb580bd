package usecase

import (
	"context"
	"time"

	"stockhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductPageSize is the fixed page length of catalog listings.
const ProductPageSize = 10

// CatalogUsecase defines the interface for product and maintenance operations.
type CatalogUsecase interface {
	CreateProduct(ctx context.Context, tenantID uuid.UUID, input *ProductInput) (*entity.Product, error)
	GetProduct(ctx context.Context, tenantID, productID uuid.UUID) (*entity.Product, error)

	// ListProducts returns the requested 1-based page, newest first. Asking
	// for a page beyond the last one is a caller error, not an empty page.
	ListProducts(ctx context.Context, tenantID uuid.UUID, page int) (*ProductPage, error)

	// SearchProducts matches the query against product names
	// (case-insensitive substring) and keeps only products carrying every
	// requested tag.
	SearchProducts(ctx context.Context, tenantID uuid.UUID, query string, tags []string) ([]*entity.Product, error)

	UpdateProduct(ctx context.Context, tenantID, productID uuid.UUID, input *ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, tenantID, productID uuid.UUID) error

	CreateMaintenance(ctx context.Context, tenantID uuid.UUID, input *MaintenanceInput) (*entity.Maintenance, error)
	ListMaintenances(ctx context.Context, tenantID, productID uuid.UUID) ([]*entity.Maintenance, error)
	UpdateMaintenance(ctx context.Context, tenantID, maintenanceID uuid.UUID, input *MaintenanceInput) (*entity.Maintenance, error)
	DeleteMaintenance(ctx context.Context, tenantID, maintenanceID uuid.UUID) error
}

// --- Input/Output DTOs ---

// ProductInput defines the data for creating or replacing a product.
type ProductInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURLs   []string        `json:"image_urls"`
	Tags        []string        `json:"tags"`
	OnSell      Flag            `json:"on_sell"`
	InStock     Flag            `json:"in_stock"`
	Quantity    int             `json:"quantity"`
}

// ProductPage is one page of the catalog listing.
type ProductPage struct {
	Products   []*entity.Product `json:"products"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
}

// MaintenanceInput defines the data for creating or replacing a maintenance record.
type MaintenanceInput struct {
	ProductID      uuid.UUID `json:"product_id"`
	Date           time.Time `json:"date"`
	Description    string    `json:"description"`
	PersonInCharge string    `json:"person_in_charge"`
}

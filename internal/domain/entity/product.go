package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// MaxProductImages caps the hosted image URLs per product.
	MaxProductImages = 5

	// MaxProductTags caps the tags per product.
	MaxProductTags = 10
)

// Product is a catalog item owned by exactly one tenant. Prices are decimals;
// float arithmetic on money is not acceptable in invoicing.
type Product struct {
	ID          uuid.UUID
	TenantID    uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURLs   []string // Hosted image URLs, at most MaxProductImages.
	Tags        []string // At most MaxProductTags.
	OnSell      bool
	InStock     bool
	Quantity    int
	Tenant      *Tenant // Resolved owning tenant; nil unless explicitly loaded.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Client is an end customer of a tenant, looked up by the national id (dni)
// printed on orders. The lookup key is (tenant, dni): two tenants may serve
// the same person without ever sharing history.
//
// The product and transaction lists are append-only merge targets: every new
// order or invoice pushes its references here, and repeated references are
// kept as-is (no deduplication).
type Client struct {
	ID             uuid.UUID
	TenantID       uuid.UUID
	DNI            string
	Name           string
	Address        string
	Phone          string
	Email          string
	Observations   []string
	BoughtProducts []uuid.UUID // Product references from line items without a return date.
	RentedProducts []uuid.UUID // Product references from line items with a return date.
	Transactions   []uuid.UUID // Order/invoice references, newest appended last.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Maintenance is a dated service record kept as a standalone collection and
// referenced by product id, so records can be updated or removed without
// touching the product document.
type Maintenance struct {
	ID             uuid.UUID
	TenantID       uuid.UUID
	ProductID      uuid.UUID
	Date           time.Time
	Description    string
	PersonInCharge string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

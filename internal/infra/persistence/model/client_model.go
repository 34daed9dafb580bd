package model

import (
	"time"

	"github.com/google/uuid"
)

// ClientModel mirrors the 'clients' table. The national id is unique within a
// tenant, never globally; two tenants can both serve the same person.
type ClientModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_clients_tenant_dni"`
	DNI      string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_clients_tenant_dni"`

	Name    string `gorm:"type:varchar(255)"`
	Address string `gorm:"type:text"`
	Email   string `gorm:"type:varchar(255)"`
	Phone   string `gorm:"type:varchar(50)"`

	// Append-only history lists.
	Observations   []string    `gorm:"serializer:json;type:jsonb"`
	BoughtProducts []uuid.UUID `gorm:"serializer:json;type:jsonb"`
	RentedProducts []uuid.UUID `gorm:"serializer:json;type:jsonb"`
	Transactions   []uuid.UUID `gorm:"serializer:json;type:jsonb"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClientModel) TableName() string {
	return "clients"
}

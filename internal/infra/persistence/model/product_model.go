package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TenantID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ImageURLs   []string        `gorm:"serializer:json;type:jsonb"`
	Tags        []string        `gorm:"serializer:json;type:jsonb"`
	OnSell      bool            `gorm:"not null;default:false"`
	InStock     bool            `gorm:"not null;default:true"`
	Quantity    int             `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Tenant *TenantModel `gorm:"foreignKey:TenantID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

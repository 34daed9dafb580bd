// Package model defines the GORM table mappings for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// TenantModel mirrors the 'tenants' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type TenantModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username     string    `gorm:"type:varchar(100);unique;not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`

	// Company profile shown on generated documents.
	LogoURL            string   `gorm:"type:text"`
	CompanyName        string   `gorm:"type:varchar(255)"`
	CompanyDescription string   `gorm:"type:text"`
	Phone              string   `gorm:"type:varchar(50)"`
	Address            string   `gorm:"type:text"`
	NIF                string   `gorm:"type:varchar(50)"`
	Tags               []string `gorm:"serializer:json;type:jsonb"`
	OrderTerms         string   `gorm:"type:text"`

	// Outgoing mail account; the secret is stored encrypted.
	CompanyEmail       string `gorm:"type:varchar(255)"`
	CompanyEmailSecret string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TenantModel) TableName() string {
	return "tenants"
}

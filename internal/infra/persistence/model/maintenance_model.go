package model

import (
	"time"

	"github.com/google/uuid"
)

// MaintenanceModel mirrors the 'maintenances' table. Records reference a
// product but survive its deletion, so there is no foreign key constraint.
type MaintenanceModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TenantID       uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Date           time.Time `gorm:"not null"`
	Description    string    `gorm:"type:text"`
	PersonInCharge string    `gorm:"type:varchar(255)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MaintenanceModel) TableName() string {
	return "maintenances"
}

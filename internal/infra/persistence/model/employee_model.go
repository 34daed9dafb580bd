package model

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeModel mirrors the 'employees' table.
type EmployeeModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TenantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Phone    string    `gorm:"type:varchar(50)"`
	Email    string    `gorm:"type:varchar(255)"`
	Role     string    `gorm:"type:varchar(20);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Tenant *TenantModel `gorm:"foreignKey:TenantID"`
}

// TableName explicitly sets the table name for GORM.
func (EmployeeModel) TableName() string {
	return "employees"
}

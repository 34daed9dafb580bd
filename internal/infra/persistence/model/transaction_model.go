package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionModel mirrors the 'transactions' table. Orders and invoices
// share the table and are told apart by Kind. The human-facing document id
// is unique within a tenant.
type TransactionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TenantID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_transactions_tenant_external"`
	ExternalID string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_transactions_tenant_external"`
	Kind       string    `gorm:"type:varchar(10);not null;index"`

	TotalValue    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TermsAccepted bool            `gorm:"not null;default:false"`

	// Client snapshot as entered at creation time.
	ClientName        string `gorm:"type:varchar(255)"`
	ClientAddress     string `gorm:"type:text"`
	ClientDNI         string `gorm:"type:varchar(50);not null;index"`
	ClientEmail       string `gorm:"type:varchar(255)"`
	ClientPhone       string `gorm:"type:varchar(50)"`
	ClientObservation string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Lines  []TransactionLineModel `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE"`
	Tenant *TenantModel           `gorm:"foreignKey:TenantID"`
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}

// TransactionLineModel mirrors the 'transaction_lines' table. A line with a
// return date is a rental; one without is a sale.
type TransactionLineModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TransactionID uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID     uuid.UUID `gorm:"type:uuid;not null"`

	Name        string           `gorm:"type:varchar(255);not null"`
	Quantity    int              `gorm:"not null;default:1"`
	Price       decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	DeliverAt   time.Time
	ReturnAt    *time.Time
	Deposit     *decimal.Decimal `gorm:"type:numeric(12,2)"`
	ValuePerDay *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Location    string           `gorm:"type:text"`

	CreatedAt time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (TransactionLineModel) TableName() string {
	return "transaction_lines"
}

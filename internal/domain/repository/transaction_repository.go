package repository

import (
	"context"
	"errors"

	"stockhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTransactionNotFound is returned when no order/invoice matches the lookup.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionFilter narrows transaction listings.
type TransactionFilter struct {
	// Query is a case-insensitive substring match on the client external id.
	Query string

	// Rented, when non-nil, keeps only transactions that do (true) or do not
	// (false) contain rented line items.
	Rented *bool
}

// TransactionRepository persists orders and invoices with their line items.
type TransactionRepository interface {
	// Create persists a new transaction and its line items.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves one transaction of the tenant with line-item
	// products and the owning tenant resolved.
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Transaction, error)

	// FindByExternalID retrieves one transaction of the tenant by its
	// human-facing document id.
	FindByExternalID(ctx context.Context, tenantID uuid.UUID, externalID string) (*entity.Transaction, error)

	// CountByTenant returns how many documents of the kind the tenant owns.
	CountByTenant(ctx context.Context, tenantID uuid.UUID, kind entity.TransactionKind) (int64, error)

	// ListPage returns one page of the tenant's documents of the kind,
	// newest first, with line-item products resolved.
	ListPage(ctx context.Context, tenantID uuid.UUID, kind entity.TransactionKind, filter TransactionFilter, offset, limit int) ([]*entity.Transaction, error)

	// Delete removes a transaction and its line items.
	Delete(ctx context.Context, id uuid.UUID) error
}

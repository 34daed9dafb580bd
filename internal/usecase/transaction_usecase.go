package usecase

import (
	"context"
	"time"

	"stockhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionPageSize is the fixed page length of order/invoice listings.
const TransactionPageSize = 10

// TransactionUsecase drives the order/invoice workflow. Every operation is
// scoped to one tenant and one document kind.
type TransactionUsecase interface {
	// Create stores the document, its line items and the client merge in a
	// single atomic step: either all of it lands or none of it does.
	Create(ctx context.Context, tenantID uuid.UUID, kind entity.TransactionKind, input *TransactionInput) (*entity.Transaction, error)

	// List returns the requested 1-based page, newest first. Asking for a
	// page beyond the last one is a caller error, not an empty page.
	List(ctx context.Context, tenantID uuid.UUID, kind entity.TransactionKind, page int, filter ListFilter) (*TransactionPage, error)

	// Get returns one document with line-item products resolved.
	Get(ctx context.Context, tenantID, transactionID uuid.UUID) (*entity.Transaction, error)

	// GetByExternalID returns one document by its human-facing id.
	GetByExternalID(ctx context.Context, tenantID uuid.UUID, externalID string) (*entity.Transaction, error)

	// Delete removes the document and unlinks it from its client. Deleting
	// a document that is already gone succeeds silently.
	Delete(ctx context.Context, tenantID uuid.UUID, externalID string) error

	// Sign stores the captured signature image under the document id for a
	// short time window.
	Sign(ctx context.Context, tenantID uuid.UUID, externalID, signature string) error

	// GetSignature returns the stored signature while its window is open.
	GetSignature(ctx context.Context, externalID string) (*entity.Signature, error)

	// SignQR renders a QR code pointing a second device at the signing page,
	// carrying a short-lived action token.
	SignQR(ctx context.Context, tenantID uuid.UUID, externalID string) ([]byte, error)

	// SendEmail mails the stored PDF of the document to the client from the
	// tenant's company account. Sending again replaces nothing and simply
	// mails the same document.
	SendEmail(ctx context.Context, tenantID uuid.UUID, externalID string) error
}

// --- Input/Output DTOs ---

// LineItemInput is one submitted product line. Name and price are accepted
// as-is; submitted values are authoritative snapshots.
type LineItemInput struct {
	ProductID   uuid.UUID        `json:"product_id"`
	Name        string           `json:"name"`
	Quantity    int              `json:"quantity"`
	Price       decimal.Decimal  `json:"price"`
	DeliverAt   time.Time        `json:"deliver_at"`
	ReturnAt    *time.Time       `json:"return_at,omitempty"`
	Deposit     *decimal.Decimal `json:"deposit,omitempty"`
	ValuePerDay *decimal.Decimal `json:"value_per_day,omitempty"`
	Location    string           `json:"location"`
}

// TransactionInput defines the data for creating an order or invoice.
type TransactionInput struct {
	ExternalID    string          `json:"external_id"`
	TotalValue    decimal.Decimal `json:"total_value"`
	TermsAccepted bool            `json:"terms_accepted"`

	ClientName        string `json:"client_name"`
	ClientAddress     string `json:"client_address"`
	ClientDNI         string `json:"client_dni"`
	ClientEmail       string `json:"client_email"`
	ClientPhone       string `json:"client_phone"`
	ClientObservation string `json:"client_observation"`

	Lines []LineItemInput `json:"lines"`
}

// ListFilter narrows a transaction listing.
type ListFilter struct {
	// Query is matched against client national ids.
	Query string

	// Rented, when non-nil, keeps only documents that do or do not contain
	// rented line items.
	Rented *bool
}

// TransactionPage is one page of the document listing.
type TransactionPage struct {
	Transactions []*entity.Transaction `json:"transactions"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	TotalPages   int                   `json:"total_pages"`
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionKind discriminates the two document flavours sharing the
// creation workflow.
type TransactionKind string

const (
	KindOrder   TransactionKind = "order"
	KindInvoice TransactionKind = "invoice"
)

// Valid reports whether the kind is one of the known document flavours.
func (k TransactionKind) Valid() bool {
	return k == KindOrder || k == KindInvoice
}

// LineItem is one product entry within a transaction. The name and price are
// snapshots taken at submission time; they are authoritative and never
// re-validated against the current catalog.
//
// A non-nil ReturnAt marks the item as rented; nil means bought. Every
// derived classification in the system follows from this single field.
type LineItem struct {
	ID            uuid.UUID
	TransactionID uuid.UUID
	ProductID     uuid.UUID
	Name          string
	Quantity      int
	Price         decimal.Decimal
	DeliverAt     time.Time
	ReturnAt      *time.Time
	Deposit       *decimal.Decimal
	ValuePerDay   *decimal.Decimal
	Location      string
	Product       *Product // Resolved product; nil unless explicitly loaded.
}

// Rented reports whether the line item is a rental.
func (li *LineItem) Rented() bool {
	return li.ReturnAt != nil
}

// Transaction is an order or invoice: a tenant-owned document with a
// denormalized snapshot of the client's contact details and the submitted
// line items. ExternalID is the human-facing order/invoice number used for
// signature lookup, deletion and email dispatch.
type Transaction struct {
	ID                uuid.UUID
	Kind              TransactionKind
	TenantID          uuid.UUID
	ExternalID        string
	TotalValue        decimal.Decimal
	TermsAccepted     bool
	ClientName        string
	ClientAddress     string
	ClientDNI         string
	ClientEmail       string
	ClientPhone       string
	ClientObservation string
	Lines             []LineItem
	Tenant            *Tenant // Resolved owning tenant; nil unless explicitly loaded.
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Partition splits the line items' product references into bought and rented
// lists. The split is exhaustive and mutually exclusive: an item lands in
// exactly one list, decided by the presence of its return date.
func (t *Transaction) Partition() (bought, rented []uuid.UUID) {
	for i := range t.Lines {
		if t.Lines[i].Rented() {
			rented = append(rented, t.Lines[i].ProductID)
		} else {
			bought = append(bought, t.Lines[i].ProductID)
		}
	}

	return bought, rented
}

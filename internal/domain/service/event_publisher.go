package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TransactionEvent announces a lifecycle change of an order or invoice.
type TransactionEvent struct {
	TenantID   uuid.UUID `json:"tenant_id"`
	ExternalID string    `json:"external_id"`
	Kind       string    `json:"kind"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher fans transaction lifecycle events out to interested
// consumers. Publishing is best effort; a failed publish never fails the
// request that produced the event.
type EventPublisher interface {
	PublishTransactionEvent(ctx context.Context, event *TransactionEvent) error
	Close() error
}

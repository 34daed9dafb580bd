package repository

import (
	"context"
	"errors"

	"stockhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrClientNotFound is returned when no client matches the lookup.
var ErrClientNotFound = errors.New("client not found")

// ClientRepository persists end customers. Lookups are keyed by
// (tenant, dni); the dni alone is not unique across tenants.
type ClientRepository interface {
	// FindByDNI retrieves the tenant's client with the given external id,
	// including its history lists.
	FindByDNI(ctx context.Context, tenantID uuid.UUID, dni string) (*entity.Client, error)

	// Create persists a new client.
	Create(ctx context.Context, client *entity.Client) error

	// UpdateContact overwrites the client's scalar contact fields
	// (last-write-wins); history lists are untouched.
	UpdateContact(ctx context.Context, client *entity.Client) error

	// AppendHistory appends a transaction reference, the partitioned product
	// references and an optional observation to the client's lists. Appends
	// never replace and never deduplicate.
	AppendHistory(ctx context.Context, clientID, transactionID uuid.UUID, bought, rented []uuid.UUID, observation string) error

	// PullTransactionRef removes one transaction reference from the client
	// identified by (tenant, dni). A missing client is a no-op, not an error.
	PullTransactionRef(ctx context.Context, tenantID uuid.UUID, dni string, transactionID uuid.UUID) error
}

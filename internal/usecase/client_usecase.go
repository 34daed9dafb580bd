package usecase

import (
	"context"

	"stockhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ClientUsecase defines the interface for client registry lookups. Clients
// are written exclusively by the transaction workflow; the registry only
// exposes reads.
type ClientUsecase interface {
	// GetClient returns the tenant's client with the given national id,
	// including the accumulated purchase and rental history.
	GetClient(ctx context.Context, tenantID uuid.UUID, dni string) (*entity.Client, error)
}

package impl

import (
	"context"
	"log/slog"

	"stockhub/internal/domain/entity"
	domainerrors "stockhub/internal/domain/errors"
	"stockhub/internal/domain/repository"
	"stockhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// clientService implements the ClientUsecase interface.
type clientService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewClientService is the constructor for clientService.
func NewClientService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ClientUsecase {
	return &clientService{
		txManager: txManager,
		logger:    logger,
	}
}

// GetClient returns the tenant's client for the given national id.
func (srv *clientService) GetClient(ctx context.Context, tenantID uuid.UUID, dni string) (*entity.Client, error) {
	var client *entity.Client

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ClientRepo().FindByDNI(ctx, tenantID, dni)
		if err != nil {
			if errors.Is(err, repository.ErrClientNotFound) {
				return domainerrors.ErrClientNotFound
			}

			return errors.Wrap(err, "failed to find client")
		}
		client = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return client, nil
}

package impl

import (
	"context"
	"testing"

	"stockhub/internal/domain/entity"
	domainerrors "stockhub/internal/domain/errors"
	"stockhub/internal/domain/repository"
	mockRepo "stockhub/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClientService_GetClient_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewClientService(txManager, newDiscardLogger())

	ctx := context.Background()
	tenantID := uuid.New()
	stored := &entity.Client{
		ID:           uuid.New(),
		TenantID:     tenantID,
		DNI:          "12345678Z",
		Name:         "Maria Lopez",
		Transactions: []uuid.UUID{uuid.New(), uuid.New()},
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockClientRepo := mockRepo.NewMockClientRepository(t)

			mockFactory.EXPECT().ClientRepo().Return(mockClientRepo)
			mockClientRepo.EXPECT().
				FindByDNI(ctx, tenantID, "12345678Z").
				Return(stored, nil)

			return fn(mockFactory)
		})

	client, err := svc.GetClient(ctx, tenantID, "12345678Z")

	require.NoError(t, err)
	assert.Equal(t, stored, client)
	assert.Len(t, client.Transactions, 2)
}

func TestClientService_GetClient_NotFound(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	svc := NewClientService(txManager, newDiscardLogger())

	ctx := context.Background()
	tenantID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockClientRepo := mockRepo.NewMockClientRepository(t)

			mockFactory.EXPECT().ClientRepo().Return(mockClientRepo)
			mockClientRepo.EXPECT().
				FindByDNI(ctx, tenantID, "00000000X").
				Return(nil, repository.ErrClientNotFound)

			return fn(mockFactory)
		})

	client, err := svc.GetClient(ctx, tenantID, "00000000X")

	assert.Nil(t, client)
	assert.ErrorIs(t, err, domainerrors.ErrClientNotFound)
}

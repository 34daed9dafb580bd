package postgres

import (
	"context"

	"stockhub/internal/domain/entity"
	domainerrors "stockhub/internal/domain/errors"
	"stockhub/internal/domain/repository"
	"stockhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// clientRepository implements the repository.ClientRepository interface.
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository is the constructor for clientRepository.
func NewClientRepository(db *gorm.DB) repository.ClientRepository {
	return &clientRepository{
		db: db,
	}
}

func (repo *clientRepository) FindByDNI(ctx context.Context, tenantID uuid.UUID, dni string) (*entity.Client, error) {
	var clientM model.ClientModel

	if err := repo.db.WithContext(ctx).
		Where("tenant_id = ? AND dni = ?", tenantID, dni).
		First(&clientM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client by dni")
	}

	return toClientDomain(&clientM), nil
}

func (repo *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	clientM := fromClientDomain(client)

	if err := repo.db.WithContext(ctx).Create(clientM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// Raced with a concurrent upsert for the same (tenant, dni).
			return domainerrors.ErrTransactionFailed.WrapMessage("client already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required client information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create client")
	}

	client.ID = clientM.ID
	client.CreatedAt = clientM.CreatedAt
	client.UpdatedAt = clientM.UpdatedAt

	return nil
}

func (repo *clientRepository) UpdateContact(ctx context.Context, client *entity.Client) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ClientModel{}).
		Where("id = ?", client.ID).
		Updates(map[string]any{
			"name":    client.Name,
			"address": client.Address,
			"email":   client.Email,
			"phone":   client.Phone,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update client contact")
	}
	if result.RowsAffected == 0 {
		return repository.ErrClientNotFound
	}

	return nil
}

func (repo *clientRepository) AppendHistory(ctx context.Context, clientID, transactionID uuid.UUID, bought, rented []uuid.UUID, observation string) error {
	// Lock the row so concurrent appends cannot lose entries; the jsonb
	// lists are read-modify-write.
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var clientM model.ClientModel

		if err := tx.
			Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
			Where("id = ?", clientID).
			First(&clientM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repository.ErrClientNotFound
			}

			return errors.Wrap(err, "failed to lock client for history append")
		}

		clientM.Transactions = append(clientM.Transactions, transactionID)
		clientM.BoughtProducts = append(clientM.BoughtProducts, bought...)
		clientM.RentedProducts = append(clientM.RentedProducts, rented...)
		if observation != "" {
			clientM.Observations = append(clientM.Observations, observation)
		}

		if err := tx.
			Model(&model.ClientModel{}).
			Where("id = ?", clientID).
			Updates(map[string]any{
				"transactions":    clientM.Transactions,
				"bought_products": clientM.BoughtProducts,
				"rented_products": clientM.RentedProducts,
				"observations":    clientM.Observations,
			}).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to append client history")
		}

		return nil
	})
}

func (repo *clientRepository) PullTransactionRef(ctx context.Context, tenantID uuid.UUID, dni string, transactionID uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var clientM model.ClientModel

		if err := tx.
			Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
			Where("tenant_id = ? AND dni = ?", tenantID, dni).
			First(&clientM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// The document may reference a client that was never
				// registered; nothing to unlink.
				return nil
			}

			return errors.Wrap(err, "failed to lock client for ref removal")
		}

		kept := make([]uuid.UUID, 0, len(clientM.Transactions))
		removed := false
		for _, ref := range clientM.Transactions {
			if !removed && ref == transactionID {
				removed = true

				continue
			}
			kept = append(kept, ref)
		}
		if !removed {
			return nil
		}

		if err := tx.
			Model(&model.ClientModel{}).
			Where("id = ?", clientM.ID).
			Update("transactions", kept).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to remove transaction ref")
		}

		return nil
	})
}

func toClientDomain(clientM *model.ClientModel) *entity.Client {
	return &entity.Client{
		ID:             clientM.ID,
		TenantID:       clientM.TenantID,
		DNI:            clientM.DNI,
		Name:           clientM.Name,
		Address:        clientM.Address,
		Phone:          clientM.Phone,
		Email:          clientM.Email,
		Observations:   clientM.Observations,
		BoughtProducts: clientM.BoughtProducts,
		RentedProducts: clientM.RentedProducts,
		Transactions:   clientM.Transactions,
		CreatedAt:      clientM.CreatedAt,
		UpdatedAt:      clientM.UpdatedAt,
	}
}

func fromClientDomain(client *entity.Client) *model.ClientModel {
	return &model.ClientModel{
		ID:             client.ID,
		TenantID:       client.TenantID,
		DNI:            client.DNI,
		Name:           client.Name,
		Address:        client.Address,
		Phone:          client.Phone,
		Email:          client.Email,
		Observations:   client.Observations,
		BoughtProducts: client.BoughtProducts,
		RentedProducts: client.RentedProducts,
		Transactions:   client.Transactions,
		CreatedAt:      client.CreatedAt,
		UpdatedAt:      client.UpdatedAt,
	}
}

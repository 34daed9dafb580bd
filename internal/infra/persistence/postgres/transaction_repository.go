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
)

// transactionRepository implements the repository.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository is the constructor for transactionRepository.
func NewTransactionRepository(db *gorm.DB) repository.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

func (repo *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionM := fromTransactionDomain(transaction)

	if err := repo.db.WithContext(ctx).Create(transactionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("document id already in use")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required document information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create transaction")
	}

	// Update the entity with generated values
	transaction.ID = transactionM.ID
	transaction.CreatedAt = transactionM.CreatedAt
	transaction.UpdatedAt = transactionM.UpdatedAt
	for i := range transactionM.Lines {
		transaction.Lines[i].ID = transactionM.Lines[i].ID
		transaction.Lines[i].TransactionID = transactionM.ID
	}

	return nil
}

func (repo *transactionRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Transaction, error) {
	var transactionM model.TransactionModel

	if err := repo.db.WithContext(ctx).
		Preload("Lines").
		Preload("Lines.Product").
		Preload("Tenant").
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&transactionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find transaction by ID")
	}

	return toTransactionDomain(&transactionM), nil
}

func (repo *transactionRepository) FindByExternalID(ctx context.Context, tenantID uuid.UUID, externalID string) (*entity.Transaction, error) {
	var transactionM model.TransactionModel

	if err := repo.db.WithContext(ctx).
		Preload("Lines").
		Preload("Lines.Product").
		Preload("Tenant").
		Where("tenant_id = ? AND external_id = ?", tenantID, externalID).
		First(&transactionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find transaction by external ID")
	}

	return toTransactionDomain(&transactionM), nil
}

func (repo *transactionRepository) CountByTenant(ctx context.Context, tenantID uuid.UUID, kind entity.TransactionKind) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("tenant_id = ? AND kind = ?", tenantID, string(kind)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count transactions")
	}

	return count, nil
}

func (repo *transactionRepository) ListPage(ctx context.Context, tenantID uuid.UUID, kind entity.TransactionKind, filter repository.TransactionFilter, offset, limit int) ([]*entity.Transaction, error) {
	var transactionModels []*model.TransactionModel

	query := repo.db.WithContext(ctx).
		Preload("Lines").
		Preload("Lines.Product").
		Where("tenant_id = ? AND kind = ?", tenantID, string(kind)).
		Order("created_at DESC")

	if filter.Query != "" {
		query = query.Where("client_dni ILIKE ?", "%"+filter.Query+"%")
	}
	if filter.Rented != nil {
		sub := repo.db.
			Model(&model.TransactionLineModel{}).
			Select("1").
			Where("transaction_lines.transaction_id = transactions.id AND transaction_lines.return_at IS NOT NULL")
		if *filter.Rented {
			query = query.Where("EXISTS (?)", sub)
		} else {
			query = query.Where("NOT EXISTS (?)", sub)
		}
	}

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&transactionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	transactions := make([]*entity.Transaction, 0, len(transactionModels))
	for _, transactionM := range transactionModels {
		transactions = append(transactions, toTransactionDomain(transactionM))
	}

	return transactions, nil
}

func (repo *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	// Lines are removed by the ON DELETE CASCADE constraint.
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TransactionModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete transaction")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTransactionNotFound
	}

	return nil
}

func toTransactionDomain(transactionM *model.TransactionModel) *entity.Transaction {
	transaction := &entity.Transaction{
		ID:                transactionM.ID,
		Kind:              entity.TransactionKind(transactionM.Kind),
		TenantID:          transactionM.TenantID,
		ExternalID:        transactionM.ExternalID,
		TotalValue:        transactionM.TotalValue,
		TermsAccepted:     transactionM.TermsAccepted,
		ClientName:        transactionM.ClientName,
		ClientAddress:     transactionM.ClientAddress,
		ClientDNI:         transactionM.ClientDNI,
		ClientEmail:       transactionM.ClientEmail,
		ClientPhone:       transactionM.ClientPhone,
		ClientObservation: transactionM.ClientObservation,
		CreatedAt:         transactionM.CreatedAt,
		UpdatedAt:         transactionM.UpdatedAt,
	}
	if transactionM.Tenant != nil {
		transaction.Tenant = toTenantDomain(transactionM.Tenant)
	}

	transaction.Lines = make([]entity.LineItem, 0, len(transactionM.Lines))
	for i := range transactionM.Lines {
		transaction.Lines = append(transaction.Lines, toLineItemDomain(&transactionM.Lines[i]))
	}

	return transaction
}

func toLineItemDomain(lineM *model.TransactionLineModel) entity.LineItem {
	line := entity.LineItem{
		ID:            lineM.ID,
		TransactionID: lineM.TransactionID,
		ProductID:     lineM.ProductID,
		Name:          lineM.Name,
		Quantity:      lineM.Quantity,
		Price:         lineM.Price,
		DeliverAt:     lineM.DeliverAt,
		ReturnAt:      lineM.ReturnAt,
		Deposit:       lineM.Deposit,
		ValuePerDay:   lineM.ValuePerDay,
		Location:      lineM.Location,
	}
	if lineM.Product != nil {
		line.Product = toProductDomain(lineM.Product)
	}

	return line
}

func fromTransactionDomain(transaction *entity.Transaction) *model.TransactionModel {
	transactionM := &model.TransactionModel{
		ID:                transaction.ID,
		TenantID:          transaction.TenantID,
		ExternalID:        transaction.ExternalID,
		Kind:              string(transaction.Kind),
		TotalValue:        transaction.TotalValue,
		TermsAccepted:     transaction.TermsAccepted,
		ClientName:        transaction.ClientName,
		ClientAddress:     transaction.ClientAddress,
		ClientDNI:         transaction.ClientDNI,
		ClientEmail:       transaction.ClientEmail,
		ClientPhone:       transaction.ClientPhone,
		ClientObservation: transaction.ClientObservation,
		CreatedAt:         transaction.CreatedAt,
		UpdatedAt:         transaction.UpdatedAt,
	}

	transactionM.Lines = make([]model.TransactionLineModel, 0, len(transaction.Lines))
	for i := range transaction.Lines {
		line := &transaction.Lines[i]
		transactionM.Lines = append(transactionM.Lines, model.TransactionLineModel{
			ID:            line.ID,
			TransactionID: line.TransactionID,
			ProductID:     line.ProductID,
			Name:          line.Name,
			Quantity:      line.Quantity,
			Price:         line.Price,
			DeliverAt:     line.DeliverAt,
			ReturnAt:      line.ReturnAt,
			Deposit:       line.Deposit,
			ValuePerDay:   line.ValuePerDay,
			Location:      line.Location,
		})
	}

	return transactionM
}

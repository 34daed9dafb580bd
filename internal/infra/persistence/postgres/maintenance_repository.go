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

// maintenanceRepository implements the repository.MaintenanceRepository interface.
type maintenanceRepository struct {
	db *gorm.DB
}

// NewMaintenanceRepository is the constructor for maintenanceRepository.
func NewMaintenanceRepository(db *gorm.DB) repository.MaintenanceRepository {
	return &maintenanceRepository{
		db: db,
	}
}

func (repo *maintenanceRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*entity.Maintenance, error) {
	var maintenanceM model.MaintenanceModel

	if err := repo.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&maintenanceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMaintenanceNotFound
		}

		return nil, errors.Wrap(err, "failed to find maintenance by ID")
	}

	return toMaintenanceDomain(&maintenanceM), nil
}

func (repo *maintenanceRepository) ListByProduct(ctx context.Context, tenantID, productID uuid.UUID) ([]*entity.Maintenance, error) {
	var maintenanceModels []*model.MaintenanceModel

	if err := repo.db.WithContext(ctx).
		Where("tenant_id = ? AND product_id = ?", tenantID, productID).
		Order("date DESC").
		Find(&maintenanceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list maintenances by product")
	}

	records := make([]*entity.Maintenance, 0, len(maintenanceModels))
	for _, maintenanceM := range maintenanceModels {
		records = append(records, toMaintenanceDomain(maintenanceM))
	}

	return records, nil
}

func (repo *maintenanceRepository) Create(ctx context.Context, record *entity.Maintenance) error {
	maintenanceM := fromMaintenanceDomain(record)

	if err := repo.db.WithContext(ctx).Create(maintenanceM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required maintenance information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create maintenance")
	}

	record.ID = maintenanceM.ID
	record.CreatedAt = maintenanceM.CreatedAt
	record.UpdatedAt = maintenanceM.UpdatedAt

	return nil
}

func (repo *maintenanceRepository) Update(ctx context.Context, record *entity.Maintenance) error {
	maintenanceM := fromMaintenanceDomain(record)

	result := repo.db.WithContext(ctx).
		Model(&model.MaintenanceModel{}).
		Where("tenant_id = ? AND id = ?", record.TenantID, record.ID).
		Select("*").
		Omit("id", "tenant_id", "created_at").
		Updates(maintenanceM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update maintenance")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMaintenanceNotFound
	}

	return nil
}

func (repo *maintenanceRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&model.MaintenanceModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete maintenance")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMaintenanceNotFound
	}

	return nil
}

func toMaintenanceDomain(maintenanceM *model.MaintenanceModel) *entity.Maintenance {
	return &entity.Maintenance{
		ID:             maintenanceM.ID,
		TenantID:       maintenanceM.TenantID,
		ProductID:      maintenanceM.ProductID,
		Date:           maintenanceM.Date,
		Description:    maintenanceM.Description,
		PersonInCharge: maintenanceM.PersonInCharge,
		CreatedAt:      maintenanceM.CreatedAt,
		UpdatedAt:      maintenanceM.UpdatedAt,
	}
}

func fromMaintenanceDomain(record *entity.Maintenance) *model.MaintenanceModel {
	return &model.MaintenanceModel{
		ID:             record.ID,
		TenantID:       record.TenantID,
		ProductID:      record.ProductID,
		Date:           record.Date,
		Description:    record.Description,
		PersonInCharge: record.PersonInCharge,
		CreatedAt:      record.CreatedAt,
		UpdatedAt:      record.UpdatedAt,
	}
}

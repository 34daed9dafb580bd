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

// tenantRepository implements the repository.TenantRepository interface.
type tenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository is the constructor for tenantRepository.
func NewTenantRepository(db *gorm.DB) repository.TenantRepository {
	return &tenantRepository{
		db: db,
	}
}

func (repo *tenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error) {
	var tenantM model.TenantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tenantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTenantNotFound
		}

		return nil, errors.Wrap(err, "failed to find tenant by ID")
	}

	return toTenantDomain(&tenantM), nil
}

func (repo *tenantRepository) FindByUsername(ctx context.Context, username string) (*entity.Tenant, error) {
	var tenantM model.TenantModel

	if err := repo.db.WithContext(ctx).
		Where("username = ?", username).
		First(&tenantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTenantNotFound
		}

		return nil, errors.Wrap(err, "failed to find tenant by username")
	}

	return toTenantDomain(&tenantM), nil
}

func (repo *tenantRepository) FindByEmail(ctx context.Context, email string) (*entity.Tenant, error) {
	var tenantM model.TenantModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&tenantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTenantNotFound
		}

		return nil, errors.Wrap(err, "failed to find tenant by email")
	}

	return toTenantDomain(&tenantM), nil
}

func (repo *tenantRepository) Create(ctx context.Context, tenant *entity.Tenant) error {
	tenantM := fromTenantDomain(tenant)

	if err := repo.db.WithContext(ctx).Create(tenantM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTenantAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tenant")
	}

	// Update the entity with generated values
	tenant.ID = tenantM.ID
	tenant.CreatedAt = tenantM.CreatedAt
	tenant.UpdatedAt = tenantM.UpdatedAt

	return nil
}

func (repo *tenantRepository) Update(ctx context.Context, tenant *entity.Tenant) error {
	tenantM := fromTenantDomain(tenant)

	result := repo.db.WithContext(ctx).
		Model(&model.TenantModel{}).
		Where("id = ?", tenant.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(tenantM)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrTenantAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update tenant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTenantNotFound
	}

	return nil
}

func toTenantDomain(tenantM *model.TenantModel) *entity.Tenant {
	return &entity.Tenant{
		ID:                 tenantM.ID,
		Username:           tenantM.Username,
		Email:              tenantM.Email,
		PasswordHash:       tenantM.PasswordHash,
		LogoURL:            tenantM.LogoURL,
		CompanyName:        tenantM.CompanyName,
		CompanyDescription: tenantM.CompanyDescription,
		Phone:              tenantM.Phone,
		Address:            tenantM.Address,
		NIF:                tenantM.NIF,
		Tags:               tenantM.Tags,
		OrderTerms:         tenantM.OrderTerms,
		CompanyEmail:       tenantM.CompanyEmail,
		CompanyEmailSecret: tenantM.CompanyEmailSecret,
		CreatedAt:          tenantM.CreatedAt,
		UpdatedAt:          tenantM.UpdatedAt,
	}
}

func fromTenantDomain(tenant *entity.Tenant) *model.TenantModel {
	return &model.TenantModel{
		ID:                 tenant.ID,
		Username:           tenant.Username,
		Email:              tenant.Email,
		PasswordHash:       tenant.PasswordHash,
		LogoURL:            tenant.LogoURL,
		CompanyName:        tenant.CompanyName,
		CompanyDescription: tenant.CompanyDescription,
		Phone:              tenant.Phone,
		Address:            tenant.Address,
		NIF:                tenant.NIF,
		Tags:               tenant.Tags,
		OrderTerms:         tenant.OrderTerms,
		CompanyEmail:       tenant.CompanyEmail,
		CompanyEmailSecret: tenant.CompanyEmailSecret,
		CreatedAt:          tenant.CreatedAt,
		UpdatedAt:          tenant.UpdatedAt,
	}
}

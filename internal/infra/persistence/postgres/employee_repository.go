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

// employeeRepository implements the repository.EmployeeRepository interface.
type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository is the constructor for employeeRepository.
func NewEmployeeRepository(db *gorm.DB) repository.EmployeeRepository {
	return &employeeRepository{
		db: db,
	}
}

func (repo *employeeRepository) Create(ctx context.Context, employee *entity.Employee) error {
	employeeM := fromEmployeeDomain(employee)

	if err := repo.db.WithContext(ctx).Create(employeeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrTenantNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required employee information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create employee")
	}

	employee.ID = employeeM.ID
	employee.CreatedAt = employeeM.CreatedAt
	employee.UpdatedAt = employeeM.UpdatedAt

	return nil
}

func (repo *employeeRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]*entity.Employee, error) {
	var employeeModels []*model.EmployeeModel

	if err := repo.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at ASC").
		Find(&employeeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list employees")
	}

	employees := make([]*entity.Employee, 0, len(employeeModels))
	for _, employeeM := range employeeModels {
		employees = append(employees, toEmployeeDomain(employeeM))
	}

	return employees, nil
}

func (repo *employeeRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Delete(&model.EmployeeModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete employee")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEmployeeNotFound
	}

	return nil
}

func toEmployeeDomain(employeeM *model.EmployeeModel) *entity.Employee {
	return &entity.Employee{
		ID:        employeeM.ID,
		TenantID:  employeeM.TenantID,
		Name:      employeeM.Name,
		Phone:     employeeM.Phone,
		Email:     employeeM.Email,
		Role:      entity.Role(employeeM.Role),
		CreatedAt: employeeM.CreatedAt,
		UpdatedAt: employeeM.UpdatedAt,
	}
}

func fromEmployeeDomain(employee *entity.Employee) *model.EmployeeModel {
	return &model.EmployeeModel{
		ID:        employee.ID,
		TenantID:  employee.TenantID,
		Name:      employee.Name,
		Phone:     employee.Phone,
		Email:     employee.Email,
		Role:      string(employee.Role),
		CreatedAt: employee.CreatedAt,
		UpdatedAt: employee.UpdatedAt,
	}
}

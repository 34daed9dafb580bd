package impl

import (
	"context"
	"testing"

	"stockhub/internal/domain/entity"
	domainerrors "stockhub/internal/domain/errors"
	"stockhub/internal/domain/repository"
	mockRepo "stockhub/internal/mocks/repository"
	"stockhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEmployeeService_CreateEmployee_Success(t *testing.T) {
	employees := mockRepo.NewMockEmployeeRepository(t)
	svc := NewEmployeeService(employees, newDiscardLogger())

	ctx := context.Background()
	tenantID := uuid.New()

	employees.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Employee")).
		Run(func(ctx context.Context, employee *entity.Employee) {
			employee.ID = uuid.New()
		}).
		Return(nil)

	employee, err := svc.CreateEmployee(ctx, tenantID, &usecase.EmployeeInput{
		Name:  "Juan Perez",
		Phone: "600333444",
		Email: "juan@acme.example",
		Role:  "EMPLOYEE",
	})

	require.NoError(t, err)
	assert.Equal(t, tenantID, employee.TenantID)
	assert.Equal(t, entity.RoleEmployee, employee.Role)
}

func TestEmployeeService_CreateEmployee_UnknownRole(t *testing.T) {
	employees := mockRepo.NewMockEmployeeRepository(t)
	svc := NewEmployeeService(employees, newDiscardLogger())

	_, err := svc.CreateEmployee(context.Background(), uuid.New(), &usecase.EmployeeInput{
		Name: "Juan Perez",
		Role: "astronaut",
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestEmployeeService_DeleteEmployee_NotFound(t *testing.T) {
	employees := mockRepo.NewMockEmployeeRepository(t)
	svc := NewEmployeeService(employees, newDiscardLogger())

	ctx := context.Background()
	tenantID := uuid.New()
	employeeID := uuid.New()

	employees.EXPECT().
		Delete(ctx, tenantID, employeeID).
		Return(repository.ErrEmployeeNotFound)

	err := svc.DeleteEmployee(ctx, tenantID, employeeID)

	assert.ErrorIs(t, err, domainerrors.ErrEmployeeNotFound)
}

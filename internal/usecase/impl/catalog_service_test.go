package impl

import (
	"context"
	"testing"

	"stockhub/internal/domain/entity"
	domainerrors "stockhub/internal/domain/errors"
	"stockhub/internal/domain/repository"
	mockRepo "stockhub/internal/mocks/repository"
	mockSvc "stockhub/internal/mocks/service"
	"stockhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	txManager    *mockRepo.MockTransactionManager
	maintenances *mockRepo.MockMaintenanceRepository
	storage      *mockSvc.MockObjectStorage
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	maintenances := mockRepo.NewMockMaintenanceRepository(t)
	storage := mockSvc.NewMockObjectStorage(t)

	svc := NewCatalogService(txManager, maintenances, storage, newDiscardLogger())

	return catalogServiceFixtures{
		service:      svc,
		txManager:    txManager,
		maintenances: maintenances,
		storage:      storage,
	}
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	input := &usecase.ProductInput{
		Name:     "Folding chair",
		Price:    decimal.RequireFromString("9.99"),
		Tags:     []string{"furniture"},
		OnSell:   true,
		InStock:  true,
		Quantity: 40,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockProductRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Product")).
				Run(func(ctx context.Context, product *entity.Product) {
					product.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	product, err := fx.service.CreateProduct(ctx, tenantID, input)

	require.NoError(t, err)
	assert.Equal(t, tenantID, product.TenantID)
	assert.Equal(t, input.Name, product.Name)
}

func TestCatalogService_CreateProduct_TooManyTags(t *testing.T) {
	fx := createTestCatalogService(t)

	input := &usecase.ProductInput{Name: "Chair"}
	for i := 0; i <= entity.MaxProductTags; i++ {
		input.Tags = append(input.Tags, "tag")
	}

	_, err := fx.service.CreateProduct(context.Background(), uuid.New(), input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_CreateProduct_TooManyImages(t *testing.T) {
	fx := createTestCatalogService(t)

	input := &usecase.ProductInput{Name: "Chair"}
	for i := 0; i <= entity.MaxProductImages; i++ {
		input.ImageURLs = append(input.ImageURLs, "https://cdn.example.com/img.png")
	}

	_, err := fx.service.CreateProduct(context.Background(), uuid.New(), input)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_ListProducts_PageBeyondEnd(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	tenantID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockProductRepo.EXPECT().CountByTenant(ctx, tenantID).Return(15, nil)

			return fn(mockFactory)
		})

	page, err := fx.service.ListProducts(ctx, tenantID, 3)

	assert.Nil(t, page)
	assert.ErrorIs(t, err, domainerrors.ErrPageOutOfRange)
}

func TestCatalogService_ListProducts_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	stored := []*entity.Product{
		{ID: uuid.New(), TenantID: tenantID, Name: "Chair"},
		{ID: uuid.New(), TenantID: tenantID, Name: "Table"},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockProductRepo.EXPECT().CountByTenant(ctx, tenantID).Return(12, nil)
			mockProductRepo.EXPECT().
				ListPage(ctx, tenantID, 10, usecase.ProductPageSize).
				Return(stored, nil)

			return fn(mockFactory)
		})

	page, err := fx.service.ListProducts(ctx, tenantID, 2)

	require.NoError(t, err)
	assert.Equal(t, int64(12), page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Products, 2)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	productID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockProductRepo.EXPECT().
				FindByID(ctx, tenantID, productID).
				Return(nil, repository.ErrProductNotFound)

			return fn(mockFactory)
		})

	_, err := fx.service.GetProduct(ctx, tenantID, productID)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCatalogService_DeleteProduct_RemovesHostedImages(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	productID := uuid.New()
	stored := &entity.Product{
		ID:       productID,
		TenantID: tenantID,
		Name:     "Chair",
		ImageURLs: []string{
			"https://cdn.stockhub.example/" + tenantID.String() + "/images/front.png",
			"https://cdn.stockhub.example/" + tenantID.String() + "/images/side.png",
		},
	}

	// The first transaction loads the product, the second removes the row.
	loaded := false
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			if !loaded {
				loaded = true
				mockProductRepo.EXPECT().FindByID(ctx, tenantID, productID).Return(stored, nil)
			} else {
				mockProductRepo.EXPECT().Delete(ctx, tenantID, productID).Return(nil)
			}

			return fn(mockFactory)
		})

	fx.storage.EXPECT().
		Delete(ctx, tenantID.String()+"/images/front.png").
		Return(nil)
	fx.storage.EXPECT().
		Delete(ctx, tenantID.String()+"/images/side.png").
		Return(nil)

	err := fx.service.DeleteProduct(ctx, tenantID, productID)

	require.NoError(t, err)
}

func TestCatalogService_DeleteProduct_ImageFailureDoesNotBlock(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	productID := uuid.New()
	stored := &entity.Product{
		ID:        productID,
		TenantID:  tenantID,
		Name:      "Chair",
		ImageURLs: []string{"https://cdn.stockhub.example/" + tenantID.String() + "/images/front.png"},
	}

	loaded := false
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			if !loaded {
				loaded = true
				mockProductRepo.EXPECT().FindByID(ctx, tenantID, productID).Return(stored, nil)
			} else {
				mockProductRepo.EXPECT().Delete(ctx, tenantID, productID).Return(nil)
			}

			return fn(mockFactory)
		})

	fx.storage.EXPECT().
		Delete(ctx, tenantID.String()+"/images/front.png").
		Return(errors.New("bucket unreachable"))

	err := fx.service.DeleteProduct(ctx, tenantID, productID)

	require.NoError(t, err)
}

func TestCatalogService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	productID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)

			mockFactory.EXPECT().ProductRepo().Return(mockProductRepo)
			mockProductRepo.EXPECT().
				FindByID(ctx, tenantID, productID).
				Return(nil, repository.ErrProductNotFound)

			return fn(mockFactory)
		})

	err := fx.service.DeleteProduct(ctx, tenantID, productID)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	fx.storage.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCatalogService_UpdateMaintenance_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	maintenanceID := uuid.New()

	fx.maintenances.EXPECT().
		FindByID(ctx, tenantID, maintenanceID).
		Return(nil, repository.ErrMaintenanceNotFound)

	_, err := fx.service.UpdateMaintenance(ctx, tenantID, maintenanceID, &usecase.MaintenanceInput{})

	assert.ErrorIs(t, err, domainerrors.ErrMaintenanceNotFound)
}

func TestCatalogService_ListMaintenances(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	tenantID := uuid.New()
	productID := uuid.New()
	stored := []*entity.Maintenance{{ID: uuid.New(), ProductID: productID}}

	fx.maintenances.EXPECT().
		ListByProduct(ctx, tenantID, productID).
		Return(stored, nil)

	records, err := fx.service.ListMaintenances(ctx, tenantID, productID)

	require.NoError(t, err)
	assert.Len(t, records, 1)
}

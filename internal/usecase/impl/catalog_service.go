package impl

import (
	"context"
	"log/slog"
	"path"

	"stockhub/internal/domain/entity"
	domainerrors "stockhub/internal/domain/errors"
	"stockhub/internal/domain/repository"
	"stockhub/internal/domain/service"
	"stockhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager    repository.TransactionManager
	maintenances repository.MaintenanceRepository
	storage      service.ObjectStorage
	logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	txManager repository.TransactionManager,
	maintenances repository.MaintenanceRepository,
	storage service.ObjectStorage,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		txManager:    txManager,
		maintenances: maintenances,
		storage:      storage,
		logger:       logger,
	}
}

// CreateProduct stores a new catalog item for the tenant.
func (srv *catalogService) CreateProduct(ctx context.Context, tenantID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := &entity.Product{
		TenantID:    tenantID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURLs:   input.ImageURLs,
		Tags:        input.Tags,
		OnSell:      input.OnSell.Bool(),
		InStock:     input.InStock.Bool(),
		Quantity:    input.Quantity,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.ProductRepo().Create(ctx, product)
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Product created", "tenantID", tenantID, "productID", product.ID)

	return product, nil
}

// GetProduct returns one product of the tenant.
func (srv *catalogService) GetProduct(ctx context.Context, tenantID, productID uuid.UUID) (*entity.Product, error) {
	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProductRepo().FindByID(ctx, tenantID, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to find product")
		}
		product = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// ListProducts serves the fixed-size catalog page.
func (srv *catalogService) ListProducts(ctx context.Context, tenantID uuid.UUID, page int) (*usecase.ProductPage, error) {
	result := &usecase.ProductPage{Page: page}
	if result.Page < 1 {
		result.Page = 1
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		total, err := productRepo.CountByTenant(ctx, tenantID)
		if err != nil {
			return err
		}

		offset, totalPages, err := pageBounds(total, result.Page, usecase.ProductPageSize)
		if err != nil {
			return err
		}

		products, err := productRepo.ListPage(ctx, tenantID, offset, usecase.ProductPageSize)
		if err != nil {
			return err
		}

		result.Products = products
		result.Total = total
		result.TotalPages = totalPages

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// SearchProducts filters the tenant's catalog by name and tags.
func (srv *catalogService) SearchProducts(ctx context.Context, tenantID uuid.UUID, query string, tags []string) ([]*entity.Product, error) {
	var products []*entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.ProductRepo().Search(ctx, tenantID, query, tags)
		if err != nil {
			return err
		}
		products = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

// UpdateProduct replaces the mutable fields of a product.
func (srv *catalogService) UpdateProduct(ctx context.Context, tenantID, productID uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		found, err := productRepo.FindByID(ctx, tenantID, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return errors.Wrap(err, "failed to find product")
		}

		found.Name = input.Name
		found.Description = input.Description
		found.Price = input.Price
		found.ImageURLs = input.ImageURLs
		found.Tags = input.Tags
		found.OnSell = input.OnSell.Bool()
		found.InStock = input.InStock.Bool()
		found.Quantity = input.Quantity

		if err := productRepo.Update(ctx, found); err != nil {
			return err
		}
		product = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// DeleteProduct removes a product of the tenant. Hosted images go first,
// best effort; a leftover object never blocks the delete.
func (srv *catalogService) DeleteProduct(ctx context.Context, tenantID, productID uuid.UUID) error {
	product, err := srv.GetProduct(ctx, tenantID, productID)
	if err != nil {
		return err
	}

	srv.deleteHostedImages(ctx, tenantID, product.ImageURLs)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ProductRepo().Delete(ctx, tenantID, productID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return err
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.logger.Info("Product deleted", "tenantID", tenantID, "productID", productID)

	return nil
}

// deleteHostedImages removes the stored objects behind the product's image
// URLs. Failures are logged and swallowed.
func (srv *catalogService) deleteHostedImages(ctx context.Context, tenantID uuid.UUID, imageURLs []string) {
	for _, imageURL := range imageURLs {
		filename := path.Base(imageURL)
		if filename == "." || filename == "/" {
			continue
		}

		if err := srv.storage.Delete(ctx, imageKey(tenantID, filename)); err != nil {
			srv.logger.Warn("Failed to delete product image",
				"tenantID", tenantID,
				"image", filename,
				"error", err,
			)
		}
	}
}

// CreateMaintenance stores a service record for a product.
func (srv *catalogService) CreateMaintenance(ctx context.Context, tenantID uuid.UUID, input *usecase.MaintenanceInput) (*entity.Maintenance, error) {
	record := &entity.Maintenance{
		TenantID:       tenantID,
		ProductID:      input.ProductID,
		Date:           input.Date,
		Description:    input.Description,
		PersonInCharge: input.PersonInCharge,
	}

	if err := srv.maintenances.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// ListMaintenances returns the service history of a product.
func (srv *catalogService) ListMaintenances(ctx context.Context, tenantID, productID uuid.UUID) ([]*entity.Maintenance, error) {
	return srv.maintenances.ListByProduct(ctx, tenantID, productID)
}

// UpdateMaintenance replaces a service record.
func (srv *catalogService) UpdateMaintenance(ctx context.Context, tenantID, maintenanceID uuid.UUID, input *usecase.MaintenanceInput) (*entity.Maintenance, error) {
	record, err := srv.maintenances.FindByID(ctx, tenantID, maintenanceID)
	if err != nil {
		if errors.Is(err, repository.ErrMaintenanceNotFound) {
			return nil, domainerrors.ErrMaintenanceNotFound
		}

		return nil, errors.Wrap(err, "failed to find maintenance")
	}

	record.ProductID = input.ProductID
	record.Date = input.Date
	record.Description = input.Description
	record.PersonInCharge = input.PersonInCharge

	if err := srv.maintenances.Update(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// DeleteMaintenance removes a service record.
func (srv *catalogService) DeleteMaintenance(ctx context.Context, tenantID, maintenanceID uuid.UUID) error {
	if err := srv.maintenances.Delete(ctx, tenantID, maintenanceID); err != nil {
		if errors.Is(err, repository.ErrMaintenanceNotFound) {
			return domainerrors.ErrMaintenanceNotFound
		}

		return err
	}

	return nil
}

func validateProductInput(input *usecase.ProductInput) error {
	if len(input.ImageURLs) > entity.MaxProductImages {
		return domainerrors.ErrValidationFailed.WrapMessage("too many product images")
	}
	if len(input.Tags) > entity.MaxProductTags {
		return domainerrors.ErrValidationFailed.WrapMessage("too many product tags")
	}

	return nil
}

package usecase

import (
	"context"
	"fmt"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

// AdminUseCase is the product management surface. It performs no
// permission checks; the delivery layer gates access.
type AdminUseCase interface {
	List() []domain.Product
	Create(ctx context.Context, draft domain.ProductDraft) (domain.Product, error)
	Update(ctx context.Context, product domain.Product) (domain.Product, error)
	Delete(ctx context.Context, id int) error
}

type adminUseCase struct {
	store *ProductStore
	log   *logrus.Logger
}

func NewAdminUseCase(store *ProductStore, logger *logrus.Logger) AdminUseCase {
	return &adminUseCase{store: store, log: logger}
}

func (uc *adminUseCase) List() []domain.Product {
	return uc.store.Products()
}

func (uc *adminUseCase) Create(ctx context.Context, draft domain.ProductDraft) (domain.Product, error) {
	if err := domain.ValidateProduct(draft); err != nil {
		uc.log.Warnf("Use Case: Rejected new product '%s': %v", draft.Name, err)
		return domain.Product{}, err
	}
	uc.log.Infof("Use Case: Attempting to create product '%s'", draft.Name)
	return uc.store.Add(ctx, draft), nil
}

func (uc *adminUseCase) Update(ctx context.Context, product domain.Product) (domain.Product, error) {
	if product.ID <= 0 {
		uc.log.Warnf("Use Case: Attempted to update product with invalid ID: %d", product.ID)
		return domain.Product{}, domain.ErrInvalidID
	}
	if err := domain.ValidateProduct(product.Draft()); err != nil {
		uc.log.Warnf("Use Case: Rejected update of product ID %d: %v", product.ID, err)
		return domain.Product{}, err
	}
	if _, ok := ByID(uc.store.Products(), product.ID); !ok {
		uc.log.Warnf("Use Case: Product ID %d not found for update", product.ID)
		return domain.Product{}, fmt.Errorf("product %d: %w", product.ID, domain.ErrProductNotFound)
	}
	if !uc.store.Update(ctx, product) {
		// removed concurrently between the lookup and the update
		return domain.Product{}, fmt.Errorf("product %d: %w", product.ID, domain.ErrProductNotFound)
	}
	return product.Clone(), nil
}

func (uc *adminUseCase) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted to delete product with invalid ID: %d", id)
		return domain.ErrInvalidID
	}
	if _, ok := ByID(uc.store.Products(), id); !ok {
		uc.log.Warnf("Use Case: Product ID %d not found for deletion", id)
		return fmt.Errorf("product %d: %w", id, domain.ErrProductNotFound)
	}
	uc.store.Remove(ctx, id)
	return nil
}

package usecase

import (
	"fmt"

	"catalog_service/internal/domain"
	"catalog_service/internal/taxonomy"

	"github.com/sirupsen/logrus"
)

// CatalogUseCase answers the read-only storefront queries.
type CatalogUseCase interface {
	Category(identifier string) (domain.CategoryInfo, []domain.Product)
	Product(id int) (domain.Product, []domain.Product, error)
	Products() []domain.Product
	Recommended() []domain.Product
}

type catalogUseCase struct {
	store *ProductStore
	log   *logrus.Logger
}

func NewCatalogUseCase(store *ProductStore, logger *logrus.Logger) CatalogUseCase {
	return &catalogUseCase{store: store, log: logger}
}

// Category resolves the identifier to its metadata and matching products.
// Unknown identifiers yield the placeholder metadata and no products.
func (uc *catalogUseCase) Category(identifier string) (domain.CategoryInfo, []domain.Product) {
	products := taxonomy.ResolveFilter(identifier, uc.store.Products())
	info := taxonomy.ResolveMetadata(identifier)
	info.ProductCount = len(products)
	if !taxonomy.Known(identifier) {
		uc.log.Warnf("Use Case: Unknown category identifier %q", identifier)
	}
	uc.log.Debugf("Use Case: Category %q resolved to %d products", identifier, len(products))
	return info, products
}

// Product returns the product and up to DefaultRelatedLimit products of the
// same category.
func (uc *catalogUseCase) Product(id int) (domain.Product, []domain.Product, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted to get product with invalid ID: %d", id)
		return domain.Product{}, nil, domain.ErrInvalidID
	}
	products := uc.store.Products()
	product, ok := ByID(products, id)
	if !ok {
		uc.log.Warnf("Use Case: Product ID %d not found", id)
		return domain.Product{}, nil, fmt.Errorf("product %d: %w", id, domain.ErrProductNotFound)
	}
	return product, Related(products, product, DefaultRelatedLimit), nil
}

func (uc *catalogUseCase) Products() []domain.Product {
	return uc.store.Products()
}

func (uc *catalogUseCase) Recommended() []domain.Product {
	return Recommended(uc.store.Products())
}

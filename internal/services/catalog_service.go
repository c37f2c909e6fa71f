package services

import (
	"fmt"

	"kartu/internal/models"
	"kartu/internal/repositories"
)

// CatalogService handles catalog browsing and admin catalog management.
type CatalogService struct {
	repo repositories.CatalogRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo repositories.CatalogRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// GetProducts retrieves the products matching the filter.
func (s *CatalogService) GetProducts(filter repositories.CatalogFilter) ([]models.Product, error) {
	return s.repo.List(filter)
}

// GetProductByID retrieves a single product by its ID.
func (s *CatalogService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// GetByCategory retrieves the products in one category.
func (s *CatalogService) GetByCategory(category string) ([]models.Product, error) {
	return s.repo.List(repositories.CatalogFilter{Category: category})
}

// GetByBrand retrieves the products of one brand.
func (s *CatalogService) GetByBrand(brand string) ([]models.Product, error) {
	return s.repo.List(repositories.CatalogFilter{Brand: brand})
}

// CurrencyTier resolves one product's pricing tier for a currency. A missing
// product yields ErrNotFound and a missing tier ErrCurrencyNotOffered, so
// callers can tell "no such currency" apart from "currency with no face
// values" (the latter is returned as-is).
func (s *CatalogService) CurrencyTier(productID, currency string) (*models.CurrencyTier, error) {
	product, err := s.repo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	tier := product.Tier(currency)
	if tier == nil {
		return nil, fmt.Errorf("product %s has no %s tier: %w", productID, currency, models.ErrCurrencyNotOffered)
	}
	return tier, nil
}

// CreateProduct creates a new catalog record. The repository validates the
// document shape and the currency uniqueness invariant.
func (s *CatalogService) CreateProduct(product *models.Product) error {
	return s.repo.Create(product)
}

// UpdateProduct applies a partial update to an existing catalog record.
func (s *CatalogService) UpdateProduct(id string, patch models.ProductPatch) (*models.Product, error) {
	return s.repo.Update(id, patch)
}

// DeleteProduct deletes a product by its ID. Deleting an unknown id succeeds.
func (s *CatalogService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}

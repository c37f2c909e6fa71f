package repositories

import (
	"errors"
	"fmt"

	"kartu/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCatalogRepository is a GORM implementation of CatalogRepository.
type GORMCatalogRepository struct {
	db *gorm.DB
}

// NewGORMCatalogRepository creates a new instance of GORMCatalogRepository.
func NewGORMCatalogRepository(db *gorm.DB) *GORMCatalogRepository {
	return &GORMCatalogRepository{
		db: db,
	}
}

// List retrieves the products matching the filter from the database.
func (r *GORMCatalogRepository) List(filter CatalogFilter) ([]models.Product, error) {
	query := r.db
	if filter.Category != "" {
		query = query.Where("LOWER(category) = LOWER(?)", filter.Category)
	}
	if filter.Brand != "" {
		query = query.Where("LOWER(brand_name) = LOWER(?)", filter.Brand)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMCatalogRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create validates and inserts a new product. The pricing tiers travel in the
// product's JSON document column, so the insert is a single-row write.
func (r *GORMCatalogRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := product.Validate(); err != nil {
		return err
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update loads the record, merges the patch, re-validates, and saves the whole
// document inside a transaction. Nothing is written when validation fails.
func (r *GORMCatalogRepository) Update(id string, patch models.ProductPatch) (*models.Product, error) {
	var updated models.Product
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product with ID %s: %w", id, models.ErrNotFound)
			}
			return fmt.Errorf("failed to load product %s for update: %w", id, err)
		}

		product.Apply(patch)
		if err := product.Validate(); err != nil {
			return err
		}
		if err := tx.Save(&product).Error; err != nil {
			return fmt.Errorf("failed to update product %s: %w", id, err)
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a product by its ID. A nonexistent id is a no-op success,
// so delete stays idempotent.
func (r *GORMCatalogRepository) Delete(id string) error {
	if err := r.db.Delete(&models.Product{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}

package repositories

import (
	"kartu/internal/models"
)

// CatalogFilter narrows a catalog listing. Empty fields match everything;
// non-empty fields are exact, case-insensitive matches.
type CatalogFilter struct {
	Category string
	Brand    string
}

// CatalogRepository defines the interface for catalog record access.
// Implementations own the catalog invariants: documents are validated on
// create and after a patch merge, and every write covers the whole record
// including its nested pricing tiers.
type CatalogRepository interface {
	List(filter CatalogFilter) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(id string, patch models.ProductPatch) (*models.Product, error)
	// Delete is idempotent: removing a nonexistent id is a no-op success.
	Delete(id string) error
}

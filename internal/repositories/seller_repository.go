package repositories

import "kartu/internal/models"

// SellerRepository defines the interface for seller account access.
type SellerRepository interface {
	Create(seller *models.Seller) error
	GetByUsername(username string) (*models.Seller, error)
	GetByEmail(email string) (*models.Seller, error)
	GetByID(id string) (*models.Seller, error)
}

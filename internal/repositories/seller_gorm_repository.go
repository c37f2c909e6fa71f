package repositories

import (
	"errors"
	"fmt"

	"kartu/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMSellerRepository is a GORM implementation of SellerRepository.
type GORMSellerRepository struct {
	db *gorm.DB
}

// NewGORMSellerRepository creates a new instance of GORMSellerRepository.
func NewGORMSellerRepository(db *gorm.DB) *GORMSellerRepository {
	return &GORMSellerRepository{
		db: db,
	}
}

// Create creates a new seller in the database.
func (r *GORMSellerRepository) Create(seller *models.Seller) error {
	if seller.ID == "" {
		seller.ID = uuid.New().String()
	}
	if err := r.db.Create(seller).Error; err != nil {
		return fmt.Errorf("failed to create seller: %w", err)
	}
	return nil
}

// GetByUsername retrieves a seller by their username from the database.
func (r *GORMSellerRepository) GetByUsername(username string) (*models.Seller, error) {
	var seller models.Seller
	if err := r.db.First(&seller, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("seller with username %s: %w", username, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get seller by username %s: %w", username, err)
	}
	return &seller, nil
}

// GetByEmail retrieves a seller by their email from the database.
func (r *GORMSellerRepository) GetByEmail(email string) (*models.Seller, error) {
	var seller models.Seller
	if err := r.db.First(&seller, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("seller with email %s: %w", email, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get seller by email %s: %w", email, err)
	}
	return &seller, nil
}

// GetByID retrieves a seller by their ID from the database.
func (r *GORMSellerRepository) GetByID(id string) (*models.Seller, error) {
	var seller models.Seller
	if err := r.db.First(&seller, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("seller with ID %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get seller by ID %s: %w", id, err)
	}
	return &seller, nil
}

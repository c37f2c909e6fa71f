package repositories

import (
	"errors"
	"fmt"

	"kartu/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMSellOrderRepository is a GORM implementation of SellOrderRepository.
type GORMSellOrderRepository struct {
	db *gorm.DB
}

// NewGORMSellOrderRepository creates a new instance of GORMSellOrderRepository.
func NewGORMSellOrderRepository(db *gorm.DB) *GORMSellOrderRepository {
	return &GORMSellOrderRepository{
		db: db,
	}
}

// GetAll retrieves all sell orders, newest first.
func (r *GORMSellOrderRepository) GetAll() ([]models.SellOrder, error) {
	var orders []models.SellOrder
	if err := r.db.Order("requested_at DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list sell orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves a single sell order by its ID.
func (r *GORMSellOrderRepository) GetByID(id string) (*models.SellOrder, error) {
	var order models.SellOrder
	if err := r.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("sell order with ID %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get sell order by ID %s: %w", id, err)
	}
	return &order, nil
}

// Create inserts a new sell order.
func (r *GORMSellOrderRepository) Create(order *models.SellOrder) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create sell order: %w", err)
	}
	return nil
}

// UpdateStatus updates the status of an existing sell order.
func (r *GORMSellOrderRepository) UpdateStatus(id string, status string) error {
	res := r.db.Model(&models.SellOrder{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update sell order %s status: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("sell order with ID %s: %w", id, models.ErrNotFound)
	}
	return nil
}

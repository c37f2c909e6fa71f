package repositories

import (
	"kartu/internal/models"
)

// SellOrderRepository defines the interface for sell order data access.
type SellOrderRepository interface {
	GetAll() ([]models.SellOrder, error)
	GetByID(id string) (*models.SellOrder, error)
	Create(order *models.SellOrder) error
	UpdateStatus(id string, status string) error
	// Sell orders are never deleted; rejected orders keep their record.
}

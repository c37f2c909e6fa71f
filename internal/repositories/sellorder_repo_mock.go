package repositories

import (
	"fmt"
	"sync"
	"time"

	"kartu/internal/models"

	"github.com/google/uuid"
)

// MockSellOrderRepository is an in-memory implementation of SellOrderRepository.
type MockSellOrderRepository struct {
	orders map[string]models.SellOrder
	mu     sync.RWMutex
}

// NewMockSellOrderRepository creates a new instance of MockSellOrderRepository.
func NewMockSellOrderRepository() *MockSellOrderRepository {
	return &MockSellOrderRepository{
		orders: make(map[string]models.SellOrder),
	}
}

// GetAll returns all sell orders.
func (r *MockSellOrderRepository) GetAll() ([]models.SellOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.SellOrder, 0, len(r.orders))
	for _, order := range r.orders {
		orderList = append(orderList, order)
	}
	return orderList, nil
}

// GetByID returns a sell order by its ID.
func (r *MockSellOrderRepository) GetByID(id string) (*models.SellOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("sell order with ID %s: %w", id, models.ErrNotFound)
	}
	return &order, nil
}

// Create adds a new sell order.
func (r *MockSellOrderRepository) Create(order *models.SellOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	order.UpdatedAt = time.Now()
	r.orders[order.ID] = *order
	return nil
}

// UpdateStatus updates the status of a sell order.
func (r *MockSellOrderRepository) UpdateStatus(id string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("sell order with ID %s: %w", id, models.ErrNotFound)
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return nil
}

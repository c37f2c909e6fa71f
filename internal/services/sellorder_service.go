package services

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"kartu/internal/models"
	"kartu/internal/repositories"
)

// SellOrderPublisher hands marshaled sell-order events to the intake queue.
// rabbitmq.Client satisfies this.
type SellOrderPublisher interface {
	Publish(body []byte) error
}

// SellOrderService builds sell orders from a seller's selection and submits
// them to the order intake.
type SellOrderService struct {
	orderRepo   repositories.SellOrderRepository
	catalogRepo repositories.CatalogRepository
	publisher   SellOrderPublisher
}

// NewSellOrderService creates a new SellOrderService.
func NewSellOrderService(orderRepo repositories.SellOrderRepository, catalogRepo repositories.CatalogRepository, publisher SellOrderPublisher) *SellOrderService {
	return &SellOrderService{
		orderRepo:   orderRepo,
		catalogRepo: catalogRepo,
		publisher:   publisher,
	}
}

// GetAllOrders retrieves all sell orders.
func (s *SellOrderService) GetAllOrders() ([]models.SellOrder, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single sell order by its ID.
func (s *SellOrderService) GetOrderByID(id string) (*models.SellOrder, error) {
	return s.orderRepo.GetByID(id)
}

// Build validates the selected denomination against the current catalog and
// constructs a sell order. The selling price is copied from the matched face
// value at build time, so a later catalog edit cannot change what was quoted.
// Build has no side effects; submission is a separate step.
func (s *SellOrderService) Build(productID, currency, faceValue string) (*models.SellOrder, error) {
	product, err := s.catalogRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}

	tier := product.Tier(currency)
	if tier == nil {
		return nil, fmt.Errorf("product %s has no %s tier: %w", productID, currency, models.ErrCurrencyNotOffered)
	}

	for _, fv := range tier.FaceValues {
		if fv.FaceValue != faceValue {
			continue
		}
		return &models.SellOrder{
			ProductID:             product.ID,
			Currency:              tier.Currency,
			FaceValue:             fv.FaceValue,
			SellingPriceAtRequest: fv.SellingPrice,
			Status:                models.SellOrderStatusQueued,
			RequestedAt:           time.Now(),
		}, nil
	}
	return nil, fmt.Errorf("tier %s of product %s has no denomination %q: %w", tier.Currency, productID, faceValue, models.ErrFaceValueNotOffered)
}

// Submit persists a built sell order as queued and hands it to the intake
// queue. A publish failure is logged but does not fail the submission; the
// order stays queued for a later sweep.
func (s *SellOrderService) Submit(order *models.SellOrder) error {
	if err := s.orderRepo.Create(order); err != nil {
		return fmt.Errorf("failed to create sell order in repository: %w", err)
	}

	if s.publisher != nil {
		body, err := json.Marshal(order)
		if err != nil {
			log.Printf("Failed to marshal sell order %s to JSON: %v", order.ID, err)
		} else if err := s.publisher.Publish(body); err != nil {
			log.Printf("Warning: Failed to publish sell order accepted event for order %s: %v", order.ID, err)
		} else {
			log.Printf("Published sell order accepted event for order %s", order.ID)
		}
	} else {
		log.Println("Sell order publisher is not configured. Skipping message publication.")
	}

	return nil
}

// UpdateOrderStatus updates the status of an existing sell order.
func (s *SellOrderService) UpdateOrderStatus(id string, status string) error {
	validStatuses := map[string]bool{
		models.SellOrderStatusQueued:     true,
		models.SellOrderStatusProcessing: true,
		models.SellOrderStatusPaid:       true,
		models.SellOrderStatusRejected:   true,
	}
	if _, ok := validStatuses[status]; !ok {
		return fmt.Errorf("invalid sell order status: %s", status)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update status for sell order %s: %w", id, err)
	}
	return nil
}

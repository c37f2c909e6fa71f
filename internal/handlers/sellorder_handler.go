package handlers

import (
	"errors"
	"fmt"
	"log"

	"kartu/internal/models"
	"kartu/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// SellOrderHandler handles HTTP requests for sell orders.
type SellOrderHandler struct {
	service  *services.SellOrderService
	validate *validator.Validate
}

// NewSellOrderHandler creates a new SellOrderHandler.
func NewSellOrderHandler(service *services.SellOrderService) *SellOrderHandler {
	return &SellOrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the sell order routes. Submission needs a logged
// in seller; listing and status changes are admin operations.
func (h *SellOrderHandler) RegisterRoutes(seller fiber.Router, admin fiber.Router) {
	orderRoutes := seller.Group("/sell-orders")
	orderRoutes.Post("/", h.HandleCreateSellOrder)
	orderRoutes.Get("/:id", h.HandleGetSellOrderByID)

	adminRoutes := admin.Group("/sell-orders")
	adminRoutes.Get("/", h.HandleGetSellOrders)
	adminRoutes.Patch("/:id/status", h.HandleUpdateSellOrderStatus)
}

// HandleCreateSellOrder builds a sell order from the seller's selection and
// submits it to the intake queue. The quoted price is snapshotted at build
// time, so the response carries what the platform will actually pay.
func (h *SellOrderHandler) HandleCreateSellOrder(c *fiber.Ctx) error {
	var req models.SellOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing sell order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	order, err := h.service.Build(req.ProductID, req.Currency, req.FaceValue)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
				"error":   err.Error(),
			})
		case errors.Is(err, models.ErrCurrencyNotOffered), errors.Is(err, models.ErrFaceValueNotOffered):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"message": "Selection is not offered by this product",
				"error":   err.Error(),
			})
		}
		log.Printf("Error building sell order: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not build sell order",
			"error":   err.Error(),
		})
	}

	if err := h.service.Submit(order); err != nil {
		log.Printf("Error submitting sell order: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not submit sell order",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusAccepted).JSON(order)
}

// HandleGetSellOrders retrieves all sell orders.
func (h *SellOrderHandler) HandleGetSellOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		log.Printf("Error getting all sell orders: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve sell orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(orders)
}

// HandleGetSellOrderByID retrieves a single sell order by its ID.
func (h *SellOrderHandler) HandleGetSellOrderByID(c *fiber.Ctx) error {
	orderID := c.Params("id")
	order, err := h.service.GetOrderByID(orderID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Sell order with ID %s not found", orderID),
			})
		}
		log.Printf("Error getting sell order by ID %s: %v", orderID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve sell order",
			"error":   err.Error(),
		})
	}
	return c.JSON(order)
}

// HandleUpdateSellOrderStatus updates the status of an existing sell order.
func (h *SellOrderHandler) HandleUpdateSellOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")
	var updateData struct {
		Status string `json:"status"`
	}

	if err := c.BodyParser(&updateData); err != nil {
		log.Printf("Error parsing request body for status update: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for status update",
			"error":   err.Error(),
		})
	}

	if updateData.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required for sell order status update.",
		})
	}

	if err := h.service.UpdateOrderStatus(orderID, updateData.Status); err != nil {
		log.Printf("Error updating status for sell order %s: %v", orderID, err)
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Sell order with ID %s not found", orderID),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("Sell order update failed: %v", err.Error()),
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Sell order %s status updated successfully to %s", orderID, updateData.Status),
	})
}

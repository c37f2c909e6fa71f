package handlers

import (
	"errors"
	"log"

	"kartu/internal/models"
	"kartu/internal/repositories"
	"kartu/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles HTTP requests for the product catalog.
type CatalogHandler struct {
	service *services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
	}
}

// RegisterRoutes registers the catalog routes. Reads go on the public
// router; create/patch/delete go on the admin-guarded router.
func (h *CatalogHandler) RegisterRoutes(public fiber.Router, admin fiber.Router) {
	productRoutes := public.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Get("/:id/pricing/:currency", h.HandleGetCurrencyTier)

	adminRoutes := admin.Group("/products")
	adminRoutes.Post("/", h.HandleCreateProduct)
	adminRoutes.Patch("/:id", h.HandleUpdateProduct)
	adminRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts lists products, optionally filtered by category and brand.
func (h *CatalogHandler) HandleGetProducts(c *fiber.Ctx) error {
	filter := repositories.CatalogFilter{
		Category: c.Query("category"),
		Brand:    c.Query("brand"),
	}
	products, err := h.service.GetProducts(filter)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *CatalogHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.service.GetProductByID(productID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		}
		log.Printf("Error getting product by ID %s: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}
	return c.JSON(product)
}

// HandleGetCurrencyTier resolves one product's pricing tier for a currency.
// A product without the currency is a 404 even when the product exists, so
// the browsing UI can tell "no such currency" apart from an empty tier.
func (h *CatalogHandler) HandleGetCurrencyTier(c *fiber.Ctx) error {
	productID := c.Params("id")
	currency := c.Params("currency")

	tier, err := h.service.CurrencyTier(productID, currency)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) || errors.Is(err, models.ErrCurrencyNotOffered) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Currency tier not found",
				"error":   err.Error(),
			})
		}
		log.Printf("Error resolving tier %s/%s: %v", productID, currency, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not resolve currency tier",
			"error":   err.Error(),
		})
	}
	return c.JSON(tier)
}

// HandleCreateProduct creates a new catalog record.
func (h *CatalogHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing create product body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.CreateProduct(&product); err != nil {
		if errors.Is(err, models.ErrDuplicateCurrencyTier) || errors.Is(err, models.ErrInvariantViolation) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"message": "Product failed catalog validation",
				"error":   err.Error(),
			})
		}
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct applies a partial update to an existing record.
func (h *CatalogHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	var patch models.ProductPatch
	if err := c.BodyParser(&patch); err != nil {
		log.Printf("Error parsing update product body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	product, err := h.service.UpdateProduct(productID, patch)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Product not found",
			})
		case errors.Is(err, models.ErrDuplicateCurrencyTier), errors.Is(err, models.ErrInvariantViolation):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"message": "Update failed catalog validation",
				"error":   err.Error(),
			})
		}
		log.Printf("Error updating product %s: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update product",
			"error":   err.Error(),
		})
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product. Deleting an unknown id still
// returns 204; the operation is idempotent.
func (h *CatalogHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	if err := h.service.DeleteProduct(productID); err != nil {
		log.Printf("Error deleting product %s: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete product",
			"error":   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

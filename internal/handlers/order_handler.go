package handlers

import (
	"github.com/gofiber/fiber/v2"

	"glamgirl/internal/models"
	"glamgirl/internal/services"
)

// OrderHandler handles checkout and order lookup.
type OrderHandler struct {
	service *services.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// RegisterRoutes registers the order routes.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Post("/", h.HandlePlaceOrder)
	orderRoutes.Get("/:id", h.HandleGetOrder)
}

// HandlePlaceOrder submits the checkout form. Validation and business
// failures (empty cart, insufficient stock) come back as 400 with the
// reason; success returns the backend's order record.
func (h *OrderHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	var form models.OrderForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	order, err := h.service.PlaceOrder(c.Context(), form)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order placed successfully!",
		"order":   order,
	})
}

// HandleGetOrder returns one placed order, or an explicit not-found state.
func (h *OrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid order id",
		})
	}

	order, err := h.service.Order(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(order)
}

package handlers

import (
	"github.com/gofiber/fiber/v2"

	"glamgirl/internal/services"
)

// CartHandler exposes the cart mirror over HTTP. Every successful mutation
// responds with the full cart as the backend returned it.
type CartHandler struct {
	service *services.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// RegisterRoutes registers the cart routes.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleGetCart)
	cartRoutes.Post("/add", h.HandleAddItem)
	cartRoutes.Put("/update/:itemId", h.HandleUpdateItem)
	cartRoutes.Delete("/remove/:itemId", h.HandleRemoveItem)
	cartRoutes.Delete("/clear", h.HandleClearCart)
}

// HandleGetCart refreshes the mirror and returns it. When the backend is
// unreachable the last known mirror is served; the failure is logged, not
// surfaced, so a flaky backend does not blank the cart view.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	if err := h.service.Refresh(c.Context()); err != nil {
		logRefreshFailure(c, err)
	}
	return c.JSON(h.service.Cart())
}

// HandleAddItem adds a product to the cart.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req struct {
		ProductID int `json:"product_id"`
		Quantity  int `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := h.service.Add(c.Context(), req.ProductID, req.Quantity); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.service.Cart())
}

// HandleUpdateItem sets a line item quantity; zero or below removes it.
func (h *CartHandler) HandleUpdateItem(c *fiber.Ctx) error {
	itemID, err := c.ParamsInt("itemId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid item id",
		})
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.service.Update(c.Context(), itemID, req.Quantity); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.service.Cart())
}

// HandleRemoveItem removes a line item.
func (h *CartHandler) HandleRemoveItem(c *fiber.Ctx) error {
	itemID, err := c.ParamsInt("itemId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid item id",
		})
	}

	if err := h.service.Remove(c.Context(), itemID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.service.Cart())
}

// HandleClearCart empties the cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	if err := h.service.Clear(c.Context()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.service.Cart())
}

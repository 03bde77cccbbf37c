package handlers

import (
	"github.com/gofiber/fiber/v2"

	"glamgirl/internal/models"
	"glamgirl/internal/services"
)

// WishlistHandler exposes the client-local wishlist store.
type WishlistHandler struct {
	service *services.WishlistService
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(service *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{service: service}
}

// RegisterRoutes registers the wishlist routes.
func (h *WishlistHandler) RegisterRoutes(router fiber.Router) {
	wishlistRoutes := router.Group("/wishlist")
	wishlistRoutes.Get("/", h.HandleGetWishlist)
	wishlistRoutes.Post("/add", h.HandleAdd)
	wishlistRoutes.Post("/toggle", h.HandleToggle)
	wishlistRoutes.Delete("/remove/:productId", h.HandleRemove)
}

// HandleGetWishlist returns the set in insertion order.
func (h *WishlistHandler) HandleGetWishlist(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"items": h.service.Items(),
	})
}

// HandleAdd adds a product snapshot; duplicates are reported, not stored.
func (h *WishlistHandler) HandleAdd(c *fiber.Ctx) error {
	product, ok := parseWishlistProduct(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "A product with an id is required",
		})
	}

	added, msg, err := h.service.Add(*product)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"added":   added,
		"message": msg,
		"items":   h.service.Items(),
	})
}

// HandleToggle flips membership for the given product.
func (h *WishlistHandler) HandleToggle(c *fiber.Ctx) error {
	product, ok := parseWishlistProduct(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "A product with an id is required",
		})
	}

	inWishlist, msg, err := h.service.Toggle(*product)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"in_wishlist": inWishlist,
		"message":     msg,
		"items":       h.service.Items(),
	})
}

// HandleRemove removes by product id; an absent id is a no-op.
func (h *WishlistHandler) HandleRemove(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid product id",
		})
	}

	if err := h.service.Remove(productID); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": services.MsgRemovedFromWishlist,
		"items":   h.service.Items(),
	})
}

// parseWishlistProduct reads the product snapshot from the request body.
// The snapshot is stored as sent; the wishlist never re-fetches products.
func parseWishlistProduct(c *fiber.Ctx) (*models.Product, bool) {
	var product models.Product
	if err := c.BodyParser(&product); err != nil || product.ID == 0 {
		return nil, false
	}
	return &product, true
}

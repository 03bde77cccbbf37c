package handlers

import (
	"github.com/gofiber/fiber/v2"

	"glamgirl/internal/models"
	"glamgirl/internal/services"
)

// CatalogHandler serves product browsing: the catalog with filters, single
// products and categories.
type CatalogHandler struct {
	service *services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/products", h.HandleListProducts)
	router.Get("/products/:id", h.HandleGetProduct)
	router.Get("/categories", h.HandleListCategories)
}

// HandleListProducts returns the catalog filtered by the query parameters
// search, category, price_range and sort. Absent parameters pass everything
// through.
func (h *CatalogHandler) HandleListProducts(c *fiber.Ctx) error {
	criteria := models.FilterCriteria{
		Search:     c.Query("search"),
		CategoryID: c.QueryInt("category"),
		PriceRange: models.PriceRange(c.Query("price_range", string(models.PriceAll))),
		SortBy:     models.SortKey(c.Query("sort", string(models.SortNewest))),
	}

	products, err := h.service.Search(c.Context(), criteria)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"count":    len(products),
		"products": products,
	})
}

// HandleGetProduct returns one product or an explicit not-found state.
func (h *CatalogHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid product id",
		})
	}

	product, err := h.service.Product(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(product)
}

// HandleListCategories returns all categories.
func (h *CatalogHandler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.service.Categories(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(categories)
}

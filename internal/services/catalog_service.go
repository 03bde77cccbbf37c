package services

import (
	"context"
	"fmt"

	"glamgirl/internal/api"
	"glamgirl/internal/models"
)

// CatalogService is the read side of the storefront: products and
// categories are backend-owned, this service fetches them and derives
// filtered views. Nothing here is cached; the filter engine recomputes
// from the full list on every request.
type CatalogService struct {
	client api.Client
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(client api.Client) *CatalogService {
	return &CatalogService{client: client}
}

// Categories lists all product categories.
func (s *CatalogService) Categories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.client.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching categories: %w", err)
	}
	return categories, nil
}

// Products lists the full catalog.
func (s *CatalogService) Products(ctx context.Context) ([]models.Product, error) {
	products, err := s.client.GetProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching products: %w", err)
	}
	return products, nil
}

// Product fetches one product. A missing id surfaces as *api.Error 404 so
// the caller can render an explicit not-found state.
func (s *CatalogService) Product(ctx context.Context, id int) (*models.Product, error) {
	return s.client.GetProduct(ctx, id)
}

// Search fetches the catalog and applies the filter criteria. Category
// narrowing happens in the engine rather than through the backend's
// per-category endpoint, keeping one code path for all criteria.
func (s *CatalogService) Search(ctx context.Context, criteria models.FilterCriteria) ([]models.Product, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, err
	}
	return FilterProducts(products, criteria), nil
}

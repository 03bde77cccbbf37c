package api

import (
	"context"

	"glamgirl/internal/models"
)

// Client is the remote API surface of the storefront backend. Every cart
// mutation returns the full cart from the backend's response; callers are
// expected to replace their local state with it wholesale.
type Client interface {
	GetCategories(ctx context.Context) ([]models.Category, error)
	GetProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int) (*models.Product, error)
	GetProductsByCategory(ctx context.Context, categoryID int) ([]models.Product, error)

	GetCart(ctx context.Context) (*models.Cart, error)
	AddToCart(ctx context.Context, productID, quantity int) (*models.Cart, error)
	UpdateCartItem(ctx context.Context, itemID, quantity int) (*models.Cart, error)
	RemoveFromCart(ctx context.Context, itemID int) (*models.Cart, error)
	ClearCart(ctx context.Context) (*models.Cart, error)

	CreateOrder(ctx context.Context, form models.OrderForm) (*models.Order, error)
	GetOrder(ctx context.Context, id int) (*models.Order, error)
}

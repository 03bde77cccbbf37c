package repositories

import (
	"glamgirl/internal/models"
)

// WishlistRepository defines the interface for durable wishlist storage.
// The whole set is written as one value on every mutation, so there is no
// partial-write state to recover from.
type WishlistRepository interface {
	Load() ([]models.Product, error)
	Save(products []models.Product) error
}

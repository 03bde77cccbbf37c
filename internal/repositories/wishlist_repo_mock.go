package repositories

import (
	"sync"

	"glamgirl/internal/models"
)

// MockWishlistRepository is an in-memory implementation of
// WishlistRepository. It backs tests and lets the app come up without a
// database (wishlist then lives only for the process lifetime).
type MockWishlistRepository struct {
	products []models.Product
	mu       sync.RWMutex
}

// NewMockWishlistRepository creates a new instance of MockWishlistRepository.
func NewMockWishlistRepository() *MockWishlistRepository {
	return &MockWishlistRepository{}
}

// Load returns a copy of the stored set.
func (r *MockWishlistRepository) Load() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// Save replaces the stored set.
func (r *MockWishlistRepository) Save(products []models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = make([]models.Product, len(products))
	copy(r.products, products)
	return nil
}

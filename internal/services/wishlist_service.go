package services

import (
	"fmt"
	"sync"

	"glamgirl/internal/models"
	"glamgirl/internal/repositories"
)

// User-facing wishlist messages.
const (
	MsgAddedToWishlist     = "Added to wishlist!"
	MsgAlreadyInWishlist   = "Already in wishlist!"
	MsgRemovedFromWishlist = "Removed from wishlist!"
)

// WishlistService is a durable, client-local set of favorited products,
// keyed by product id with insertion order preserved. Entries are product
// snapshots captured at add time; they are not re-fetched. Every mutation
// persists the full set, so restarting the process restores it as-is.
type WishlistService struct {
	repo repositories.WishlistRepository

	mu    sync.RWMutex
	items []models.Product
}

// NewWishlistService creates the store and loads the persisted set; a
// missing snapshot means an empty wishlist.
func NewWishlistService(repo repositories.WishlistRepository) (*WishlistService, error) {
	items, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("loading wishlist: %w", err)
	}
	return &WishlistService{repo: repo, items: items}, nil
}

// Items returns the set as a copy, in insertion order.
func (s *WishlistService) Items() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.items))
	copy(out, s.items)
	return out
}

// Contains reports membership by product id.
func (s *WishlistService) Contains(productID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(productID) >= 0
}

// Add appends the product unless its id is already present. The returned
// message is meant for the user verbatim.
func (s *WishlistService) Add(product models.Product) (bool, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(product.ID) >= 0 {
		return false, MsgAlreadyInWishlist, nil
	}

	s.items = append(s.items, product)
	if err := s.persistLocked(); err != nil {
		s.items = s.items[:len(s.items)-1]
		return false, "", err
	}
	return true, MsgAddedToWishlist, nil
}

// Remove deletes by product id. Removing an absent id is a silent no-op
// and nothing is rewritten.
func (s *WishlistService) Remove(productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(productID)
	if idx < 0 {
		return nil
	}

	removed := s.items[idx]
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	if err := s.persistLocked(); err != nil {
		// Put it back where it was; the mirror must match storage.
		s.items = append(s.items[:idx], append([]models.Product{removed}, s.items[idx:]...)...)
		return err
	}
	return nil
}

// Toggle flips membership: present becomes absent and vice versa. The
// returned bool is the membership state after the call.
func (s *WishlistService) Toggle(product models.Product) (bool, string, error) {
	if s.Contains(product.ID) {
		if err := s.Remove(product.ID); err != nil {
			return true, "", err
		}
		return false, MsgRemovedFromWishlist, nil
	}

	added, msg, err := s.Add(product)
	if err != nil {
		return false, "", err
	}
	return added || s.Contains(product.ID), msg, nil
}

// indexOf must be called with mu held (read or write).
func (s *WishlistService) indexOf(productID int) int {
	for i, item := range s.items {
		if item.ID == productID {
			return i
		}
	}
	return -1
}

// persistLocked writes the full set; must be called with mu held for write.
func (s *WishlistService) persistLocked() error {
	if err := s.repo.Save(s.items); err != nil {
		return fmt.Errorf("persisting wishlist: %w", err)
	}
	return nil
}

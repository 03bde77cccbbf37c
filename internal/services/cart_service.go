package services

import (
	"context"
	"fmt"
	"sync"

	"glamgirl/internal/api"
	"glamgirl/internal/models"
)

// CartService keeps a local mirror of the server-side cart and serializes
// every mutation through the backend. The mirror is always a verbatim copy
// of the backend's last response: mutations replace it wholesale, never
// patch it, so totals cannot drift from the authoritative values.
//
// Mutations take mutationMu for their whole round-trip. That pins
// apply-order to issuance-order; two rapid mutations can no longer race and
// leave the mirror at whichever response happened to arrive last.
type CartService struct {
	client api.Client

	mutationMu sync.Mutex

	stateMu sync.RWMutex
	cart    models.Cart
}

// NewCartService creates a new CartService with an empty mirror. Call
// Refresh to load the session's current cart.
func NewCartService(client api.Client) *CartService {
	return &CartService{client: client}
}

// Cart returns a snapshot of the mirror. The copy keeps consumers from
// mutating store internals.
func (s *CartService) Cart() models.Cart {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.cart.Clone()
}

// Refresh fetches the current cart. On failure the previous mirror stays
// untouched; the caller decides whether the error is worth surfacing.
func (s *CartService) Refresh(ctx context.Context) error {
	cart, err := s.client.GetCart(ctx)
	if err != nil {
		return fmt.Errorf("fetching cart: %w", err)
	}
	s.replace(cart)
	return nil
}

// Add puts quantity units of a product into the cart. Stock and existence
// are enforced by the backend; a violation comes back as *api.Error with a
// user-facing reason and leaves the mirror unchanged.
func (s *CartService) Add(ctx context.Context, productID, quantity int) error {
	if quantity < 1 {
		return &api.Error{Status: 400, Message: "Quantity must be a positive number"}
	}

	s.mutationMu.Lock()
	defer s.mutationMu.Unlock()

	cart, err := s.client.AddToCart(ctx, productID, quantity)
	if err != nil {
		return err
	}
	s.replace(cart)
	return nil
}

// Update sets a line item's quantity. Zero or below means removal; that is
// a deliberate policy, not an error.
func (s *CartService) Update(ctx context.Context, itemID, quantity int) error {
	if quantity <= 0 {
		return s.Remove(ctx, itemID)
	}

	s.mutationMu.Lock()
	defer s.mutationMu.Unlock()

	cart, err := s.client.UpdateCartItem(ctx, itemID, quantity)
	if err != nil {
		return err
	}
	s.replace(cart)
	return nil
}

// Remove deletes a line item server-side and replaces the mirror.
func (s *CartService) Remove(ctx context.Context, itemID int) error {
	s.mutationMu.Lock()
	defer s.mutationMu.Unlock()

	cart, err := s.client.RemoveFromCart(ctx, itemID)
	if err != nil {
		return err
	}
	s.replace(cart)
	return nil
}

// Clear empties the cart server-side and replaces the mirror.
func (s *CartService) Clear(ctx context.Context) error {
	s.mutationMu.Lock()
	defer s.mutationMu.Unlock()

	cart, err := s.client.ClearCart(ctx)
	if err != nil {
		return err
	}
	s.replace(cart)
	return nil
}

func (s *CartService) replace(cart *models.Cart) {
	s.stateMu.Lock()
	s.cart = cart.Clone()
	s.stateMu.Unlock()
}

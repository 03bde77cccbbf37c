package models

// CartItem is a single line in the cart. Product is a snapshot as last
// synced from the backend; Subtotal is backend-computed and never
// recalculated locally.
type CartItem struct {
	ID       int     `json:"id"`
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Subtotal string  `json:"subtotal"`
}

// Cart mirrors the backend's cart response wholesale. Total and TotalItems
// are authoritative backend values; deriving them from Items client-side is
// forbidden, it would let the mirror drift from the server.
type Cart struct {
	ID         int        `json:"id"`
	Items      []CartItem `json:"items"`
	Total      string     `json:"total"`
	TotalItems int        `json:"total_items"`
}

// Clone returns a deep copy so callers can hand the cart out without
// exposing the internal item slice.
func (c Cart) Clone() Cart {
	out := c
	out.Items = make([]CartItem, len(c.Items))
	copy(out.Items, c.Items)
	return out
}

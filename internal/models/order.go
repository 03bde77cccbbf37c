package models

import "time"

// Payment methods accepted by the backend.
const (
	PaymentCOD   = "cod"
	PaymentBkash = "bkash"
	PaymentNagad = "nagad"
)

// OrderForm is the checkout form submitted to the backend. The validator
// tags mirror the backend's own field limits so obviously bad input is
// rejected before a network round-trip; the backend remains the authority.
type OrderForm struct {
	CustomerName    string `json:"customer_name" validate:"required,max=100"`
	CustomerEmail   string `json:"customer_email" validate:"required,email"`
	CustomerPhone   string `json:"customer_phone" validate:"required,max=20"`
	ShippingAddress string `json:"shipping_address" validate:"required"`
	City            string `json:"city" validate:"required,max=50"`
	PostalCode      string `json:"postal_code,omitempty" validate:"omitempty,max=10"`
	PaymentMethod   string `json:"payment_method" validate:"required,oneof=cod bkash nagad"`
	Note            string `json:"note,omitempty"`
}

// OrderItem is a line of a placed order. Name and price are snapshots taken
// by the backend at order time.
type OrderItem struct {
	ID           int    `json:"id"`
	Product      int    `json:"product"`
	ProductName  string `json:"product_name"`
	ProductPrice string `json:"product_price"`
	Quantity     int    `json:"quantity"`
	Subtotal     string `json:"subtotal"`
}

// Order is the backend's view of a placed order. The client only reads it;
// all amounts and the status lifecycle are backend-owned.
type Order struct {
	ID                   int         `json:"id"`
	CustomerName         string      `json:"customer_name"`
	CustomerEmail        string      `json:"customer_email"`
	CustomerPhone        string      `json:"customer_phone"`
	ShippingAddress      string      `json:"shipping_address"`
	City                 string      `json:"city"`
	PostalCode           string      `json:"postal_code"`
	TotalAmount          string      `json:"total_amount"`
	ShippingCost         string      `json:"shipping_cost"`
	GrandTotal           string      `json:"grand_total"`
	Status               string      `json:"status"`
	StatusDisplay        string      `json:"status_display"`
	PaymentMethod        string      `json:"payment_method"`
	PaymentMethodDisplay string      `json:"payment_method_display"`
	IsPaid               bool        `json:"is_paid"`
	Note                 string      `json:"note"`
	Items                []OrderItem `json:"items"`
	CreatedAt            time.Time   `json:"created_at"`
}

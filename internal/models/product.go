package models

import (
	"strconv"
	"time"
)

// Category is a product category as served by the backend.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Product represents a product in the catalog. It is read-only remote data:
// the backend owns it and the client never writes it back.
//
// Price arrives as a decimal string (the backend serializes currency amounts
// that way) and is kept verbatim so the client cannot introduce rounding
// drift. Use PriceValue for numeric comparisons.
type Product struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        string    `json:"price"`
	Stock        int       `json:"stock"`
	Category     int       `json:"category"`
	CategoryName string    `json:"category_name"`
	Image        string    `json:"image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// PriceValue parses the decimal price string. Callers must treat a parse
// failure as "no usable price", not as zero.
func (p Product) PriceValue() (float64, error) {
	return strconv.ParseFloat(p.Price, 64)
}

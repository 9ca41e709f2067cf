package model

import (
	"time"

	"github.com/google/uuid"
)

// Order represents a purchase of a single product. Orders are immutable once
// created; there is no update or delete operation.
//
// ProductID is a non-enforced reference: deleting a product leaves its orders
// behind, and revenue aggregation simply skips them.
type Order struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Email      string    `json:"email" db:"email"`
	ProductID  uuid.UUID `json:"product" db:"product_id"`
	Quantity   int       `json:"quantity" db:"quantity"`
	TotalPrice float64   `json:"totalPrice" db:"total_price"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}

// CreateOrderRequest represents the request payload for placing an order.
// Product carries the product id as a string so a malformed id can be
// rejected as a validation failure rather than a JSON decode failure.
type CreateOrderRequest struct {
	Email      string  `json:"email"`
	Product    string  `json:"product"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"totalPrice"`
}

// RevenueResponse is the payload of the revenue endpoint.
type RevenueResponse struct {
	TotalRevenue float64 `json:"totalRevenue"`
}

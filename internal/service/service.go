package service

import (
	"context"

	"bookmart/internal/model"
)

// ProductService defines operations for catalogue management.
type ProductService interface {
	// Create validates and inserts a new book.
	Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error)

	// GetByID retrieves a single book. The id must be a well-formed UUID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Search retrieves all books, or those matching the term across title,
	// author and category (OR semantics, case-insensitive substring).
	Search(ctx context.Context, term string) ([]model.Product, error)

	// Update applies a partial update to a book and re-validates the result.
	Update(ctx context.Context, id string, req *model.UpdateProductRequest) (*model.Product, error)

	// Delete removes a book. Orders referencing it are left untouched.
	Delete(ctx context.Context, id string) error
}

// OrderService defines operations for order management.
type OrderService interface {
	// Create places an order: it checks stock, decrements it and persists
	// the order, all within a single transaction.
	Create(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error)

	// TotalRevenue computes quantity x product price summed over all orders
	// whose product still exists.
	TotalRevenue(ctx context.Context) (float64, error)
}

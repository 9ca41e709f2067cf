package repository

import (
	"context"

	"bookmart/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// Create inserts a new product.
	Create(ctx context.Context, product *model.Product) error

	// GetByID retrieves a single product by its ID.
	// Returns (nil, nil) when no product exists with that ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// Search retrieves products whose title, author or category contains the
	// term, case-insensitively. An empty term returns the whole catalogue.
	Search(ctx context.Context, term string) ([]model.Product, error)

	// Update rewrites all mutable fields of a product.
	// Returns false when no product exists with that ID.
	Update(ctx context.Context, product *model.Product) (bool, error)

	// Delete removes a product by its ID.
	// Returns false when no product exists with that ID.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// GetForUpdate retrieves a product within the transaction, locking its
	// row until the transaction ends. Returns (nil, nil) when absent.
	GetForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Product, error)

	// UpdateStock persists a new stock level for a product within the
	// provided transaction.
	UpdateStock(ctx context.Context, tx pgx.Tx, id uuid.UUID, quantity int, inStock bool) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// Create inserts a new order within the provided transaction.
	Create(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// TotalRevenue sums quantity x product price across all orders whose
	// referenced product still exists. Returns 0 when there are no orders.
	TotalRevenue(ctx context.Context) (float64, error)
}

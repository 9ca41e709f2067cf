package repository

import (
	"context"
	"fmt"

	"bookmart/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *orderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Create inserts a new order within the provided transaction.
func (r *orderRepository) Create(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	query := `
		INSERT INTO orders (id, email, product_id, quantity, total_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := tx.Exec(ctx, query,
		order.ID,
		order.Email,
		order.ProductID,
		order.Quantity,
		order.TotalPrice,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Str("product_id", order.ProductID.String()).
			Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.ID.String()).
		Msg("order created successfully")

	return nil
}

// TotalRevenue sums quantity x product price across all orders. The inner
// join drops orders whose product has been deleted, and COALESCE yields 0
// when there are no orders at all.
func (r *orderRepository) TotalRevenue(ctx context.Context) (float64, error) {
	query := `
		SELECT COALESCE(SUM(o.quantity * p.price), 0)
		FROM orders o
		JOIN products p ON p.id = o.product_id
	`

	var total float64
	if err := r.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		r.logger.Error().Err(err).Msg("failed to aggregate revenue")
		return 0, fmt.Errorf("failed to aggregate revenue: %w", err)
	}

	return total, nil
}

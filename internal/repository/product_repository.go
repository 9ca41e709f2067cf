package repository

import (
	"context"
	"fmt"
	"strings"

	"bookmart/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const productColumns = "id, title, author, price, category, description, quantity, in_stock, created_at"

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// Create inserts a new product.
func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	query := `
		INSERT INTO products (id, title, author, price, category, description, quantity, in_stock, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Title,
		product.Author,
		product.Price,
		product.Category,
		product.Description,
		product.Quantity,
		product.InStock,
		product.CreatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).
			Str("product_id", product.ID.String()).
			Msg("failed to insert product")
		return fmt.Errorf("failed to insert product: %w", err)
	}

	r.logger.Debug().
		Str("product_id", product.ID.String()).
		Str("title", product.Title).
		Msg("product created successfully")

	return nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)

	product, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("product_id", id.String()).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return product, nil
}

// Search retrieves products matching the term across title, author and
// category. An empty term returns the whole catalogue.
func (r *productRepository) Search(ctx context.Context, term string) ([]model.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products ORDER BY title`, productColumns)
	args := []any{}

	if term != "" {
		query = fmt.Sprintf(`
			SELECT %s
			FROM products
			WHERE title ILIKE $1 OR author ILIKE $1 OR category ILIKE $1
			ORDER BY title
		`, productColumns)
		args = append(args, "%"+escapeLikePattern(term)+"%")
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Str("term", term).Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// Update rewrites all mutable fields of a product.
func (r *productRepository) Update(ctx context.Context, product *model.Product) (bool, error) {
	query := `
		UPDATE products
		SET title = $2, author = $3, price = $4, category = $5, description = $6, quantity = $7, in_stock = $8
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Title,
		product.Author,
		product.Price,
		product.Category,
		product.Description,
		product.Quantity,
		product.InStock,
	)
	if err != nil {
		r.logger.Error().Err(err).
			Str("product_id", product.ID.String()).
			Msg("failed to update product")
		return false, fmt.Errorf("failed to update product: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Delete removes a product by its ID.
func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to delete product")
		return false, fmt.Errorf("failed to delete product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Str("product_id", id.String()).Msg("product not found for delete")
		return false, nil
	}

	r.logger.Debug().Str("product_id", id.String()).Msg("product deleted successfully")
	return true, nil
}

// GetForUpdate retrieves a product within the transaction, locking its row.
// The lock serialises concurrent order placements against the same product.
func (r *productRepository) GetForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*model.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1 FOR UPDATE`, productColumns)

	product, err := scanProduct(tx.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("product_id", id.String()).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("product_id", id.String()).Msg("failed to lock product row")
		return nil, fmt.Errorf("failed to lock product row: %w", err)
	}

	return product, nil
}

// UpdateStock persists a new stock level within the provided transaction.
func (r *productRepository) UpdateStock(ctx context.Context, tx pgx.Tx, id uuid.UUID, quantity int, inStock bool) error {
	query := `UPDATE products SET quantity = $2, in_stock = $3 WHERE id = $1`

	_, err := tx.Exec(ctx, query, id, quantity, inStock)
	if err != nil {
		r.logger.Error().Err(err).
			Str("product_id", id.String()).
			Int("quantity", quantity).
			Msg("failed to update product stock")
		return fmt.Errorf("failed to update product stock: %w", err)
	}

	r.logger.Debug().
		Str("product_id", id.String()).
		Int("quantity", quantity).
		Bool("in_stock", inStock).
		Msg("product stock updated")

	return nil
}

// scanProduct scans one product row.
func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Author,
		&p.Price,
		&p.Category,
		&p.Description,
		&p.Quantity,
		&p.InStock,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// escapeLikePattern escapes LIKE metacharacters so the search term is
// matched literally.
func escapeLikePattern(term string) string {
	term = strings.ReplaceAll(term, `\`, `\\`)
	term = strings.ReplaceAll(term, `%`, `\%`)
	term = strings.ReplaceAll(term, `_`, `\_`)
	return term
}

package repository

import (
	"context"
	"testing"
	"time"

	"bookmart/internal/database"
	"bookmart/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer and returns a connection pool.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	ctx := context.Background()

	pgContainer, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, database.Schema)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	})

	return pool
}

// seedProduct inserts a product and returns it.
func seedProduct(t *testing.T, repo ProductRepository, title, author string, category model.Category, price float64, quantity int) *model.Product {
	t.Helper()

	p := &model.Product{
		ID:          uuid.New(),
		Title:       title,
		Author:      author,
		Price:       price,
		Category:    category,
		Description: "seeded",
		Quantity:    quantity,
		InStock:     quantity > 0,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestProductRepository_CreateAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pool := setupTestDB(t)
	repo := NewProductRepository(pool, zerolog.Nop())
	ctx := context.Background()

	created := seedProduct(t, repo, "Dune", "Frank Herbert", model.CategoryFiction, 15.50, 8)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Dune", got.Title)
	assert.Equal(t, "Frank Herbert", got.Author)
	assert.Equal(t, 15.50, got.Price)
	assert.Equal(t, model.CategoryFiction, got.Category)
	assert.Equal(t, 8, got.Quantity)
	assert.True(t, got.InStock)
}

func TestProductRepository_GetByID_Absent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pool := setupTestDB(t)
	repo := NewProductRepository(pool, zerolog.Nop())

	got, err := repo.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestProductRepository_Search(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pool := setupTestDB(t)
	repo := NewProductRepository(pool, zerolog.Nop())
	ctx := context.Background()

	seedProduct(t, repo, "Dune", "Frank Herbert", model.CategoryFiction, 15.50, 8)
	seedProduct(t, repo, "Cosmos", "Carl Sagan", model.CategoryScience, 12.00, 3)
	seedProduct(t, repo, "Leaves of Grass", "Walt Whitman", model.CategoryPoetry, 9.99, 2)

	t.Run("Empty term returns everything", func(t *testing.T) {
		products, err := repo.Search(ctx, "")
		require.NoError(t, err)
		assert.Len(t, products, 3)
	})

	t.Run("Author-only match is returned", func(t *testing.T) {
		products, err := repo.Search(ctx, "sagan")
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Cosmos", products[0].Title)
	})

	t.Run("Category match, case-insensitive", func(t *testing.T) {
		products, err := repo.Search(ctx, "poETry")
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Leaves of Grass", products[0].Title)
	})

	t.Run("Substring of a title", func(t *testing.T) {
		products, err := repo.Search(ctx, "une")
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Dune", products[0].Title)
	})

	t.Run("No match returns empty slice", func(t *testing.T) {
		products, err := repo.Search(ctx, "zzzzzz")
		require.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("LIKE metacharacters are literal", func(t *testing.T) {
		products, err := repo.Search(ctx, "%")
		require.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestProductRepository_Update(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pool := setupTestDB(t)
	repo := NewProductRepository(pool, zerolog.Nop())
	ctx := context.Background()

	created := seedProduct(t, repo, "Old Title", "A. Author", model.CategoryReligious, 20.00, 5)

	created.Title = "New Title"
	created.Quantity = 0
	created.InStock = false

	updated, err := repo.Update(ctx, created)
	require.NoError(t, err)
	assert.True(t, updated)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "New Title", got.Title)
	assert.Equal(t, 0, got.Quantity)
	assert.False(t, got.InStock)
}

func TestProductRepository_Update_Absent(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pool := setupTestDB(t)
	repo := NewProductRepository(pool, zerolog.Nop())

	ghost := &model.Product{
		ID:       uuid.New(),
		Title:    "Ghost",
		Author:   "Nobody",
		Price:    1.00,
		Category: model.CategoryFiction,
		Quantity: 1,
		InStock:  true,
	}

	updated, err := repo.Update(context.Background(), ghost)
	require.NoError(t, err)
	assert.False(t, updated)
}

func TestProductRepository_Delete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pool := setupTestDB(t)
	repo := NewProductRepository(pool, zerolog.Nop())
	ctx := context.Background()

	created := seedProduct(t, repo, "Ephemeral", "E. Author", model.CategoryFiction, 5.00, 1)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	deleted, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestProductRepository_GetForUpdateAndUpdateStock(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	pool := setupTestDB(t)
	repo := NewProductRepository(pool, zerolog.Nop())
	ctx := context.Background()

	created := seedProduct(t, repo, "Locked Book", "L. Author", model.CategoryScience, 30.00, 4)

	tx, err := pool.Begin(ctx)
	require.NoError(t, err)

	locked, err := repo.GetForUpdate(ctx, tx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, locked)
	assert.Equal(t, 4, locked.Quantity)

	require.NoError(t, repo.UpdateStock(ctx, tx, created.ID, 1, true))
	require.NoError(t, tx.Commit(ctx))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Quantity)
	assert.True(t, got.InStock)
}

package service

import (
	"context"
	"fmt"
	"time"

	"bookmart/internal/model"
	"bookmart/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// Create validates and inserts a new book.
func (s *productService) Create(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	if req == nil {
		return nil, model.NewValidationError("product payload is required")
	}

	product := &model.Product{
		ID:          uuid.New(),
		Title:       req.Title,
		Author:      req.Author,
		Price:       req.Price,
		Category:    req.Category,
		Description: req.Description,
		Quantity:    req.Quantity,
		InStock:     req.Quantity > 0,
		CreatedAt:   time.Now(),
	}

	if err := validateProduct(product); err != nil {
		s.logger.Warn().Err(err).Str("title", req.Title).Msg("product validation failed")
		return nil, err
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error().Err(err).Str("title", req.Title).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID.String()).
		Str("title", product.Title).
		Msg("product created")

	return product, nil
}

// GetByID retrieves a single book by ID.
func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	productID, err := parseProductID(id)
	if err != nil {
		s.logger.Warn().Str("product_id", id).Msg("invalid product ID format")
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Search retrieves all books or those matching the term.
func (s *productService) Search(ctx context.Context, term string) ([]model.Product, error) {
	products, err := s.productRepo.Search(ctx, term)
	if err != nil {
		s.logger.Error().Err(err).Str("term", term).Msg("failed to search products")
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	s.logger.Debug().
		Str("term", term).
		Int("count", len(products)).
		Msg("retrieved products")

	return products, nil
}

// Update applies a partial update to a book, re-validates the merged result
// and persists it. InStock is recomputed whenever the quantity changes so
// the stored record never claims stock it does not have.
func (s *productService) Update(ctx context.Context, id string, req *model.UpdateProductRequest) (*model.Product, error) {
	productID, err := parseProductID(id)
	if err != nil {
		s.logger.Warn().Str("product_id", id).Msg("invalid product ID format")
		return nil, err
	}

	if req == nil {
		return nil, model.NewValidationError("update payload is required")
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product for update")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found for update")
		return nil, model.ErrProductNotFound
	}

	applyUpdate(product, req)

	if err := validateProduct(product); err != nil {
		s.logger.Warn().Err(err).Str("product_id", id).Msg("updated product failed validation")
		return nil, err
	}

	updated, err := s.productRepo.Update(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	if !updated {
		// Deleted between the read and the write.
		s.logger.Debug().Str("product_id", id).Msg("product disappeared during update")
		return nil, model.ErrProductNotFound
	}

	s.logger.Info().Str("product_id", id).Msg("product updated")

	return product, nil
}

// Delete removes a book by ID.
func (s *productService) Delete(ctx context.Context, id string) error {
	productID, err := parseProductID(id)
	if err != nil {
		s.logger.Warn().Str("product_id", id).Msg("invalid product ID format")
		return err
	}

	deleted, err := s.productRepo.Delete(ctx, productID)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if !deleted {
		s.logger.Debug().Str("product_id", id).Msg("product not found for delete")
		return model.ErrProductNotFound
	}

	s.logger.Info().Str("product_id", id).Msg("product deleted")

	return nil
}

// applyUpdate merges the non-nil request fields into the product. An
// explicit inStock value is accepted but quantity wins: the invariant
// inStock == (quantity > 0) is restored afterwards.
func applyUpdate(product *model.Product, req *model.UpdateProductRequest) {
	if req.Title != nil {
		product.Title = *req.Title
	}
	if req.Author != nil {
		product.Author = *req.Author
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}
	product.InStock = product.Quantity > 0
}

// validateProduct checks the schema rules for a product record.
func validateProduct(p *model.Product) error {
	if p.Title == "" {
		return model.NewValidationError("title is required")
	}
	if p.Author == "" {
		return model.NewValidationError("author is required")
	}
	if p.Price <= 0 {
		return model.NewValidationError("price must be greater than zero")
	}
	if !p.Category.Valid() {
		return model.NewValidationError(fmt.Sprintf("invalid category: %s", p.Category))
	}
	if p.Quantity < 0 {
		return model.NewValidationError("quantity cannot be negative")
	}
	return nil
}

// parseProductID validates the id shape before any lookup, so a malformed id
// is reported as a validation failure rather than a missing product.
func parseProductID(id string) (uuid.UUID, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, model.ErrInvalidProductID
	}
	return productID, nil
}

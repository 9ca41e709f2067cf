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

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// Create places an order. The stock check, the stock decrement and the order
// insert all run inside one transaction, with the product row locked for its
// duration: concurrent orders against the same product are serialised, and a
// failure after the decrement rolls the stock back.
func (s *orderService) Create(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error) {
	if err := validateOrderRequest(req); err != nil {
		s.logger.Warn().Err(err).Msg("order validation failed")
		return nil, err
	}

	productID, err := parseProductID(req.Product)
	if err != nil {
		s.logger.Warn().Str("product_id", req.Product).Msg("invalid product ID format")
		return nil, err
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	product, err := s.productRepo.GetForUpdate(ctx, tx, productID)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", req.Product).Msg("failed to lock product")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	if product == nil {
		s.logger.Debug().Str("product_id", req.Product).Msg("product not found")
		err = model.ErrProductNotFound
		return nil, err
	}

	if product.Quantity < req.Quantity {
		s.logger.Warn().
			Str("product_id", req.Product).
			Int("available", product.Quantity).
			Int("requested", req.Quantity).
			Msg("insufficient stock")
		err = &model.InsufficientStockError{Available: product.Quantity}
		return nil, err
	}

	newQuantity := product.Quantity - req.Quantity
	if err = s.productRepo.UpdateStock(ctx, tx, productID, newQuantity, newQuantity > 0); err != nil {
		s.logger.Error().Err(err).Str("product_id", req.Product).Msg("failed to decrement stock")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	now := time.Now()
	order := &model.Order{
		ID:         uuid.New(),
		Email:      req.Email,
		ProductID:  productID,
		Quantity:   req.Quantity,
		TotalPrice: req.TotalPrice,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err = s.orderRepo.Create(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("product_id", productID.String()).
		Int("quantity", req.Quantity).
		Int("remaining_stock", newQuantity).
		Msg("order created")

	return order, nil
}

// TotalRevenue computes total revenue across all orders.
func (s *orderService) TotalRevenue(ctx context.Context) (float64, error) {
	total, err := s.orderRepo.TotalRevenue(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to calculate revenue")
		return 0, fmt.Errorf("failed to calculate revenue: %w", err)
	}

	s.logger.Debug().Float64("total_revenue", total).Msg("revenue calculated")

	return total, nil
}

// validateOrderRequest validates the order request fields.
func validateOrderRequest(req *model.CreateOrderRequest) error {
	if req == nil {
		return model.NewValidationError("order payload is required")
	}
	if req.Email == "" || req.Product == "" || req.Quantity == 0 {
		return model.NewValidationError(
			"Missing required fields. Please provide email, product, quantity, and totalPrice.")
	}
	if req.Quantity < 0 {
		return model.NewValidationError("quantity must be a positive integer")
	}
	if req.TotalPrice < 0 {
		return model.NewValidationError("totalPrice cannot be negative")
	}
	return nil
}

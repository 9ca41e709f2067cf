package handler

import (
	"encoding/json"
	"net/http"

	"bookmart/internal/model"
	"bookmart/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Create handles POST /api/orders requests. All business rules (product
// existence, stock sufficiency) live in the service layer; the handler only
// decodes and maps errors.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid request body", h.logger)
		return
	}

	order, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusCreated, "Order created successfully", order)
}

// Revenue handles GET /api/orders/revenue requests.
func (h *OrderHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	total, err := h.service.TotalRevenue(r.Context())
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, "Revenue calculated successfully", model.RevenueResponse{
		TotalRevenue: total,
	})
}

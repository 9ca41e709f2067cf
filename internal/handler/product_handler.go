package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"bookmart/internal/model"
	"bookmart/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// createProductPayload is the body of POST /api/products.
type createProductPayload struct {
	Product *model.CreateProductRequest `json:"product"`
}

// Create handles POST /api/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload createProductPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeValidationError(w, "invalid request body", h.logger)
		return
	}
	if payload.Product == nil {
		writeValidationError(w, "product payload is required", h.logger)
		return
	}

	product, err := h.service.Create(r.Context(), payload.Product)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusCreated, "Book created successfully", product)
}

// GetAll handles GET /api/products requests, optionally filtered by the
// searchTerm query parameter.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	searchTerm := r.URL.Query().Get("searchTerm")

	products, err := h.service.Search(r.Context(), searchTerm)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, "Books retrieved successfully", products)
}

// GetByID handles GET /api/products/{productId} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDFromPath(w, r, h.logger)
	if !ok {
		return
	}

	product, err := h.service.GetByID(r.Context(), productID)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, "Book retrieved successfully", product)
}

// Update handles PUT /api/products/{productId} requests with a partial body.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDFromPath(w, r, h.logger)
	if !ok {
		return
	}

	var req model.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeValidationError(w, "invalid request body", h.logger)
		return
	}

	product, err := h.service.Update(r.Context(), productID, &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, "Book updated successfully", product)
}

// Delete handles DELETE /api/products/{productId} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDFromPath(w, r, h.logger)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), productID); err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, "Book deleted successfully", struct{}{})
}

// productIDFromPath extracts the product id segment from /api/products/{id}.
func productIDFromPath(w http.ResponseWriter, r *http.Request, logger zerolog.Logger) (string, bool) {
	productID := strings.TrimPrefix(r.URL.Path, "/api/products/")
	if productID == "" || strings.Contains(productID, "/") {
		writeValidationError(w, "product ID is required", logger)
		return "", false
	}
	return productID, true
}

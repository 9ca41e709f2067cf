package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bookmart/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderService is a mock implementation of OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Create(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderService) TotalRevenue(ctx context.Context) (float64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Error(1)
}

func TestOrderHandler_Create(t *testing.T) {
	logger := zerolog.Nop()

	productID := uuid.New()
	now := time.Now()
	savedOrder := &model.Order{
		ID:         uuid.New(),
		Email:      "reader@example.com",
		ProductID:  productID,
		Quantity:   2,
		TotalPrice: 20.00,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	tests := []struct {
		name           string
		body           string
		mockReturn     *model.Order
		mockError      error
		expectedStatus int
		expectService  bool
	}{
		{
			name:           "Success",
			body:           `{"email": "reader@example.com", "product": "` + productID.String() + `", "quantity": 2, "totalPrice": 20}`,
			mockReturn:     savedOrder,
			expectedStatus: http.StatusCreated,
			expectService:  true,
		},
		{
			name:           "Invalid JSON",
			body:           `{"email": `,
			expectedStatus: http.StatusBadRequest,
			expectService:  false,
		},
		{
			name:           "Missing fields map to 400",
			body:           `{"email": "reader@example.com"}`,
			mockError:      model.NewValidationError("Missing required fields. Please provide email, product, quantity, and totalPrice."),
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:           "Missing product maps to 404",
			body:           `{"email": "reader@example.com", "product": "` + uuid.New().String() + `", "quantity": 2, "totalPrice": 20}`,
			mockError:      model.ErrProductNotFound,
			expectedStatus: http.StatusNotFound,
			expectService:  true,
		},
		{
			name:           "Insufficient stock maps to 400 with availability",
			body:           `{"email": "reader@example.com", "product": "` + productID.String() + `", "quantity": 99, "totalPrice": 990}`,
			mockError:      &model.InsufficientStockError{Available: 3},
			expectedStatus: http.StatusBadRequest,
			expectService:  true,
		},
		{
			name:           "Unexpected failure maps to 500",
			body:           `{"email": "reader@example.com", "product": "` + productID.String() + `", "quantity": 1, "totalPrice": 10}`,
			mockError:      errors.New("connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectService:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockOrderService)
			h := NewOrderHandler(mockService, logger)

			if tt.expectService {
				if tt.mockReturn != nil {
					mockService.On("Create", mock.Anything, mock.AnythingOfType("*model.CreateOrderRequest")).
						Return(tt.mockReturn, nil)
				} else {
					mockService.On("Create", mock.Anything, mock.AnythingOfType("*model.CreateOrderRequest")).
						Return(nil, tt.mockError)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader([]byte(tt.body)))
			w := httptest.NewRecorder()

			h.Create(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			resp := decodeResponse(t, w)
			if tt.expectedStatus == http.StatusCreated {
				assert.True(t, resp.Success)
				assert.Equal(t, "Order created successfully", resp.Message)
				assert.NotNil(t, resp.Data)
			} else {
				assert.False(t, resp.Success)
			}

			if !tt.expectService {
				mockService.AssertNotCalled(t, "Create")
			}
		})
	}
}

func TestOrderHandler_Create_SurfacesAvailableQuantity(t *testing.T) {
	logger := zerolog.Nop()

	mockService := new(MockOrderService)
	h := NewOrderHandler(mockService, logger)

	mockService.On("Create", mock.Anything, mock.AnythingOfType("*model.CreateOrderRequest")).
		Return(nil, &model.InsufficientStockError{Available: 7})

	body := `{"email": "a@b.c", "product": "` + uuid.New().String() + `", "quantity": 8, "totalPrice": 80}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader([]byte(body)))
	w := httptest.NewRecorder()

	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Contains(t, resp.Message, "Only 7 items are available")
}

func TestOrderHandler_Revenue(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockOrderService)
		h := NewOrderHandler(mockService, logger)

		mockService.On("TotalRevenue", mock.Anything).Return(25.0, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/revenue", nil)
		w := httptest.NewRecorder()

		h.Revenue(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		assert.True(t, resp.Success)
		assert.Equal(t, "Revenue calculated successfully", resp.Message)

		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, 25.0, data["totalRevenue"])
	})

	t.Run("Zero revenue is still a success", func(t *testing.T) {
		mockService := new(MockOrderService)
		h := NewOrderHandler(mockService, logger)

		mockService.On("TotalRevenue", mock.Anything).Return(0.0, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/orders/revenue", nil)
		w := httptest.NewRecorder()

		h.Revenue(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, 0.0, data["totalRevenue"])
	})

	t.Run("Failure maps to 500", func(t *testing.T) {
		mockService := new(MockOrderService)
		h := NewOrderHandler(mockService, logger)

		mockService.On("TotalRevenue", mock.Anything).Return(0.0, errors.New("timeout"))

		req := httptest.NewRequest(http.MethodGet, "/api/orders/revenue", nil)
		w := httptest.NewRecorder()

		h.Revenue(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

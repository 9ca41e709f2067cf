package router

import (
	"net/http"
	"strings"

	"bookmart/internal/handler"
	"bookmart/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Root greeting
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Hello World!"))
	})

	// Product collection and item routes
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		// Item route: /api/products/{productId}
		if r.URL.Path != "/api/products" && r.URL.Path != "/api/products/" {
			switch r.Method {
			case http.MethodGet:
				productHandler.GetByID(w, r)
			case http.MethodPut:
				productHandler.Update(w, r)
			case http.MethodDelete:
				productHandler.Delete(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		// Collection route: /api/products
		switch r.Method {
		case http.MethodPost:
			productHandler.Create(w, r)
		case http.MethodGet:
			productHandler.GetAll(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}

	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Order routes
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet && strings.TrimSuffix(r.URL.Path, "/") == "/api/orders/revenue" {
			orderHandler.Revenue(w, r)
			return
		}

		if r.Method == http.MethodPost && (r.URL.Path == "/api/orders" || r.URL.Path == "/api/orders/") {
			orderHandler.Create(w, r)
			return
		}

		http.Error(w, "not found", http.StatusNotFound)
	}

	mux.HandleFunc("/api/orders", orderRouteHandler)
	mux.HandleFunc("/api/orders/", orderRouteHandler)

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}

package httpapi

import (
	"net/http"
	"time"

	"github.com/eugenyefimov/go-shop/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewRouter assembles the full HTTP surface: catalog pages, cart, checkout,
// orders and the demo login, behind the shared middleware stack.
func NewRouter(
	catalog CatalogService,
	carts CartService,
	orders OrderService,
	users UserService,
	sessions session.Store,
	codec *session.Codec,
	requestTimeout time.Duration,
) http.Handler {
	productHandler := NewProductHandler(catalog)
	cartHandler := NewCartHandler(carts, sessions)
	ordersHandler := NewOrdersHandler(orders, sessions)
	userHandler := NewUserHandler(users, sessions, codec)

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(SessionMiddleware(sessions, codec))

	// Catalog landing page
	r.Get("/", productHandler.List)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", productHandler.List)
		r.Post("/", productHandler.List)
		r.Get("/api/products", productHandler.APIList)
		r.Get("/api/products/{product_id}", productHandler.APIGet)
		r.Get("/{product_id}", productHandler.Detail)
	})

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", cartHandler.View)
		r.Post("/add", cartHandler.Add)
		r.Post("/remove", cartHandler.Remove)
		r.Post("/remove-item", cartHandler.Remove)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", ordersHandler.List)
		r.Get("/checkout", ordersHandler.CheckoutForm)
		r.Post("/checkout", ordersHandler.CheckoutSubmit)
		r.Get("/{order_id}", ordersHandler.Confirmation)
	})

	r.Route("/user", func(r chi.Router) {
		r.Get("/login", userHandler.LoginForm)
		r.Post("/login", userHandler.Login)
		r.Get("/logout", userHandler.Logout)
		r.Get("/profile", userHandler.Profile)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "not_found", "page not found")
	})

	return otelhttp.NewHandler(r, "go-shop")
}

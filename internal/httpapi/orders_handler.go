package httpapi

import (
	"context"
	"net/http"

	"github.com/eugenyefimov/go-shop/internal/domain"
	"github.com/eugenyefimov/go-shop/internal/order"
	"github.com/eugenyefimov/go-shop/internal/session"
	"github.com/go-chi/chi/v5"
)

type OrderService interface {
	Preview(ctx context.Context, cartID string) (*order.Preview, error)
	Checkout(ctx context.Context, cartID, userID string, customer domain.Customer) (*domain.Order, error)
	Confirmation(ctx context.Context, orderID string) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}

type OrdersHandler struct {
	orders   OrderService
	sessions session.Store
}

func NewOrdersHandler(orders OrderService, sessions session.Store) *OrdersHandler {
	return &OrdersHandler{orders: orders, sessions: sessions}
}

// List returns the logged-in user's orders. Order history is session-gated
// and filtered by user id.
func (h *OrdersHandler) List(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	if !sess.LoggedIn() {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "please log in to view your orders")
		return
	}

	orders, err := h.orders.ListByUser(r.Context(), sess.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}

// CheckoutForm is the GET half of checkout: the guarded cart contents that
// the submit would turn into an order.
func (h *OrdersHandler) CheckoutForm(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	preview, err := h.orders.Preview(r.Context(), sess.CartID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, preview)
}

func (h *OrdersHandler) CheckoutSubmit(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())

	customer := domain.Customer{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Address: r.FormValue("address"),
	}

	created, err := h.orders.Checkout(r.Context(), sess.CartID, sess.UserID, customer)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	// The cart document is gone; drop the session's reference to it.
	sess.CartID = ""
	if err := h.sessions.Save(r.Context(), sess); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

func (h *OrdersHandler) Confirmation(w http.ResponseWriter, r *http.Request) {
	found, err := h.orders.Confirmation(r.Context(), chi.URLParam(r, "order_id"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, found)
}

package httpapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/eugenyefimov/go-shop/internal/cart"
	"github.com/eugenyefimov/go-shop/internal/domain"
	"github.com/eugenyefimov/go-shop/internal/session"
	"github.com/google/uuid"
)

type CartService interface {
	AddItem(ctx context.Context, cartID, productID string, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, cartID, productID string) (*domain.Cart, error)
	View(ctx context.Context, cartID string) (*cart.View, error)
}

type CartHandler struct {
	carts    CartService
	sessions session.Store
}

func NewCartHandler(carts CartService, sessions session.Store) *CartHandler {
	return &CartHandler{carts: carts, sessions: sessions}
}

func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	cartID, err := h.cartID(r)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	view, err := h.carts.View(r.Context(), cartID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	productID := r.FormValue("product_id")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "validation_failed", "product id is required")
		return
	}

	// Missing or non-numeric quantity defaults to a single unit.
	quantity := 1
	if raw := r.FormValue("quantity"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			quantity = parsed
		}
	}
	if quantity < 1 {
		respondError(w, http.StatusBadRequest, "validation_failed", "quantity must be a positive integer")
		return
	}

	cartID, err := h.cartID(r)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	updated, err := h.carts.AddItem(r.Context(), cartID, productID, quantity)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, updated)
}

func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	productID := r.FormValue("product_id")
	if productID == "" {
		respondError(w, http.StatusBadRequest, "validation_failed", "product id is required")
		return
	}

	cartID, err := h.cartID(r)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	updated, err := h.carts.RemoveItem(r.Context(), cartID, productID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated)
}

// cartID returns the session's cart id, minting one on first cart access.
func (h *CartHandler) cartID(r *http.Request) (string, error) {
	sess := SessionFromContext(r.Context())
	if sess.CartID == "" {
		sess.CartID = uuid.NewString()
		if err := h.sessions.Save(r.Context(), sess); err != nil {
			return "", err
		}
	}
	return sess.CartID, nil
}

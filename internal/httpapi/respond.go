package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/eugenyefimov/go-shop/internal/cart"
	"github.com/eugenyefimov/go-shop/internal/order"
	"github.com/eugenyefimov/go-shop/internal/store"
	"github.com/eugenyefimov/go-shop/internal/user"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// respondServiceError maps the error taxonomy to HTTP once, for every
// handler: NotFound 404, EmptyCart and ValidationFailed 400,
// invalid credentials 401, everything else (including StoreUnavailable) a
// generic 500.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, "not_found", "resource not found")
	case errors.Is(err, order.ErrEmptyCart), errors.Is(err, cart.ErrCartEmpty):
		respondError(w, http.StatusBadRequest, "empty_cart", "your cart is empty")
	case errors.Is(err, order.ErrMissingFields):
		respondError(w, http.StatusBadRequest, "validation_failed", "please fill in all required fields")
	case errors.Is(err, user.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials")
	default:
		log.Printf("request failed: %v", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

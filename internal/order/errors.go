package order

import "errors"

var (
	ErrEmptyCart     = errors.New("cart is empty, nothing to checkout")
	ErrMissingFields = errors.New("name, email and address are required")
)

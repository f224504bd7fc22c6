package store

import "errors"

var (
	ErrNotFound          = errors.New("document not found")
	ErrUnavailable       = errors.New("document store unavailable")
	ErrMalformedDocument = errors.New("malformed document")
)

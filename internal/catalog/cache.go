package catalog

import (
	"context"
	"errors"

	"github.com/eugenyefimov/go-shop/internal/domain"
)

type ProductCache interface {
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	SetProduct(ctx context.Context, product *domain.Product) error
	GetList(ctx context.Context) ([]domain.Product, error)
	SetList(ctx context.Context, products []domain.Product) error
}

var ErrCacheMiss = errors.New("cache miss")

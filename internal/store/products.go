package store

import (
	"context"
	"fmt"

	"github.com/eugenyefimov/go-shop/internal/domain"
)

// Products is the typed accessor over the products collection. Documents
// are validated on the way out: a product whose price does not parse as a
// decimal is reported as ErrMalformedDocument rather than leaking into
// arithmetic downstream.
type Products struct {
	client     *Client
	collection string
}

func NewProducts(client *Client, collection string) *Products {
	return &Products{client: client, collection: collection}
}

func (p *Products) Get(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	if err := p.client.Get(ctx, p.collection, id, &product); err != nil {
		return nil, err
	}
	if err := validateProduct(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

// List scans the full collection. An empty collection yields an empty
// slice, never nil, so callers render [] rather than null.
func (p *Products) List(ctx context.Context) ([]domain.Product, error) {
	products := []domain.Product{}
	if err := p.client.Scan(ctx, p.collection, &products); err != nil {
		return nil, err
	}
	for i := range products {
		if err := validateProduct(&products[i]); err != nil {
			return nil, err
		}
	}
	return products, nil
}

func (p *Products) Put(ctx context.Context, product *domain.Product) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	return p.client.Put(ctx, p.collection, product.ID, product)
}

func validateProduct(p *domain.Product) error {
	if p.ID == "" {
		return fmt.Errorf("%w: product missing id", ErrMalformedDocument)
	}
	if _, err := p.UnitPrice(); err != nil {
		return fmt.Errorf("%w: product %s price %q: %v", ErrMalformedDocument, p.ID, p.Price, err)
	}
	return nil
}

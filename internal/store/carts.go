package store

import (
	"context"
	"fmt"

	"github.com/eugenyefimov/go-shop/internal/domain"
)

// Carts is the typed accessor over the carts collection.
type Carts struct {
	client     *Client
	collection string
}

func NewCarts(client *Client, collection string) *Carts {
	return &Carts{client: client, collection: collection}
}

func (c *Carts) Get(ctx context.Context, id string) (*domain.Cart, error) {
	var cart domain.Cart
	if err := c.client.Get(ctx, c.collection, id, &cart); err != nil {
		return nil, err
	}
	if cart.ID == "" {
		return nil, fmt.Errorf("%w: cart missing id", ErrMalformedDocument)
	}
	return &cart, nil
}

func (c *Carts) Put(ctx context.Context, cart *domain.Cart) error {
	if cart.ID == "" {
		return fmt.Errorf("%w: cart missing id", ErrMalformedDocument)
	}
	return c.client.Put(ctx, c.collection, cart.ID, cart)
}

func (c *Carts) Delete(ctx context.Context, id string) error {
	return c.client.Delete(ctx, c.collection, id)
}

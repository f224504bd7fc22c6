package store

import (
	"context"
	"fmt"

	"github.com/eugenyefimov/go-shop/internal/domain"
	"github.com/shopspring/decimal"
)

// Orders is the typed accessor over the orders collection. Orders are
// written once at checkout and never mutated afterwards.
type Orders struct {
	client     *Client
	collection string
}

func NewOrders(client *Client, collection string) *Orders {
	return &Orders{client: client, collection: collection}
}

func (o *Orders) Get(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	if err := o.client.Get(ctx, o.collection, id, &order); err != nil {
		return nil, err
	}
	if err := validateOrder(&order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (o *Orders) Put(ctx context.Context, order *domain.Order) error {
	if err := validateOrder(order); err != nil {
		return err
	}
	return o.client.Put(ctx, o.collection, order.ID, order)
}

func (o *Orders) Scan(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := o.client.Scan(ctx, o.collection, &orders); err != nil {
		return nil, err
	}
	for i := range orders {
		if err := validateOrder(&orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func validateOrder(o *domain.Order) error {
	if o.ID == "" {
		return fmt.Errorf("%w: order missing id", ErrMalformedDocument)
	}
	if _, err := decimal.NewFromString(o.TotalAmount); err != nil {
		return fmt.Errorf("%w: order %s total_amount %q: %v", ErrMalformedDocument, o.ID, o.TotalAmount, err)
	}
	return nil
}

package order

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/eugenyefimov/go-shop/internal/domain"
	"github.com/eugenyefimov/go-shop/internal/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartStore interface {
	Get(ctx context.Context, id string) (*domain.Cart, error)
	Delete(ctx context.Context, id string) error
}

type OrderStore interface {
	Get(ctx context.Context, id string) (*domain.Order, error)
	Put(ctx context.Context, order *domain.Order) error
	Scan(ctx context.Context) ([]domain.Order, error)
}

type Catalog interface {
	Get(ctx context.Context, id string) (*domain.Product, error)
}

// Service drives the checkout state machine: guard the cart, validate the
// customer form, snapshot cart lines against the live catalog, persist an
// immutable pending order, then delete the cart. There is no payment step,
// no inventory decrement and no stock check.
type Service struct {
	carts   CartStore
	orders  OrderStore
	catalog Catalog
	events  Publisher
}

// NewService wires the checkout manager. events may be nil, in which case
// no order-created events are published.
func NewService(carts CartStore, orders OrderStore, catalog Catalog, events Publisher) *Service {
	return &Service{carts: carts, orders: orders, catalog: catalog, events: events}
}

// Preview is the GET half of checkout: the guarded cart contents with
// resolved products and the running total.
type Preview struct {
	Items       []domain.OrderItem `json:"items"`
	TotalAmount decimal.Decimal    `json:"total_amount"`
}

func (s *Service) Preview(ctx context.Context, cartID string) (*Preview, error) {
	cart, err := s.guardedCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	items, total, err := s.snapshot(ctx, cart)
	if err != nil {
		return nil, err
	}
	return &Preview{Items: items, TotalAmount: total}, nil
}

// Checkout validates the customer form, snapshots the cart and persists the
// order, then clears the cart document. If the cart delete fails after the
// order write the order stands; there is no compensation.
func (s *Service) Checkout(ctx context.Context, cartID, userID string, customer domain.Customer) (*domain.Order, error) {
	cart, err := s.guardedCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	if customer.Name == "" || customer.Email == "" || customer.Address == "" {
		return nil, ErrMissingFields
	}

	items, total, err := s.snapshot(ctx, cart)
	if err != nil {
		return nil, err
	}

	if userID == "" {
		userID = "guest"
	}

	now := time.Now()
	order := &domain.Order{
		ID:          uuid.NewString(),
		UserID:      userID,
		Customer:    customer,
		Items:       items,
		TotalAmount: total.String(),
		Status:      domain.OrderStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.orders.Put(ctx, order); err != nil {
		return nil, err
	}

	if err := s.carts.Delete(ctx, cartID); err != nil {
		return nil, err
	}

	if s.events != nil {
		event := OrderCreatedEvent{
			OrderID:     order.ID,
			UserID:      order.UserID,
			TotalAmount: order.TotalAmount,
			CreatedAt:   order.CreatedAt,
		}
		if err := s.events.OrderCreated(ctx, event); err != nil {
			log.Printf("failed to publish order event for order %s: %v", order.ID, err)
		}
	}

	return order, nil
}

// Confirmation is a pure read of a persisted order.
func (s *Service) Confirmation(ctx context.Context, orderID string) (*domain.Order, error) {
	return s.orders.Get(ctx, orderID)
}

// ListByUser scans the orders collection and filters by user id.
// A GSI-style query would avoid the scan; the collection contract only
// offers full scans.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	all, err := s.orders.Scan(ctx)
	if err != nil {
		return nil, err
	}

	orders := []domain.Order{}
	for _, o := range all {
		if o.UserID == userID {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (s *Service) guardedCart(ctx context.Context, cartID string) (*domain.Cart, error) {
	if cartID == "" {
		return nil, ErrEmptyCart
	}

	cart, err := s.carts.Get(ctx, cartID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEmptyCart
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}
	return cart, nil
}

// snapshot copies cart lines into order items, resolving the current
// product for each. Lines whose product has been deleted since are skipped
// rather than aborting the checkout.
func (s *Service) snapshot(ctx context.Context, cart *domain.Cart) ([]domain.OrderItem, decimal.Decimal, error) {
	items := []domain.OrderItem{}
	total := decimal.Zero

	for _, line := range cart.Items {
		product, err := s.catalog.Get(ctx, line.ProductID)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, decimal.Zero, err
		}

		price, err := product.UnitPrice()
		if err != nil {
			return nil, decimal.Zero, err
		}

		itemTotal := price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		items = append(items, domain.OrderItem{
			ProductID:   line.ProductID,
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    line.Quantity,
			ItemTotal:   itemTotal.String(),
		})
		total = total.Add(itemTotal)
	}

	return items, total, nil
}

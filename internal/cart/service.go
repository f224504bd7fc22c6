package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eugenyefimov/go-shop/internal/domain"
	"github.com/eugenyefimov/go-shop/internal/store"
	"github.com/shopspring/decimal"
)

// CartStore defines the cart persistence operations the manager needs.
// Consumers define this interface, not the store implementation.
type CartStore interface {
	Get(ctx context.Context, id string) (*domain.Cart, error)
	Put(ctx context.Context, cart *domain.Cart) error
}

// Catalog resolves product details for cart lines.
type Catalog interface {
	Get(ctx context.Context, id string) (*domain.Product, error)
}

// Service owns the read-modify-write cycle for a cart document. Every
// mutation is a plain read-then-put with no compare-and-swap: concurrent
// requests against the same cart id can race and the later put wins.
type Service struct {
	carts   CartStore
	catalog Catalog
}

func NewService(carts CartStore, catalog Catalog) *Service {
	return &Service{carts: carts, catalog: catalog}
}

// GetOrCreate reads the cart, lazily creating and persisting an empty one
// when absent. Concurrent first accesses may both write; last write wins.
func (s *Service) GetOrCreate(ctx context.Context, cartID string) (*domain.Cart, error) {
	cart, err := s.carts.Get(ctx, cartID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	cart = &domain.Cart{
		ID:        cartID,
		Items:     []domain.CartItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.carts.Put(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// AddItem merges quantity into an existing line for the product, or appends
// a new line: at most one line per distinct product id.
func (s *Service) AddItem(ctx context.Context, cartID, productID string, quantity int) (*domain.Cart, error) {
	cart, err := s.carts.Get(ctx, cartID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		now := time.Now()
		cart = &domain.Cart{
			ID:        cartID,
			Items:     []domain.CartItem{},
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	if item := cart.Item(productID); item != nil {
		item.Quantity += quantity
	} else {
		cart.Items = append(cart.Items, domain.CartItem{ProductID: productID, Quantity: quantity})
	}
	cart.UpdatedAt = time.Now()

	if err := s.carts.Put(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem filters out the line for productID. Removing a product that is
// not in the cart is a silent success; a cart that does not exist at all
// reports ErrCartEmpty.
func (s *Service) RemoveItem(ctx context.Context, cartID, productID string) (*domain.Cart, error) {
	cart, err := s.carts.Get(ctx, cartID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCartEmpty
		}
		return nil, err
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept
	cart.UpdatedAt = time.Now()

	if err := s.carts.Put(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// ViewLine is a cart line joined with its product detail.
type ViewLine struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Product   domain.Product  `json:"product"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type View struct {
	CartID string          `json:"cart_id"`
	Lines  []ViewLine      `json:"items"`
	Total  decimal.Decimal `json:"total"`
}

// View resolves each line's product and computes decimal line totals and
// their sum. Lines whose product no longer exists are silently skipped.
func (s *Service) View(ctx context.Context, cartID string) (*View, error) {
	cart, err := s.GetOrCreate(ctx, cartID)
	if err != nil {
		return nil, err
	}

	view := &View{
		CartID: cart.ID,
		Lines:  []ViewLine{},
		Total:  decimal.Zero,
	}

	for _, item := range cart.Items {
		product, err := s.catalog.Get(ctx, item.ProductID)
		if errors.Is(err, store.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		price, err := product.UnitPrice()
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", product.ID, err)
		}

		lineTotal := price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		view.Lines = append(view.Lines, ViewLine{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Product:   *product,
			LineTotal: lineTotal,
		})
		view.Total = view.Total.Add(lineTotal)
	}

	return view, nil
}

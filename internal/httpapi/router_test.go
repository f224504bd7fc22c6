package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/eugenyefimov/go-shop/internal/cart"
	"github.com/eugenyefimov/go-shop/internal/domain"
	"github.com/eugenyefimov/go-shop/internal/order"
	"github.com/eugenyefimov/go-shop/internal/session"
	"github.com/eugenyefimov/go-shop/internal/store"
	"github.com/eugenyefimov/go-shop/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memProducts struct {
	m        sync.RWMutex
	products map[string]domain.Product
}

func (p *memProducts) Get(_ context.Context, id string) (*domain.Product, error) {
	p.m.RLock()
	defer p.m.RUnlock()
	product, ok := p.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &product, nil
}

func (p *memProducts) List(context.Context) ([]domain.Product, error) {
	p.m.RLock()
	defer p.m.RUnlock()
	all := make([]domain.Product, 0, len(p.products))
	for _, id := range []string{"1", "2"} {
		if product, ok := p.products[id]; ok {
			all = append(all, product)
		}
	}
	return all, nil
}

type memCarts struct {
	m     sync.Mutex
	carts map[string]*domain.Cart
}

func (c *memCarts) Get(_ context.Context, id string) (*domain.Cart, error) {
	c.m.Lock()
	defer c.m.Unlock()
	found, ok := c.carts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *found
	copied.Items = append([]domain.CartItem(nil), found.Items...)
	return &copied, nil
}

func (c *memCarts) Put(_ context.Context, cart *domain.Cart) error {
	c.m.Lock()
	defer c.m.Unlock()
	copied := *cart
	copied.Items = append([]domain.CartItem(nil), cart.Items...)
	c.carts[cart.ID] = &copied
	return nil
}

func (c *memCarts) Delete(_ context.Context, id string) error {
	c.m.Lock()
	defer c.m.Unlock()
	delete(c.carts, id)
	return nil
}

type memOrders struct {
	m      sync.Mutex
	orders map[string]*domain.Order
}

func (o *memOrders) Get(_ context.Context, id string) (*domain.Order, error) {
	o.m.Lock()
	defer o.m.Unlock()
	found, ok := o.orders[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return found, nil
}

func (o *memOrders) Put(_ context.Context, order *domain.Order) error {
	o.m.Lock()
	defer o.m.Unlock()
	o.orders[order.ID] = order
	return nil
}

func (o *memOrders) Scan(context.Context) ([]domain.Order, error) {
	o.m.Lock()
	defer o.m.Unlock()
	all := []domain.Order{}
	for _, found := range o.orders {
		all = append(all, *found)
	}
	return all, nil
}

type memSessions struct {
	m        sync.Mutex
	sessions map[string]*session.Session
}

func (s *memSessions) Get(_ context.Context, id string) (*session.Session, error) {
	s.m.Lock()
	defer s.m.Unlock()
	found, ok := s.sessions[id]
	if !ok {
		return nil, session.ErrSessionNotFound
	}
	copied := *found
	return &copied, nil
}

func (s *memSessions) Save(_ context.Context, sess *session.Session) error {
	s.m.Lock()
	defer s.m.Unlock()
	copied := *sess
	s.sessions[sess.ID] = &copied
	return nil
}

func (s *memSessions) Delete(_ context.Context, id string) error {
	s.m.Lock()
	defer s.m.Unlock()
	delete(s.sessions, id)
	return nil
}

type testEnv struct {
	router   http.Handler
	carts    *memCarts
	orders   *memOrders
	sessions *memSessions
	cookies  map[string]string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	products := &memProducts{products: map[string]domain.Product{
		"1": {ID: "1", Name: "Product 1", Description: "This is product 1", Price: "19.99", Stock: 10},
		"2": {ID: "2", Name: "Product 2", Description: "This is product 2", Price: "29.99", Stock: 5},
	}}
	carts := &memCarts{carts: map[string]*domain.Cart{}}
	orders := &memOrders{orders: map[string]*domain.Order{}}
	sessions := &memSessions{sessions: map[string]*session.Session{}}

	router := NewRouter(
		products,
		cart.NewService(carts, products),
		order.NewService(carts, orders, products, nil),
		user.NewService(),
		sessions,
		session.NewCodec("test-secret"),
		5*time.Second,
	)

	return &testEnv{
		router:   router,
		carts:    carts,
		orders:   orders,
		sessions: sessions,
		cookies:  map[string]string{},
	}
}

// do issues one request against the router, carrying cookies across calls
// like a browser would.
func (e *testEnv) do(t *testing.T, method, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for name, value := range e.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	for _, cookie := range rec.Result().Cookies() {
		e.cookies[cookie.Name] = cookie.Value
	}
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func (e *testEnv) login(t *testing.T) {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/user/login", url.Values{
		"email":    {"demo@example.com"},
		"password": {"password"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "healthy", body["status"])

	_, err := time.Parse(time.RFC3339, body["timestamp"])
	assert.NoError(t, err)
}

func TestUnknownRouteIsJSON404(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/no-such-page", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body ErrorResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "not_found", body.Code)
}

func TestSessionCookieIssuedOnce(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/health", nil)
	require.NotEmpty(t, rec.Result().Cookies(), "first request starts a session")
	first := env.cookies[sessionCookie]
	require.NotEmpty(t, first)

	rec = env.do(t, http.MethodGet, "/health", nil)
	assert.Empty(t, rec.Result().Cookies(), "known cookie is kept, not reissued")
	assert.Equal(t, first, env.cookies[sessionCookie])
}

func TestTamperedCookieStartsFreshSession(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodGet, "/health", nil)
	original := env.cookies[sessionCookie]

	env.cookies[sessionCookie] = original + "x"
	rec := env.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Result().Cookies(), "tampered cookie is replaced")
	assert.NotEqual(t, original, env.cookies[sessionCookie])
}

package httpapi

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/eugenyefimov/go-shop/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRoundtrip(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/user/login", url.Values{
		"email":    {"demo@example.com"},
		"password": {"password"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var identity user.Identity
	decodeBody(t, rec, &identity)
	assert.Equal(t, "demo-user", identity.UserID)
	assert.Equal(t, "demo@example.com", identity.Email)

	rec = env.do(t, http.MethodGet, "/user/profile", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &identity)
	assert.Equal(t, "demo-user", identity.UserID)
}

func TestLogin_RotatesSessionAndKeepsCart(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/cart/add", url.Values{"product_id": {"1"}, "quantity": {"2"}})
	before := env.cookies[sessionCookie]
	require.NotEmpty(t, before)

	env.login(t)

	// A fresh session id is issued and the old session document is gone.
	assert.NotEqual(t, before, env.cookies[sessionCookie])
	assert.Len(t, env.sessions.sessions, 1)

	// The cart reference moved to the new session.
	rec := env.do(t, http.MethodGet, "/cart/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"quantity":2`)
}

func TestLogin_BadCredentials(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/user/login", url.Values{
		"email":    {"demo@example.com"},
		"password": {"wrong"},
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body ErrorResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, "invalid_credentials", body.Code)

	rec = env.do(t, http.MethodGet, "/user/profile", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	rec := env.do(t, http.MethodGet, "/user/logout", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/user/profile", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout_KeepsCart(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)
	env.do(t, http.MethodPost, "/cart/add", url.Values{"product_id": {"1"}})

	rec := env.do(t, http.MethodGet, "/user/logout", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Logging out drops identity only, not the session's cart.
	rec = env.do(t, http.MethodGet, "/cart/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"product_id":"1"`)
}

func TestLoginForm(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/user/login", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

package httpapi

import (
	"context"
	"net/http"

	"github.com/eugenyefimov/go-shop/internal/session"
)

type ctxKey int

const sessionKey ctxKey = iota

const sessionCookie = "session_id"

// SessionMiddleware resolves the browser session from the signed cookie,
// starting a fresh session when the cookie is absent, unknown or tampered.
// The resolved session travels in the request context; handlers that
// mutate it persist it through the session store.
func SessionMiddleware(sessions session.Store, codec *session.Codec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := resolveSession(r, sessions, codec)
			if sess == nil {
				sess = session.New()
				if err := sessions.Save(r.Context(), sess); err != nil {
					respondServiceError(w, err)
					return
				}
				setSessionCookie(w, codec, sess.ID)
			}

			ctx := context.WithValue(r.Context(), sessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveSession(r *http.Request, sessions session.Store, codec *session.Codec) *session.Session {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return nil
	}

	id, err := codec.Decode(cookie.Value)
	if err != nil {
		return nil
	}

	sess, err := sessions.Get(r.Context(), id)
	if err != nil {
		return nil
	}
	return sess
}

func setSessionCookie(w http.ResponseWriter, codec *session.Codec, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    codec.Encode(id),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionFromContext returns the session placed by SessionMiddleware, or
// nil outside of it.
func SessionFromContext(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(sessionKey).(*session.Session)
	return sess
}

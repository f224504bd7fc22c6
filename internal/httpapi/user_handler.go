package httpapi

import (
	"log"
	"net/http"

	"github.com/eugenyefimov/go-shop/internal/session"
	"github.com/eugenyefimov/go-shop/internal/user"
)

type UserService interface {
	Login(email, password string) (*user.Identity, error)
}

type UserHandler struct {
	users    UserService
	sessions session.Store
	codec    *session.Codec
}

func NewUserHandler(users UserService, sessions session.Store, codec *session.Codec) *UserHandler {
	return &UserHandler{users: users, sessions: sessions, codec: codec}
}

func (h *UserHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "log in with email and password"})
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	identity, err := h.users.Login(r.FormValue("email"), r.FormValue("password"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	// Logging in rotates the session id. The cart reference moves to the
	// new session; the old session document is removed.
	old := SessionFromContext(r.Context())
	sess := session.New()
	sess.CartID = old.CartID
	sess.UserID = identity.UserID
	sess.UserEmail = identity.Email
	if err := h.sessions.Save(r.Context(), sess); err != nil {
		respondServiceError(w, err)
		return
	}
	if err := h.sessions.Delete(r.Context(), old.ID); err != nil {
		log.Printf("failed to delete session %s: %v", old.ID, err)
	}
	setSessionCookie(w, h.codec, sess.ID)

	respondJSON(w, http.StatusOK, identity)
}

func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	sess.UserID = ""
	sess.UserEmail = ""
	if err := h.sessions.Save(r.Context(), sess); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	if !sess.LoggedIn() {
		respondError(w, http.StatusUnauthorized, "unauthenticated", "please log in to view your profile")
		return
	}

	respondJSON(w, http.StatusOK, user.Identity{UserID: sess.UserID, Email: sess.UserEmail})
}

package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Session is the per-browser state correlating a cart id and optional
// identity across requests. The browser holds only the opaque signed id;
// the document itself lives in the session store.
type Session struct {
	ID        string    `json:"id"`
	CartID    string    `json:"cart_id,omitempty"`
	UserID    string    `json:"user_id,omitempty"`
	UserEmail string    `json:"user_email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func New() *Session {
	return &Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
	}
}

func (s *Session) LoggedIn() bool {
	return s.UserID != ""
}

type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Delete(ctx context.Context, id string) error
}

var ErrSessionNotFound = errors.New("session not found")

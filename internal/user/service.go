package user

import (
	"crypto/subtle"
	"errors"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Identity is the logged-in user as the session sees it.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Service checks the single hardcoded demo credential pair. This is a demo
// stand-in, not a security control: no registration, no password storage,
// no user directory, no lockout.
type Service struct {
	email    string
	password string
	userID   string
}

func NewService() *Service {
	return &Service{
		email:    "demo@example.com",
		password: "password",
		userID:   "demo-user",
	}
}

func (s *Service) Login(email, password string) (*Identity, error) {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.email)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !emailOK || !passOK {
		return nil, ErrInvalidCredentials
	}
	return &Identity{UserID: s.userID, Email: s.email}, nil
}

package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidCookie = errors.New("invalid session cookie")

// Codec signs the opaque session id for the cookie so a client cannot
// forge another session's id. Tampered values fail Decode and the caller
// starts a fresh session.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

func (c *Codec) Encode(id string) string {
	return id + "." + base64.RawURLEncoding.EncodeToString(c.sign(id))
}

func (c *Codec) Decode(value string) (string, error) {
	id, sig, ok := strings.Cut(value, ".")
	if !ok || id == "" {
		return "", ErrInvalidCookie
	}

	got, err := base64.RawURLEncoding.DecodeString(sig)
	if err != nil {
		return "", ErrInvalidCookie
	}
	if !hmac.Equal(got, c.sign(id)) {
		return "", ErrInvalidCookie
	}
	return id, nil
}

func (c *Codec) sign(id string) []byte {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(id))
	return mac.Sum(nil)
}

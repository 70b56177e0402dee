package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoCredential is returned by Claims on an absent session.
var ErrNoCredential = errors.New("no credential")

// Claims is what the CLI shows about the current credential.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// Expired reports whether the token is past its expiry at now.
// A token without expiry never expires.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// ParseClaims decodes the payload of a JWT without checking its signature.
// The backend is the only party that verifies tokens; the result is for
// display and must not be used to decide whether to send a request.
func ParseClaims(token string) (Claims, error) {
	if token == "" {
		return Claims{}, ErrNoCredential
	}

	var rc jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &rc); err != nil {
		return Claims{}, fmt.Errorf("parse token: %w", err)
	}

	c := Claims{Subject: rc.Subject}
	if rc.ExpiresAt != nil {
		c.ExpiresAt = rc.ExpiresAt.Time
	}
	return c, nil
}

// Claims decodes the current credential.
func (s *Session) Claims() (Claims, error) {
	return ParseClaims(s.Token())
}

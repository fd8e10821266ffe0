package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoSession = errors.New("no active session")

// Info is what the client can tell about a session from its access token
// without contacting the backend.
type Info struct {
	UserID    string
	ExpiresAt time.Time
	Expired   bool
}

type claims struct {
	jwt.RegisteredClaims
	UserID any `json:"user_id"`
}

// Inspect decodes the access token's claims without verifying the
// signature. The result is for display only and must not be used for
// authorization decisions.
func Inspect(token string, now time.Time) (*Info, error) {
	if token == "" {
		return nil, ErrNoSession
	}

	c := &claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, c); err != nil {
		return nil, fmt.Errorf("decode access token: %w", err)
	}

	info := &Info{}
	switch {
	case c.UserID != nil:
		info.UserID = fmt.Sprint(c.UserID)
	default:
		info.UserID = c.Subject
	}
	if c.ExpiresAt != nil {
		info.ExpiresAt = c.ExpiresAt.Time
		info.Expired = !now.Before(c.ExpiresAt.Time)
	}
	return info, nil
}

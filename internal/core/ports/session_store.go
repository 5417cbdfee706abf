package ports

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound is returned when a session id is unknown or expired.
var ErrSessionNotFound = errors.New("session not found")

// Session is a server-side login session referenced by the client cookie.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionStore persists login sessions between requests.
type SessionStore interface {
	Create(ctx context.Context, username, role string) (*Session, error)
	// Get returns ErrSessionNotFound when the id is unknown or expired.
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

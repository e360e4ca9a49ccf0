package model

import (
	"time"
)

// Session is the current authenticated identity held by the gateway for one
// browser. Token and user are always set or cleared together; a partial
// session is never stored.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	User      *User     `json:"user"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the session's user carries the admin role.
func (s *Session) IsAdmin() bool {
	return s != nil && s.User.IsAdmin()
}

// Valid reports whether the session holds both halves of the token/user pair.
func (s *Session) Valid() bool {
	return s != nil && s.Token != "" && s.User != nil
}

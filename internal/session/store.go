// Package session owns the gateway's only mutable state: the current
// authenticated identity per browser. Login, Logout and Restore are the only
// mutators; everything else in the application reads sessions through here.
package session

import (
	"context"
	"errors"

	"github.com/vactrack/clinic-gateway/internal/model"
)

var (
	// ErrNoSession is returned when no complete token/user pair exists for
	// the given id.
	ErrNoSession = errors.New("no session")

	// ErrAuthFailed covers both rejected credentials and upstream failures
	// during login; callers surface it to the user and never retry.
	ErrAuthFailed = errors.New("authentication failed")
)

// Store persists sessions. Implementations must only ever hold complete
// sessions: a record with token but no user (or vice versa) is never written.
type Store interface {
	Put(ctx context.Context, s *model.Session) error
	Get(ctx context.Context, id string) (*model.Session, error)
	Delete(ctx context.Context, id string) error
}

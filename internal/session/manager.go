package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/vactrack/clinic-gateway/internal/model"
	"github.com/vactrack/clinic-gateway/pkg/logger"
)

// APIClient is the slice of the upstream client the session manager needs.
type APIClient interface {
	Login(ctx context.Context, email, password string) (*model.AuthResponse, error)
	Register(ctx context.Context, name, email, password string) (*model.AuthResponse, error)
	ExchangeOAuthCode(ctx context.Context, provider, code, redirectURI string) (string, error)
	GetUser(ctx context.Context, token string) (*model.User, error)
}

// Manager owns the session lifecycle. It is injected wherever session state
// is read or mutated; there is no ambient global.
type Manager struct {
	api   APIClient
	store Store
	log   *logger.Logger
}

func NewManager(api APIClient, store Store, log *logger.Logger) *Manager {
	return &Manager{api: api, store: store, log: log}
}

// Login exchanges credentials for a token/user pair and stores them as one
// session. Rejected credentials and network failures both come back wrapped
// in ErrAuthFailed; the caller shows the error and the user retries manually.
func (m *Manager) Login(ctx context.Context, email, password string) (*model.Session, error) {
	auth, err := m.api.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	return m.activate(ctx, auth.Token, auth.User)
}

// Register creates an account upstream; the contract is otherwise identical
// to Login.
func (m *Manager) Register(ctx context.Context, name, email, password string) (*model.Session, error) {
	auth, err := m.api.Register(ctx, name, email, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	return m.activate(ctx, auth.Token, auth.User)
}

// Complete activates a session from a token obtained out-of-band (the OAuth
// redirect flow), fetching the user profile behind it.
func (m *Manager) Complete(ctx context.Context, token string) (*model.Session, error) {
	user, err := m.api.GetUser(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}
	return m.activate(ctx, token, user)
}

// Logout deletes the session. Token and user are cleared together, and the
// call always succeeds: logging out an unknown id is a no-op.
func (m *Manager) Logout(ctx context.Context, id string) error {
	if err := m.store.Delete(ctx, id); err != nil {
		m.log.Error(err, "failed to delete session", "session_id", id)
	}
	return nil
}

// Restore re-activates a stored session without any upstream round-trip.
// The token is stale-until-proven-otherwise: the first proxied call that
// fails with 401 is what invalidates it.
func (m *Manager) Restore(ctx context.Context, id string) (*model.Session, error) {
	if id == "" {
		return nil, ErrNoSession
	}
	return m.store.Get(ctx, id)
}

func (m *Manager) activate(ctx context.Context, token string, user *model.User) (*model.Session, error) {
	sess := &model.Session{
		ID:        uuid.New().String(),
		Token:     token,
		User:      user,
		ExpiresAt: tokenExpiry(token),
		CreatedAt: time.Now(),
	}
	if err := m.store.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}

	m.log.Info("session activated", "user_id", user.ID, "role", user.Role)
	return sess, nil
}

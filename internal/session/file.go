package session

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/vactrack/clinic-gateway/internal/model"
)

// fileRecord is the on-disk shape of one session: the same fixed token/user
// key pair the browser app kept in local storage.
type fileRecord struct {
	Token     string      `json:"token"`
	User      *model.User `json:"user"`
	ExpiresAt time.Time   `json:"expires_at,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// FileStore persists sessions to a JSON snapshot on disk and reads it once
// at construction. Restoring from the snapshot needs no upstream round-trip:
// a stored token/user pair is trusted until an API call proves otherwise.
type FileStore struct {
	mu       sync.Mutex
	path     string
	sessions map[string]fileRecord
}

func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:     path,
		sessions: make(map[string]fileRecord),
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &s.sessions); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *FileStore) Put(_ context.Context, sess *model.Session) error {
	if !sess.Valid() {
		return ErrNoSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[sess.ID] = fileRecord{
		Token:     sess.Token,
		User:      sess.User,
		ExpiresAt: sess.ExpiresAt,
		CreatedAt: sess.CreatedAt,
	}
	return s.flush()
}

func (s *FileStore) Get(_ context.Context, id string) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.sessions[id]
	if !ok || rec.Token == "" || rec.User == nil {
		return nil, ErrNoSession
	}
	return &model.Session{
		ID:        id,
		Token:     rec.Token,
		User:      rec.User,
		ExpiresAt: rec.ExpiresAt,
		CreatedAt: rec.CreatedAt,
	}, nil
}

func (s *FileStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return s.flush()
}

func (s *FileStore) flush() error {
	payload, err := json.MarshalIndent(s.sessions, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, payload, 0o600)
}

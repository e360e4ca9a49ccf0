package session

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/vactrack/clinic-gateway/internal/model"
)

// MemoryStore keeps sessions in process memory with a TTL. Default store
// when neither redis nor a session file is configured.
type MemoryStore struct {
	cache *gocache.Cache
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (s *MemoryStore) Put(_ context.Context, sess *model.Session) error {
	if !sess.Valid() {
		return ErrNoSession
	}
	s.cache.SetDefault(sess.ID, sess)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*model.Session, error) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, ErrNoSession
	}
	sess := v.(*model.Session)
	if !sess.Valid() {
		return nil, ErrNoSession
	}
	return sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.cache.Delete(id)
	return nil
}

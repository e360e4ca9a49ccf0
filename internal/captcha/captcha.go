// Package captcha issues the 4-digit challenge guarding the public contact
// form.
package captcha

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// Challenge is handed to the browser; only the ID comes back with the form.
type Challenge struct {
	ID   string `json:"id"`
	Code string `json:"code"`
}

type Service struct {
	codes *gocache.Cache
}

func NewService(ttl time.Duration) *Service {
	return &Service{
		codes: gocache.New(ttl, 2*ttl),
	}
}

// Issue generates a fresh 4-digit challenge.
func (s *Service) Issue() Challenge {
	ch := Challenge{
		ID:   uuid.New().String(),
		Code: fmt.Sprintf("%04d", 1000+rand.Intn(9000)),
	}
	s.codes.SetDefault(ch.ID, ch.Code)
	return ch
}

// Verify checks an answer against the issued code. Challenges are single
// use: a match consumes the code, and a miss forces a fresh challenge.
func (s *Service) Verify(id, answer string) bool {
	v, ok := s.codes.Get(id)
	if !ok {
		return false
	}
	s.codes.Delete(id)
	return v.(string) == answer
}

package httpapi

import (
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/alexanderramin/clientbuddy/internal/scenario"
)

// sessionStore keeps one scenario per id. The least recently used session
// is dropped when the store is full.
type sessionStore struct {
	cache *lru.Cache[string, *scenario.Machine]
	build func() *scenario.Machine
}

func newSessionStore(size int, build func() *scenario.Machine) (*sessionStore, error) {
	if size <= 0 {
		size = 256
	}
	cache, err := lru.New[string, *scenario.Machine](size)
	if err != nil {
		return nil, err
	}
	return &sessionStore{cache: cache, build: build}, nil
}

func (s *sessionStore) create() (string, *scenario.Machine) {
	id := uuid.NewString()
	m := s.build()
	s.cache.Add(id, m)
	return id, m
}

func (s *sessionStore) get(id string) (*scenario.Machine, error) {
	m, ok := s.cache.Get(id)
	if !ok {
		return nil, errSessionNotFound
	}
	return m, nil
}

func (s *sessionStore) remove(id string) bool {
	return s.cache.Remove(id)
}

func (s *sessionStore) len() int { return s.cache.Len() }

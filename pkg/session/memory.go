package session

import (
	"context"
	"log"
	"sync"
	"time"
)

// MemoryStore keeps conversation state in process memory. A background
// janitor evicts conversations idle longer than the TTL.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[string]*State
	ttl    time.Duration
	done   chan struct{}
	once   sync.Once
}

func NewMemoryStore(ttl, sweepInterval time.Duration) *MemoryStore {
	s := &MemoryStore{
		states: make(map[string]*State),
		ttl:    ttl,
		done:   make(chan struct{}),
	}
	if ttl > 0 && sweepInterval > 0 {
		go s.janitor(sweepInterval)
	}
	return s
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[id]
	if !ok {
		return nil, nil
	}
	return state.Clone(), nil
}

func (s *MemoryStore) Put(ctx context.Context, id string, state *State) error {
	clone := state.Clone()
	clone.UpdatedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[id] = clone
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, id)
	return nil
}

func (s *MemoryStore) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.evictIdle(time.Now())
		case <-s.done:
			return
		}
	}
}

func (s *MemoryStore) evictIdle(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, state := range s.states {
		if now.Sub(state.UpdatedAt) > s.ttl {
			log.Printf("session: evicting idle conversation %s", id)
			delete(s.states, id)
		}
	}
}

func (s *MemoryStore) Close() {
	s.once.Do(func() { close(s.done) })
}

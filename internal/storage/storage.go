package storage

import (
	"sync"

	"github.com/rovira-studio/atelier/internal/viewstate"
)

// StateStore keeps per-visitor view state, keyed by the visitor cookie.
type StateStore struct {
	states map[string]*viewstate.State
	mu     sync.RWMutex
}

func New() *StateStore {
	return &StateStore{
		states: make(map[string]*viewstate.State),
	}
}

func (s *StateStore) Get(visitorID string) (*viewstate.State, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, exists := s.states[visitorID]
	return state, exists
}

func (s *StateStore) Set(visitorID string, state *viewstate.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[visitorID] = state
}

func (s *StateStore) Delete(visitorID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.states, visitorID)
}

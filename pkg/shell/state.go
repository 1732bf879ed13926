package shell

import (
	"sync"

	"restaurant-menu/internal/data/entity"
)

// State holds the login of one interactive shell.
type State struct {
	mu      sync.RWMutex
	session *entity.Session
}

func NewState() *State {
	return &State{}
}

// Session returns the current login or nil.
func (s *State) Session() *entity.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *State) Login(session *entity.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
}

// Logout clears the login and returns the session that ended, if any.
func (s *State) Logout() *entity.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	ended := s.session
	s.session = nil
	return ended
}

package service

import "sync"

// SessionStore keeps one engine per chat in memory. Sessions are lost on restart.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*Engine
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]*Engine),
	}
}

// Start replaces any existing session for chatID with a fresh engine.
func (s *SessionStore) Start(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[chatID] = NewEngine()
}

// With runs fn against the chat's engine while holding the store lock.
// It reports false when the chat has no session.
func (s *SessionStore) With(chatID int64, fn func(e *Engine)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[chatID]
	if !ok {
		return false
	}
	fn(e)
	return true
}

func (s *SessionStore) End(chatID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[chatID]
	delete(s.sessions, chatID)
	return ok
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

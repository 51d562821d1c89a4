package server

import (
	"sync"

	"github.com/google/uuid"
	"github.com/jonathan/cv-assistant/internal/agent"
)

// SessionStore keeps in-flight conversation sessions in memory, keyed by a
// server-issued UUID. Sessions do not survive a restart.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*agent.Session
}

// NewSessionStore creates an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*agent.Session),
	}
}

// Put stores a session under a new ID and returns the ID.
func (s *SessionStore) Put(session *agent.Session) string {
	id := uuid.New().String()
	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()
	return id
}

// Get returns the session for id, or nil if unknown.
func (s *SessionStore) Get(id string) *agent.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

// Update replaces the session stored under id.
func (s *SessionStore) Update(id string, session *agent.Session) {
	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()
}

// Delete removes the session for id.
func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len returns the number of stored sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

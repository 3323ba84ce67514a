package session

import (
	"sync"

	"cogscreen-go/internal/models"
)

// Manager is the registry of active sessions, one per subject. It replaces
// the shared client-side store the original app used: session state is an
// explicit object looked up by subject ID, and persistence stays outside.
type Manager struct {
	mu       sync.Mutex
	sessions map[uint]*Session
}

// NewManager creates an empty registry.
func NewManager() *Manager {
	return &Manager{sessions: make(map[uint]*Session)}
}

// StartSession creates and starts a fresh session for the subject. Any
// existing session for the same subject is discarded, which is the
// cancellation model: an abandoned session simply never reaches completed.
func (m *Manager) StartSession(userID uint, questions []models.Question) (*Session, error) {
	s := NewSession(userID)
	if err := s.Start(questions); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.sessions[userID] = s
	m.mu.Unlock()
	return s, nil
}

// Get returns the subject's active session, if any.
func (m *Manager) Get(userID uint) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[userID]
	return s, ok
}

// Remove drops the subject's session from the registry.
func (m *Manager) Remove(userID uint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

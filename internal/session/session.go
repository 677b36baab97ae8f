// Package session tracks the dialog state of each chat talking to the
// service. The chat transport owns the conversation; this package only keeps
// an explicit state machine per session id so that multi-step flows (such as
// asking for a custom statistics range) survive between messages.
package session

import (
	"errors"
	"sync"
	"time"
)

// State is a dialog state. Transitions:
//
//	idle --Start--> active --AwaitRange--> awaiting-range --Resolve/Cancel--> active
//
// A session that has not been touched for the manager's TTL falls back to
// idle (it is forgotten entirely).
type State string

const (
	StateIdle          State = "idle"
	StateActive        State = "active"
	StateAwaitingRange State = "awaiting-range"
)

// Errors returned on invalid transitions.
var (
	ErrNotActive = errors.New("session is not active")
	ErrNotFound  = errors.New("session not found")
)

// Session is a snapshot of one chat's dialog state.
type Session struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	State     State     `json:"state"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Manager holds sessions in memory. All methods are safe for concurrent use.
type Manager struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*Session

	now func() time.Time // overridable in tests
}

// NewManager creates a Manager that expires sessions after ttl of inactivity.
// A non-positive ttl disables expiry.
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		ttl:      ttl,
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Start activates the session, creating it if needed. Restarting an existing
// session resets it to active and refreshes the username.
func (m *Manager) Start(id, username string) Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := &Session{ID: id, Username: username, State: StateActive, UpdatedAt: m.now()}
	m.sessions[id] = s
	return *s
}

// AwaitRange moves an active session into awaiting-range.
func (m *Manager) AwaitRange(id string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.lookup(id)
	if !ok {
		return Session{}, ErrNotFound
	}
	if s.State != StateActive {
		return Session{}, ErrNotActive
	}
	s.State = StateAwaitingRange
	s.UpdatedAt = m.now()
	return *s, nil
}

// Resolve returns an awaiting-range session to active. Called once the range
// dialog finished, whether a report was produced or not.
func (m *Manager) Resolve(id string) (Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.lookup(id)
	if !ok {
		return Session{}, ErrNotFound
	}
	s.State = StateActive
	s.UpdatedAt = m.now()
	return *s, nil
}

// Cancel forgets the session; the next Get reports idle.
func (m *Manager) Cancel(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Get returns the session's current state. Unknown or expired sessions are
// reported as idle.
func (m *Manager) Get(id string) Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.lookup(id); ok {
		return *s
	}
	return Session{ID: id, State: StateIdle}
}

// lookup returns the live session for id, reaping it first when expired.
// Caller must hold mu.
func (m *Manager) lookup(id string) (*Session, bool) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, false
	}
	if m.ttl > 0 && m.now().Sub(s.UpdatedAt) > m.ttl {
		delete(m.sessions, id)
		return nil, false
	}
	return s, true
}

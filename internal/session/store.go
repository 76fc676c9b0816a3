// Package session holds per-browser interactive state. Each session owns at
// most one imported dataset; a new import replaces it wholesale.
package session

import (
	"sync"
	"time"

	"github.com/LESLIE-RG/ProjetTestParam-trique/domain/core"
	"github.com/LESLIE-RG/ProjetTestParam-trique/domain/dataset"
)

// Session is the explicit per-session context object passed to screen
// handlers. Created when a browser first hits the app, cleared when the TTL
// sweep reaps it.
type Session struct {
	ID        core.SessionID
	CreatedAt time.Time

	mu       sync.RWMutex
	lastSeen time.Time
	table    *dataset.Table
}

// SetDataset replaces the current dataset wholesale
func (s *Session) SetDataset(t *dataset.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = t
}

// Dataset returns the current dataset, or (nil, false) when none has been
// imported yet.
func (s *Session) Dataset() (*dataset.Table, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.table == nil {
		return nil, false
	}
	return s.table, true
}

// ClearDataset drops the current dataset
func (s *Session) ClearDataset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = nil
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return now.Sub(s.lastSeen)
}

// Manager owns the live sessions and their lifecycle
type Manager struct {
	ttl time.Duration

	mu       sync.RWMutex
	sessions map[core.SessionID]*Session
}

// NewManager creates a session manager with the given idle TTL
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		ttl:      ttl,
		sessions: make(map[core.SessionID]*Session),
	}
}

// Create starts a new session
func (m *Manager) Create() *Session {
	now := time.Now()
	s := &Session{
		ID:        core.SessionID(core.NewID()),
		CreatedAt: now,
		lastSeen:  now,
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return s
}

// Get returns the session for an ID and refreshes its idle timer
func (m *Manager) Get(id core.SessionID) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if ok {
		s.touch(time.Now())
	}
	return s, ok
}

// GetOrCreate resumes the session for an ID, or starts a fresh one when the
// ID is unknown or expired.
func (m *Manager) GetOrCreate(id core.SessionID) *Session {
	if s, ok := m.Get(id); ok {
		return s
	}
	return m.Create()
}

// Count returns the number of live sessions
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep removes sessions idle past the TTL and returns how many were reaped
func (m *Manager) Sweep() int {
	now := time.Now()
	m.mu.Lock()
	defer m.mu.Unlock()
	reaped := 0
	for id, s := range m.sessions {
		if s.idleSince(now) > m.ttl {
			delete(m.sessions, id)
			reaped++
		}
	}
	return reaped
}

// StartSweeper runs Sweep on an interval until stop is closed
func (m *Manager) StartSweeper(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				m.Sweep()
			case <-stop:
				return
			}
		}
	}()
}

package dialog

import (
	"sync"

	"log/slog"

	"github.com/hksports/sportsbuddy/core/logger"
)

// Manager tracks dialogue sessions per user.
type Manager struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewManager constructs an empty Manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[int64]*Session)}
}

// Start creates a session for the user in the name step, seeding any
// pre-filled slots. An existing session is replaced.
func (m *Manager) Start(userID int64, defaultName string, pre Prefill) (*Session, Result) {
	s := &Session{
		DefaultName: defaultName,
		Sport:       pre.Sport,
		Location:    pre.Location,
		Time:        pre.Time,
	}
	res := Begin(s)

	m.mu.Lock()
	m.sessions[userID] = s
	m.mu.Unlock()

	logger.Dialog.Info("dialogue started",
		slog.String("event", "dialog.start"),
		slog.Int64("user_id", userID),
		slog.String("state", string(s.State)),
		slog.String("sport", pre.Sport),
	)
	return s, res
}

// Get returns the session for a user if one is active.
func (m *Manager) Get(userID int64) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[userID]
	return s, ok
}

// InProgress reports whether the user has an active dialogue.
func (m *Manager) InProgress(userID int64) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[userID]
	return ok && s.State != StateIdle
}

// Clear removes the session for a user.
func (m *Manager) Clear(userID int64) {
	m.mu.Lock()
	delete(m.sessions, userID)
	m.mu.Unlock()

	logger.Dialog.Debug("dialogue cleared",
		slog.String("event", "dialog.clear"),
		slog.Int64("user_id", userID),
	)
}

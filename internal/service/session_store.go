package service

import (
	"sync"
	"time"

	"wordcards/internal/domain"
)

// Session is the in-memory state of one user: the active question and any
// pending multi-step command
type Session struct {
	Quiz      *domain.QuizSession
	Dialog    domain.DialogData
	UpdatedAt time.Time
}

// SessionStore keeps sessions keyed by Telegram user id
type SessionStore interface {
	// Update runs fn on the user's session, creating an empty one if missing.
	// fn must not block; the store is locked while it runs.
	Update(userID int64, fn func(s *Session) error) error
	// EvictIdle removes sessions not updated since cutoff and returns how many
	EvictIdle(cutoff time.Time) int
	Len() int
}

// MemorySessionStore is a SessionStore backed by a map
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*Session
	now      func() time.Time
}

// NewMemorySessionStore creates an empty session store
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[int64]*Session),
		now:      time.Now,
	}
}

func (m *MemorySessionStore) Update(userID int64, fn func(s *Session) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[userID]
	if !ok {
		s = &Session{Dialog: domain.DialogData{State: domain.DialogIdle}}
		m.sessions[userID] = s
	}

	if err := fn(s); err != nil {
		return err
	}
	s.UpdatedAt = m.now()
	return nil
}

func (m *MemorySessionStore) EvictIdle(cutoff time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	evicted := 0
	for id, s := range m.sessions {
		if s.UpdatedAt.Before(cutoff) {
			delete(m.sessions, id)
			evicted++
		}
	}
	return evicted
}

func (m *MemorySessionStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

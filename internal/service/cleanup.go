package service

import (
	"time"

	"go.uber.org/zap"
)

// CleanupService evicts abandoned in-memory sessions
type CleanupService struct {
	sessions SessionStore
	ttl      time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(sessions SessionStore, ttl time.Duration, logger *zap.Logger) *CleanupService {
	return &CleanupService{
		sessions: sessions,
		ttl:      ttl,
		logger:   logger,
		now:      time.Now,
	}
}

// CleanupIdleSessions removes sessions untouched for longer than the TTL.
// Persisted words are never affected.
func (s *CleanupService) CleanupIdleSessions() int {
	s.logger.Info("Starting cleanup of idle sessions", zap.Duration("ttl", s.ttl))

	evicted := s.sessions.EvictIdle(s.now().Add(-s.ttl))

	s.logger.Info("Cleanup completed",
		zap.Int("evicted", evicted),
		zap.Int("remaining", s.sessions.Len()),
	)
	return evicted
}

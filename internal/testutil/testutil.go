package testutil

import (
	"time"

	"wordcards/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(id, telegramID int64) *domain.User {
	return &domain.User{
		ID:         id,
		TelegramID: telegramID,
		CreatedAt:  time.Now(),
	}
}

// NewTestCatalog creates catalog words from word, translation pairs
func NewTestCatalog(pairs ...string) []domain.Word {
	words := make([]domain.Word, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		words = append(words, domain.Word{
			ID:          int64(i/2 + 1),
			Word:        pairs[i],
			Translation: pairs[i+1],
			CreatedAt:   time.Now(),
		})
	}
	return words
}

// NewTestUserWord creates a test user word
func NewTestUserWord(id, userID int64, word, translation string) domain.UserWord {
	return domain.UserWord{
		ID:          id,
		UserID:      userID,
		Word:        word,
		Translation: translation,
		CreatedAt:   time.Now(),
	}
}

// StaticRand always returns the same index, clamped to n-1
type StaticRand int

func (r StaticRand) Intn(n int) int {
	if int(r) >= n {
		return n - 1
	}
	return int(r)
}

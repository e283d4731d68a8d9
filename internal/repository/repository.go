package repository

import (
	"wordcards/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	// EnsureUser returns the user with telegramID, creating it if needed
	EnsureUser(telegramID int64) (*domain.User, error)
}

// CatalogRepository defines operations on the shared word catalog
type CatalogRepository interface {
	GetAll() ([]domain.Word, error)
	AddWord(word, translation string) error
}

// VocabularyRepository defines operations on a user's own word list
type VocabularyRepository interface {
	// LinkCatalogWords copies catalog words the user has never had and returns how many were added
	LinkCatalogWords(userID int64) (int64, error)
	AddWord(userID int64, word, translation string) error
	DeleteWord(userID int64, word string) error
	GetWords(userID int64) ([]domain.UserWord, error)
}

package testutil

import (
	"wordcards/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) EnsureUser(telegramID int64) (*domain.User, error) {
	args := m.Called(telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockCatalogRepository is a mock for CatalogRepository
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) GetAll() ([]domain.Word, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockCatalogRepository) AddWord(word, translation string) error {
	args := m.Called(word, translation)
	return args.Error(0)
}

// MockVocabularyRepository is a mock for VocabularyRepository
type MockVocabularyRepository struct {
	mock.Mock
}

func (m *MockVocabularyRepository) LinkCatalogWords(userID int64) (int64, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return 0, args.Error(1)
	}
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVocabularyRepository) AddWord(userID int64, word, translation string) error {
	args := m.Called(userID, word, translation)
	return args.Error(0)
}

func (m *MockVocabularyRepository) DeleteWord(userID int64, word string) error {
	args := m.Called(userID, word)
	return args.Error(0)
}

func (m *MockVocabularyRepository) GetWords(userID int64) ([]domain.UserWord, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserWord), args.Error(1)
}

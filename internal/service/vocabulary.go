package service

import (
	"fmt"

	"wordcards/internal/domain"
	"wordcards/internal/repository"
)

// VocabularyService manages per-user word sets
type VocabularyService struct {
	userRepo    repository.UserRepository
	catalogRepo repository.CatalogRepository
	vocabRepo   repository.VocabularyRepository
	rnd         RandomSource
}

// NewVocabularyService creates a new vocabulary service
func NewVocabularyService(
	userRepo repository.UserRepository,
	catalogRepo repository.CatalogRepository,
	vocabRepo repository.VocabularyRepository,
	rnd RandomSource,
) *VocabularyService {
	return &VocabularyService{
		userRepo:    userRepo,
		catalogRepo: catalogRepo,
		vocabRepo:   vocabRepo,
		rnd:         rnd,
	}
}

// EnsureUser fetches or creates the user with the given Telegram id
func (s *VocabularyService) EnsureUser(telegramID int64) (*domain.User, error) {
	return s.userRepo.EnsureUser(telegramID)
}

// LinkCatalogDefaults copies catalog words the user does not have yet.
// Running it again never duplicates entries.
func (s *VocabularyService) LinkCatalogDefaults(userID int64) (int64, error) {
	return s.vocabRepo.LinkCatalogWords(userID)
}

// AddWord adds a custom word. Returns domain.ErrAlreadyExists if the user has it.
func (s *VocabularyService) AddWord(userID int64, word, translation string) error {
	word = domain.CleanWord(word)
	translation = domain.CleanWord(translation)
	if err := validateWordPair(word, translation); err != nil {
		return err
	}
	return s.vocabRepo.AddWord(userID, word, translation)
}

// DeleteWord removes a word. Returns domain.ErrNotFound if the user does not have it.
func (s *VocabularyService) DeleteWord(userID int64, word string) error {
	word = domain.CleanWord(word)
	if err := validateWord(word); err != nil {
		return err
	}
	return s.vocabRepo.DeleteWord(userID, word)
}

// PickRandomEntry returns a uniformly chosen word of the user
func (s *VocabularyService) PickRandomEntry(userID int64) (*domain.UserWord, error) {
	words, err := s.vocabRepo.GetWords(userID)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, domain.ErrEmpty
	}

	w := words[s.rnd.Intn(len(words))]
	return &w, nil
}

// SampleOtherTranslations returns count distinct catalog translations other than exclude
func (s *VocabularyService) SampleOtherTranslations(exclude string, count int) ([]string, error) {
	words, err := s.catalogRepo.GetAll()
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{exclude: true}
	var candidates []string
	for _, w := range words {
		if seen[w.Translation] {
			continue
		}
		seen[w.Translation] = true
		candidates = append(candidates, w.Translation)
	}

	if len(candidates) < count {
		return nil, fmt.Errorf("%w: need %d, catalog has %d", domain.ErrInsufficientData, count, len(candidates))
	}

	return sample(s.rnd, candidates, count), nil
}

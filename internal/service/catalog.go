package service

import (
	"errors"

	"wordcards/internal/domain"
	"wordcards/internal/repository"

	"go.uber.org/zap"
)

// CatalogService manages the word catalog shared by all users
type CatalogService struct {
	catalogRepo repository.CatalogRepository
	logger      *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalogRepo repository.CatalogRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// GetAll returns all catalog words
func (s *CatalogService) GetAll() ([]domain.Word, error) {
	return s.catalogRepo.GetAll()
}

// Add inserts a catalog word. Returns domain.ErrAlreadyExists if the
// normalized word is already present.
func (s *CatalogService) Add(word, translation string) error {
	word = domain.CleanWord(word)
	translation = domain.CleanWord(translation)
	if err := validateWordPair(word, translation); err != nil {
		return err
	}
	return s.catalogRepo.AddWord(word, translation)
}

// SeedDefaults adds every pair missing from the catalog and returns how many were added
func (s *CatalogService) SeedDefaults(pairs []domain.WordPair) (int, error) {
	added := 0
	for _, p := range pairs {
		err := s.Add(p.Word, p.Translation)
		if errors.Is(err, domain.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			s.logger.Error("Failed to seed catalog word",
				zap.String("word", p.Word),
				zap.Error(err),
			)
			return added, err
		}
		added++
	}

	s.logger.Info("Catalog seeded",
		zap.Int("added", added),
		zap.Int("skipped", len(pairs)-added),
	)
	return added, nil
}

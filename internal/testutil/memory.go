package testutil

import (
	"sync"
	"time"

	"wordcards/internal/domain"
)

// MemoryCatalog is an in-memory CatalogRepository
type MemoryCatalog struct {
	mu    sync.Mutex
	words []domain.Word
}

// NewMemoryCatalog creates a catalog holding the given pairs
func NewMemoryCatalog(pairs ...domain.WordPair) *MemoryCatalog {
	c := &MemoryCatalog{}
	for _, p := range pairs {
		_ = c.AddWord(p.Word, p.Translation)
	}
	return c
}

func (c *MemoryCatalog) GetAll() ([]domain.Word, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	words := make([]domain.Word, len(c.words))
	copy(words, c.words)
	return words, nil
}

func (c *MemoryCatalog) AddWord(word, translation string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, w := range c.words {
		if domain.WordKey(w.Word) == domain.WordKey(word) {
			return domain.ErrAlreadyExists
		}
	}
	c.words = append(c.words, domain.Word{
		ID:          int64(len(c.words) + 1),
		Word:        domain.CleanWord(word),
		Translation: translation,
		CreatedAt:   time.Now(),
	})
	return nil
}

type memoryEntry struct {
	domain.UserWord
	deleted bool
}

// MemoryVocabulary is an in-memory UserRepository and VocabularyRepository.
// Deleted entries are kept as tombstones like the SQL implementation.
type MemoryVocabulary struct {
	mu      sync.Mutex
	catalog *MemoryCatalog
	users   map[int64]*domain.User
	entries map[int64][]*memoryEntry
	nextID  int64
}

// NewMemoryVocabulary creates an empty vocabulary linked to catalog
func NewMemoryVocabulary(catalog *MemoryCatalog) *MemoryVocabulary {
	return &MemoryVocabulary{
		catalog: catalog,
		users:   make(map[int64]*domain.User),
		entries: make(map[int64][]*memoryEntry),
	}
}

func (v *MemoryVocabulary) EnsureUser(telegramID int64) (*domain.User, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	u, ok := v.users[telegramID]
	if !ok {
		u = &domain.User{ID: int64(len(v.users) + 1), TelegramID: telegramID, CreatedAt: time.Now()}
		v.users[telegramID] = u
	}
	copied := *u
	return &copied, nil
}

// UserCount returns the number of users created
func (v *MemoryVocabulary) UserCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.users)
}

func (v *MemoryVocabulary) LinkCatalogWords(userID int64) (int64, error) {
	words, _ := v.catalog.GetAll()

	v.mu.Lock()
	defer v.mu.Unlock()

	var linked int64
	for _, w := range words {
		if v.find(userID, w.Word) != nil {
			continue
		}
		v.insert(userID, w.Word, w.Translation)
		linked++
	}
	return linked, nil
}

func (v *MemoryVocabulary) AddWord(userID int64, word, translation string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	e := v.find(userID, word)
	switch {
	case e == nil:
		v.insert(userID, word, translation)
	case e.deleted:
		e.deleted = false
		e.Translation = translation
	default:
		return domain.ErrAlreadyExists
	}
	return nil
}

func (v *MemoryVocabulary) DeleteWord(userID int64, word string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	e := v.find(userID, word)
	if e == nil || e.deleted {
		return domain.ErrNotFound
	}
	e.deleted = true
	return nil
}

func (v *MemoryVocabulary) GetWords(userID int64) ([]domain.UserWord, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	var words []domain.UserWord
	for _, e := range v.entries[userID] {
		if !e.deleted {
			words = append(words, e.UserWord)
		}
	}
	return words, nil
}

func (v *MemoryVocabulary) find(userID int64, word string) *memoryEntry {
	for _, e := range v.entries[userID] {
		if e.Word == word {
			return e
		}
	}
	return nil
}

func (v *MemoryVocabulary) insert(userID int64, word, translation string) {
	v.nextID++
	v.entries[userID] = append(v.entries[userID], &memoryEntry{UserWord: domain.UserWord{
		ID:          v.nextID,
		UserID:      userID,
		Word:        word,
		Translation: translation,
		CreatedAt:   time.Now(),
	}})
}

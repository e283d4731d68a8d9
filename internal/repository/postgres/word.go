package postgres

import (
	"database/sql"

	"wordcards/internal/domain"
)

// WordRepo implements repository.CatalogRepository over the shared words table
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new catalog repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// GetAll returns every catalog word
func (r *WordRepo) GetAll() ([]domain.Word, error) {
	query := `
		SELECT id, word, translation, created_at
		FROM words
		ORDER BY id
	`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, storageError("get catalog", err)
	}
	defer rows.Close()

	var words []domain.Word
	for rows.Next() {
		var w domain.Word
		if err := rows.Scan(&w.ID, &w.Word, &w.Translation, &w.CreatedAt); err != nil {
			return nil, storageError("get catalog", err)
		}
		words = append(words, w)
	}

	if err := rows.Err(); err != nil {
		return nil, storageError("get catalog", err)
	}
	return words, nil
}

// AddWord inserts a catalog word. An existing word with the same normalized
// key is left untouched and domain.ErrAlreadyExists is returned.
func (r *WordRepo) AddWord(word, translation string) error {
	return withTx(r.db, "add catalog word", func(tx *sql.Tx) error {
		query := `
			INSERT INTO words (word, word_key, translation)
			VALUES ($1, $2, $3)
			ON CONFLICT (word_key) DO NOTHING
		`
		res, err := tx.Exec(query, domain.CleanWord(word), domain.WordKey(word), translation)
		if err != nil {
			return err
		}
		return rowsAffected(res, domain.ErrAlreadyExists)
	})
}

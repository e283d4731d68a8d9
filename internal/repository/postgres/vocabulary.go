package postgres

import (
	"database/sql"

	"wordcards/internal/domain"
)

// VocabularyRepo implements repository.VocabularyRepository over user_words
type VocabularyRepo struct {
	db *sql.DB
}

// NewVocabularyRepo creates a new vocabulary repository
func NewVocabularyRepo(db *sql.DB) *VocabularyRepo {
	return &VocabularyRepo{db: db}
}

// LinkCatalogWords copies catalog words the user does not hold yet.
// Deleted words keep their row, so they are not linked again.
// Returns the number of entries created.
func (r *VocabularyRepo) LinkCatalogWords(userID int64) (int64, error) {
	var linked int64
	err := withTx(r.db, "link catalog words", func(tx *sql.Tx) error {
		query := `
			INSERT INTO user_words (user_id, word, translation)
			SELECT $1, w.word, w.translation
			FROM words w
			ORDER BY w.id
			ON CONFLICT (user_id, word) DO NOTHING
		`
		res, err := tx.Exec(query, userID)
		if err != nil {
			return err
		}
		linked, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, err
	}

	return linked, nil
}

// AddWord saves a user word unless the user already holds it.
// A previously deleted word is restored with the new translation.
func (r *VocabularyRepo) AddWord(userID int64, word, translation string) error {
	return withTx(r.db, "add user word", func(tx *sql.Tx) error {
		query := `
			INSERT INTO user_words (user_id, word, translation)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, word)
			DO UPDATE SET translation = EXCLUDED.translation, deleted_at = NULL, created_at = NOW()
			WHERE user_words.deleted_at IS NOT NULL
		`
		res, err := tx.Exec(query, userID, word, translation)
		if err != nil {
			return err
		}
		return rowsAffected(res, domain.ErrAlreadyExists)
	})
}

// DeleteWord removes a word from the user's vocabulary
func (r *VocabularyRepo) DeleteWord(userID int64, word string) error {
	return withTx(r.db, "delete user word", func(tx *sql.Tx) error {
		query := `
			UPDATE user_words
			SET deleted_at = NOW()
			WHERE user_id = $1 AND word = $2 AND deleted_at IS NULL
		`
		res, err := tx.Exec(query, userID, word)
		if err != nil {
			return err
		}
		return rowsAffected(res, domain.ErrNotFound)
	})
}

// GetWords returns all words of the user
func (r *VocabularyRepo) GetWords(userID int64) ([]domain.UserWord, error) {
	query := `
		SELECT id, user_id, word, translation, created_at
		FROM user_words
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY id
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, storageError("get user words", err)
	}
	defer rows.Close()

	var words []domain.UserWord
	for rows.Next() {
		var w domain.UserWord
		if err := rows.Scan(&w.ID, &w.UserID, &w.Word, &w.Translation, &w.CreatedAt); err != nil {
			return nil, storageError("get user words", err)
		}
		words = append(words, w)
	}

	if err := rows.Err(); err != nil {
		return nil, storageError("get user words", err)
	}
	return words, nil
}

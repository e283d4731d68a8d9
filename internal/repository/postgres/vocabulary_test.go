package postgres

import (
	"fmt"
	"testing"
	"time"

	"wordcards/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestVocabularyRepo_LinkCatalogWords(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewVocabularyRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO user_words \\(user_id, word, translation\\) SELECT \\$1, w.word, w.translation FROM words w .* ON CONFLICT \\(user_id, word\\) DO NOTHING").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectCommit()

	linked, err := repo.LinkCatalogWords(7)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), linked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVocabularyRepo_LinkCatalogWords_RollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewVocabularyRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO user_words").
		WithArgs(int64(7)).
		WillReturnError(fmt.Errorf("deadlock detected"))
	mock.ExpectRollback()

	linked, err := repo.LinkCatalogWords(7)

	assert.ErrorIs(t, err, domain.ErrStorageFailure)
	assert.Zero(t, linked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVocabularyRepo_AddWord(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		expectedErr  error
	}{
		{name: "inserted", rowsAffected: 1},
		{name: "restored after delete", rowsAffected: 1},
		{name: "already exists", rowsAffected: 0, expectedErr: domain.ErrAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewVocabularyRepo(db)

			mock.ExpectBegin()
			mock.ExpectExec("INSERT INTO user_words .* ON CONFLICT \\(user_id, word\\) DO UPDATE .* WHERE user_words.deleted_at IS NOT NULL").
				WithArgs(int64(7), "Облако", "Cloud").
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))
			if tt.expectedErr != nil {
				mock.ExpectRollback()
			} else {
				mock.ExpectCommit()
			}

			err = repo.AddWord(7, "Облако", "Cloud")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestVocabularyRepo_DeleteWord(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		expectedErr  error
	}{
		{name: "deleted", rowsAffected: 1},
		{name: "not found", rowsAffected: 0, expectedErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewVocabularyRepo(db)

			mock.ExpectBegin()
			mock.ExpectExec("UPDATE user_words SET deleted_at = NOW\\(\\) WHERE user_id = \\$1 AND word = \\$2 AND deleted_at IS NULL").
				WithArgs(int64(7), "Небо").
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))
			if tt.expectedErr != nil {
				mock.ExpectRollback()
			} else {
				mock.ExpectCommit()
			}

			err = repo.DeleteWord(7, "Небо")

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestVocabularyRepo_GetWords(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewVocabularyRepo(db)

	rows := sqlmock.NewRows([]string{"id", "user_id", "word", "translation", "created_at"}).
		AddRow(1, 7, "Лес", "Forest", time.Now()).
		AddRow(2, 7, "Небо", "Sky", time.Now())

	mock.ExpectQuery("SELECT id, user_id, word, translation, created_at FROM user_words WHERE user_id = \\$1 AND deleted_at IS NULL").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	words, err := repo.GetWords(7)

	assert.NoError(t, err)
	assert.Len(t, words, 2)
	assert.Equal(t, int64(7), words[1].UserID)
	assert.Equal(t, "Небо", words[1].Word)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVocabularyRepo_GetWords_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewVocabularyRepo(db)

	mock.ExpectQuery("SELECT id, user_id, word, translation, created_at FROM user_words").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "word", "translation", "created_at"}))

	words, err := repo.GetWords(7)

	assert.NoError(t, err)
	assert.Empty(t, words)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVocabularyRepo_GetWords_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewVocabularyRepo(db)

	mock.ExpectQuery("SELECT id, user_id, word, translation, created_at FROM user_words").
		WithArgs(int64(7)).
		WillReturnError(fmt.Errorf("query error"))

	words, err := repo.GetWords(7)

	assert.ErrorIs(t, err, domain.ErrStorageFailure)
	assert.Nil(t, words)
	assert.NoError(t, mock.ExpectationsWereMet())
}

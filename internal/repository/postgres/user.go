package postgres

import (
	"database/sql"

	"wordcards/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// EnsureUser fetches the user by Telegram id, creating it if missing.
// The no-op update makes RETURNING yield the existing row on conflict,
// so concurrent calls for the same id end up with a single row.
func (r *UserRepo) EnsureUser(telegramID int64) (*domain.User, error) {
	var u domain.User
	query := `
		INSERT INTO users (telegram_id)
		VALUES ($1)
		ON CONFLICT (telegram_id)
		DO UPDATE SET telegram_id = EXCLUDED.telegram_id
		RETURNING id, telegram_id, created_at
	`
	err := r.db.QueryRow(query, telegramID).Scan(&u.ID, &u.TelegramID, &u.CreatedAt)
	if err != nil {
		return nil, storageError("ensure user", err)
	}

	return &u, nil
}

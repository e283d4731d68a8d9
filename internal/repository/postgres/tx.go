package postgres

import (
	"database/sql"
	"fmt"
)

// withTx runs fn inside a transaction. The transaction is rolled back when fn
// returns an error or panics, and committed otherwise.
func withTx(db *sql.DB, op string, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.Begin()
	if err != nil {
		return storageError(op, fmt.Errorf("begin transaction: %w", err))
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return storageError(op, fmt.Errorf("rollback: %v (original error: %w)", rbErr, err))
		}
		return mapError(op, err)
	}

	if err = tx.Commit(); err != nil {
		return storageError(op, fmt.Errorf("commit transaction: %w", err))
	}
	return nil
}

package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"wordcards/internal/domain"

	"github.com/lib/pq"
)

// uniqueViolationCode is the PostgreSQL error code for unique constraint violations
const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode
}

func storageError(op string, err error) error {
	return &domain.StorageError{Op: op, Err: err}
}

// mapError keeps domain error kinds and turns everything else into a storage failure
func mapError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrAlreadyExists),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrStorageFailure):
		return err
	case isUniqueViolation(err):
		return fmt.Errorf("%s: %w", op, domain.ErrAlreadyExists)
	case errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return storageError(op, err)
}

// rowsAffected returns notFound when the statement touched no rows
func rowsAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

package domain

import (
	"errors"
	"fmt"
)

// Error kinds returned by the core. Callers match them with errors.Is.
var (
	ErrAlreadyExists    = errors.New("already exists")
	ErrNotFound         = errors.New("not found")
	ErrEmpty            = errors.New("vocabulary is empty")
	ErrInsufficientData = errors.New("not enough catalog translations")
	ErrNoActiveSession  = errors.New("no active quiz session")
	ErrNoWordsAvailable = errors.New("no words available")
	ErrInvalidInput     = errors.New("invalid input")
	ErrStorageFailure   = errors.New("storage failure")
)

// StorageError wraps a persistence failure with the operation that caused it
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrStorageFailure, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrStorageFailure) match any StorageError
func (e *StorageError) Is(target error) bool {
	return target == ErrStorageFailure
}

package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLoad indicates the dataset could not be loaded.
	// It is the only error query consumers need to handle.
	ErrLoad = errors.New("load failed")
)

// LoadError describes a fatal failure while loading a data file.
// It matches ErrLoad with errors.Is.
type LoadError struct {
	// File is the data file that failed, relative to the data source.
	File string

	// Err is the underlying fetch or decode error.
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s: %v", e.File, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrLoad.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}

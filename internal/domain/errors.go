package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrAmbiguousRef      = errors.New("task reference matches more than one task")
	ErrEmptyText         = errors.New("task text cannot be empty")
	ErrInvalidPriority   = errors.New("invalid priority")
	ErrInvalidFilter     = errors.New("invalid filter")
	ErrConfigInvalid     = errors.New("invalid configuration")
	ErrConfigExists      = errors.New("config file already exists")
	ErrMigrationConflict = errors.New("destination already has a different version of the task")
)

// Recoverable storage errors. Operations that return them have already
// applied their in-memory effect; callers report them as warnings.
var (
	ErrStorageRead  = errors.New("storage read failed")
	ErrStorageWrite = errors.New("storage write failed")
)

// IsStorageError returns true if err is a recoverable storage error.
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorageRead) || errors.Is(err, ErrStorageWrite)
}

package storage

import "errors"

// Common client storage errors
var (
	// ErrSessionNotFound indicates that no stored session exists
	ErrSessionNotFound = errors.New("session not found")

	// ErrMutationNotFound indicates that pending mutation was not found
	ErrMutationNotFound = errors.New("pending mutation not found")

	// ErrOverrideNotSet indicates that no manual mode override is stored
	ErrOverrideNotSet = errors.New("mode override not set")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)

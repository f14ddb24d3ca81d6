package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no authentication data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrAuthCorrupted indicates that the stored session record cannot be decoded
	ErrAuthCorrupted = errors.New("authentication data is corrupted")

	// ErrProfileNotFound indicates that no cached profile exists
	ErrProfileNotFound = errors.New("profile not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)

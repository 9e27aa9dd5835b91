// Package storage persists the diary document as a single text file.
package storage

import "errors"

// Sentinel errors for storage operations.
var (
	ErrNotFound   = errors.New("diary file not found")
	ErrStorage    = errors.New("storage error")
	ErrValidation = errors.New("validation error")
)

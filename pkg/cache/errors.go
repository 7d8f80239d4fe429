package cache

import "errors"

// Sentinel errors for caching operations.
var (
	// ErrNotFound is returned when a requested item does not exist.
	ErrNotFound = errors.New("not found")

	// ErrClosed is returned by operations on a closed cache.
	ErrClosed = errors.New("cache closed")
)

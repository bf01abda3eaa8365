package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors. None of them is
// fatal: every condition degrades the search experience (fewer or no
// results, in-memory-only recency) rather than failing the caller.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDataNotReady indicates the entity collections have not been
	// supplied yet. Recoverable: searches return empty results and
	// are retried transparently once data arrives.
	ErrDataNotReady = errors.New("entity data not ready")

	// ErrPersistence indicates the key-value store failed.
	// Recoverable: the recent-search list degrades to in-memory only.
	ErrPersistence = errors.New("persistence unavailable")
)

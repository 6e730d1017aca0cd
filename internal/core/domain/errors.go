package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrQueryTooShort indicates a retrieval query below the minimum
	// length. Callers validate query shape; the core stays total over
	// any string it is actually given.
	ErrQueryTooShort = errors.New("query too short")

	// ErrInvalidChunking indicates a chunking configuration that
	// cannot make progress (overlap >= chunk size).
	ErrInvalidChunking = errors.New("invalid chunking configuration")

	// ErrStoreUnavailable indicates the article store is not configured.
	ErrStoreUnavailable = errors.New("article store unavailable")
)

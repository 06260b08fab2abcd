package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrCatalogUnreachable indicates the catalog API is unreachable
	ErrCatalogUnreachable = errors.New("catalog is unreachable")

	// ErrWorkNotFound indicates the requested work does not exist
	ErrWorkNotFound = errors.New("work not found")

	// ErrBadResponse indicates the remote returned an unexpected shape
	ErrBadResponse = errors.New("malformed response from remote")

	// ErrNoAnswer indicates the generative endpoint returned no usable candidate
	ErrNoAnswer = errors.New("no answer candidates returned")
)

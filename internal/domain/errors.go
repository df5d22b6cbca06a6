package domain

import "errors"

var (
	// ErrBackendUnavailable signals a failed or non-200 backend call.
	// Callers degrade it to an empty result.
	ErrBackendUnavailable = errors.New("backend unavailable")
	// ErrNoResults signals a search that produced no categories.
	ErrNoResults = errors.New("no results")
	// ErrNoSessionState signals a navigation command issued before any search in its domain.
	ErrNoSessionState = errors.New("no session state")
	// ErrNotFound signals a category or index reference that does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrInvalidQuery signals a malformed command argument.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrUnsupported signals a command that is intentionally not implemented.
	ErrUnsupported = errors.New("unsupported")
	// ErrSessionNotFound signals an unknown or expired session id.
	ErrSessionNotFound = errors.New("session not found")
)

package exam

import "errors"

var (
	// ErrEmptyGeneration means validation discarded every question in a
	// generated batch. Retryable: the caller should regenerate, never
	// persist an empty set.
	ErrEmptyGeneration = errors.New("generation produced no valid questions")

	// ErrNotFound covers missing share tokens and submissions.
	ErrNotFound = errors.New("not found")

	// ErrLimitExceeded means the guest usage cap denied the request.
	// Distinct from auth failures so callers can offer "log in for more".
	ErrLimitExceeded = errors.New("guest usage limit exceeded")

	// ErrUnavailable wraps persistence or generator failures at the
	// boundary so core logic stays free of driver-specific error types.
	ErrUnavailable = errors.New("service unavailable")
)

package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedType indicates an unknown provider or processor type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrDocumentRead indicates a source document could not be opened or parsed.
	// Every DocumentReadError matches it with errors.Is.
	ErrDocumentRead = errors.New("document read failed")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrRateLimited indicates a rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// Crew Errors.

	// ErrUnknownAgent indicates a task references an agent that is not defined.
	ErrUnknownAgent = errors.New("unknown agent")

	// ErrUnknownTask indicates a requested task is not defined.
	ErrUnknownTask = errors.New("unknown task")

	// ErrTaskFailed indicates a task exhausted its attempts without output.
	ErrTaskFailed = errors.New("task failed")
)

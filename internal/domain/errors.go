package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists signals a duplicate resource.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalidInput signals a request that failed boundary validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrStoreUnavailable signals a document store failure. It is passed
	// through to the caller unchanged; no retry is attempted.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrTranscriptUnavailable signals a transcript log failure.
	ErrTranscriptUnavailable = errors.New("transcript store unavailable")
)

package apperrors

import "errors"

// Sentinels shared across module boundaries; match with errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")

	// Reading sessions are exclusive: at most one may be open at a time.
	ErrNoActiveSession     = errors.New("no reading session in progress")
	ErrActiveSessionExists = errors.New("a reading session is already in progress")
)

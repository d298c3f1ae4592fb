package service

import "errors"

var (
	// ErrVersionConflict is returned by the repository when a
	// conditional write finds the row at a different version than the
	// one read at merge time. The losing writer is dropped, not retried.
	ErrVersionConflict = errors.New("responder version conflict")

	// ErrResponderNotFound is returned by the repository when a
	// conditional write targets a row that no longer exists.
	ErrResponderNotFound = errors.New("responder not found")

	// ErrMultipleMatches is returned by name lookups that hit more than
	// one row. It signals a data-integrity problem and is never
	// swallowed.
	ErrMultipleMatches = errors.New("multiple responders share this name")
)

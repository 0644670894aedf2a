// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidRoster signals a leader roster that violates draw preconditions.
	ErrInvalidRoster = errors.New("invalid roster")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrRosterNotFound signals a missing mandatory roster source.
	ErrRosterNotFound = errors.New("roster not found")
	// ErrUnknownBackend signals an unsupported storage or export backend name.
	ErrUnknownBackend = errors.New("unknown backend")
	// ErrEmptyAssignment signals an attempt to export before anything was drawn.
	ErrEmptyAssignment = errors.New("empty assignment")
)

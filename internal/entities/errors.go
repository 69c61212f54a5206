// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTeamNotFound signals a stale or unknown team identifier.
	ErrTeamNotFound = errors.New("team not found")
	// ErrSportNotFound signals an unknown sport identifier.
	ErrSportNotFound = errors.New("sport not found")
)

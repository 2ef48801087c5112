package model

import "github.com/pkg/errors"

var (
	// ErrOutOfBounds is returned by direct-access operations given a coordinate outside the grid
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrMalformedState is returned when persisted grid content fails validation
	ErrMalformedState = errors.New("malformed grid state")
	// ErrInvalidSize is returned when grid dimensions are below the allowed minimum
	ErrInvalidSize = errors.New("invalid grid size")
)

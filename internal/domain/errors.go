package domain

import "errors"

// Per-country errors. These are recoverable: the affected row or feature is
// excluded from scoring and rendered as "no data".
var (
	ErrUnknownCountry = errors.New("unknown country")
	ErrNoObservation  = errors.New("no observation for country")
	ErrBadObservation = errors.New("non-finite observation")
)

// Request-level errors. These reject the whole request before scoring starts.
var (
	ErrInvalidWeightVector = errors.New("invalid weight vector")
	ErrYearOutOfBounds     = errors.New("year out of bounds")
	ErrUnknownPlant        = errors.New("unknown plant")
	ErrDegenerateRange     = errors.New("degenerate tolerance range")
	ErrInvalidRange        = errors.New("invalid range")
	ErrEmptyClimateTable   = errors.New("climate table is empty")
)

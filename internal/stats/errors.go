package stats

import "errors"

var (
	// ErrInvalidCapacity signals a configuration contract violation:
	// the daily capacity must be a positive number of minutes.
	ErrInvalidCapacity = errors.New("available minutes must be positive")

	ErrInvalidRange = errors.New("invalid date range")
)

package life

import "errors"

var (
	// ErrOutOfRange is returned when a coordinate lies outside the grid.
	ErrOutOfRange = errors.New("life: cell out of range")
	// ErrInvalidDimensions is returned when a grid would have no rows or columns.
	ErrInvalidDimensions = errors.New("life: invalid grid dimensions")
)

package world

import "errors"

var (
	// ErrInvalidSize indicates a grid with no rows or a negative display width.
	ErrInvalidSize = errors.New("world: grid size must be positive and display width non-negative")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("world: position out of bounds")
)

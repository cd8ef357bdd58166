package life

import "errors"

var (
	// ErrInvalidDimension indicates a non-positive grid width or height.
	ErrInvalidDimension = errors.New("life: grid width and height must be positive")
	// ErrUnknownRule indicates an unrecognized rule variant name.
	ErrUnknownRule = errors.New("life: unknown rule variant")
	// ErrUnknownBoundary indicates an unrecognized boundary policy name.
	ErrUnknownBoundary = errors.New("life: unknown boundary policy")
	// ErrUnknownPattern indicates a pattern name with no registered cells.
	ErrUnknownPattern = errors.New("life: unknown pattern name")
)

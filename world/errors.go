package world

import (
	"errors"
	"fmt"
)

// Validation failure kinds, match with errors.Is
var (
	ErrDimension    = errors.New("grid dimension mismatch")
	ErrCodeRange    = errors.New("cell code out of range")
	ErrOpenBoundary = errors.New("open boundary cell")
)

// ValidationError identifies the offending coordinate of a rejected grid.
// Dimension errors carry the row in X (-1 for the row count) and the found length in Got.
type ValidationError struct {
	Kind error
	X, Y int
	Code int
	Got  int
	Size int
}

func (e *ValidationError) Error() string {
	if e.Kind == ErrDimension {
		if e.X < 0 {
			return fmt.Sprintf("%v: %d rows, want %d", e.Kind, e.Got, e.Size)
		}
		return fmt.Sprintf("%v: row %d has %d cells, want %d", e.Kind, e.X, e.Got, e.Size)
	}
	return fmt.Sprintf("%v: cell (%d, %d) = %d", e.Kind, e.X, e.Y, e.Code)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

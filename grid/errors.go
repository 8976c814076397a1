package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrReverse indicates an entry/exit pair that doubles back on itself.
	ErrReverse = errors.New("grid: path reverses into the cell it came from")
	// ErrOverlap indicates a drawn path reuses a cell it cannot cross.
	ErrOverlap = errors.New("grid: path overlaps itself")
	// ErrNotClosed indicates drawn legs do not return to the start cell.
	ErrNotClosed = errors.New("grid: legs do not close the loop")
	// ErrBadLeg indicates an unparsable leg description.
	ErrBadLeg = errors.New("grid: malformed leg")
	// ErrBadToken indicates an unknown cell token in a diagram document.
	ErrBadToken = errors.New("grid: unknown cell token")
)

// TokenError reports the offending token of a diagram document.
type TokenError struct {
	Layer Layer
	At    Point
	Token string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("grid: unknown cell token %q at %v on the %v layer", e.Token, e.At, e.Layer)
}

// Unwrap returns ErrBadToken.
func (e *TokenError) Unwrap() error { return ErrBadToken }

package knot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvknot/grid"
)

// Error classes. Every sentinel below wraps exactly one of them, so callers
// can branch on the stage that rejected a diagram.
var (
	ErrStructure   = errors.New("knot: illegal diagram")
	ErrSeparator   = errors.New("knot: illegal separator")
	ErrAuxiliary   = errors.New("knot: illegal auxiliary path")
	ErrArc         = errors.New("knot: no usable arc")
	ErrConsistency = errors.New("knot: inconsistent crossings")
)

// Structural errors returned by Trace.
var (
	ErrNoSegments           = fmt.Errorf("%w: no segment to start from", ErrStructure)
	ErrIllegalSegment       = fmt.Errorf("%w: segment kind not allowed on the loop", ErrStructure)
	ErrOpenLoop             = fmt.Errorf("%w: loop is not closed", ErrStructure)
	ErrRevisited            = fmt.Errorf("%w: segment visited twice outside a junction", ErrStructure)
	ErrTripleVisit          = fmt.Errorf("%w: junction visited more than twice", ErrStructure)
	ErrLeftoverSegments     = fmt.Errorf("%w: segments not connected to the loop", ErrStructure)
	ErrDenseLines           = fmt.Errorf("%w: parallel lines touch", ErrStructure)
	ErrDenseJunction        = fmt.Errorf("%w: junction has a diagonal neighbour", ErrStructure)
	ErrDenseTurn            = fmt.Errorf("%w: turn has a diagonal neighbour", ErrStructure)
	ErrMissingTurn          = fmt.Errorf("%w: direction changes without a turn", ErrStructure)
	ErrConsecutiveJunctions = fmt.Errorf("%w: consecutive junctions or turns", ErrStructure)
)

// Separator errors returned by CheckSeparator.
var (
	ErrSeparatorOffLoop      = fmt.Errorf("%w: not on the loop", ErrSeparator)
	ErrSeparatorOnJunction   = fmt.Errorf("%w: placed on a junction", ErrSeparator)
	ErrSeparatorNearJunction = fmt.Errorf("%w: next to a junction", ErrSeparator)
	ErrSeparatorNearTurn     = fmt.Errorf("%w: next to a turn", ErrSeparator)
	ErrDuplicateSeparator    = fmt.Errorf("%w: already placed", ErrSeparator)
	ErrTooManySeparators     = fmt.Errorf("%w: two separators already placed", ErrSeparator)
	ErrSeparatorsIncomplete  = fmt.Errorf("%w: two separators are required", ErrSeparator)
)

// Auxiliary path errors returned by ResolveAuxiliary.
var (
	ErrAuxMissing    = fmt.Errorf("%w: nothing leaves the first separator", ErrAuxiliary)
	ErrAuxDualBranch = fmt.Errorf("%w: more than one branch leaves the first separator", ErrAuxiliary)
	ErrAuxOpenEnd    = fmt.Errorf("%w: path ends before the second separator", ErrAuxiliary)
	ErrAuxLoopsBack  = fmt.Errorf("%w: path runs back into itself", ErrAuxiliary)
	ErrAuxUnderlying = fmt.Errorf("%w: illegal segment underneath", ErrAuxiliary)
	ErrAuxParallel   = fmt.Errorf("%w: runs along the loop segment underneath", ErrAuxiliary)
	ErrAuxDense      = fmt.Errorf("%w: touches other segments", ErrAuxiliary)
	ErrAuxCorner     = fmt.Errorf("%w: corner does not match the path", ErrAuxiliary)
	ErrAuxIllegal    = fmt.Errorf("%w: illegal segment on the path", ErrAuxiliary)
)

// Arc errors returned by BuildArc and ChooseArc.
var (
	ErrArcSelfIntersect = fmt.Errorf("%w: arc crosses itself", ErrArc)
	ErrArcCrossesAux    = fmt.Errorf("%w: arc meets the auxiliary path", ErrArc)
	ErrNoArc            = fmt.Errorf("%w: neither arc can be replaced", ErrArc)
)

// Consistency errors returned by Resolve and ResolveEither.
var (
	ErrContradiction = fmt.Errorf("%w: strand labelled both over and under", ErrConsistency)
	ErrBrokenStrand  = fmt.Errorf("%w: strand cannot be followed", ErrConsistency)
	ErrNoAssignment  = fmt.Errorf("%w: no handedness gives a consistent assignment", ErrConsistency)
)

// DiagramError attaches the offending cell to a sentinel.
type DiagramError struct {
	Err error
	At  grid.Point
}

func (e *DiagramError) Error() string { return fmt.Sprintf("%v at %v", e.Err, e.At) }

// Unwrap returns the sentinel.
func (e *DiagramError) Unwrap() error { return e.Err }

func at(err error, p grid.Point) error { return &DiagramError{Err: err, At: p} }

// LeftoverError reports primary segments the loop never reached.
type LeftoverError struct {
	Count  int
	Groups [][]grid.Point
}

func (e *LeftoverError) Error() string {
	firsts := make([]string, len(e.Groups))
	for i, g := range e.Groups {
		firsts[i] = g[0].String()
	}
	return fmt.Sprintf("%v: %d segments in %d groups starting at %s",
		ErrLeftoverSegments, e.Count, len(e.Groups), strings.Join(firsts, " "))
}

// Unwrap returns ErrLeftoverSegments.
func (e *LeftoverError) Unwrap() error { return ErrLeftoverSegments }

// ArcError carries the rejection of both candidate arcs.
type ArcError struct {
	Forward, Reverse error
}

func (e *ArcError) Error() string {
	return fmt.Sprintf("%v (forward: %v; reverse: %v)", ErrNoArc, e.Forward, e.Reverse)
}

// Unwrap exposes ErrNoArc and both causes to errors.Is.
func (e *ArcError) Unwrap() []error { return []error{ErrNoArc, e.Forward, e.Reverse} }

// ConsistencyError carries the failure of both handedness attempts.
type ConsistencyError struct {
	Left, Right error
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%v (left: %v; right: %v)", ErrNoAssignment, e.Left, e.Right)
}

// Unwrap exposes ErrNoAssignment and both causes to errors.Is.
func (e *ConsistencyError) Unwrap() []error { return []error{ErrNoAssignment, e.Left, e.Right} }

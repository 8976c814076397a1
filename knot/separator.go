package knot

import "github.com/katalvlaran/lvknot/grid"

// MaxSeparators is the number of separators a diagram carries.
const MaxSeparators = 2

// CheckSeparator reports whether a separator may be placed at p given the
// separators already placed. It never places anything.
//
// A nil loop skips the on-loop membership test; the primary segment at p is
// still required.
func CheckSeparator(r grid.Reader, loop *Loop, existing []grid.Point, p grid.Point) error {
	// 1) on a loop segment
	if !grid.Occupied(r, p, grid.Primary) || (loop != nil && !loop.Contains(p)) {
		return at(ErrSeparatorOffLoop, p)
	}
	// 2) not on a junction, not beside one nor beside a turn
	if grid.IsJunction(r, p) {
		return at(ErrSeparatorOnJunction, p)
	}
	for _, d := range grid.Orthogonal {
		q := p.Add(d)
		if grid.IsJunction(r, q) {
			return at(ErrSeparatorNearJunction, q)
		}
		if s, ok := r.SegmentAt(q, grid.Primary); ok && s.Kind.IsTurn() {
			return at(ErrSeparatorNearTurn, q)
		}
	}
	// 3) room left
	for _, e := range existing {
		if e == p {
			return at(ErrDuplicateSeparator, p)
		}
	}
	if len(existing) >= MaxSeparators {
		return at(ErrTooManySeparators, p)
	}
	return nil
}

package knot

import "github.com/katalvlaran/lvknot/grid"

// Trace walks the primary layer of r from its first segment in row-major
// order and returns the closed loop it forms.
//
// Steps:
//  1. Pick the start; junction and turn starts move to a neighbouring straight.
//  2. Follow out rotations, classifying every cell until the start is reached.
//  3. Check that every primary segment was visited.
//  4. Check start density and the diagonals of every crossing and turn.
//
// Complexity: O(S) time and memory for S primary segments.
func Trace(r grid.Reader) (*Loop, error) {
	segs := r.Segments(grid.Primary)
	if len(segs) == 0 {
		return nil, ErrNoSegments
	}
	return TraceFrom(r, segs[0].At)
}

// TraceFrom is Trace starting from the segment at p.
func TraceFrom(r grid.Reader, p grid.Point) (*Loop, error) {
	t := &tracer{
		r:      r,
		total:  len(r.Segments(grid.Primary)),
		loop:   newLoop(),
		counts: make(map[grid.Point]int),
	}
	start, facing, err := t.pickStart(p)
	if err != nil {
		return nil, err
	}
	if err := t.walk(start, facing); err != nil {
		return nil, err
	}
	if err := t.verify(); err != nil {
		return nil, err
	}
	return t.loop, nil
}

type tracer struct {
	r      grid.Reader
	total  int
	loop   *Loop
	counts map[grid.Point]int
}

// pickStart returns a non-junction straight to start from.
func (t *tracer) pickStart(p grid.Point) (grid.Point, grid.Direction, error) {
	seg, ok := t.r.SegmentAt(p, grid.Primary)
	if !ok {
		return p, 0, at(ErrNoSegments, p)
	}
	if !seg.Kind.IsLoop() {
		return p, 0, at(ErrIllegalSegment, p)
	}
	var next grid.Point
	switch {
	case grid.IsJunction(t.r, p):
		if seg.Facing.Parallel(grid.Up) {
			next = p.Step(grid.Down)
		} else {
			next = p.Step(grid.Right)
		}
	case seg.Kind.IsTurn():
		next = seg.Exit(p)
	default:
		return p, seg.Facing, nil
	}

	seg, ok = t.r.SegmentAt(next, grid.Primary)
	switch {
	case !ok:
		return next, 0, at(ErrOpenLoop, next)
	case !seg.Kind.IsLoop():
		return next, 0, at(ErrIllegalSegment, next)
	case seg.Kind.IsTurn() || grid.IsJunction(t.r, next):
		return next, 0, at(ErrConsecutiveJunctions, next)
	}
	return next, seg.Facing, nil
}

func (t *tracer) walk(start grid.Point, d grid.Direction) error {
	l := t.loop
	l.Start = start
	l.add(Node{Origin: start, Color: Primary, OutRotation: d})
	t.counts[start] = 1

	cur := start
	afterJunction := false
	for {
		next := cur.Step(d)
		if next == start {
			if d != l.Nodes[0].OutRotation {
				return at(ErrMissingTurn, start)
			}
			return nil
		}
		seg, ok := t.r.SegmentAt(next, grid.Primary)
		if !ok {
			return at(ErrOpenLoop, next)
		}
		if !seg.Kind.IsLoop() {
			return at(ErrIllegalSegment, next)
		}

		// 1) junction: record the crossing and pass straight through
		if grid.IsJunction(t.r, next) {
			if afterJunction {
				return at(ErrConsecutiveJunctions, next)
			}
			if t.counts[next] >= 2 {
				return at(ErrTripleVisit, next)
			}
			if seg.Kind != grid.KindStraight {
				return at(ErrIllegalSegment, next)
			}
			ct := CrossingUnder
			switch {
			case seg.Facing == d:
				ct = CrossingOver
			case seg.Facing.Parallel(d):
				return at(ErrMissingTurn, next)
			}
			if t.counts[next] == 0 {
				l.Crossings = append(l.Crossings, next)
				l.Straights = append(l.Straights, next)
			}
			t.counts[next]++
			l.add(Node{Origin: next, Color: Primary, IsCrossing: true, OutRotation: d, Crossing: ct})
			cur, afterJunction = next, true
			continue
		}
		afterJunction = false

		// 2) ordinary cell: visited once, continuing the arrival direction
		if t.counts[next] > 0 {
			return at(ErrRevisited, next)
		}
		if seg.Facing != d {
			return at(ErrMissingTurn, next)
		}
		t.counts[next] = 1
		switch seg.Kind {
		case grid.KindStraight:
			if !grid.NeighborsEmpty(t.r, next, d, grid.Primary) {
				return at(ErrDenseLines, next)
			}
			l.Straights = append(l.Straights, next)
			l.add(Node{Origin: next, Color: Primary, OutRotation: d})
		default:
			d = seg.Out()
			l.Turns = append(l.Turns, next)
			l.add(Node{Origin: next, Color: Primary, IsCorner: true, OutRotation: d})
		}
		cur = next
	}
}

func (t *tracer) verify() error {
	l := t.loop
	// 1) every primary segment belongs to the loop
	if visited := len(l.Turns) + len(l.Straights) + 1; visited != t.total {
		seen := make(map[grid.Point]bool, len(t.counts))
		for p := range t.counts {
			seen[p] = true
		}
		return &LeftoverError{
			Count:  t.total - visited,
			Groups: grid.Without(t.r, grid.Primary, seen),
		}
	}
	// 2) density around the start, the crossings and the turns
	if !grid.NeighborsEmpty(t.r, l.Start, l.Nodes[0].OutRotation, grid.Primary) {
		return at(ErrDenseLines, l.Start)
	}
	for _, p := range l.Crossings {
		if !grid.DiagonalsEmpty(t.r, p, grid.Primary) {
			return at(ErrDenseJunction, p)
		}
	}
	for _, p := range l.Turns {
		if !grid.DiagonalsEmpty(t.r, p, grid.Primary) {
			return at(ErrDenseTurn, p)
		}
	}
	return nil
}

package rewrite

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvknot/grid"
	"github.com/katalvlaran/lvknot/knot"
)

// ErrNoResolution is returned when there is nothing to rewrite.
var ErrNoResolution = errors.New("rewrite: no resolution")

// Clear deletes every arc marker and returns how many it deleted.
func Clear(r grid.Reader, w grid.Writer) int {
	return deleteKinds(r, w, grid.KindArcMarker)
}

// SweepSeparators deletes every separator marker not listed in keep.
func SweepSeparators(r grid.Reader, w grid.Writer, keep []grid.Point) int {
	n := 0
	for _, s := range r.Segments(grid.Secondary) {
		if s.Kind != grid.KindSeparator || slices.Contains(keep, s.At) {
			continue
		}
		w.Delete(s.At, grid.Secondary)
		n++
	}
	return n
}

// Commit draws res onto the secondary layer.
//
// Steps:
//  1. Delete leftover arc markers and every auxiliary segment.
//  2. Place an arc marker on each arc node not labelled over, facing the
//     loop's out rotation; corners use variant 1.
//  3. Redraw each auxiliary node not labelled over with the facing the
//     path is travelled in.
func Commit(r grid.Reader, w grid.Writer, res *knot.Resolution) error {
	if res == nil || res.Arc == nil || res.Auxiliary == nil {
		return ErrNoResolution
	}
	deleteKinds(r, w, grid.KindArcMarker, grid.KindAuxStraight, grid.KindAuxTurn)

	for _, n := range res.Arc.Nodes {
		if n.Crossing == knot.CrossingOver {
			continue
		}
		m := grid.Of(grid.KindArcMarker, n.OutRotation)
		if n.IsCorner {
			m.Variant = 1
		}
		w.Place(n.Origin, grid.Secondary, m)
	}

	nodes := res.Auxiliary.Nodes
	for i, n := range nodes {
		if n.Crossing == knot.CrossingOver {
			continue
		}
		seg, err := grid.AuxSegmentFor(auxIn(nodes, i), n.OutRotation)
		if err != nil {
			return fmt.Errorf("%w at %v", err, n.Origin)
		}
		if drawn, ok := r.SegmentAt(n.Origin, grid.Secondary); ok {
			seg.OriginalFacing = drawn.OriginalFacing
		}
		w.Place(n.Origin, grid.Secondary, seg)
	}
	return nil
}

// Move replaces the arc of res by its auxiliary path on the primary layer.
//
// Arc cells are deleted; arc crossings become a straight along their other
// visit. Auxiliary cells become the primary segment for their entry and
// exit directions, travelled in loop order, except auxiliary crossings
// labelled over, which keep the loop segment they lie on. Both separators
// become the segment joining the kept part of the loop to the new path.
// All separator markers, auxiliary segments and arc markers are removed.
func Move(r grid.Reader, w grid.Writer, loop *knot.Loop, res *knot.Resolution) error {
	if res == nil || res.Arc == nil || res.Auxiliary == nil || len(res.Auxiliary.Nodes) == 0 {
		return ErrNoResolution
	}
	arc, nodes := res.Arc, res.Auxiliary.Nodes
	i0, ok0 := loop.IndexOf(res.Separators[0])
	i1, ok1 := loop.IndexOf(res.Separators[1])
	if !ok0 || !ok1 {
		return fmt.Errorf("%w: separators not on the loop", ErrNoResolution)
	}

	// 1) separator joins, computed first so nothing is written on error
	first, last := nodes[0].OutRotation, nodes[len(nodes)-1].OutRotation
	var joins [2]grid.Segment
	var err error
	if arc.Forward {
		if joins[0], err = grid.SegmentFor(loop.In(i0), first); err != nil {
			return fmt.Errorf("%w at %v", err, res.Separators[0])
		}
		if joins[1], err = grid.SegmentFor(last, loop.Nodes[i1].OutRotation); err != nil {
			return fmt.Errorf("%w at %v", err, res.Separators[1])
		}
	} else {
		if joins[0], err = grid.SegmentFor(first.Reverse(), loop.Nodes[i0].OutRotation); err != nil {
			return fmt.Errorf("%w at %v", err, res.Separators[0])
		}
		if joins[1], err = grid.SegmentFor(loop.In(i1), last.Reverse()); err != nil {
			return fmt.Errorf("%w at %v", err, res.Separators[1])
		}
	}

	// 2) auxiliary cells in loop orientation
	type placement struct {
		at  grid.Point
		seg grid.Segment
	}
	path := make([]placement, 0, len(nodes))
	for i, n := range nodes {
		if n.IsCrossing && n.Crossing == knot.CrossingOver {
			continue
		}
		in, out := auxIn(nodes, i), n.OutRotation
		if !arc.Forward {
			in, out = out.Reverse(), in.Reverse()
		}
		seg, err := grid.SegmentFor(in, out)
		if err != nil {
			return fmt.Errorf("%w at %v", err, n.Origin)
		}
		path = append(path, placement{n.Origin, seg})
	}

	// 3) write
	deleteKinds(r, w, grid.KindSeparator, grid.KindAuxStraight, grid.KindAuxTurn, grid.KindArcMarker)
	for k, n := range arc.Nodes {
		if !n.IsCrossing {
			w.Delete(n.Origin, grid.Primary)
			continue
		}
		if n.Crossing == knot.CrossingOver {
			continue
		}
		if o, ok := loop.Other(arc.Index[k]); ok {
			w.Place(n.Origin, grid.Primary, grid.Of(grid.KindStraight, loop.Nodes[o].OutRotation))
		}
	}
	for _, p := range path {
		w.Place(p.at, grid.Primary, p.seg)
	}
	for i, sep := range res.Separators {
		w.Place(sep, grid.Primary, joins[i])
	}
	return nil
}

// auxIn returns the direction auxiliary node i is entered along. The first
// node is always a straight, entered along its own out rotation.
func auxIn(nodes []knot.Node, i int) grid.Direction {
	if i == 0 {
		return nodes[0].OutRotation
	}
	return nodes[i-1].OutRotation
}

func deleteKinds(r grid.Reader, w grid.Writer, kinds ...grid.Kind) int {
	n := 0
	for _, s := range r.Segments(grid.Secondary) {
		for _, k := range kinds {
			if s.Kind == k {
				w.Delete(s.At, grid.Secondary)
				n++
				break
			}
		}
	}
	return n
}

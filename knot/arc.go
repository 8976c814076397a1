package knot

import (
	"slices"

	"github.com/katalvlaran/lvknot/grid"
)

// BuildArc returns the candidate arc strictly between the two separators.
// forward selects the arc that follows the loop orientation from seps[0] to
// seps[1]; otherwise the arc from seps[1] to seps[0] is taken and reversed,
// so either way Nodes run from seps[0] towards seps[1].
//
// Crossing nodes are relabelled on the returned copies: under when the out
// rotation equals the junction facing, over otherwise. The loop is not
// modified.
//
// Complexity: O(n) for n loop nodes.
func BuildArc(r grid.Reader, loop *Loop, seps [2]grid.Point, aux *Path, forward bool) (*Arc, error) {
	i0, ok := loop.IndexOf(seps[0])
	if !ok {
		return nil, at(ErrSeparatorOffLoop, seps[0])
	}
	i1, ok := loop.IndexOf(seps[1])
	if !ok {
		return nil, at(ErrSeparatorOffLoop, seps[1])
	}

	var idx []int
	if forward {
		idx = loop.Between(i0, i1)
	} else {
		idx = loop.Between(i1, i0)
		slices.Reverse(idx)
	}

	arc := &Arc{Forward: forward, Nodes: make([]Node, 0, len(idx)), Index: make([]int, 0, len(idx))}
	seen := make(map[grid.Point]bool, len(idx))
	for _, i := range idx {
		n := loop.Nodes[i]
		if seen[n.Origin] {
			return nil, at(ErrArcSelfIntersect, n.Origin)
		}
		seen[n.Origin] = true
		if aux != nil && aux.Contains(n.Origin) {
			return nil, at(ErrArcCrossesAux, n.Origin)
		}
		if n.IsCrossing {
			n.Crossing = CrossingOver
			if seg, _ := r.SegmentAt(n.Origin, grid.Primary); seg.Facing == n.OutRotation {
				n.Crossing = CrossingUnder
			}
		}
		arc.Nodes = append(arc.Nodes, n)
		arc.Index = append(arc.Index, i)
	}
	return arc, nil
}

// ChooseArc returns the forward arc when it is usable and the reverse arc
// otherwise.
func ChooseArc(r grid.Reader, loop *Loop, seps [2]grid.Point, aux *Path) (*Arc, error) {
	fwd, ferr := BuildArc(r, loop, seps, aux, true)
	if ferr == nil {
		return fwd, nil
	}
	rev, rerr := BuildArc(r, loop, seps, aux, false)
	if rerr == nil {
		return rev, nil
	}
	return nil, &ArcError{Forward: ferr, Reverse: rerr}
}

package knot

import "github.com/katalvlaran/lvknot/grid"

// ResolveAuxiliary follows the auxiliary path on the secondary layer from
// seps[0] to seps[1].
//
// The first auxiliary segment found around seps[0] (scanning up, right,
// down, left) starts the path and its facing is forced to the scan
// direction. Straights take the travel direction as their facing; turns
// deflect it. A straight over a loop segment becomes a crossing node.
//
// Complexity: O(A) for A secondary segments.
func ResolveAuxiliary(r grid.Reader, seps [2]grid.Point) (*Path, error) {
	from, to := seps[0], seps[1]

	// 1) seed from the first separator
	var cur grid.Point
	var d grid.Direction
	found, branches := false, 0
	for i, off := range grid.Orthogonal {
		q := from.Add(off)
		s, ok := r.SegmentAt(q, grid.Secondary)
		if !ok || !s.Kind.IsAux() {
			continue
		}
		if !grid.Occupied(r, q, grid.Primary) {
			branches++
		}
		if !found {
			cur, d, found = q, grid.Directions[i], true
		}
	}
	if !found {
		return nil, at(ErrAuxMissing, from)
	}
	if branches > 1 {
		return nil, at(ErrAuxDualBranch, from)
	}
	if s, _ := r.SegmentAt(cur, grid.Secondary); s.Kind == grid.KindAuxTurn {
		return nil, at(ErrAuxCorner, cur)
	}

	// 2) walk to the second separator
	path := &Path{}
	seen := map[grid.Point]bool{from: true}
	for cur != to {
		if seen[cur] {
			return nil, at(ErrAuxLoopsBack, cur)
		}
		seen[cur] = true

		s, ok := r.SegmentAt(cur, grid.Secondary)
		if !ok {
			return nil, at(ErrAuxOpenEnd, cur)
		}
		below, hasBelow := r.SegmentAt(cur, grid.Primary)
		n := Node{Origin: cur, Color: Auxiliary, OutRotation: d}

		switch s.Kind {
		case grid.KindAuxStraight:
			if !grid.NeighborsEmpty(r, cur, d, grid.Secondary) {
				return nil, at(ErrAuxDense, cur)
			}
			if hasBelow {
				if below.Kind != grid.KindStraight || grid.IsJunction(r, cur) {
					return nil, at(ErrAuxUnderlying, cur)
				}
				if below.Facing.Parallel(d) {
					return nil, at(ErrAuxParallel, cur)
				}
				n.IsCrossing = true
			} else if !grid.NeighborsEmpty(r, cur, d, grid.Primary) {
				return nil, at(ErrAuxDense, cur)
			}

		case grid.KindAuxTurn:
			if hasBelow {
				return nil, at(ErrAuxUnderlying, cur)
			}
			if !grid.DiagonalsEmpty(r, cur, grid.Secondary) || !grid.DiagonalsEmpty(r, cur, grid.Primary) {
				return nil, at(ErrAuxDense, cur)
			}
			switch s.Facing {
			case d:
				d = d.Rotate(90)
			case d.Rotate(90):
				d = d.Rotate(270)
			default:
				return nil, at(ErrAuxCorner, cur)
			}
			n.IsCorner, n.OutRotation = true, d

		default:
			return nil, at(ErrAuxIllegal, cur)
		}

		path.Nodes = append(path.Nodes, n)
		cur = cur.Step(d)
	}
	return path, nil
}

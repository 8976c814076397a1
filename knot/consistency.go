package knot

import (
	"slices"

	"github.com/katalvlaran/lvknot/grid"
)

// Resolution is a consistent over/under assignment for one handedness.
type Resolution struct {
	Handedness Handedness
	Separators [2]grid.Point
	Arc        *Arc
	// Auxiliary is a copy of the auxiliary path with crossing labels set.
	Auxiliary *Path
	// Strands lists every labelled strand in the order it was resolved.
	Strands []Strand
	// Escaped counts walks that ended on a separator rather than on the
	// arc or the auxiliary path.
	Escaped int
}

// Resolve labels the strands around the arc's crossings for handedness h
// and propagates the labels along the loop.
//
// Every crossing of the arc seeds a strand perpendicular to the arc on the
// h side. Each strand is walked along the loop until it reaches the
// auxiliary path (the auxiliary crossing takes its label), another arc
// crossing (labels must agree) or a separator. Interior crossings whose
// fixed over/under state disagrees with the walked label force the label
// onto the crossing strand, which is queued in turn.
//
// Complexity: O(n·k) for n loop nodes and k queued strands.
func Resolve(loop *Loop, seps [2]grid.Point, arc *Arc, aux *Path, h Handedness) (*Resolution, error) {
	rv := &resolver{
		loop:     loop,
		seps:     seps,
		auxIdx:   make(map[strandKey]int),
		labels:   make([]CrossingType, len(aux.Nodes)),
		boundary: make(map[grid.Point]CrossingType),
		resolved: newStrandSet(),
	}
	rot := h.rotation()

	// 1) auxiliary strands
	for i, g := range aux.Nodes {
		if g.IsCrossing {
			rv.auxIdx[strandKey{g.Origin, g.OutRotation.Rotate(rot)}] = i
		}
	}
	// 2) boundary strands
	for i, c := range arc.Nodes {
		if !c.IsCrossing {
			continue
		}
		rv.boundary[c.Origin] = c.Crossing
		s, ok := loop.StrandAt(c.Origin, arc.Travel(i).Rotate(rot))
		if !ok {
			return nil, at(ErrBrokenStrand, c.Origin)
		}
		s.Crossing = c.Crossing
		rv.resolved.add(s)
		rv.queue.push(s)
	}
	// 3) propagate
	for {
		s, ok := rv.queue.pop()
		if !ok {
			break
		}
		if err := rv.walk(s); err != nil {
			return nil, err
		}
	}

	// 4) copy labels out
	res := &Resolution{
		Handedness: h,
		Separators: seps,
		Arc:        arc,
		Auxiliary:  &Path{Nodes: slices.Clone(aux.Nodes)},
		Escaped:    rv.escaped,
	}
	for i, lbl := range rv.labels {
		res.Auxiliary.Nodes[i].Crossing = lbl
	}
	for _, s := range rv.resolved.order {
		s.Crossing = rv.resolved.labels[s.key()]
		res.Strands = append(res.Strands, s)
	}
	return res, nil
}

type resolver struct {
	loop     *Loop
	seps     [2]grid.Point
	auxIdx   map[strandKey]int
	labels   []CrossingType
	boundary map[grid.Point]CrossingType
	resolved *strandSet
	queue    strandQueue
	escaped  int
}

func (rv *resolver) conflicts(s Strand, want CrossingType) bool {
	got, ok := rv.resolved.get(s)
	return ok && got != CrossingUnset && got != want
}

func (rv *resolver) walk(cur Strand) error {
	limit := 4 * rv.loop.Len()
	for step := 0; ; step++ {
		if step > limit {
			return at(ErrBrokenStrand, cur.Origin)
		}
		opp, ok := rv.loop.Opposite(cur)
		if !ok {
			return at(ErrBrokenStrand, cur.Origin)
		}
		if rv.conflicts(opp, cur.Crossing) {
			return at(ErrContradiction, opp.Origin)
		}
		// 1) crossing the auxiliary path from the seeded side
		if gi, ok := rv.auxIdx[cur.key()]; ok {
			rv.labels[gi] = cur.Crossing
			return nil
		}
		rv.resolved.add(opp)
		rv.queue.remove(opp)

		// 2) termination on the arc or at a separator
		if lbl, ok := rv.boundary[opp.Origin]; ok {
			if lbl != cur.Crossing {
				return at(ErrContradiction, opp.Origin)
			}
			return nil
		}
		if opp.Origin == rv.seps[0] || opp.Origin == rv.seps[1] {
			rv.escaped++
			return nil
		}

		// 3) interior crossing with a fixed state
		if node := rv.loop.Nodes[opp.At]; node.IsCrossing {
			if side, forced := sideLabel(node.Crossing, cur.Crossing); forced {
				if err := rv.force(opp, side); err != nil {
					return err
				}
			}
		}

		// 4) continue along the loop
		nxt, ok := rv.loop.Next(cur)
		if !ok {
			return at(ErrBrokenStrand, cur.Origin)
		}
		if rv.conflicts(nxt, cur.Crossing) {
			return at(ErrContradiction, nxt.Origin)
		}
		rv.resolved.add(nxt)
		cur = nxt
	}
}

// force labels both strands crossing opp at its cell and queues the new ones.
func (rv *resolver) force(opp Strand, side CrossingType) error {
	for _, r := range [2]int{90, 270} {
		sd, ok := rv.loop.StrandAt(opp.Origin, opp.Dir.Rotate(r))
		if !ok {
			return at(ErrBrokenStrand, opp.Origin)
		}
		sd.Crossing = side
		if got, seen := rv.resolved.get(sd); seen {
			if got != CrossingUnset && got != side {
				return at(ErrContradiction, sd.Origin)
			}
			continue
		}
		rv.resolved.add(sd)
		rv.queue.push(sd)
	}
	return nil
}

// sideLabel is the rule table for an interior crossing: the walked strand's
// fixed state and its propagated label decide the label forced onto the
// crossing strand.
func sideLabel(node, label CrossingType) (CrossingType, bool) {
	switch {
	case node == CrossingOver && label == CrossingUnder:
		return CrossingUnder, true
	case node == CrossingUnder && label == CrossingOver:
		return CrossingOver, true
	}
	return CrossingUnset, false
}

// ResolveOption customizes ResolveEither.
type ResolveOption func(*resolveConfig)

type resolveConfig struct {
	onAttempt func(Handedness, *Resolution, error)
}

// WithAttemptHook calls fn after every handedness evaluation. Panics on nil.
func WithAttemptHook(fn func(Handedness, *Resolution, error)) ResolveOption {
	if fn == nil {
		panic("knot: WithAttemptHook(nil)")
	}
	return func(c *resolveConfig) { c.onAttempt = fn }
}

// ResolveEither evaluates Left and returns it when it succeeds. Right is
// evaluated only when Left fails. Both evaluations are pure, so trying
// Right never undoes anything. Walks that escape through a separator do
// not make an attempt fail; Escaped only reports them.
func ResolveEither(loop *Loop, seps [2]grid.Point, arc *Arc, aux *Path, opts ...ResolveOption) (*Resolution, error) {
	cfg := resolveConfig{onAttempt: func(Handedness, *Resolution, error) {}}
	for _, o := range opts {
		o(&cfg)
	}

	left, lerr := Resolve(loop, seps, arc, aux, Left)
	cfg.onAttempt(Left, left, lerr)
	if lerr == nil {
		return left, nil
	}
	right, rerr := Resolve(loop, seps, arc, aux, Right)
	cfg.onAttempt(Right, right, rerr)
	if rerr == nil {
		return right, nil
	}
	return nil, &ConsistencyError{Left: lerr, Right: rerr}
}

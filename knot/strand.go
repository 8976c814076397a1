package knot

import "github.com/katalvlaran/lvknot/grid"

// Strand is a half-edge of the loop: it leaves Origin along Dir. Two
// strands are the same strand when Origin and Dir match. At is the loop
// index of the visit the half-edge belongs to; the resolver reads the node
// there, which matters on junctions where Origin has two visits. Crossing
// is the label being propagated.
//
// Strands pair up like half-edges: Opposite is the twin, Next the half-edge
// that continues it along the loop.
type Strand struct {
	At       int
	Origin   grid.Point
	Dir      grid.Direction
	Crossing CrossingType
}

type strandKey struct {
	at  grid.Point
	dir grid.Direction
}

func (s Strand) key() strandKey { return strandKey{s.Origin, s.Dir} }

// Same reports whether s and o are the same half-edge.
func (s Strand) Same(o Strand) bool { return s.key() == o.key() }

// StrandAt returns the half-edge leaving p along d.
func (l *Loop) StrandAt(p grid.Point, d grid.Direction) (Strand, bool) {
	i, _, ok := l.halfEdge(p, d)
	if !ok {
		return Strand{}, false
	}
	return Strand{At: i, Origin: p, Dir: d}, true
}

// Opposite returns the twin of s: the half-edge at the neighbouring node in
// direction s.Dir, pointing back towards s.Origin.
func (l *Loop) Opposite(s Strand) (Strand, bool) {
	i, fwd, ok := l.halfEdge(s.Origin, s.Dir)
	if !ok {
		return Strand{}, false
	}
	j := l.wrap(i - 1)
	if fwd {
		j = l.wrap(i + 1)
	}
	return Strand{At: j, Origin: l.Nodes[j].Origin, Dir: s.Dir.Reverse(), Crossing: s.Crossing}, true
}

// Next returns the half-edge that continues s one node further along the
// loop, in the direction s travels.
func (l *Loop) Next(s Strand) (Strand, bool) {
	i, fwd, ok := l.halfEdge(s.Origin, s.Dir)
	if !ok {
		return Strand{}, false
	}
	if fwd {
		j := l.wrap(i + 1)
		return Strand{At: j, Origin: l.Nodes[j].Origin, Dir: l.Nodes[j].OutRotation, Crossing: s.Crossing}, true
	}
	j := l.wrap(i - 1)
	return Strand{At: j, Origin: l.Nodes[j].Origin, Dir: l.In(j).Reverse(), Crossing: s.Crossing}, true
}

// strandSet is the resolved set: label per strand plus insertion order.
type strandSet struct {
	labels map[strandKey]CrossingType
	order  []Strand
}

func newStrandSet() *strandSet {
	return &strandSet{labels: make(map[strandKey]CrossingType)}
}

func (s *strandSet) get(st Strand) (CrossingType, bool) {
	c, ok := s.labels[st.key()]
	return c, ok
}

// add records st unless it is already present; it reports whether st was new.
func (s *strandSet) add(st Strand) bool {
	if _, ok := s.labels[st.key()]; ok {
		return false
	}
	s.labels[st.key()] = st.Crossing
	s.order = append(s.order, st)
	return true
}

// strandQueue is a LIFO of pending strands with removal by identity.
type strandQueue struct {
	items   []Strand
	removed map[strandKey]bool
}

func (q *strandQueue) push(s Strand) {
	delete(q.removed, s.key())
	q.items = append(q.items, s)
}

func (q *strandQueue) remove(s Strand) {
	if q.removed == nil {
		q.removed = make(map[strandKey]bool)
	}
	q.removed[s.key()] = true
}

func (q *strandQueue) pop() (Strand, bool) {
	for len(q.items) > 0 {
		s := q.items[len(q.items)-1]
		q.items = q.items[:len(q.items)-1]
		if !q.removed[s.key()] {
			return s, true
		}
	}
	return Strand{}, false
}

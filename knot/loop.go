package knot

import "github.com/katalvlaran/lvknot/grid"

// Loop is a traced closed loop.
//
// Nodes is closed implicitly: the node after the last one is Nodes[0].
// Junction cells appear twice in Nodes and once in Crossings and Straights.
// Start is a non-junction straight and is not listed in Straights, so
// len(Turns)+len(Straights)+1 equals the number of primary segments.
type Loop struct {
	Nodes     []Node
	Start     grid.Point
	Crossings []grid.Point
	Turns     []grid.Point
	Straights []grid.Point

	visits map[grid.Point][]int
}

func newLoop() *Loop {
	return &Loop{visits: make(map[grid.Point][]int)}
}

func (l *Loop) add(n Node) {
	l.visits[n.Origin] = append(l.visits[n.Origin], len(l.Nodes))
	l.Nodes = append(l.Nodes, n)
}

// Len returns the number of node visits.
func (l *Loop) Len() int { return len(l.Nodes) }

// Segments returns the number of distinct cells on the loop.
func (l *Loop) Segments() int { return len(l.visits) }

// Visits returns the node indices at p in loop order.
func (l *Loop) Visits(p grid.Point) []int { return l.visits[p] }

// IndexOf returns the first node index at p.
func (l *Loop) IndexOf(p grid.Point) (int, bool) {
	v := l.visits[p]
	if len(v) == 0 {
		return 0, false
	}
	return v[0], true
}

// Contains reports whether the loop passes through p.
func (l *Loop) Contains(p grid.Point) bool { return len(l.visits[p]) > 0 }

// Other returns the second visit of the junction node i.
func (l *Loop) Other(i int) (int, bool) {
	v := l.visits[l.Nodes[i].Origin]
	if len(v) != 2 {
		return 0, false
	}
	if v[0] == i {
		return v[1], true
	}
	return v[0], true
}

// Between returns the indices strictly between from and to, walking forward
// around the loop.
// Complexity: O(n).
func (l *Loop) Between(from, to int) []int {
	var out []int
	for i := l.wrap(from + 1); i != l.wrap(to); i = l.wrap(i + 1) {
		out = append(out, i)
	}
	return out
}

// In returns the direction node i is entered along.
func (l *Loop) In(i int) grid.Direction { return l.Nodes[l.wrap(i-1)].OutRotation }

func (l *Loop) wrap(i int) int {
	n := len(l.Nodes)
	return ((i % n) + n) % n
}

// halfEdge finds the visit at p whose half-edge leaves along d. fwd reports
// whether that half-edge follows the loop orientation.
func (l *Loop) halfEdge(p grid.Point, d grid.Direction) (i int, fwd, ok bool) {
	for _, i := range l.visits[p] {
		if l.Nodes[i].OutRotation == d {
			return i, true, true
		}
		if l.In(i).Reverse() == d {
			return i, false, true
		}
	}
	return 0, false, false
}

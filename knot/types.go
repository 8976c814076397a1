package knot

import "github.com/katalvlaran/lvknot/grid"

// Color tells which path a node belongs to.
type Color uint8

const (
	// Primary nodes belong to the traced loop.
	Primary Color = iota
	// Auxiliary nodes belong to the auxiliary path.
	Auxiliary
)

func (c Color) String() string {
	if c == Auxiliary {
		return "auxiliary"
	}
	return "primary"
}

// CrossingType is the over/under label of a strand at a crossing.
type CrossingType uint8

const (
	// CrossingUnset means no label was assigned.
	CrossingUnset CrossingType = iota
	// CrossingOver marks the strand passing over the crossing.
	CrossingOver
	// CrossingUnder marks the strand passing under the crossing.
	CrossingUnder
)

func (c CrossingType) String() string {
	switch c {
	case CrossingOver:
		return "over"
	case CrossingUnder:
		return "under"
	}
	return ""
}

// Node is one visit of a path to a cell.
//
// On a Loop, Crossing follows the tracer convention: over when the junction
// facing equals the arrival direction. On an Arc it follows the arc
// convention: under when the out rotation equals the junction facing.
type Node struct {
	Origin      grid.Point
	Color       Color
	IsCrossing  bool
	IsCorner    bool
	OutRotation grid.Direction
	Crossing    CrossingType
}

// Handedness selects the side of the arc the resolver seeds strands on.
type Handedness uint8

const (
	// Left seeds strands a quarter turn clockwise of the arc direction.
	Left Handedness = iota
	// Right seeds strands a quarter turn counter-clockwise of it.
	Right
)

// rotation returns the seed rotation in degrees.
func (h Handedness) rotation() int {
	if h == Right {
		return 270
	}
	return 90
}

func (h Handedness) String() string {
	if h == Right {
		return "right"
	}
	return "left"
}

// Path is the auxiliary path between the two separators, separators
// excluded, ordered from the first separator to the second.
type Path struct {
	Nodes []Node
}

// Contains reports whether the path visits p.
func (p *Path) Contains(at grid.Point) bool {
	for _, n := range p.Nodes {
		if n.Origin == at {
			return true
		}
	}
	return false
}

// Crossings returns the path nodes lying over a loop segment.
func (p *Path) Crossings() []Node {
	var out []Node
	for _, n := range p.Nodes {
		if n.IsCrossing {
			out = append(out, n)
		}
	}
	return out
}

// Arc is one candidate arc: the loop nodes strictly between the separators,
// ordered from the first separator to the second.
type Arc struct {
	Nodes []Node
	// Index holds the loop index of each node.
	Index []int
	// Forward reports whether Nodes follow the loop orientation.
	Forward bool
}

// Travel returns the direction the arc is traversed in at node i, from the
// first separator towards the second.
func (a *Arc) Travel(i int) grid.Direction {
	if a.Forward {
		return a.Nodes[i].OutRotation
	}
	return a.Nodes[i].OutRotation.Reverse()
}

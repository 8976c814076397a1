package grid

import (
	"fmt"
	"sort"
)

// Point is a cell address. Y grows downward.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Step returns the neighbour of p in direction d.
func (p Point) Step(d Direction) Point { return p.Add(d.Vector()) }

// Back returns the neighbour of p opposite to direction d.
func (p Point) Back(d Direction) Point { return p.Add(d.Reverse().Vector()) }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Less orders points row-major: by Y, then by X.
func (p Point) Less(q Point) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// SortPoints sorts ps in row-major order in place.
func SortPoints(ps []Point) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].Less(ps[j]) })
}

// Direction is a heading in degrees, clockwise on screen.
type Direction int

const (
	Up    Direction = 0
	Right Direction = 90
	Down  Direction = 180
	Left  Direction = 270
)

// Directions lists the four headings in neighbour-scan order.
var Directions = [4]Direction{Up, Right, Down, Left}

// Rotate returns d turned clockwise by deg degrees, normalized to [0,360).
func (d Direction) Rotate(deg int) Direction {
	r := (int(d) + deg) % 360
	if r < 0 {
		r += 360
	}
	return Direction(r)
}

// Reverse returns the opposite heading.
func (d Direction) Reverse() Direction { return d.Rotate(180) }

// Valid reports whether d is one of the four axis headings.
func (d Direction) Valid() bool {
	return d == Up || d == Right || d == Down || d == Left
}

// Parallel reports whether d and o lie on the same axis.
func (d Direction) Parallel(o Direction) bool {
	return (int(d)-int(o))%180 == 0
}

// Index returns the position of d in Directions.
func (d Direction) Index() int { return int(d.Rotate(0)) / 90 }

// Vector returns the unit offset of one step along d.
func (d Direction) Vector() Point {
	switch d.Rotate(0) {
	case Up:
		return Point{0, -1}
	case Right:
		return Point{1, 0}
	case Down:
		return Point{0, 1}
	default:
		return Point{-1, 0}
	}
}

func (d Direction) String() string {
	switch d.Rotate(0) {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("%d°", int(d))
}

// Layer selects one of the two stacked cell planes.
type Layer uint8

const (
	// Primary holds the loop itself.
	Primary Layer = iota
	// Secondary holds separators, the auxiliary path and arc markers.
	Secondary
)

func (l Layer) String() string {
	if l == Secondary {
		return "secondary"
	}
	return "primary"
}

// Kind identifies what a segment is.
type Kind uint8

const (
	KindNone Kind = iota
	KindStraight
	KindTurnLeft
	KindTurnRight
	KindSeparator
	KindAuxStraight
	KindAuxTurn
	KindArcMarker
)

var kindNames = [...]string{
	KindNone:        "none",
	KindStraight:    "straight",
	KindTurnLeft:    "turn-left",
	KindTurnRight:   "turn-right",
	KindSeparator:   "separator",
	KindAuxStraight: "aux-straight",
	KindAuxTurn:     "aux-turn",
	KindArcMarker:   "arc-marker",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// IsLoop reports whether k may appear on the primary layer.
func (k Kind) IsLoop() bool {
	return k == KindStraight || k == KindTurnLeft || k == KindTurnRight
}

// IsTurn reports whether k is a primary turn.
func (k Kind) IsTurn() bool { return k == KindTurnLeft || k == KindTurnRight }

// IsAux reports whether k belongs to an auxiliary path.
func (k Kind) IsAux() bool { return k == KindAuxStraight || k == KindAuxTurn }

// Segment is the content of one cell on one layer.
//
// For straights Facing is the travel direction; for turns it is the incoming
// direction. OriginalFacing keeps the drawn facing when a pass forces a new
// one. Variant distinguishes straight (0) from corner (1) arc markers.
type Segment struct {
	Kind           Kind
	Facing         Direction
	OriginalFacing Direction
	Variant        int
}

// Of builds a segment of kind k facing f.
func Of(k Kind, f Direction) Segment {
	return Segment{Kind: k, Facing: f, OriginalFacing: f}
}

// Out returns the direction a primary segment leaves its cell along.
func (s Segment) Out() Direction {
	switch s.Kind {
	case KindTurnLeft:
		return s.Facing.Rotate(270)
	case KindTurnRight:
		return s.Facing.Rotate(90)
	}
	return s.Facing
}

// Exit returns the cell a primary segment at p ejects into.
func (s Segment) Exit(p Point) Point { return p.Step(s.Out()) }

// Entry returns the cell a primary segment at p accepts from.
func (s Segment) Entry(p Point) Point { return p.Back(s.Facing) }

// Placed is a segment together with its cell.
type Placed struct {
	At Point
	Segment
}

// Severity classifies a notification.
type Severity uint8

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityError:
		return "error"
	}
	return "info"
}

// Notification is one message sent to a Notifier.
type Notification struct {
	Message  string
	Severity Severity
}

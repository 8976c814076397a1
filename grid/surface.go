package grid

// Reader is the read side of a grid surface.
type Reader interface {
	// SegmentAt returns the segment at p on layer l and whether one exists.
	SegmentAt(p Point, l Layer) (Segment, bool)
	// Segments returns every segment on layer l in row-major order.
	Segments(l Layer) []Placed
}

// Writer is the mutation side of a grid surface.
type Writer interface {
	Place(p Point, l Layer, s Segment)
	Delete(p Point, l Layer)
}

// Notifier receives user-facing messages.
type Notifier interface {
	Notify(msg string, sev Severity)
}

// Surface is everything the engine needs from a host grid.
//
// SuppressAutoUpdate disables the host's automatic adjustment of neighbouring
// segments until the returned release func is called. Calls nest.
type Surface interface {
	Reader
	Writer
	Notifier
	SuppressAutoUpdate() (release func())
}

// Orthogonal lists the four neighbour offsets in scan order (up, right, down, left).
var Orthogonal = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Diagonal lists the four diagonal neighbour offsets.
var Diagonal = [4]Point{{1, -1}, {1, 1}, {-1, 1}, {-1, -1}}

// Occupied reports whether p holds any segment on layer l.
func Occupied(r Reader, p Point, l Layer) bool {
	_, ok := r.SegmentAt(p, l)
	return ok
}

// connects reports whether the primary segment at q ejects into or accepts from p.
func connects(r Reader, q, p Point) bool {
	s, ok := r.SegmentAt(q, Primary)
	if !ok || !s.Kind.IsLoop() {
		return false
	}
	return s.Exit(q) == p || s.Entry(q) == p
}

// IsJunction reports whether all four orthogonal primary neighbours of p
// connect into p, which makes p a self-crossing of the loop.
// Complexity: O(1).
func IsJunction(r Reader, p Point) bool {
	if _, ok := r.SegmentAt(p, Primary); !ok {
		return false
	}
	for _, d := range Orthogonal {
		if !connects(r, p.Add(d), p) {
			return false
		}
	}
	return true
}

// NeighborsEmpty reports whether the two neighbours of p perpendicular to
// facing are empty on layer l.
func NeighborsEmpty(r Reader, p Point, facing Direction, l Layer) bool {
	return !Occupied(r, p.Step(facing.Rotate(90)), l) &&
		!Occupied(r, p.Step(facing.Rotate(270)), l)
}

// DiagonalsEmpty reports whether the four diagonal neighbours of p are empty
// on layer l.
func DiagonalsEmpty(r Reader, p Point, l Layer) bool {
	for _, d := range Diagonal {
		if Occupied(r, p.Add(d), l) {
			return false
		}
	}
	return true
}

// SegmentFor returns the primary segment that is entered travelling along in
// and left along out.
func SegmentFor(in, out Direction) (Segment, error) {
	switch out {
	case in:
		return Of(KindStraight, in), nil
	case in.Rotate(90):
		return Of(KindTurnRight, in), nil
	case in.Rotate(270):
		return Of(KindTurnLeft, in), nil
	}
	return Segment{}, ErrReverse
}

// AuxSegmentFor is SegmentFor for the secondary layer. An auxiliary turn
// facing its entry direction deflects clockwise; one facing a quarter turn
// past its entry deflects counter-clockwise.
func AuxSegmentFor(in, out Direction) (Segment, error) {
	switch out {
	case in:
		return Of(KindAuxStraight, in), nil
	case in.Rotate(90):
		return Segment{Kind: KindAuxTurn, Facing: in, OriginalFacing: in, Variant: 1}, nil
	case in.Rotate(270):
		f := in.Rotate(90)
		return Segment{Kind: KindAuxTurn, Facing: f, OriginalFacing: f, Variant: 1}, nil
	}
	return Segment{}, ErrReverse
}

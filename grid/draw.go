package grid

import (
	"fmt"
	"strconv"
	"strings"
)

// Leg is a straight run of Len steps along Dir.
type Leg struct {
	Dir Direction
	Len int
}

// ParseLegs reads legs written as "D2 R5 U3": a heading letter (U, R, D, L)
// followed by a positive step count.
func ParseLegs(s string) ([]Leg, error) {
	fields := strings.Fields(s)
	legs := make([]Leg, 0, len(fields))
	for _, f := range fields {
		var d Direction
		switch f[0] {
		case 'U', 'u':
			d = Up
		case 'R', 'r':
			d = Right
		case 'D', 'd':
			d = Down
		case 'L', 'l':
			d = Left
		default:
			return nil, fmt.Errorf("%w: %q", ErrBadLeg, f)
		}
		n, err := strconv.Atoi(f[1:])
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrBadLeg, f)
		}
		legs = append(legs, Leg{Dir: d, Len: n})
	}
	return legs, nil
}

// MustParseLegs is ParseLegs that panics on malformed input. Meant for
// literals in tests and examples.
func MustParseLegs(s string) []Leg {
	legs, err := ParseLegs(s)
	if err != nil {
		panic(err)
	}
	return legs
}

// DrawLoop lays a closed primary path starting at start and following legs.
// Each cell gets the straight or turn matching its entry and exit headings.
// A cell crossed twice by perpendicular straights becomes a junction that
// keeps the facing of its first pass; the junction cells are returned in
// drawing order.
// Nothing is written unless the legs describe a legal closed path.
func DrawLoop(w Writer, start Point, legs []Leg) ([]Point, error) {
	// 1) expand legs into visited cells and step headings
	var cells []Point
	var heads []Direction
	cur := start
	for _, lg := range legs {
		for i := 0; i < lg.Len; i++ {
			cells = append(cells, cur)
			heads = append(heads, lg.Dir)
			cur = cur.Step(lg.Dir)
		}
	}
	if len(cells) == 0 || cur != start {
		return nil, fmt.Errorf("%w: ends at %v, started at %v", ErrNotClosed, cur, start)
	}

	// 2) assign a segment per cell, detecting crossings
	n := len(cells)
	drawn := make(map[Point]Segment, n)
	var order []Point
	var junctions []Point
	crossed := make(map[Point]bool)
	for i, p := range cells {
		in := heads[(i-1+n)%n]
		seg, err := SegmentFor(in, heads[i])
		if err != nil {
			return nil, fmt.Errorf("%w at %v", err, p)
		}
		prev, seen := drawn[p]
		if !seen {
			drawn[p] = seg
			order = append(order, p)
			continue
		}
		if crossed[p] || prev.Kind != KindStraight || seg.Kind != KindStraight || prev.Facing.Parallel(seg.Facing) {
			return nil, fmt.Errorf("%w at %v", ErrOverlap, p)
		}
		crossed[p] = true
		junctions = append(junctions, p)
	}

	// 3) write
	for _, p := range order {
		w.Place(p, Primary, drawn[p])
	}
	return junctions, nil
}

// DrawAux lays an auxiliary path on the secondary layer leaving from along
// legs. The first and last cells the legs touch (normally the two
// separators) are left alone; the cells in between are returned in order.
func DrawAux(w Writer, from Point, legs []Leg) ([]Point, error) {
	var heads []Direction
	for _, lg := range legs {
		for i := 0; i < lg.Len; i++ {
			heads = append(heads, lg.Dir)
		}
	}
	cells := make([]Point, 0, len(heads))
	segs := make([]Segment, 0, len(heads))
	cur := from
	for k := 0; k+1 < len(heads); k++ {
		cur = cur.Step(heads[k])
		seg, err := AuxSegmentFor(heads[k], heads[k+1])
		if err != nil {
			return nil, fmt.Errorf("%w at %v", err, cur)
		}
		cells = append(cells, cur)
		segs = append(segs, seg)
	}
	for i, p := range cells {
		w.Place(p, Secondary, segs[i])
	}
	return cells, nil
}

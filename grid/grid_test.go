package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvknot/grid"
)

// figureEight is a one-crossing loop: the top lobe runs through columns 1..9,
// the bottom lobe through rows 6..9, and they cross at (6,6).
const figureEight = "D2 R5 D6 L5 U3 R8 U5 L8"

func drawFigureEight(t *testing.T) *grid.Board {
	t.Helper()
	b := grid.NewBoard()
	junctions, err := grid.DrawLoop(b, grid.Pt(1, 1), grid.MustParseLegs(figureEight))
	require.NoError(t, err)
	require.Equal(t, []grid.Point{grid.Pt(6, 6)}, junctions)
	return b
}

func TestDirection_Arithmetic(t *testing.T) {
	assert.Equal(t, grid.Left, grid.Up.Rotate(-90))
	assert.Equal(t, grid.Up, grid.Left.Rotate(90))
	assert.Equal(t, grid.Down, grid.Up.Reverse())
	assert.Equal(t, grid.Right, grid.Right.Rotate(720))
	assert.True(t, grid.Right.Parallel(grid.Left))
	assert.False(t, grid.Right.Parallel(grid.Down))
	assert.Equal(t, 3, grid.Left.Index())
	assert.Equal(t, grid.Pt(0, -1), grid.Up.Vector())
	assert.Equal(t, grid.Pt(1, 0), grid.Right.Vector())
	assert.Equal(t, grid.Pt(2, 4), grid.Pt(2, 3).Step(grid.Down))
	assert.Equal(t, grid.Pt(1, 3), grid.Pt(2, 3).Back(grid.Right))
	assert.False(t, grid.Direction(45).Valid())
}

func TestSegmentFor(t *testing.T) {
	s, err := grid.SegmentFor(grid.Right, grid.Right)
	require.NoError(t, err)
	assert.Equal(t, grid.KindStraight, s.Kind)

	s, err = grid.SegmentFor(grid.Right, grid.Down)
	require.NoError(t, err)
	assert.Equal(t, grid.KindTurnRight, s.Kind)
	assert.Equal(t, grid.Right, s.Facing)
	assert.Equal(t, grid.Down, s.Out())

	s, err = grid.SegmentFor(grid.Up, grid.Left)
	require.NoError(t, err)
	assert.Equal(t, grid.KindTurnLeft, s.Kind)
	assert.Equal(t, grid.Left, s.Out())

	_, err = grid.SegmentFor(grid.Up, grid.Down)
	assert.ErrorIs(t, err, grid.ErrReverse)
}

func TestAuxSegmentFor(t *testing.T) {
	cw, err := grid.AuxSegmentFor(grid.Up, grid.Right)
	require.NoError(t, err)
	assert.Equal(t, grid.KindAuxTurn, cw.Kind)
	assert.Equal(t, grid.Up, cw.Facing) // facing == entry: clockwise

	ccw, err := grid.AuxSegmentFor(grid.Up, grid.Left)
	require.NoError(t, err)
	assert.Equal(t, grid.Right, ccw.Facing) // facing == entry+90: counter-clockwise

	_, err = grid.AuxSegmentFor(grid.Left, grid.Right)
	assert.ErrorIs(t, err, grid.ErrReverse)
}

func TestDrawLoop_FigureEight(t *testing.T) {
	b := drawFigureEight(t)
	assert.Equal(t, 41, b.Len(grid.Primary))

	s, ok := b.SegmentAt(grid.Pt(1, 1), grid.Primary)
	require.True(t, ok)
	assert.Equal(t, grid.Of(grid.KindTurnLeft, grid.Left), s)

	s, _ = b.SegmentAt(grid.Pt(6, 3), grid.Primary)
	assert.Equal(t, grid.KindTurnRight, s.Kind)
	assert.Equal(t, grid.Right, s.Facing)

	// the junction keeps the facing of its first (vertical) pass
	s, _ = b.SegmentAt(grid.Pt(6, 6), grid.Primary)
	assert.Equal(t, grid.Of(grid.KindStraight, grid.Down), s)
}

func TestDrawLoop_Errors(t *testing.T) {
	_, err := grid.DrawLoop(grid.NewBoard(), grid.Pt(0, 0), grid.MustParseLegs("R3 D2"))
	assert.ErrorIs(t, err, grid.ErrNotClosed)

	_, err = grid.DrawLoop(grid.NewBoard(), grid.Pt(0, 0), grid.MustParseLegs("R2 L2"))
	assert.ErrorIs(t, err, grid.ErrReverse)

	// runs twice along row 0
	b := grid.NewBoard()
	_, err = grid.DrawLoop(b, grid.Pt(0, 0), grid.MustParseLegs("R4 D2 L2 U2 R2 D2 L4 U2"))
	assert.ErrorIs(t, err, grid.ErrOverlap)
	assert.Zero(t, b.Len(grid.Primary), "nothing is written on failure")
}

func TestParseLegs(t *testing.T) {
	legs, err := grid.ParseLegs(" u1 R12\tD3 ")
	require.NoError(t, err)
	assert.Equal(t, []grid.Leg{{grid.Up, 1}, {grid.Right, 12}, {grid.Down, 3}}, legs)

	for _, bad := range []string{"X3", "R", "R0", "D-2", "Lx"} {
		_, err := grid.ParseLegs(bad)
		assert.ErrorIs(t, err, grid.ErrBadLeg, bad)
	}
}

func TestIsJunction(t *testing.T) {
	b := drawFigureEight(t)
	assert.True(t, grid.IsJunction(b, grid.Pt(6, 6)))
	assert.False(t, grid.IsJunction(b, grid.Pt(6, 5)))
	assert.False(t, grid.IsJunction(b, grid.Pt(1, 1)))
	assert.False(t, grid.IsJunction(b, grid.Pt(3, 4)), "empty cell")
}

func TestNeighborsAndDiagonals(t *testing.T) {
	b := drawFigureEight(t)
	// (3,3) runs right; its vertical neighbours are free
	assert.True(t, grid.NeighborsEmpty(b, grid.Pt(3, 3), grid.Right, grid.Primary))
	// checked across the other axis it touches (2,3) and (4,3)
	assert.False(t, grid.NeighborsEmpty(b, grid.Pt(3, 3), grid.Up, grid.Primary))
	assert.True(t, grid.DiagonalsEmpty(b, grid.Pt(6, 6), grid.Primary))
	assert.False(t, grid.DiagonalsEmpty(b, grid.Pt(2, 2), grid.Primary))
	assert.True(t, grid.DiagonalsEmpty(b, grid.Pt(6, 6), grid.Secondary))
}

func TestComponents(t *testing.T) {
	b := drawFigureEight(t)
	b.Place(grid.Pt(12, 12), grid.Primary, grid.Of(grid.KindStraight, grid.Right))
	b.Place(grid.Pt(13, 12), grid.Primary, grid.Of(grid.KindStraight, grid.Right))
	b.Place(grid.Pt(20, 0), grid.Primary, grid.Of(grid.KindStraight, grid.Up))

	comps := grid.Components(b, grid.Primary)
	require.Len(t, comps, 3)
	assert.Equal(t, []grid.Point{grid.Pt(20, 0)}, comps[0], "groups ordered by first cell")
	assert.Len(t, comps[1], 41)
	assert.Len(t, comps[2], 2)

	loop := make(map[grid.Point]bool)
	for _, p := range comps[1] {
		loop[p] = true
	}
	assert.Len(t, grid.Without(b, grid.Primary, loop), 2)
}

func TestDrawAux(t *testing.T) {
	b := grid.NewBoard()
	cells, err := grid.DrawAux(b, grid.Pt(2, 10), grid.MustParseLegs("U5 R18 D5"))
	require.NoError(t, err)
	require.Len(t, cells, 27)
	assert.Equal(t, grid.Pt(2, 9), cells[0])
	assert.Equal(t, grid.Pt(20, 9), cells[26])
	assert.False(t, grid.Occupied(b, grid.Pt(2, 10), grid.Secondary))
	assert.False(t, grid.Occupied(b, grid.Pt(20, 10), grid.Secondary))

	corner, ok := b.SegmentAt(grid.Pt(2, 5), grid.Secondary)
	require.True(t, ok)
	assert.Equal(t, grid.KindAuxTurn, corner.Kind)
	assert.Equal(t, grid.Up, corner.Facing)
	corner, _ = b.SegmentAt(grid.Pt(20, 5), grid.Secondary)
	assert.Equal(t, grid.Right, corner.Facing)
	straight, _ := b.SegmentAt(grid.Pt(20, 7), grid.Secondary)
	assert.Equal(t, grid.Of(grid.KindAuxStraight, grid.Down), straight)

	_, err = grid.DrawAux(grid.NewBoard(), grid.Pt(0, 0), grid.MustParseLegs("U2 D2"))
	assert.ErrorIs(t, err, grid.ErrReverse)
}

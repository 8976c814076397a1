package knot_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvknot/grid"
	"github.com/katalvlaran/lvknot/internal/fixtures"
	"github.com/katalvlaran/lvknot/knot"
)

func TestTrace_Empty(t *testing.T) {
	loop, err := knot.Trace(grid.NewBoard())
	assert.Nil(t, loop)
	assert.ErrorIs(t, err, knot.ErrNoSegments)
	assert.ErrorIs(t, err, knot.ErrStructure)
}

// A square of four straights never turns.
func TestTrace_MissingTurn(t *testing.T) {
	b := grid.NewBoard()
	b.Place(grid.Pt(0, 0), grid.Primary, grid.Of(grid.KindStraight, grid.Right))
	b.Place(grid.Pt(1, 0), grid.Primary, grid.Of(grid.KindStraight, grid.Down))
	b.Place(grid.Pt(1, 1), grid.Primary, grid.Of(grid.KindStraight, grid.Left))
	b.Place(grid.Pt(0, 1), grid.Primary, grid.Of(grid.KindStraight, grid.Up))

	loop, err := knot.Trace(b)
	assert.Nil(t, loop)
	require.ErrorIs(t, err, knot.ErrMissingTurn)
	assert.ErrorIs(t, err, knot.ErrStructure)

	var de *knot.DiagramError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, grid.Pt(1, 0), de.At)
}

func TestTrace_FigureEight(t *testing.T) {
	b := fixtures.FigureEight(grid.Right)
	loop, err := knot.Trace(b)
	require.NoError(t, err)

	// the first segment is the turn at (1,1); the loop starts at its exit
	assert.Equal(t, grid.Pt(1, 2), loop.Start)
	assert.Equal(t, 42, loop.Len())
	assert.Equal(t, 41, loop.Segments())
	assert.Equal(t, []grid.Point{fixtures.FigureEightJunction}, loop.Crossings)
	assert.Len(t, loop.Turns, 8)
	assert.Len(t, loop.Straights, 32)

	assert.Equal(t, []int{9, 25}, loop.Visits(fixtures.FigureEightJunction))
	down, across := loop.Nodes[9], loop.Nodes[25]
	assert.True(t, down.IsCrossing)
	assert.Equal(t, grid.Down, down.OutRotation)
	assert.Equal(t, knot.CrossingUnder, down.Crossing)
	assert.Equal(t, grid.Right, across.OutRotation)
	assert.Equal(t, knot.CrossingOver, across.Crossing)

	other, ok := loop.Other(9)
	assert.True(t, ok)
	assert.Equal(t, 25, other)
	_, ok = loop.Other(0)
	assert.False(t, ok)
}

func TestTrace_CountInvariant(t *testing.T) {
	boards := map[string]*grid.Board{
		"figure eight": fixtures.FigureEight(grid.Down),
		"fingers":      fixtures.FingersContradictory(),
	}
	for name, b := range boards {
		t.Run(name, func(t *testing.T) {
			loop, err := knot.Trace(b)
			require.NoError(t, err)
			total := len(b.Segments(grid.Primary))
			assert.Equal(t, total, len(loop.Turns)+len(loop.Straights)+1)
			assert.Equal(t, total, loop.Segments())
		})
	}
}

// Every crossing is visited twice, once over and once under.
func TestTrace_CrossingParity(t *testing.T) {
	loop, err := knot.Trace(fixtures.FingersContradictory())
	require.NoError(t, err)
	require.Len(t, loop.Crossings, 4)
	assert.ElementsMatch(t, fixtures.FingersJunctions[:], loop.Crossings)

	for _, p := range loop.Crossings {
		v := loop.Visits(p)
		require.Len(t, v, 2, "crossing %v", p)
		got := []knot.CrossingType{loop.Nodes[v[0]].Crossing, loop.Nodes[v[1]].Crossing}
		assert.ElementsMatch(t, []knot.CrossingType{knot.CrossingOver, knot.CrossingUnder}, got, "crossing %v", p)
	}
}

func TestTraceFrom_StartRotation(t *testing.T) {
	b := fixtures.FigureEight(grid.Right)
	base, err := knot.Trace(b)
	require.NoError(t, err)

	from, err := knot.TraceFrom(b, grid.Pt(4, 3))
	require.NoError(t, err)
	require.Equal(t, base.Len(), from.Len())

	shift, ok := base.IndexOf(grid.Pt(4, 3))
	require.True(t, ok)
	assert.Equal(t, 4, shift)
	rotated := append(append([]knot.Node(nil), base.Nodes[shift:]...), base.Nodes[:shift]...)
	assert.Empty(t, cmp.Diff(rotated, from.Nodes))
}

func TestTraceFrom_JunctionStart(t *testing.T) {
	b := fixtures.FigureEight(grid.Right)
	loop, err := knot.TraceFrom(b, fixtures.FigureEightJunction)
	require.NoError(t, err)
	assert.Equal(t, grid.Pt(7, 6), loop.Start)

	b = fixtures.FigureEight(grid.Down)
	loop, err = knot.TraceFrom(b, fixtures.FigureEightJunction)
	require.NoError(t, err)
	assert.Equal(t, grid.Pt(6, 7), loop.Start)
}

func TestTrace_Idempotent(t *testing.T) {
	b := fixtures.FigureEight(grid.Right)
	first, err := knot.Trace(b)
	require.NoError(t, err)
	second, err := knot.Trace(b)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(first, second, cmpopts.IgnoreUnexported(knot.Loop{})))
}

func TestTrace_Leftover(t *testing.T) {
	b := fixtures.FigureEight(grid.Right)
	b.Place(grid.Pt(20, 20), grid.Primary, grid.Of(grid.KindStraight, grid.Right))
	b.Place(grid.Pt(21, 20), grid.Primary, grid.Of(grid.KindStraight, grid.Right))

	loop, err := knot.Trace(b)
	assert.Nil(t, loop)
	require.ErrorIs(t, err, knot.ErrLeftoverSegments)

	var le *knot.LeftoverError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, 2, le.Count)
	assert.Equal(t, [][]grid.Point{{grid.Pt(20, 20), grid.Pt(21, 20)}}, le.Groups)
	assert.Contains(t, err.Error(), "2 segments in 1 groups")
}

func TestTrace_Failures(t *testing.T) {
	cases := []struct {
		name string
		edit func(b *grid.Board)
		want error
		at   grid.Point
	}{
		{
			name: "open",
			edit: func(b *grid.Board) { b.Delete(grid.Pt(9, 3), grid.Primary) },
			want: knot.ErrOpenLoop,
			at:   grid.Pt(9, 3),
		},
		{
			name: "dense lines",
			edit: func(b *grid.Board) {
				b.Place(grid.Pt(3, 2), grid.Primary, grid.Of(grid.KindStraight, grid.Right))
			},
			want: knot.ErrDenseLines,
			at:   grid.Pt(3, 3),
		},
		{
			name: "reversed junction",
			edit: func(b *grid.Board) {
				b.Place(fixtures.FigureEightJunction, grid.Primary, grid.Of(grid.KindStraight, grid.Left))
			},
			want: knot.ErrMissingTurn,
			at:   fixtures.FigureEightJunction,
		},
		{
			name: "separator on the loop layer",
			edit: func(b *grid.Board) {
				b.Place(grid.Pt(4, 3), grid.Primary, grid.Of(grid.KindSeparator, grid.Up))
			},
			want: knot.ErrIllegalSegment,
			at:   grid.Pt(4, 3),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := fixtures.FigureEight(grid.Right)
			tc.edit(b)
			loop, err := knot.Trace(b)
			assert.Nil(t, loop)
			require.ErrorIs(t, err, tc.want)
			var de *knot.DiagramError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tc.at, de.At)
		})
	}
}

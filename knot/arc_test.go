package knot_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvknot/grid"
	"github.com/katalvlaran/lvknot/internal/fixtures"
	"github.com/katalvlaran/lvknot/knot"
)

// prepared traces b and resolves its auxiliary path between seps.
func prepared(t *testing.T, b grid.Reader, seps [2]grid.Point) (*knot.Loop, *knot.Path) {
	t.Helper()
	loop, err := knot.Trace(b)
	require.NoError(t, err)
	aux, err := knot.ResolveAuxiliary(b, seps)
	require.NoError(t, err)
	return loop, aux
}

func TestBuildArc_Forward(t *testing.T) {
	for _, tc := range []struct {
		top  grid.Direction
		want knot.CrossingType
	}{
		{grid.Right, knot.CrossingOver},
		{grid.Down, knot.CrossingUnder},
	} {
		t.Run(tc.top.String(), func(t *testing.T) {
			b := fixtures.FigureEightResolvable(tc.top)
			seps := fixtures.FigureEightSeparators
			loop, aux := prepared(t, b, seps)
			traced := loop.Nodes[9].Crossing

			arc, err := knot.BuildArc(b, loop, seps, aux, true)
			require.NoError(t, err)
			assert.True(t, arc.Forward)
			assert.Equal(t, []int{4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14}, arc.Index)
			require.Len(t, arc.Nodes, 11)
			assert.Equal(t, grid.Pt(4, 3), arc.Nodes[0].Origin)
			assert.Equal(t, grid.Pt(4, 9), arc.Nodes[10].Origin)

			j := arc.Nodes[5]
			assert.Equal(t, fixtures.FigureEightJunction, j.Origin)
			assert.True(t, j.IsCrossing)
			assert.Equal(t, tc.want, j.Crossing)
			assert.Equal(t, grid.Down, arc.Travel(5))

			// the loop keeps its own labels
			assert.Equal(t, traced, loop.Nodes[9].Crossing)
		})
	}
}

func TestBuildArc_CrossesAuxiliary(t *testing.T) {
	b := fixtures.FigureEightResolvable(grid.Right)
	seps := [2]grid.Point{fixtures.FigureEightSeparators[1], fixtures.FigureEightSeparators[0]}
	loop, aux := prepared(t, b, seps)

	arc, err := knot.BuildArc(b, loop, seps, aux, true)
	assert.Nil(t, arc)
	require.ErrorIs(t, err, knot.ErrArcCrossesAux)
	var de *knot.DiagramError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, fixtures.FigureEightAuxCrossing, de.At)

	arc, err = knot.ChooseArc(b, loop, seps, aux)
	require.NoError(t, err)
	assert.False(t, arc.Forward)
	require.Len(t, arc.Nodes, 11)
	assert.Equal(t, 14, arc.Index[0])
	assert.Equal(t, grid.Pt(4, 9), arc.Nodes[0].Origin)
	// walking from (3,9) towards (3,3) runs against the loop
	assert.Equal(t, grid.Right, arc.Travel(0))
	assert.Equal(t, grid.Up, arc.Travel(5))
}

func TestBuildArc_SelfIntersect(t *testing.T) {
	b := fixtures.FigureEight(grid.Right)
	loop, err := knot.Trace(b)
	require.NoError(t, err)
	seps := [2]grid.Point{grid.Pt(5, 3), grid.Pt(8, 1)}

	_, err = knot.BuildArc(b, loop, seps, nil, true)
	require.ErrorIs(t, err, knot.ErrArcSelfIntersect)

	arc, err := knot.ChooseArc(b, loop, seps, nil)
	require.NoError(t, err)
	assert.False(t, arc.Forward)
	for _, n := range arc.Nodes {
		assert.False(t, n.IsCrossing)
	}
}

func TestChooseArc_NoArc(t *testing.T) {
	b := fixtures.FigureEight(grid.Right)
	loop, err := knot.Trace(b)
	require.NoError(t, err)
	aux := &knot.Path{Nodes: []knot.Node{{Origin: grid.Pt(3, 6)}, {Origin: grid.Pt(6, 4)}}}

	arc, err := knot.ChooseArc(b, loop, fixtures.FigureEightSeparators, aux)
	assert.Nil(t, arc)
	assert.ErrorIs(t, err, knot.ErrNoArc)
	assert.ErrorIs(t, err, knot.ErrArc)
	assert.ErrorIs(t, err, knot.ErrArcCrossesAux)

	var ae *knot.ArcError
	require.True(t, errors.As(err, &ae))
	var fwd, rev *knot.DiagramError
	require.True(t, errors.As(ae.Forward, &fwd))
	require.True(t, errors.As(ae.Reverse, &rev))
	assert.Equal(t, grid.Pt(6, 4), fwd.At)
	assert.Equal(t, grid.Pt(3, 6), rev.At)
}

func TestBuildArc_OffLoop(t *testing.T) {
	b := fixtures.FigureEight(grid.Right)
	loop, err := knot.Trace(b)
	require.NoError(t, err)
	_, err = knot.BuildArc(b, loop, [2]grid.Point{grid.Pt(3, 3), grid.Pt(20, 20)}, nil, true)
	assert.ErrorIs(t, err, knot.ErrSeparatorOffLoop)
}

// The two arcs between any pair of nodes cover the rest of the loop.
func TestBetween_Complementary(t *testing.T) {
	loop, err := knot.Trace(fixtures.FigureEight(grid.Right))
	require.NoError(t, err)
	n := loop.Len()
	for _, pair := range [][2]int{{3, 15}, {0, 41}, {40, 2}, {9, 25}} {
		i, j := pair[0], pair[1]
		a, b := loop.Between(i, j), loop.Between(j, i)
		assert.Equal(t, n-2, len(a)+len(b), "pair %v", pair)

		seen := map[int]bool{i: true, j: true}
		for _, k := range append(a, b...) {
			assert.False(t, seen[k], "index %d listed twice", k)
			seen[k] = true
		}
		assert.Len(t, seen, n)
	}
}

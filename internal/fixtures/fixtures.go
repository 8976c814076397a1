// Package fixtures builds the reference diagrams shared by the tests.
package fixtures

import "github.com/katalvlaran/lvknot/grid"

// FigureEightLegs is a one-crossing loop drawn from (1,1). The upper lobe
// spans columns 1..9 and rows 1..6, the lower lobe columns 1..6 and rows
// 3..9; they cross at (6,6).
const FigureEightLegs = "D2 R5 D6 L5 U3 R8 U5 L8"

// FigureEightStart is the first cell of FigureEightLegs.
var FigureEightStart = grid.Pt(1, 1)

// FigureEightJunction is the only crossing of the figure eight.
var FigureEightJunction = grid.Pt(6, 6)

// FigureEightSeparators cut the figure eight on row 3 and row 9, both in
// column 3.
var FigureEightSeparators = [2]grid.Point{grid.Pt(3, 3), grid.Pt(3, 9)}

// FigureEightAux runs straight down column 3 from the upper separator to
// the lower one, crossing the row-6 strand at (3,6).
const FigureEightAux = "D6"

// FigureEightAuxCrossing is where the auxiliary path crosses the loop.
var FigureEightAuxCrossing = grid.Pt(3, 6)

// FigureEight draws the loop only. top is the facing of the junction:
// grid.Right puts the row-6 strand on top, grid.Down the column-6 strand.
func FigureEight(top grid.Direction) *grid.Board {
	b := grid.NewBoard()
	if _, err := grid.DrawLoop(b, FigureEightStart, grid.MustParseLegs(FigureEightLegs)); err != nil {
		panic(err)
	}
	b.Place(FigureEightJunction, grid.Primary, grid.Of(grid.KindStraight, top))
	return b
}

// FigureEightResolvable is FigureEight with the auxiliary path drawn and
// both separator markers placed.
func FigureEightResolvable(top grid.Direction) *grid.Board {
	b := FigureEight(top)
	if _, err := grid.DrawAux(b, FigureEightSeparators[0], grid.MustParseLegs(FigureEightAux)); err != nil {
		panic(err)
	}
	PlaceSeparators(b, FigureEightSeparators[:]...)
	return b
}

// FingersLegs is a four-crossing loop drawn from (0,10): a long run along
// row 10 that the rest of the loop crosses at columns 6, 10, 14 and 16.
// Columns 6..10 and 14..16 form fingers above row 10, columns 10..14 a
// finger below it.
const FingersLegs = "R22 D3 L6 U6 L2 D5 L4 U5 L4 D6 L6 U3"

// FingersStart is the first cell of FingersLegs.
var FingersStart = grid.Pt(0, 10)

// FingersJunctions are the crossings in row 10 from left to right.
var FingersJunctions = [4]grid.Point{grid.Pt(6, 10), grid.Pt(10, 10), grid.Pt(14, 10), grid.Pt(16, 10)}

// FingersSeparators cut row 10 at both ends of the crossed run.
var FingersSeparators = [2]grid.Point{grid.Pt(2, 10), grid.Pt(20, 10)}

// FingersAux arches over the fingers through row 5 without crossing the
// loop.
const FingersAux = "U5 R18 D5"

// Fingers draws the four-crossing loop with its auxiliary path and
// separators. tops gives the facing of each junction in FingersJunctions
// order; grid.Right keeps row 10 on top.
func Fingers(tops [4]grid.Direction) *grid.Board {
	b := grid.NewBoard()
	if _, err := grid.DrawLoop(b, FingersStart, grid.MustParseLegs(FingersLegs)); err != nil {
		panic(err)
	}
	for i, p := range FingersJunctions {
		b.Place(p, grid.Primary, grid.Of(grid.KindStraight, tops[i]))
	}
	if _, err := grid.DrawAux(b, FingersSeparators[0], grid.MustParseLegs(FingersAux)); err != nil {
		panic(err)
	}
	PlaceSeparators(b, FingersSeparators[:]...)
	return b
}

// FingersContradictory makes the upper finger at columns 6..10 and the
// lower finger at columns 10..14 both join crossings of opposite states,
// so neither side of row 10 can be labelled.
func FingersContradictory() *grid.Board {
	return Fingers([4]grid.Direction{grid.Down, grid.Right, grid.Down, grid.Up})
}

// FingersRightOnly keeps both upper fingers consistent and the lower one
// contradictory, so only the upper side of row 10 can be labelled.
func FingersRightOnly() *grid.Board {
	return Fingers([4]grid.Direction{grid.Down, grid.Up, grid.Right, grid.Right})
}

// PlaceSeparators puts separator markers on the secondary layer.
func PlaceSeparators(w grid.Writer, ps ...grid.Point) {
	for _, p := range ps {
		w.Place(p, grid.Secondary, grid.Of(grid.KindSeparator, grid.Up))
	}
}

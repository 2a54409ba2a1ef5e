package solver

import gocube "github.com/SeamusWaldron/gocube_cross"

// Top layer columns, numbered in the direction a U turn carries them.
// columnFaces[i] is the side face below column i.
var columnFaces = [4]gocube.CubeFace{gocube.Back, gocube.Right, gocube.Front, gocube.Left}

// topColumn maps a Top face cell to its column, -1 for cells off the edge
// slots.
var topColumn = [9]int{-1, 0, -1, 3, -1, 1, -1, 2, -1}

// crossSlots[i] is the bottom edge slot under column i: its Bottom facelet
// and the facelet on the side face.
var crossSlots = [4]gocube.EdgeSlot{
	{Primary: gocube.At(gocube.Bottom, 7), Secondary: gocube.At(gocube.Back, 7)},
	{Primary: gocube.At(gocube.Bottom, 5), Secondary: gocube.At(gocube.Right, 7)},
	{Primary: gocube.At(gocube.Bottom, 1), Secondary: gocube.At(gocube.Front, 7)},
	{Primary: gocube.At(gocube.Bottom, 3), Secondary: gocube.At(gocube.Left, 7)},
}

// extraction lifts an edge out of a middle or bottom slot, keyed by the
// slot's primary facelet. Each sequence carries the edge into the top layer
// without disturbing the other cross slots once it is followed by U and
// undone.
var extraction = map[gocube.Position][]gocube.Move{
	gocube.At(gocube.Left, 3):  {gocube.L},
	gocube.At(gocube.Right, 5): {gocube.RPrime},
	gocube.At(gocube.Left, 5):  {gocube.LPrime},
	gocube.At(gocube.Right, 3): {gocube.R},

	gocube.At(gocube.Bottom, 7): {gocube.B, gocube.B},
	gocube.At(gocube.Bottom, 3): {gocube.L, gocube.L},
	gocube.At(gocube.Bottom, 5): {gocube.R, gocube.R},
	gocube.At(gocube.Bottom, 1): {gocube.F, gocube.F},
}

// column returns the top layer column of a facelet in the top layer edge
// slots, on either the Top face or a side face.
func column(p gocube.Position) (int, bool) {
	if p.Face() == gocube.Top {
		col := topColumn[p.Cell()]
		return col, col >= 0
	}
	if p.Cell() != 1 {
		return 0, false
	}
	for i, f := range columnFaces {
		if f == p.Face() {
			return i, true
		}
	}
	return 0, false
}

package gocube

// Position is a linear facelet index 0-53: the face index (in Top, Left,
// Front, Right, Back, Bottom order) times 9 plus the row-major cell index.
// It names a place on the cube, not a particular sticker.
type Position uint8

// NumPositions is the number of facelets on a cube.
const NumPositions = 54

// At returns the linear position of cell i on face f.
func At(f CubeFace, i int) Position {
	return Position(int(f)*9 + i)
}

// Face returns the face the position lies on.
func (p Position) Face() CubeFace {
	return CubeFace(p / 9)
}

// Cell returns the row-major cell index within the face.
func (p Position) Cell() int {
	return int(p % 9)
}

// Layer is a band of the cube perpendicular to the Bottom face.
type Layer int

const (
	LayerTop Layer = iota
	LayerMiddle
	LayerBottom
)

func (l Layer) String() string {
	switch l {
	case LayerTop:
		return "top"
	case LayerMiddle:
		return "middle"
	case LayerBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// LayerOf returns the layer a facelet belongs to. Side face rows map to
// layers top to bottom.
func LayerOf(p Position) Layer {
	switch p.Face() {
	case Top:
		return LayerTop
	case Bottom:
		return LayerBottom
	default:
		return Layer(p.Cell() / 3)
	}
}

// clockwiseCycles lists, per face, the five facelet 4-cycles of a clockwise
// quarter turn: three across the side strips and two around the face
// itself. The facelet at cycle[i] moves to cycle[i+1].
var clockwiseCycles = [6][5][4]Position{
	Top: {
		{9, 36, 27, 18}, {10, 37, 28, 19}, {11, 38, 29, 20},
		{0, 2, 8, 6}, {1, 5, 7, 3},
	},
	Left: {
		{0, 18, 45, 44}, {3, 21, 48, 41}, {6, 24, 51, 38},
		{9, 11, 17, 15}, {10, 14, 16, 12},
	},
	Front: {
		{6, 27, 47, 17}, {7, 30, 46, 14}, {8, 33, 45, 11},
		{18, 20, 26, 24}, {19, 23, 25, 21},
	},
	Right: {
		{2, 42, 47, 20}, {5, 39, 50, 23}, {8, 36, 53, 26},
		{27, 29, 35, 33}, {28, 32, 34, 30},
	},
	Back: {
		{0, 15, 53, 29}, {1, 12, 52, 32}, {2, 9, 51, 35},
		{36, 38, 44, 42}, {37, 41, 43, 39},
	},
	Bottom: {
		{15, 24, 33, 42}, {16, 25, 34, 43}, {17, 26, 35, 44},
		{45, 47, 53, 51}, {46, 50, 52, 48},
	},
}

// advanceTable[m][p] is where the facelet at p lands after move m.
var advanceTable [numMoves][NumPositions]Position

func init() {
	for _, m := range AllMoves() {
		t := &advanceTable[m]
		for p := range t {
			t[p] = Position(p)
		}
		for _, cycle := range clockwiseCycles[m.Face()] {
			for i, from := range cycle {
				if m.Clockwise() {
					t[from] = cycle[(i+1)%4]
				} else {
					t[from] = cycle[(i+3)%4]
				}
			}
		}
	}
}

// Advance returns where the facelet at p ends up after applying m, without
// touching any cube.
func Advance(p Position, m Move) Position {
	return advanceTable[m][p]
}

// AdvanceAll follows p through a sequence of moves.
func AdvanceAll(p Position, moves ...Move) Position {
	for _, m := range moves {
		p = advanceTable[m][p]
	}
	return p
}

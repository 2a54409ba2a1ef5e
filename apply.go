package gocube

// strip is the row or column of a neighbouring face that travels with a
// face turn. Cells are listed clockwise around the turned face, so cell i
// of one strip lands on cell i of the next.
type strip struct {
	face  CubeFace
	cells [3]int
}

// sideStrips holds, per turned face, its four neighbouring strips named
// relative to that face: top, right, bottom, left.
var sideStrips = [6][4]strip{
	Top: {
		{Back, [3]int{2, 1, 0}},
		{Right, [3]int{2, 1, 0}},
		{Front, [3]int{2, 1, 0}},
		{Left, [3]int{2, 1, 0}},
	},
	Left: {
		{Top, [3]int{0, 3, 6}},
		{Front, [3]int{0, 3, 6}},
		{Bottom, [3]int{0, 3, 6}},
		{Back, [3]int{8, 5, 2}},
	},
	Front: {
		{Top, [3]int{6, 7, 8}},
		{Right, [3]int{0, 3, 6}},
		{Bottom, [3]int{2, 1, 0}},
		{Left, [3]int{8, 5, 2}},
	},
	Right: {
		{Top, [3]int{8, 5, 2}},
		{Back, [3]int{0, 3, 6}},
		{Bottom, [3]int{8, 5, 2}},
		{Front, [3]int{8, 5, 2}},
	},
	Back: {
		{Top, [3]int{2, 1, 0}},
		{Left, [3]int{0, 3, 6}},
		{Bottom, [3]int{6, 7, 8}},
		{Right, [3]int{8, 5, 2}},
	},
	Bottom: {
		{Front, [3]int{6, 7, 8}},
		{Right, [3]int{6, 7, 8}},
		{Back, [3]int{6, 7, 8}},
		{Left, [3]int{6, 7, 8}},
	},
}

// Apply applies moves to the cube in order.
func (c *Cube) Apply(moves ...Move) {
	for _, m := range moves {
		c.applyMove(m)
	}
}

// applyMove cycles the four side strips of the turned face and then
// rotates the face itself.
func (c *Cube) applyMove(m Move) {
	strips := &sideStrips[m.Face()]

	var saved [4][3]Color
	for k, s := range strips {
		for i, cell := range s.cells {
			saved[k][i] = c.faces[s.face][cell]
		}
	}

	// Clockwise: top -> right -> bottom -> left -> top
	shift := 1
	if !m.Clockwise() {
		shift = 3
	}
	for k := range strips {
		dst := strips[(k+shift)%4]
		for i, cell := range dst.cells {
			c.faces[dst.face][cell] = saved[k][i]
		}
	}

	c.faces[m.Face()].Rotate(m.Clockwise())
}

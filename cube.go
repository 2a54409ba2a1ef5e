package gocube

import (
	"fmt"
	"strings"
	"unicode"
)

// Cube represents a 3x3 twisty puzzle as six faces in the order
// Top, Left, Front, Right, Back, Bottom.
//
// Faces are laid out as an unfolded net:
//
//	       Top
//	Left   Front  Right  Back
//	       Bottom
//
// Top is seen from above with Back on its first row, Bottom from below with
// Front on its first row, and the four side faces from outside with Top on
// their first row.
type Cube struct {
	faces [6]Face
}

// solved is the canonical reference arrangement: Yellow top, Blue front,
// White bottom.
var solved = Cube{faces: [6]Face{
	uniformFace(Yellow),
	uniformFace(Orange),
	uniformFace(Blue),
	uniformFace(Red),
	uniformFace(Green),
	uniformFace(White),
}}

// oppositeFaces maps each face to the face across the cube.
var oppositeFaces = [6]CubeFace{Bottom, Right, Back, Left, Front, Top}

// oppositeColor returns the color across from c on the solved cube.
func oppositeColor(c Color) Color {
	for f := range solved.faces {
		if solved.faces[f].Color() == c {
			return solved.faces[oppositeFaces[f]].Color()
		}
	}
	return c
}

func uniformFace(c Color) Face {
	return Face{c, c, c, c, c, c, c, c, c}
}

// NewCube builds a cube from 54 colors given face by face in the order
// Top, Left, Front, Right, Back, Bottom, each face row-major.
func NewCube(colors [54]Color) *Cube {
	c := &Cube{}
	for f := 0; f < 6; f++ {
		copy(c.faces[f][:], colors[f*9:f*9+9])
	}
	return c
}

// NewCubeFromNet builds a cube from 54 colors read off the unfolded net row
// by row: the three Top rows, three rows spanning Left, Front, Right and
// Back, then the three Bottom rows.
func NewCubeFromNet(net [54]Color) *Cube {
	c := &Cube{}
	for i := 0; i < 9; i++ {
		c.faces[Top][i] = net[i]
		c.faces[Bottom][i] = net[45+i]
	}
	for row := 0; row < 3; row++ {
		for k, face := range []CubeFace{Left, Front, Right, Back} {
			for col := 0; col < 3; col++ {
				c.faces[face][row*3+col] = net[9+row*12+k*3+col]
			}
		}
	}
	return c
}

// NewSolvedCube returns a copy of the solved reference cube with the given
// moves applied.
func NewSolvedCube(moves ...Move) *Cube {
	c := Solved()
	c.Apply(moves...)
	return c
}

// Solved returns a fresh copy of the solved reference cube.
func Solved() *Cube {
	c := solved
	return &c
}

// ParseFacelets parses 54 color letters in face-major order. Whitespace is
// ignored so the string may be grouped per face or per row.
func ParseFacelets(s string) (*Cube, error) {
	var colors [54]Color
	n := 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if n == 54 {
			return nil, ErrFaceletCount
		}
		color, err := ParseColor(r)
		if err != nil {
			return nil, err
		}
		colors[n] = color
		n++
	}
	if n != 54 {
		return nil, fmt.Errorf("%w: got %d", ErrFaceletCount, n)
	}
	return NewCube(colors), nil
}

// Face returns a copy of the named face.
func (c *Cube) Face(f CubeFace) Face {
	return c.faces[f]
}

// Color returns the color at a linear facelet position.
func (c *Cube) Color(p Position) Color {
	return c.faces[p/9][p%9]
}

// Colors returns all 54 colors in face-major order.
func (c *Cube) Colors() [54]Color {
	var out [54]Color
	for f := 0; f < 6; f++ {
		copy(out[f*9:], c.faces[f][:])
	}
	return out
}

// BottomColor returns the center color of the Bottom face.
func (c *Cube) BottomColor() Color {
	return c.faces[Bottom].Color()
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Equal reports whether both cubes have identical facelets.
func (c *Cube) Equal(other *Cube) bool {
	return c.faces == other.faces
}

// IsSolved returns true if every face is a single color.
func (c *Cube) IsSolved() bool {
	for f := range c.faces {
		if !c.faces[f].uniform() {
			return false
		}
	}
	return true
}

// Validate checks that the cube could be a real puzzle: 9 facelets of each
// color, distinct centers in opposite pairs and each of the 12 edge pieces
// exactly once.
func (c *Cube) Validate() error {
	var counts [numColors]int
	for f := range c.faces {
		for _, color := range c.faces[f] {
			if color >= numColors {
				return fmt.Errorf("%w: %d", ErrInvalidColor, color)
			}
			counts[color]++
		}
	}
	for color, n := range counts {
		if n != 9 {
			return fmt.Errorf("%w: %s has %d", ErrColorCount, Color(color).Name(), n)
		}
	}

	seenCenter := make(map[Color]bool, 6)
	for f := range c.faces {
		center := c.faces[f].Color()
		if seenCenter[center] {
			return fmt.Errorf("%w: %s appears twice", ErrDuplicateCenter, center.Name())
		}
		seenCenter[center] = true
	}

	for f := range c.faces {
		center := c.faces[f].Color()
		want := oppositeColor(center)
		if got := c.faces[oppositeFaces[f]].Color(); got != want {
			return fmt.Errorf("%w: %s faces %s", ErrCenterLayout, center.Name(), got.Name())
		}
	}

	seenEdge := make(map[Edge]bool, 12)
	for _, e := range c.Edges() {
		if !canonicalEdges[e.Edge] {
			return fmt.Errorf("%w: %s at %d", ErrInvalidEdge, e.Edge, e.Position)
		}
		if seenEdge[e.Edge] {
			return fmt.Errorf("%w: %s appears twice", ErrInvalidEdge, e.Edge)
		}
		seenEdge[e.Edge] = true
	}

	return nil
}

// String returns a text representation of the cube.
func (c *Cube) String() string {
	var b strings.Builder

	// Top face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(c.faces[Top][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	// Left, Front, Right, Back faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []CubeFace{Left, Front, Right, Back} {
			for col := 0; col < 3; col++ {
				b.WriteString(c.faces[face][row*3+col].String() + " ")
			}
		}
		b.WriteString("\n")
	}

	// Bottom face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(c.faces[Bottom][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Facelets returns the 54 color letters in face-major order, one face per
// space-separated group. ParseFacelets accepts the result.
func (c *Cube) Facelets() string {
	var b strings.Builder
	for f := range c.faces {
		if f > 0 {
			b.WriteByte(' ')
		}
		for _, color := range c.faces[f] {
			b.WriteString(color.String())
		}
	}
	return b.String()
}

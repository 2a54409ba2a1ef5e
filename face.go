package gocube

// CubeFace names one of the six face positions of the cube. The order is
// the fixed adjacency order used by the linear facelet layout.
type CubeFace int

const (
	Top CubeFace = iota
	Left
	Front
	Right
	Back
	Bottom
)

func (f CubeFace) String() string {
	switch f {
	case Top:
		return "Top"
	case Left:
		return "Left"
	case Front:
		return "Front"
	case Right:
		return "Right"
	case Back:
		return "Back"
	case Bottom:
		return "Bottom"
	default:
		return "?"
	}
}

// Face is a 3x3 grid of facelets indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The center (index 4) identifies the face and never moves.
type Face [9]Color

// Color returns the center color, which identifies the face.
func (f *Face) Color() Color {
	return f[4]
}

// Rotate turns the border cells a quarter turn around the center.
func (f *Face) Rotate(clockwise bool) {
	if clockwise {
		// Corner rotation: 0->2->8->6->0
		// Edge rotation: 1->5->7->3->1
		temp := f[0]
		f[0] = f[6]
		f[6] = f[8]
		f[8] = f[2]
		f[2] = temp

		temp = f[1]
		f[1] = f[3]
		f[3] = f[7]
		f[7] = f[5]
		f[5] = temp
		return
	}

	// Corner rotation: 0->6->8->2->0
	// Edge rotation: 1->3->7->5->1
	temp := f[0]
	f[0] = f[2]
	f[2] = f[8]
	f[8] = f[6]
	f[6] = temp

	temp = f[1]
	f[1] = f[5]
	f[5] = f[7]
	f[7] = f[3]
	f[3] = temp
}

// uniform reports whether every facelet has the center color.
func (f *Face) uniform() bool {
	for _, c := range f {
		if c != f[4] {
			return false
		}
	}
	return true
}

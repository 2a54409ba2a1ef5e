package gocube

// Phase represents how far a cube has progressed through the
// layer-by-layer method, building from the Bottom face upwards. Phases are
// ordered so they can be compared with < and >.
type Phase int

const (
	// PhaseScrambled indicates not even the bottom cross is complete.
	PhaseScrambled Phase = iota

	// PhaseBottomCross indicates the 4 bottom edges show the bottom color
	// and their side colors match the adjacent centers.
	PhaseBottomCross

	// PhaseFirstLayer indicates the whole bottom layer is complete.
	PhaseFirstLayer

	// PhaseSecondLayer indicates the middle layer edges are also placed.
	PhaseSecondLayer

	// PhaseSolved indicates the cube is completely solved.
	PhaseSolved
)

// String returns a short identifier for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseScrambled:
		return "scrambled"
	case PhaseBottomCross:
		return "bottom_cross"
	case PhaseFirstLayer:
		return "first_layer"
	case PhaseSecondLayer:
		return "second_layer"
	case PhaseSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseScrambled:
		return "Scrambled"
	case PhaseBottomCross:
		return "Bottom Cross"
	case PhaseFirstLayer:
		return "First Layer"
	case PhaseSecondLayer:
		return "Second Layer"
	case PhaseSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

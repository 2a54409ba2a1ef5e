package gocube

import "testing"

func TestDetectPhase(t *testing.T) {
	tests := []struct {
		moves string
		want  Phase
	}{
		{"", PhaseSolved},
		{"U", PhaseSecondLayer},
		{"R U R' U'", PhaseBottomCross},
		{"R", PhaseScrambled},
		{"D", PhaseScrambled},
	}

	for _, tt := range tests {
		moves, err := ParseMoves(tt.moves)
		if err != nil {
			t.Fatal(err)
		}
		c := NewSolvedCube(moves...)
		if got := c.DetectPhase(); got != tt.want {
			t.Errorf("%q: phase %v, want %v", tt.moves, got, tt.want)
			t.Log(c.String())
		}
	}
}

func TestBottomCrossIgnoresTopLayer(t *testing.T) {
	c := NewSolvedCube(U, U, UPrime)
	if !c.IsBottomCrossComplete() {
		t.Error("top layer turns should keep the bottom cross")
	}
	if !c.IsFirstLayerComplete() {
		t.Error("top layer turns should keep the first layer")
	}
}

func TestPhaseOrdering(t *testing.T) {
	phases := []Phase{PhaseScrambled, PhaseBottomCross, PhaseFirstLayer, PhaseSecondLayer, PhaseSolved}
	for i := 1; i < len(phases); i++ {
		if phases[i-1] >= phases[i] {
			t.Errorf("%v should come before %v", phases[i-1], phases[i])
		}
	}
	if PhaseBottomCross.DisplayName() != "Bottom Cross" || PhaseBottomCross.String() != "bottom_cross" {
		t.Error("unexpected names for PhaseBottomCross")
	}
}

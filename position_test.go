package gocube

import "testing"

// markedCube returns a cube that is White everywhere except for a single Red
// facelet at p.
func markedCube(p Position) *Cube {
	var colors [54]Color
	colors[p] = Red
	return NewCube(colors)
}

func findRed(t *testing.T, c *Cube) Position {
	t.Helper()
	found := -1
	for p, color := range c.Colors() {
		if color == Red {
			if found >= 0 {
				t.Fatalf("more than one marked facelet: %d and %d", found, p)
			}
			found = p
		}
	}
	if found < 0 {
		t.Fatal("marked facelet lost")
	}
	return Position(found)
}

func TestAdvanceMatchesApply(t *testing.T) {
	for _, m := range AllMoves() {
		for p := Position(0); p < NumPositions; p++ {
			c := markedCube(p)
			c.Apply(m)
			if got, want := Advance(p, m), findRed(t, c); got != want {
				t.Errorf("Advance(%d, %v) = %d, cube says %d", p, m, got, want)
			}
		}
	}
}

func TestAdvanceIsPermutation(t *testing.T) {
	for _, m := range AllMoves() {
		seen := make(map[Position]bool, NumPositions)
		for p := Position(0); p < NumPositions; p++ {
			seen[Advance(p, m)] = true
		}
		if len(seen) != NumPositions {
			t.Errorf("%v maps onto %d positions, want %d", m, len(seen), NumPositions)
		}
	}
}

func TestAdvanceReverse(t *testing.T) {
	for _, m := range AllMoves() {
		for p := Position(0); p < NumPositions; p++ {
			if got := Advance(Advance(p, m), m.Reverse()); got != p {
				t.Errorf("%v then %v moved %d to %d", m, m.Reverse(), p, got)
			}
		}
	}
}

func TestAdvanceKeepsCenters(t *testing.T) {
	for _, m := range AllMoves() {
		for f := Top; f <= Bottom; f++ {
			center := At(f, 4)
			if got := Advance(center, m); got != center {
				t.Errorf("%v moved center %d to %d", m, center, got)
			}
		}
	}
}

func TestAdvanceUntouchedFacelets(t *testing.T) {
	// A U turn never touches the Bottom face or the side bottom rows.
	for _, p := range []Position{45, 46, 47, 48, 49, 50, 51, 52, 53, 15, 16, 17, 24, 25, 26} {
		if got := Advance(p, U); got != p {
			t.Errorf("U moved %d to %d", p, got)
		}
	}
}

func TestAdvanceAll(t *testing.T) {
	moves := []Move{R, U, RPrime, UPrime, F, D}
	for p := Position(0); p < NumPositions; p++ {
		want := p
		for _, m := range moves {
			want = Advance(want, m)
		}
		if got := AdvanceAll(p, moves...); got != want {
			t.Errorf("AdvanceAll(%d) = %d, want %d", p, got, want)
		}
	}
}

func TestPositionFaceCell(t *testing.T) {
	tests := []struct {
		pos  Position
		face CubeFace
		cell int
	}{
		{0, Top, 0},
		{13, Left, 4},
		{25, Front, 7},
		{30, Right, 3},
		{43, Back, 7},
		{53, Bottom, 8},
	}
	for _, tt := range tests {
		if tt.pos.Face() != tt.face || tt.pos.Cell() != tt.cell {
			t.Errorf("%d: got %v/%d, want %v/%d", tt.pos, tt.pos.Face(), tt.pos.Cell(), tt.face, tt.cell)
		}
		if At(tt.face, tt.cell) != tt.pos {
			t.Errorf("At(%v, %d) = %d, want %d", tt.face, tt.cell, At(tt.face, tt.cell), tt.pos)
		}
	}
}

func TestLayerOf(t *testing.T) {
	tests := []struct {
		pos  Position
		want Layer
	}{
		{7, LayerTop},
		{19, LayerTop},
		{12, LayerMiddle},
		{32, LayerMiddle},
		{25, LayerBottom},
		{46, LayerBottom},
	}
	for _, tt := range tests {
		if got := LayerOf(tt.pos); got != tt.want {
			t.Errorf("LayerOf(%d) = %v, want %v", tt.pos, got, tt.want)
		}
	}
}

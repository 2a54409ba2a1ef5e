package solver

import (
	"bytes"
	"errors"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gocube "github.com/SeamusWaldron/gocube_cross"
)

func scramble(t *testing.T, notation string) *gocube.Cube {
	t.Helper()
	moves, err := gocube.ParseMoves(notation)
	require.NoError(t, err)
	return gocube.NewSolvedCube(moves...)
}

func TestSolveKnownScrambles(t *testing.T) {
	tests := []struct {
		scramble string
		want     string
	}{
		{"", ""},
		{"R", "R U R' U' R R"},
		{"F", "L' U L U R' F R"},
		{"B", "R' U R U L' B L"},
		{"L'", "L' U L U' L L"},
		{"R F' U F R'", "U B' R B"},
		{"F F", "F F"},
		{"D", "L L U L' L' B B F F U F' F' L L R R U F F"},
		{"R U R' U'", ""},
		{"F B' L R' U D'", "U' L' B L L U L' U' L L B' R B R' U R F F"},
		{"L L R R", "L L R R"},
		{"D R' D'", "R' U R F F"},
		{"L B' R'", "L U L' U' L' B L L L B' R B"},
	}

	for _, tt := range tests {
		t.Run(tt.scramble, func(t *testing.T) {
			c := scramble(t, tt.scramble)
			got := Solve(c)
			assert.Equal(t, tt.want, gocube.FormatMoves(got))
			assert.True(t, c.IsBottomCrossComplete(), "cross incomplete:\n%s", c)
		})
	}
}

func TestSolveRandomScrambles(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	moves := gocube.AllMoves()

	for i := 0; i < 2000; i++ {
		c := gocube.Solved()
		n := rng.Intn(40)
		for j := 0; j < n; j++ {
			c.Apply(moves[rng.Intn(len(moves))])
		}
		start := c.Clone()

		solution := Solve(c)
		require.True(t, c.IsBottomCrossComplete(), "scramble %d: cross incomplete:\n%s", i, c)

		// The returned moves reproduce the result on the starting cube.
		start.Apply(solution...)
		require.True(t, start.Equal(c), "scramble %d: history does not replay", i)
	}
}

// relabel repaints every sticker of c through colors, a permutation that
// keeps opposite colors opposite.
func relabel(t *testing.T, c *gocube.Cube, colors map[gocube.Color]gocube.Color) *gocube.Cube {
	t.Helper()
	var out [54]gocube.Color
	for i, color := range c.Colors() {
		out[i] = colors[color]
	}
	relabeled := gocube.NewCube(out)
	require.NoError(t, relabeled.Validate())
	return relabeled
}

func TestSolveAnyBottomColor(t *testing.T) {
	const (
		w = gocube.White
		y = gocube.Yellow
		r = gocube.Red
		o = gocube.Orange
		b = gocube.Blue
		g = gocube.Green
	)
	tests := []struct {
		name   string
		colors map[gocube.Color]gocube.Color
	}{
		{"white", map[gocube.Color]gocube.Color{w: w, y: y, r: o, o: r, b: b, g: g}},
		{"yellow", map[gocube.Color]gocube.Color{w: y, y: w, r: r, o: o, b: b, g: g}},
		{"red", map[gocube.Color]gocube.Color{w: r, r: w, y: o, o: y, b: b, g: g}},
		{"orange", map[gocube.Color]gocube.Color{w: o, o: w, y: r, r: y, b: g, g: b}},
		{"blue", map[gocube.Color]gocube.Color{w: b, b: w, y: g, g: y, r: r, o: o}},
		{"green", map[gocube.Color]gocube.Color{w: g, g: w, y: b, b: y, r: o, o: r}},
	}

	moves := gocube.AllMoves()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(7))
			for i := 0; i < 200; i++ {
				c := gocube.Solved()
				n := rng.Intn(30)
				for j := 0; j < n; j++ {
					c.Apply(moves[rng.Intn(len(moves))])
				}
				c = relabel(t, c, tt.colors)
				require.Equal(t, tt.colors[gocube.White], c.BottomColor())
				start := c.Clone()

				solution := Solve(c)
				require.True(t, c.IsBottomCrossComplete(), "scramble %d: cross incomplete:\n%s", i, c)

				start.Apply(solution...)
				require.True(t, start.Equal(c), "scramble %d: history does not replay", i)
			}
		})
	}
}

func TestSolveLeavesSolvedCrossAlone(t *testing.T) {
	for _, notation := range []string{"", "U", "U U'", "R U R' U'", "U' U'"} {
		c := scramble(t, notation)
		assert.Empty(t, Solve(c), "scramble %q", notation)
	}
}

func TestSolveKeepsPlacedEdgesWithVerifyOff(t *testing.T) {
	a := scramble(t, "F B' L R' U D'")
	b := a.Clone()
	assert.Equal(t, Solve(a), Solve(b, WithVerify(false)))
	assert.True(t, b.Equal(a))
}

func TestSolverUndo(t *testing.T) {
	s := New(gocube.Solved())
	s.Apply(gocube.L, gocube.L, gocube.U)
	s.Undo(2)

	assert.Equal(t, "L L U L' L'", gocube.FormatMoves(s.History()))
	assert.Equal(t, 5, s.Len())
}

func TestSolverUndoOutOfRangePanics(t *testing.T) {
	s := New(gocube.Solved())
	s.Apply(gocube.U)
	assert.Panics(t, func() { s.Undo(1) })
}

func TestSolverTracksFacelet(t *testing.T) {
	s := New(gocube.Solved())
	s.Track(gocube.At(gocube.Bottom, 1))
	s.Apply(gocube.F, gocube.F)
	assert.Equal(t, gocube.At(gocube.Top, 7), s.Tracked())

	s.Apply(gocube.U)
	assert.Equal(t, gocube.At(gocube.Top, 3), s.Tracked())
}

func TestHistoryIsCopy(t *testing.T) {
	s := New(gocube.Solved())
	s.Apply(gocube.R)
	h := s.History()
	h[0] = gocube.L
	assert.Equal(t, gocube.R, s.History()[0])
}

func TestTurnTopUsesShortestDirection(t *testing.T) {
	tests := []struct {
		d    int
		want string
	}{
		{0, ""},
		{1, "U"},
		{2, "U U"},
		{3, "U'"},
		{-1, "U'"},
		{-2, "U U"},
		{5, "U"},
	}
	for _, tt := range tests {
		s := New(gocube.Solved())
		s.turnTop(tt.d)
		assert.Equal(t, tt.want, gocube.FormatMoves(s.History()), "d=%d", tt.d)
	}
}

func TestColumn(t *testing.T) {
	tests := []struct {
		pos  gocube.Position
		want int
	}{
		{gocube.At(gocube.Top, 1), 0},
		{gocube.At(gocube.Top, 5), 1},
		{gocube.At(gocube.Top, 7), 2},
		{gocube.At(gocube.Top, 3), 3},
		{gocube.At(gocube.Back, 1), 0},
		{gocube.At(gocube.Right, 1), 1},
		{gocube.At(gocube.Front, 1), 2},
		{gocube.At(gocube.Left, 1), 3},
	}
	for _, tt := range tests {
		got, ok := column(tt.pos)
		require.True(t, ok, "position %d", tt.pos)
		assert.Equal(t, tt.want, got, "position %d", tt.pos)
	}

	_, ok := column(gocube.At(gocube.Front, 7))
	assert.False(t, ok)
	for _, cell := range []int{0, 2, 4, 6, 8} {
		_, ok = column(gocube.At(gocube.Top, cell))
		assert.False(t, ok, "top cell %d", cell)
	}
}

func TestColumnsFollowTopTurn(t *testing.T) {
	// A U turn carries every top layer edge one column on.
	slots := gocube.EdgeSlots()
	for _, slot := range slots[:4] {
		for _, p := range []gocube.Position{slot.Primary, slot.Secondary} {
			before, ok := column(p)
			require.True(t, ok)
			after, ok := column(gocube.Advance(p, gocube.U))
			require.True(t, ok)
			assert.Equal(t, (before+1)%4, after, "position %d", p)
		}
	}
}

func TestCrossSlotsMatchSolvedCube(t *testing.T) {
	solved := gocube.Solved()
	for i, slot := range crossSlots {
		face := solved.Face(columnFaces[i])
		assert.Equal(t, gocube.White, solved.Color(slot.Primary))
		assert.Equal(t, face.Color(), solved.Color(slot.Secondary))

		edge := gocube.NewEdge(gocube.White, face.Color())
		pos, ok := solved.FindEdge(edge)
		require.True(t, ok)
		assert.Equal(t, slot.Primary, pos)
	}
}

func TestInvalidCubePanicsWithInvariantError(t *testing.T) {
	// Every facelet White: no cross edge exists.
	var colors [54]gocube.Color
	c := gocube.NewCube(colors)

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.True(t, errors.Is(err, ErrInvariant))

		var inv *InvariantError
		require.True(t, errors.As(err, &inv))
		assert.Equal(t, "bottom_cross", inv.Stage)
	}()
	Solve(c)
}

func TestSolveLogsPlacedEdges(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	Solve(scramble(t, "R"), WithLogger(logger))

	out := buf.String()
	assert.Contains(t, out, "edge placed")
	assert.Contains(t, out, "edge already placed")
	assert.Contains(t, out, "stage=bottom_cross")
}

func TestWithLoggerNilKeepsDefault(t *testing.T) {
	s := New(gocube.Solved(), WithLogger(nil))
	assert.NotNil(t, s.Logger())
	assert.True(t, s.Verify())
}

type countingStage struct {
	runs *int
}

func (countingStage) Name() string { return "counting" }

func (c countingStage) Solve(s *Solver) {
	*c.runs++
	s.Apply(gocube.U)
}

func TestRunStagesInOrder(t *testing.T) {
	runs := 0
	s := New(scramble(t, "R"))
	s.Run(BottomCross{}, countingStage{runs: &runs})

	assert.Equal(t, 1, runs)
	assert.Equal(t, "R U R' U' R R U", gocube.FormatMoves(s.History()))
}

package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gocube "github.com/SeamusWaldron/gocube_cross"
)

func TestPlainNet(t *testing.T) {
	out := New(false).Net(gocube.Solved())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 9)

	assert.Equal(t, "          Y  Y  Y ", lines[0])
	assert.Equal(t, " O  O  O  B  B  B  R  R  R  G  G  G ", lines[3])
	assert.Equal(t, "          W  W  W ", lines[8])
}

func TestPlainNetAfterMove(t *testing.T) {
	out := New(false).Net(gocube.NewSolvedCube(gocube.R))
	lines := strings.Split(out, "\n")
	assert.Equal(t, "          Y  Y  B ", lines[0])
	assert.Equal(t, " O  O  O  B  B  W  R  R  R  Y  G  G ", lines[3])
}

func TestHighlight(t *testing.T) {
	out := New(false).Net(gocube.Solved(), gocube.At(gocube.Bottom, 1))
	lines := strings.Split(out, "\n")
	assert.Equal(t, "          W [W] W ", lines[6])
	assert.Equal(t, 1, strings.Count(out, "["))
}

func TestColorNetKeepsLetters(t *testing.T) {
	out := New(true).Net(gocube.NewSolvedCube(gocube.F))
	for _, letter := range []string{"W", "R", "B", "O", "G", "Y"} {
		assert.Contains(t, out, letter)
	}
	assert.Equal(t, 9, strings.Count(out, "\n"))
}

func TestMoves(t *testing.T) {
	assert.Contains(t, Moves([]gocube.Move{gocube.R, gocube.UPrime}), "R U'")
	assert.Contains(t, Moves(nil), "(none)")
	assert.Contains(t, Phase(gocube.PhaseBottomCross), "Bottom Cross")
}

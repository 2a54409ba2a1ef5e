package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gocube "github.com/SeamusWaldron/gocube_cross"
	"github.com/SeamusWaldron/gocube_cross/internal/render"
)

// run executes the command tree with args against a temporary config and
// database and returns stdout.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()

	// Flag variables outlive a single Execute
	solveScramble, solveFacelets, solveNotes = "", "", ""
	solveSave, solveReplay = false, false
	renderScramble, renderFacelets = "", ""
	listLimit, showFormat = 10, "text"
	patternMinN, patternMaxN, patternTopK = 3, 6, 5
	configForce = false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{
		"--config", filepath.Join(dir, "config.yaml"),
		"--db", filepath.Join(dir, "runs.db"),
		"--no-color",
	}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestSolveCommand(t *testing.T) {
	out, err := run(t, t.TempDir(), "solve", "--scramble", "R")
	require.NoError(t, err)

	assert.Contains(t, out, "R U R' U' R R")
	assert.Contains(t, out, "compact 5: R U R' U' R2")
	assert.Contains(t, out, "Bottom Cross")
}

func TestSolveCommandFacelets(t *testing.T) {
	c := gocube.NewSolvedCube(gocube.F)
	out, err := run(t, t.TempDir(), "solve", "--facelets", c.Facelets())
	require.NoError(t, err)
	assert.Contains(t, out, "L' U L U R' F R")
}

func TestSolveCommandRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, dir, "solve", "--scramble", "R X")
	assert.ErrorIs(t, err, gocube.ErrInvalidNotation)

	_, err = run(t, dir, "solve", "--facelets", strings.Repeat("W", 54))
	assert.ErrorIs(t, err, gocube.ErrColorCount)

	_, err = run(t, dir, "solve", "--scramble", "R", "--facelets", gocube.Solved().Facelets())
	assert.Error(t, err)
}

func TestSaveAndHistory(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "solve", "--scramble", "D R' D'", "--save", "--notes", "first")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved run ")

	_, err = run(t, dir, "solve", "--scramble", "B", "--save")
	require.NoError(t, err)

	out, err = run(t, dir, "history", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "bottom_cross")
	assert.Contains(t, lines[1], "  B")
	assert.Contains(t, lines[2], "D R' D'")

	out, err = run(t, dir, "history", "show", "last")
	require.NoError(t, err)
	assert.Contains(t, out, "Scramble: B")
	assert.Contains(t, out, "R' U R U L' B L")

	out, err = run(t, dir, "history", "show", "last", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "moves: R' U R U L' B L")
	assert.Contains(t, out, "stage: bottom_cross")
	assert.Contains(t, out, "scramble: B")

	// Both solutions open with R' U R
	out, err = run(t, dir, "history", "patterns", "--min", "3", "--max", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Length 3")
	assert.Contains(t, out, "2x  R' U R")

	_, err = run(t, dir, "history", "show", "missing")
	assert.Error(t, err)
}

func TestHistoryEmpty(t *testing.T) {
	out, err := run(t, t.TempDir(), "history", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No runs saved yet")
}

func TestRenderCommand(t *testing.T) {
	out, err := run(t, t.TempDir(), "render", "--scramble", "U")
	require.NoError(t, err)
	assert.Contains(t, out, "Second Layer")
	assert.Contains(t, out, gocube.NewSolvedCube(gocube.U).Facelets())
}

func TestConfigInitAndShow(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote ")

	_, err = run(t, dir, "config", "init")
	assert.Error(t, err)

	out, err = run(t, dir, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "log_level: info")
	assert.Contains(t, out, "color: false")
	assert.Contains(t, out, filepath.Join(dir, "runs.db"))
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestReplayModelSteps(t *testing.T) {
	start := gocube.NewSolvedCube(gocube.R)
	moves := []gocube.Move{gocube.R, gocube.U, gocube.RPrime, gocube.UPrime, gocube.R, gocube.R}
	m := newReplayModel(start, moves, time.Second, render.New(false))

	for range moves {
		m.Update(key("n"))
	}
	assert.Equal(t, len(moves), m.index)
	assert.True(t, m.cube.IsBottomCrossComplete())

	// Past the end is a no-op
	m.Update(key("n"))
	assert.Equal(t, len(moves), m.index)

	m.Update(key("b"))
	m.Update(key("b"))
	want := start.Clone()
	want.Apply(moves[:4]...)
	assert.True(t, m.cube.Equal(want))

	m.Update(key("r"))
	assert.Zero(t, m.index)
	assert.True(t, m.cube.Equal(start))

	assert.Contains(t, m.View(), "Move 0/6")
}

func TestReplayModelAutoplay(t *testing.T) {
	moves := []gocube.Move{gocube.U, gocube.U}
	m := newReplayModel(gocube.Solved(), moves, time.Second, render.New(false))

	_, cmd := m.Update(key("p"))
	require.NotNil(t, cmd)
	assert.True(t, m.playing)

	_, cmd = m.Update(replayTickMsg(time.Now()))
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, m.index)

	_, cmd = m.Update(replayTickMsg(time.Now()))
	assert.Nil(t, cmd)
	assert.Equal(t, 2, m.index)
	assert.False(t, m.playing)

	m.Update(key("+"))
	assert.Equal(t, 500*time.Millisecond, m.interval)

	_, cmd = m.Update(key("q"))
	assert.NotNil(t, cmd)
	assert.Equal(t, "Replay ended.\n", m.View())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "R U", truncate("R U", 5))
	assert.Equal(t, "R U R...", truncate("R U R' U'", 8))
}

func TestLoadCube(t *testing.T) {
	c, err := loadCube("R U", "")
	require.NoError(t, err)
	assert.True(t, c.Equal(gocube.NewSolvedCube(gocube.R, gocube.U)))

	want := gocube.NewSolvedCube(gocube.F)
	c, err = loadCube("", want.Facelets())
	require.NoError(t, err)
	assert.True(t, c.Equal(want))

	c, err = loadCube("", "")
	require.NoError(t, err)
	assert.True(t, c.IsSolved())

	_, err = loadCube("R", want.Facelets())
	assert.Error(t, err)
}

// Package analysis provides statistics over solver move sequences.
package analysis

import (
	"strings"

	gocube "github.com/SeamusWaldron/gocube_cross"
)

// Step is a run of adjacent quarter turns of one face merged into a single
// outer block turn. Turns counts clockwise quarter turns, normalized to 1,
// 2 or 3.
type Step struct {
	Face  gocube.CubeFace
	Turns int
}

// Notation returns R, R2 or R' for 1, 2 or 3 clockwise quarter turns.
func (s Step) Notation() string {
	letter := gocube.MoveFor(s.Face, true).Notation()
	switch s.Turns {
	case 2:
		return letter + "2"
	case 3:
		return letter + "'"
	default:
		return letter
	}
}

// QuarterTurns returns the number of quarter turns the step costs.
func (s Step) QuarterTurns() int {
	if s.Turns == 2 {
		return 2
	}
	return 1
}

// CompactSteps merges adjacent turns of the same face. Runs that cancel out
// entirely are dropped, which can let the turns around them merge too.
func CompactSteps(moves []gocube.Move) []Step {
	steps := make([]Step, 0, len(moves))

	for _, m := range moves {
		delta := 1
		if !m.Clockwise() {
			delta = 3
		}

		if n := len(steps); n > 0 && steps[n-1].Face == m.Face() {
			turns := normalizeTurns(steps[n-1].Turns + delta)
			if turns == 0 {
				steps = steps[:n-1]
			} else {
				steps[n-1].Turns = turns
			}
			continue
		}

		steps = append(steps, Step{Face: m.Face(), Turns: delta})
	}

	return steps
}

// Compact formats the merged steps as notation, e.g. "R R U" becomes "R2 U".
func Compact(moves []gocube.Move) string {
	steps := CompactSteps(moves)
	parts := make([]string, len(steps))
	for i, s := range steps {
		parts[i] = s.Notation()
	}
	return strings.Join(parts, " ")
}

// QuarterTurnCount returns the quarter turn metric length of the merged
// sequence.
func QuarterTurnCount(moves []gocube.Move) int {
	count := 0
	for _, s := range CompactSteps(moves) {
		count += s.QuarterTurns()
	}
	return count
}

// normalizeTurns reduces a clockwise quarter turn count to 0-3.
func normalizeTurns(turns int) int {
	return ((turns % 4) + 4) % 4
}

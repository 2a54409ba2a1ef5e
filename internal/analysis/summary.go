package analysis

import (
	gocube "github.com/SeamusWaldron/gocube_cross"
)

// Summary contains statistics for a single solver run.
type Summary struct {
	TotalMoves     int            `json:"total_moves" yaml:"total_moves"`
	CompactMoves   int            `json:"compact_moves" yaml:"compact_moves"`
	QuarterTurns   int            `json:"quarter_turns" yaml:"quarter_turns"`
	Efficiency     float64        `json:"efficiency" yaml:"efficiency"`
	Compact        string         `json:"compact" yaml:"compact"`
	Profile        *FaceProfile   `json:"profile" yaml:"profile"`
	WastedMoves    int            `json:"wasted_moves" yaml:"wasted_moves"`
	FinalPhase     string         `json:"final_phase,omitempty" yaml:"final_phase,omitempty"`
	PhaseDisplay   string         `json:"-" yaml:"-"`
	MergeableTurns map[string]int `json:"mergeable_turns,omitempty" yaml:"mergeable_turns,omitempty"`
}

// FaceProfile analyzes which faces and directions a sequence uses.
type FaceProfile struct {
	FaceCounts       map[string]int `json:"face_counts" yaml:"face_counts"`
	Clockwise        int            `json:"clockwise" yaml:"clockwise"`
	CounterClockwise int            `json:"counter_clockwise" yaml:"counter_clockwise"`
	MostUsedFace     string         `json:"most_used_face" yaml:"most_used_face"`
	FaceSequences    map[string]int `json:"face_sequences" yaml:"face_sequences"` // e.g., "RU" -> count
}

// Summarize computes statistics for moves applied to a cube that ended up
// in the given phase.
func Summarize(moves []gocube.Move, final gocube.Phase) *Summary {
	steps := CompactSteps(moves)
	reps := AnalyzeRepetitions(moves)

	s := &Summary{
		TotalMoves:   len(moves),
		CompactMoves: len(steps),
		QuarterTurns: QuarterTurnCount(moves),
		Compact:      Compact(moves),
		Profile:      AnalyzeFaceProfile(moves),
		WastedMoves:  reps.TotalWastedMoves,
		FinalPhase:   final.String(),
		PhaseDisplay: final.DisplayName(),
	}

	if len(reps.MergeOpportunities) > 0 {
		s.MergeableTurns = make(map[string]int)
		for _, m := range reps.MergeOpportunities {
			s.MergeableTurns[m.MergedMove]++
		}
	}

	if s.TotalMoves > 0 {
		s.Efficiency = float64(s.QuarterTurns) / float64(s.TotalMoves)
	} else {
		s.Efficiency = 1
	}

	return s
}

// AnalyzeFaceProfile counts turns per face and direction.
func AnalyzeFaceProfile(moves []gocube.Move) *FaceProfile {
	profile := &FaceProfile{
		FaceCounts:    make(map[string]int),
		FaceSequences: make(map[string]int),
	}

	for i, m := range moves {
		letter := gocube.MoveFor(m.Face(), true).Notation()
		profile.FaceCounts[letter]++
		if m.Clockwise() {
			profile.Clockwise++
		} else {
			profile.CounterClockwise++
		}

		// Track 2-move face sequences
		if i > 0 {
			prev := gocube.MoveFor(moves[i-1].Face(), true).Notation()
			profile.FaceSequences[prev+letter]++
		}
	}

	// Ties go to the face turned first
	maxFaceCount := 0
	for _, m := range moves {
		letter := gocube.MoveFor(m.Face(), true).Notation()
		if count := profile.FaceCounts[letter]; count > maxFaceCount {
			maxFaceCount = count
			profile.MostUsedFace = letter
		}
	}

	return profile
}

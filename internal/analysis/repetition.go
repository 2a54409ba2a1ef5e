package analysis

import (
	gocube "github.com/SeamusWaldron/gocube_cross"
)

// Cancellation represents an immediate move cancellation (e.g., R followed by R').
type Cancellation struct {
	Index1 int    `json:"index1" yaml:"index1"`
	Index2 int    `json:"index2" yaml:"index2"`
	Move1  string `json:"move1" yaml:"move1"`
	Move2  string `json:"move2" yaml:"move2"`
}

// MergeOpportunity represents adjacent same-direction turns of one face
// that could be written as a single half turn.
type MergeOpportunity struct {
	Index1     int    `json:"index1" yaml:"index1"`
	Index2     int    `json:"index2" yaml:"index2"`
	Move1      string `json:"move1" yaml:"move1"`
	Move2      string `json:"move2" yaml:"move2"`
	MergedMove string `json:"merged_move" yaml:"merged_move"`
}

// RepetitionReport contains all repetition analysis results.
type RepetitionReport struct {
	ImmediateCancellations []Cancellation     `json:"immediate_cancellations" yaml:"immediate_cancellations"`
	MergeOpportunities     []MergeOpportunity `json:"merge_opportunities" yaml:"merge_opportunities"`
	TotalWastedMoves       int                `json:"total_wasted_moves" yaml:"total_wasted_moves"`
}

// AnalyzeRepetitions analyzes a move sequence for repetitions and wasted motion.
func AnalyzeRepetitions(moves []gocube.Move) *RepetitionReport {
	report := &RepetitionReport{
		ImmediateCancellations: []Cancellation{},
		MergeOpportunities:     []MergeOpportunity{},
	}

	if len(moves) < 2 {
		return report
	}

	for i := 0; i < len(moves)-1; i++ {
		m1, m2 := moves[i], moves[i+1]
		if m1.Face() != m2.Face() {
			continue
		}

		// R followed by R'
		if m2 == m1.Reverse() {
			report.ImmediateCancellations = append(report.ImmediateCancellations, Cancellation{
				Index1: i,
				Index2: i + 1,
				Move1:  m1.Notation(),
				Move2:  m2.Notation(),
			})
			report.TotalWastedMoves += 2
			continue
		}

		// R followed by R, or R' followed by R'
		report.MergeOpportunities = append(report.MergeOpportunities, MergeOpportunity{
			Index1:     i,
			Index2:     i + 1,
			Move1:      m1.Notation(),
			Move2:      m2.Notation(),
			MergedMove: Step{Face: m1.Face(), Turns: 2}.Notation(),
		})
	}

	// Three quarter turns one way are one turn the other way
	for i := 0; i+2 < len(moves); i++ {
		if moves[i] == moves[i+1] && moves[i+1] == moves[i+2] {
			report.TotalWastedMoves += 2
			i += 2
		}
	}

	return report
}

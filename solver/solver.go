// Package solver builds move sequences that bring a cube towards solved one
// stage at a time. Each stage drives a Solver, which owns the cube, records
// every move it applies and follows a single facelet through those moves
// with the position tables.
package solver

import (
	"log/slog"

	gocube "github.com/SeamusWaldron/gocube_cross"
)

// Solver holds the cube being solved, the moves applied so far and the
// facelet currently being followed.
type Solver struct {
	cube    *gocube.Cube
	history []gocube.Move
	tracked gocube.Position
	cfg     *config
}

// New creates a solver for cube. The solver mutates cube as it works.
func New(cube *gocube.Cube, opts ...Option) *Solver {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Solver{cube: cube, cfg: cfg}
}

// Solve runs the bottom cross stage on cube and returns the moves applied.
// The cube is left with its bottom cross complete.
func Solve(cube *gocube.Cube, opts ...Option) []gocube.Move {
	s := New(cube, opts...)
	s.Run(BottomCross{})
	return s.History()
}

// Run executes stages in order.
func (s *Solver) Run(stages ...Stage) {
	for _, stage := range stages {
		start := len(s.history)
		stage.Solve(s)
		s.cfg.logger.Debug("stage complete",
			slog.String("stage", stage.Name()),
			slog.Int("moves", len(s.history)-start),
		)
	}
}

// Cube returns the cube being solved.
func (s *Solver) Cube() *gocube.Cube {
	return s.cube
}

// History returns a copy of the moves applied so far.
func (s *Solver) History() []gocube.Move {
	out := make([]gocube.Move, len(s.history))
	copy(out, s.history)
	return out
}

// Len returns the number of moves applied so far.
func (s *Solver) Len() int {
	return len(s.history)
}

// Logger returns the configured logger.
func (s *Solver) Logger() *slog.Logger {
	return s.cfg.logger
}

// Verify reports whether stages should cross-check colors after each piece.
func (s *Solver) Verify() bool {
	return s.cfg.verify
}

// Track starts following the facelet at p.
func (s *Solver) Track(p gocube.Position) {
	s.tracked = p
}

// Tracked returns the current position of the followed facelet.
func (s *Solver) Tracked() gocube.Position {
	return s.tracked
}

// Apply turns the cube, records the moves and advances the tracked facelet.
func (s *Solver) Apply(moves ...gocube.Move) {
	for _, m := range moves {
		s.cube.Apply(m)
		s.history = append(s.history, m)
		s.tracked = gocube.Advance(s.tracked, m)
	}
}

// Undo reverts the n moves that precede the most recent one, newest first.
// The most recent move itself stays in effect:
//
//	X1 .. Xn M  ->  X1 .. Xn M Xn' .. X1'
func (s *Solver) Undo(n int) {
	last := len(s.history) - 1
	if n < 0 || n > last {
		Fail("undo", "cannot undo %d moves before move %d", n, last)
	}
	for i := last - 1; i >= last-n; i-- {
		s.Apply(s.history[i].Reverse())
	}
}

// turnTop spins the Top face by d quarter turns clockwise, using a single
// counter-clockwise turn for three.
func (s *Solver) turnTop(d int) {
	d = ((d % 4) + 4) % 4
	if d == 3 {
		s.Apply(gocube.UPrime)
		return
	}
	for i := 0; i < d; i++ {
		s.Apply(gocube.U)
	}
}

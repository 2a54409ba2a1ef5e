package gocube

// Tracker follows a single facelet through a sequence of moves using the
// position tables, without needing the cube itself.
type Tracker struct {
	start    Position
	position Position
	moves    int
}

// NewTracker creates a tracker for the facelet currently at p.
func NewTracker(p Position) *Tracker {
	return &Tracker{start: p, position: p}
}

// Reset starts following the facelet at p.
func (t *Tracker) Reset(p Position) {
	t.start = p
	t.position = p
	t.moves = 0
}

// Apply advances the tracked facelet through moves.
func (t *Tracker) Apply(moves ...Move) {
	for _, m := range moves {
		t.position = Advance(t.position, m)
	}
	t.moves += len(moves)
}

// Position returns where the tracked facelet is now.
func (t *Tracker) Position() Position {
	return t.position
}

// Start returns where the tracked facelet was when tracking began.
func (t *Tracker) Start() Position {
	return t.start
}

// Moves returns how many moves have been applied since the last reset.
func (t *Tracker) Moves() int {
	return t.moves
}

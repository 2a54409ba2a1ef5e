package solver

// Stage is one step of a layer-by-layer solve. Solve applies moves through
// the solver until the stage's goal holds; it panics with an
// *InvariantError if the cube cannot be handled.
type Stage interface {
	Name() string
	Solve(s *Solver)
}

package solver

import (
	"log/slog"

	gocube "github.com/SeamusWaldron/gocube_cross"
)

// BottomCross places the four edges carrying the Bottom center color so
// they form a cross on the Bottom face with each side sticker matching its
// face center.
type BottomCross struct{}

const bottomCrossName = "bottom_cross"

// Name returns the stage identifier.
func (BottomCross) Name() string {
	return bottomCrossName
}

// Solve places the cross edges one at a time in reference order. An edge
// in the middle or bottom layer is first lifted to the top layer, then the
// Top face is turned until it sits above its slot and it is inserted.
func (BottomCross) Solve(s *Solver) {
	cross := s.cube.BottomColor()

	for _, edge := range gocube.EdgesWith(cross) {
		other := edge.Other(cross)
		target := targetColumn(s.cube, other)
		slot := crossSlots[target]

		s.Track(crossFacelet(s.cube, edge, cross))
		start := s.Len()
		from := s.Tracked()

		if from == slot.Primary {
			s.cfg.logger.Debug("edge already placed",
				slog.String("edge", edge.String()),
				slog.Int("position", int(from)),
			)
			continue
		}

		if gocube.LayerOf(s.Tracked()) != gocube.LayerTop {
			s.lift(edge)
		}
		s.insert(edge, target)

		if s.Tracked() != slot.Primary {
			Fail(bottomCrossName, "edge %s ended at %d, want %d", edge, s.Tracked(), slot.Primary)
		}
		if s.cfg.verify {
			if got := s.cube.Color(slot.Primary); got != cross {
				Fail(bottomCrossName, "edge %s: bottom sticker is %s, want %s", edge, got, cross)
			}
			if got := s.cube.Color(slot.Secondary); got != other {
				Fail(bottomCrossName, "edge %s: side sticker is %s, want %s", edge, got, other)
			}
		}

		s.cfg.logger.Debug("edge placed",
			slog.String("edge", edge.String()),
			slog.Int("from", int(from)),
			slog.Int("to", int(slot.Primary)),
			slog.Int("moves", s.Len()-start),
		)
	}
}

// targetColumn returns the column whose side face center matches c.
func targetColumn(c *gocube.Cube, color gocube.Color) int {
	for i, f := range columnFaces {
		face := c.Face(f)
		if face.Color() == color {
			return i
		}
	}
	Fail(bottomCrossName, "no side center is %s", color)
	return 0
}

// crossFacelet returns the facelet holding the cross colored sticker of edge.
func crossFacelet(c *gocube.Cube, edge gocube.Edge, cross gocube.Color) gocube.Position {
	p, ok := c.EdgeFacelet(edge, cross)
	if !ok {
		Fail(bottomCrossName, "edge %s not found", edge)
	}
	return p
}

// lift moves the tracked edge out of the middle or bottom layer into the
// top layer, restoring every other middle and bottom slot.
func (s *Solver) lift(edge gocube.Edge) {
	slot, ok := gocube.EdgeSlotOf(s.Tracked())
	if !ok {
		Fail(bottomCrossName, "edge %s at %d is not on an edge slot", edge, s.Tracked())
	}
	moves, ok := extraction[slot.Primary]
	if !ok {
		Fail(bottomCrossName, "no extraction for edge %s at %d", edge, slot.Primary)
	}

	s.Apply(moves...)
	s.Apply(gocube.U)
	s.Undo(len(moves))

	if gocube.LayerOf(s.Tracked()) != gocube.LayerTop {
		Fail(bottomCrossName, "edge %s still in %s layer after extraction", edge, gocube.LayerOf(s.Tracked()))
	}
}

// insert brings a top layer edge down into the cross slot under column t.
// With the cross sticker facing up the edge is turned above its slot and
// the side face is half turned. With it facing outwards the edge is turned
// above the neighbouring column N and inserted with N' T N.
func (s *Solver) insert(edge gocube.Edge, t int) {
	cur, ok := column(s.Tracked())
	if !ok {
		Fail(bottomCrossName, "edge %s at %d is not in a top layer slot", edge, s.Tracked())
	}

	targetFace := columnFaces[t]
	if s.Tracked().Face() == gocube.Top {
		s.turnTop(t - cur)
		turn := gocube.MoveFor(targetFace, true)
		s.Apply(turn, turn)
		return
	}

	n := (t + 3) % 4
	s.turnTop(n - cur)
	neighbour := columnFaces[n]
	s.Apply(
		gocube.MoveFor(neighbour, false),
		gocube.MoveFor(targetFace, true),
		gocube.MoveFor(neighbour, true),
	)
}

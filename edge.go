package gocube

// Edge identifies one of the 12 edge pieces by its two colors. The lower
// color is always stored first so comparisons ignore orientation.
type Edge struct {
	A, B Color
}

// NewEdge returns the canonical edge for two colors.
func NewEdge(a, b Color) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Has reports whether the edge carries the color.
func (e Edge) Has(c Color) bool {
	return e.A == c || e.B == c
}

// Other returns the color paired with c. It is only meaningful when Has(c).
func (e Edge) Other(c Color) Color {
	if e.A == c {
		return e.B
	}
	return e.A
}

func (e Edge) String() string {
	return e.A.String() + e.B.String()
}

// EdgeSlot is a physical edge location: the two facelets one edge piece
// covers. Primary is the Top or Bottom facelet for slots in those layers
// and the Left or Right facelet for middle layer slots.
type EdgeSlot struct {
	Primary   Position
	Secondary Position
}

// Has reports whether p is one of the slot's facelets.
func (s EdgeSlot) Has(p Position) bool {
	return s.Primary == p || s.Secondary == p
}

// Partner returns the slot's other facelet.
func (s EdgeSlot) Partner(p Position) Position {
	if s.Primary == p {
		return s.Secondary
	}
	return s.Primary
}

// EdgeAt is an edge piece together with the primary facelet of the slot it
// currently occupies.
type EdgeAt struct {
	Edge     Edge
	Position Position
}

// edgeSlots lists the 12 slots: top layer, middle layer, bottom layer.
var edgeSlots = [12]EdgeSlot{
	// Top: back, left, right, front
	{At(Top, 1), At(Back, 1)},
	{At(Top, 3), At(Left, 1)},
	{At(Top, 5), At(Right, 1)},
	{At(Top, 7), At(Front, 1)},
	// Middle: left-back, right-back, left-front, front-right
	{At(Left, 3), At(Back, 5)},
	{At(Right, 5), At(Back, 3)},
	{At(Left, 5), At(Front, 3)},
	{At(Right, 3), At(Front, 5)},
	// Bottom: back, left, right, front
	{At(Bottom, 7), At(Back, 7)},
	{At(Bottom, 3), At(Left, 7)},
	{At(Bottom, 5), At(Right, 7)},
	{At(Bottom, 1), At(Front, 7)},
}

type slotEntry struct {
	slot EdgeSlot
	ok   bool
}

// slotByFacelet maps both facelets of every edge slot back to its slot.
// Centers and corners are left with ok unset.
var slotByFacelet = func() (t [NumPositions]slotEntry) {
	for _, s := range edgeSlots {
		t[s.Primary].slot, t[s.Primary].ok = s, true
		t[s.Secondary].slot, t[s.Secondary].ok = s, true
	}
	return t
}()

// canonicalEdges is the set of edges present on the solved reference cube.
var canonicalEdges = func() map[Edge]bool {
	m := make(map[Edge]bool, 12)
	for _, e := range solved.Edges() {
		m[e.Edge] = true
	}
	return m
}()

// EdgeSlots returns the 12 edge slots in enumeration order.
func EdgeSlots() [12]EdgeSlot {
	return edgeSlots
}

// EdgeSlotOf returns the edge slot containing facelet p.
func EdgeSlotOf(p Position) (EdgeSlot, bool) {
	if p >= NumPositions {
		return EdgeSlot{}, false
	}
	e := slotByFacelet[p]
	return e.slot, e.ok
}

// Edges returns the 12 edge pieces and their slots: 4 on the top layer, 4
// on the middle layer and 4 on the bottom layer.
func (c *Cube) Edges() [12]EdgeAt {
	var result [12]EdgeAt
	for i, s := range edgeSlots {
		result[i] = EdgeAt{
			Edge:     NewEdge(c.Color(s.Primary), c.Color(s.Secondary)),
			Position: s.Primary,
		}
	}
	return result
}

// FindEdge returns the primary facelet of the slot holding the edge.
func (c *Cube) FindEdge(e Edge) (Position, bool) {
	for _, at := range c.Edges() {
		if at.Edge == e {
			return at.Position, true
		}
	}
	return 0, false
}

// EdgeFacelet returns the facelet showing color on edge e, wherever the
// edge currently sits.
func (c *Cube) EdgeFacelet(e Edge, color Color) (Position, bool) {
	p, ok := c.FindEdge(e)
	if !ok || !e.Has(color) {
		return 0, false
	}
	if c.Color(p) == color {
		return p, true
	}
	s, _ := EdgeSlotOf(p)
	return s.Secondary, true
}

// EdgesWith returns the four edges of the solved reference cube that carry
// the color, in enumeration order.
func EdgesWith(c Color) [4]Edge {
	var out [4]Edge
	n := 0
	for _, at := range solved.Edges() {
		if at.Edge.Has(c) {
			out[n] = at.Edge
			n++
		}
	}
	return out
}

package gocube

// Phase detection for the layer-by-layer method. Colors are judged against
// the current centers, so no fixed color scheme is assumed.

var sideFaces = [4]CubeFace{Front, Right, Back, Left}

// IsBottomCrossComplete checks if the bottom cross is complete:
// - 4 edge facelets on the Bottom face (positions 1, 3, 5, 7) match its center
// - each edge's side facelet matches the adjacent center
func (c *Cube) IsBottomCrossComplete() bool {
	bottom := &c.faces[Bottom]
	for _, pos := range []int{1, 3, 5, 7} {
		if bottom[pos] != bottom.Color() {
			return false
		}
	}

	// Side faces meet the Bottom face along their last row
	for _, face := range sideFaces {
		if c.faces[face][7] != c.faces[face].Color() {
			return false
		}
	}

	return true
}

// IsFirstLayerComplete checks if the entire bottom layer is complete.
func (c *Cube) IsFirstLayerComplete() bool {
	if !c.IsBottomCrossComplete() {
		return false
	}

	if !c.faces[Bottom].uniform() {
		return false
	}

	for _, face := range sideFaces {
		center := c.faces[face].Color()
		if c.faces[face][6] != center || c.faces[face][8] != center {
			return false
		}
	}

	return true
}

// IsSecondLayerComplete checks if the middle layer is complete on top of
// the first layer. Middle layer edges are at positions 3 and 5 on the side faces.
func (c *Cube) IsSecondLayerComplete() bool {
	if !c.IsFirstLayerComplete() {
		return false
	}

	for _, face := range sideFaces {
		center := c.faces[face].Color()
		if c.faces[face][3] != center || c.faces[face][5] != center {
			return false
		}
	}

	return true
}

// DetectPhase returns the highest consecutive phase the cube has reached.
func (c *Cube) DetectPhase() Phase {
	switch {
	case c.IsSolved():
		return PhaseSolved
	case c.IsSecondLayerComplete():
		return PhaseSecondLayer
	case c.IsFirstLayerComplete():
		return PhaseFirstLayer
	case c.IsBottomCrossComplete():
		return PhaseBottomCross
	default:
		return PhaseScrambled
	}
}

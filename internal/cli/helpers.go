package cli

import (
	"errors"
	"fmt"

	gocube "github.com/SeamusWaldron/gocube_cross"
)

// loadCube builds the starting cube from either a scramble applied to the
// solved cube or a 54 letter facelet string, and validates it.
func loadCube(scramble, facelets string) (*gocube.Cube, error) {
	if scramble != "" && facelets != "" {
		return nil, errors.New("use either --scramble or --facelets, not both")
	}

	if facelets != "" {
		c, err := gocube.ParseFacelets(facelets)
		if err != nil {
			return nil, fmt.Errorf("invalid facelets: %w", err)
		}
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("invalid cube: %w", err)
		}
		return c, nil
	}

	moves, err := gocube.ParseMoves(scramble)
	if err != nil {
		return nil, fmt.Errorf("invalid scramble: %w", err)
	}
	return gocube.NewSolvedCube(moves...), nil
}

// truncate shortens s to max runes with a trailing ellipsis.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

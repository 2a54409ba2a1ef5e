package gocube

import "fmt"

// Color represents a sticker color. The numeric order is only used to
// canonicalize edge color pairs.
type Color byte

const (
	White Color = iota
	Red
	Blue
	Orange
	Green
	Yellow
)

// numColors is the number of sticker colors.
const numColors = 6

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Red:
		return "R"
	case Blue:
		return "B"
	case Orange:
		return "O"
	case Green:
		return "G"
	case Yellow:
		return "Y"
	default:
		return "?"
	}
}

// Name returns the lower-case color name.
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Orange:
		return "orange"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// Colors returns the six colors in order.
func Colors() []Color {
	return []Color{White, Red, Blue, Orange, Green, Yellow}
}

// ParseColor parses a single color letter (W, R, B, O, G, Y), either case.
func ParseColor(r rune) (Color, error) {
	switch r {
	case 'W', 'w':
		return White, nil
	case 'R', 'r':
		return Red, nil
	case 'B', 'b':
		return Blue, nil
	case 'O', 'o':
		return Orange, nil
	case 'G', 'g':
		return Green, nil
	case 'Y', 'y':
		return Yellow, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, r)
	}
}

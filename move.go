package gocube

import (
	"fmt"
	"strings"
)

// Move is a quarter turn of one face, clockwise or counter-clockwise as
// seen looking at that face.
type Move uint8

const (
	F      Move = iota // Front clockwise
	FPrime             // Front counter-clockwise
	B                  // Back clockwise
	BPrime             // Back counter-clockwise
	U                  // Up clockwise
	UPrime             // Up counter-clockwise
	D                  // Down clockwise
	DPrime             // Down counter-clockwise
	L                  // Left clockwise
	LPrime             // Left counter-clockwise
	R                  // Right clockwise
	RPrime             // Right counter-clockwise
)

const numMoves = 12

// moveFaces maps each face pair in the Move enumeration to its face.
var moveFaces = [numMoves / 2]CubeFace{Front, Back, Top, Bottom, Left, Right}

// AllMoves returns the 12 quarter turns.
func AllMoves() []Move {
	moves := make([]Move, numMoves)
	for i := range moves {
		moves[i] = Move(i)
	}
	return moves
}

// MoveFor returns the quarter turn of a face in the given direction.
func MoveFor(face CubeFace, clockwise bool) Move {
	for i, f := range moveFaces {
		if f == face {
			m := Move(i * 2)
			if !clockwise {
				m++
			}
			return m
		}
	}
	panic(fmt.Sprintf("gocube: no move for face %d", face))
}

// Face returns the turned face.
func (m Move) Face() CubeFace {
	return moveFaces[m/2]
}

// Clockwise reports the turn direction.
func (m Move) Clockwise() bool {
	return m%2 == 0
}

// Reverse returns the move that undoes m. R becomes R', R' becomes R.
func (m Move) Reverse() Move {
	return m ^ 1
}

// Notation returns the standard cube notation for this move.
// Examples: R, R', U, U'
func (m Move) Notation() string {
	if m >= numMoves {
		return "?"
	}
	letter := faceLetters[m.Face()]
	if m.Clockwise() {
		return letter
	}
	return letter + "'"
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

var faceLetters = map[CubeFace]string{
	Top:    "U",
	Left:   "L",
	Front:  "F",
	Right:  "R",
	Back:   "B",
	Bottom: "D",
}

// ParseMove parses a single quarter turn such as R or R'.
func ParseMove(s string) (Move, error) {
	moves, err := parseToken(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if len(moves) != 1 {
		return 0, fmt.Errorf("%w: %q is not a quarter turn", ErrInvalidNotation, s)
	}
	return moves[0], nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'". Half turns such as R2 expand to two quarter turns.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		parsed, err := parseToken(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, parsed...)
	}

	return moves, nil
}

func parseToken(s string) ([]Move, error) {
	if len(s) == 0 {
		return nil, ErrInvalidNotation
	}

	// Extract face
	var face CubeFace
	switch s[0] {
	case 'R', 'r':
		face = Right
	case 'L', 'l':
		face = Left
	case 'U', 'u':
		face = Top
	case 'D', 'd':
		face = Bottom
	case 'F', 'f':
		face = Front
	case 'B', 'b':
		face = Back
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	// Extract turn
	switch s[1:] {
	case "":
		return []Move{MoveFor(face, true)}, nil
	case "'", "`":
		return []Move{MoveFor(face, false)}, nil
	case "2", "2'", "2`":
		m := MoveFor(face, true)
		return []Move{m, m}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

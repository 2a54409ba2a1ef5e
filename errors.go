package gocube

import "errors"

// Sentinel errors for the gocube package.
var (
	// Parsing errors
	ErrInvalidNotation = errors.New("gocube: invalid move notation")
	ErrInvalidColor    = errors.New("gocube: invalid color")
	ErrFaceletCount    = errors.New("gocube: facelet string must have 54 colors")

	// State errors
	ErrColorCount      = errors.New("gocube: cube must have 9 facelets of each color")
	ErrDuplicateCenter = errors.New("gocube: face centers must be distinct")
	ErrCenterLayout    = errors.New("gocube: opposite face centers must be opposite colors")
	ErrInvalidEdge     = errors.New("gocube: invalid edge piece")
)

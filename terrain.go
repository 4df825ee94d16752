// Package terrain samples regular digital elevation model grids at arbitrary
// world coordinates.
package terrain

import "errors"

// ReferenceGridSize is the number of rows and columns of the square grids used
// by the reference deployment.
const ReferenceGridSize = 101

var (
	// ErrInvalidGrid is returned when a grid's dimensions or elevation count
	// are invalid.
	ErrInvalidGrid = errors.New("invalid grid")

	// ErrInvalidResolution is returned when a grid's resolution is not a
	// finite positive number.
	ErrInvalidResolution = errors.New("invalid resolution")
)

// A Coord is a world coordinate.
type Coord struct {
	X float64
	Y float64
}

// A NodeCoord is a grid node coordinate.
type NodeCoord struct {
	C int // Column.
	R int // Row.
}

package terrain

import (
	"fmt"
	"math"
	"slices"
)

// A Grid is a regular, axis-aligned grid of elevations stored in row-major
// order. Columns follow the X axis and rows follow the Y axis. A Grid is
// immutable once constructed and may be shared between goroutines.
type Grid struct {
	originX    float64
	originY    float64
	resolution float64
	rows       int
	cols       int
	elevations []float64
	metadata   Metadata
	describe   bool
}

// Metadata is descriptive information carried alongside a Grid. It is not used
// for interpolation.
type Metadata struct {
	XMin          float64
	XMax          float64
	YMin          float64
	YMax          float64
	MinElevation  float64
	MaxElevation  float64
	MeanElevation float64
	StdElevation  float64
	Type          string
}

// A GridOption sets an option on a Grid.
type GridOption func(*Grid)

// NewGrid returns a new Grid with rows rows and cols columns. elevations
// contains one elevation per node in row-major order and is copied.
func NewGrid(rows, cols int, elevations []float64, options ...GridOption) (*Grid, error) {
	g := &Grid{
		resolution: 1,
		rows:       rows,
		cols:       cols,
	}
	for _, option := range options {
		option(g)
	}

	switch {
	case rows < 2 || cols < 2:
		invalidGrids.WithLabelValues("dimensions").Inc()
		return nil, fmt.Errorf("%w: %dx%d, need at least 2x2", ErrInvalidGrid, rows, cols)
	case len(elevations)%cols != 0 || len(elevations)/cols != rows:
		invalidGrids.WithLabelValues("length").Inc()
		return nil, fmt.Errorf("%w: %d elevations, expected %dx%d", ErrInvalidGrid, len(elevations), rows, cols)
	case !(g.resolution > 0) || math.IsInf(g.resolution, 1):
		invalidGrids.WithLabelValues("resolution").Inc()
		return nil, fmt.Errorf("%w: %g", ErrInvalidResolution, g.resolution)
	}

	g.elevations = slices.Clone(elevations)
	if g.describe {
		g.metadata = g.Describe(g.metadata.Type)
	}
	grids.Inc()
	return g, nil
}

// WithDescription sets the grid's metadata to the result of [Grid.Describe]
// once the grid is constructed.
func WithDescription(terrainType string) GridOption {
	return func(g *Grid) {
		g.describe = true
		g.metadata.Type = terrainType
	}
}

// WithMetadata sets the metadata carried by the grid.
func WithMetadata(metadata Metadata) GridOption {
	return func(g *Grid) {
		g.metadata = metadata
	}
}

// WithOrigin sets the world coordinate of node (0, 0).
func WithOrigin(x, y float64) GridOption {
	return func(g *Grid) {
		g.originX = x
		g.originY = y
	}
}

// WithResolution sets the spacing between adjacent nodes in world units.
func WithResolution(resolution float64) GridOption {
	return func(g *Grid) {
		g.resolution = resolution
	}
}

// At returns the elevation at row r and column c.
func (g *Grid) At(r, c int) float64 {
	return g.elevations[r*g.cols+c]
}

// Bounds returns the extent of g's nodes in world coordinates.
func (g *Grid) Bounds() (xMin, xMax, yMin, yMax float64) {
	xMin = g.originX
	xMax = g.originX + float64(g.cols-1)*g.resolution
	yMin = g.originY
	yMax = g.originY + float64(g.rows-1)*g.resolution
	return
}

// Dims returns g's number of rows and columns.
func (g *Grid) Dims() (rows, cols int) {
	return g.rows, g.cols
}

// Metadata returns g's metadata.
func (g *Grid) Metadata() Metadata {
	return g.metadata
}

// NodeCoord returns the world coordinate of nodeCoord.
func (g *Grid) NodeCoord(nodeCoord NodeCoord) Coord {
	return Coord{
		X: g.originX + float64(nodeCoord.C)*g.resolution,
		Y: g.originY + float64(nodeCoord.R)*g.resolution,
	}
}

// Origin returns the world coordinate of node (0, 0).
func (g *Grid) Origin() Coord {
	return Coord{X: g.originX, Y: g.originY}
}

// Resolution returns g's node spacing.
func (g *Grid) Resolution() float64 {
	return g.resolution
}

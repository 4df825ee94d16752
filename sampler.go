package terrain

// A Sampler samples elevations from a Grid. A Sampler holds no state other
// than its grid and is safe for concurrent use.
type Sampler struct {
	grid *Grid
}

// NewSampler returns a new Sampler for grid.
func NewSampler(grid *Grid) *Sampler {
	return &Sampler{
		grid: grid,
	}
}

// ElevationAt returns the interpolated elevation at the world coordinate
// (x, y). See [InterpolateBilinear].
func (s *Sampler) ElevationAt(x, y float64) float64 {
	return InterpolateBilinear(s.grid, x, y)
}

// Grid returns s's grid.
func (s *Sampler) Grid() *Grid {
	return s.grid
}

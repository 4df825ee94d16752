package terrain

import "math"

// InterpolateBilinear returns the elevation of grid at the world coordinate
// (x, y) using bilinear interpolation between the four surrounding nodes.
//
// Coordinates outside grid are not an error: the cell is clamped to the nearest
// edge cell and the weights to [0, 1], so the result saturates to the edge
// elevation instead of extrapolating. NaNs in the input propagate to the
// result.
func InterpolateBilinear(grid *Grid, x, y float64) float64 {
	colF := (x - grid.originX) / grid.resolution
	rowF := (y - grid.originY) / grid.resolution

	col0 := clampIndex(math.Floor(colF), grid.cols)
	row0 := clampIndex(math.Floor(rowF), grid.rows)

	dx := clampWeight(colF - float64(col0))
	dy := clampWeight(rowF - float64(row0))

	i := row0*grid.cols + col0
	z00 := grid.elevations[i]
	z10 := grid.elevations[i+1]
	z01 := grid.elevations[i+grid.cols]
	z11 := grid.elevations[i+grid.cols+1]

	// A flat cell returns its elevation exactly, including infinities.
	if z00 == z10 && z00 == z01 && z00 == z11 {
		return z00
	}

	return 0 +
		z00*(1-dx)*(1-dy) +
		z10*dx*(1-dy) +
		z01*(1-dx)*dy +
		z11*dx*dy
}

// clampIndex clamps the lower node index i to [0, n-2]. The comparisons are
// done on the float so that huge and NaN values never reach the conversion.
func clampIndex(i float64, n int) int {
	switch {
	case !(i >= 0):
		return 0
	case i >= float64(n-1):
		return n - 2
	default:
		return int(i)
	}
}

func clampWeight(w float64) float64 {
	switch {
	case w < 0:
		return 0
	case w > 1:
		return 1
	default:
		return w
	}
}

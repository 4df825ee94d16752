package terrain

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Describe returns the descriptive metadata of g: its bounds and summary
// statistics of its elevations. StdElevation is the sample standard deviation.
func (g *Grid) Describe(terrainType string) Metadata {
	xMin, xMax, yMin, yMax := g.Bounds()
	mean, std := stat.MeanStdDev(g.elevations, nil)
	return Metadata{
		XMin:          xMin,
		XMax:          xMax,
		YMin:          yMin,
		YMax:          yMax,
		MinElevation:  floats.Min(g.elevations),
		MaxElevation:  floats.Max(g.elevations),
		MeanElevation: mean,
		StdElevation:  std,
		Type:          terrainType,
	}
}

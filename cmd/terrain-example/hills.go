package main

import (
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/twpayne/go-terrain"
)

const (
	hillsBaseElevation = 300
	hillsAmplitude     = 250
	hillsFrequency     = 0.004 // Per meter.
)

// newHillsGrid returns a size×size grid of rolling hills generated from Perlin
// noise.
func newHillsGrid(size int, resolution, originX, originY float64, seed int64) (*terrain.Grid, error) {
	noise := perlin.NewPerlin(2, 2, 4, seed)
	elevations := make([]float64, size*size)
	for r := range size {
		for c := range size {
			x := float64(c) * resolution * hillsFrequency
			y := float64(r) * resolution * hillsFrequency
			z := hillsBaseElevation + hillsAmplitude*noise.Noise2D(x, y)
			elevations[r*size+c] = math.Max(z, 0)
		}
	}

	return terrain.NewGrid(size, size, elevations,
		terrain.WithOrigin(originX, originY),
		terrain.WithResolution(resolution),
		terrain.WithDescription("hills"),
	)
}

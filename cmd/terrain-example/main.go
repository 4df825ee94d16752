package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"strconv"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/profile"

	"github.com/twpayne/go-terrain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type output struct {
	X         float64           `json:"x"`
	Y         float64           `json:"y"`
	Elevation float64           `json:"elevation"`
	Metadata  *terrain.Metadata `json:"metadata,omitempty"`
}

func run() error {
	size := flag.Int("size", terrain.ReferenceGridSize, "number of rows and columns")
	resolution := flag.Float64("resolution", 10, "node spacing in meters")
	originX := flag.Float64("origin-x", 500000, "UTM X coordinate of the first node")
	originY := flag.Float64("origin-y", 5400000, "UTM Y coordinate of the first node")
	seed := flag.Int64("seed", 1, "terrain seed")
	describe := flag.Bool("describe", false, "print grid metadata")
	asJSON := flag.Bool("json", false, "print JSON")
	queries := flag.Int("queries", 0, "number of random concurrent queries to run")
	cpuProfile := flag.Bool("profile", false, "write a CPU profile")
	flag.Parse()

	if flag.NArg() != 2 {
		return errors.New("syntax: terrain-example [flags] x y")
	}
	x, err := strconv.ParseFloat(flag.Arg(0), 64)
	if err != nil {
		return err
	}
	y, err := strconv.ParseFloat(flag.Arg(1), 64)
	if err != nil {
		return err
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	grid, err := newHillsGrid(*size, *resolution, *originX, *originY, *seed)
	if err != nil {
		return err
	}
	sampler := terrain.NewSampler(grid)

	if *queries > 0 {
		count, maxElevation := runQueries(sampler, *queries, *seed)
		fmt.Fprintf(os.Stderr, "queries=%d max=%g\n", count, maxElevation)
	}

	result := output{
		X:         x,
		Y:         y,
		Elevation: sampler.ElevationAt(x, y),
	}
	if *describe {
		metadata := grid.Metadata()
		result.Metadata = &metadata
	}

	if *asJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(result.Elevation)
	if result.Metadata != nil {
		m := result.Metadata
		fmt.Printf("type=%s x=[%g, %g] y=[%g, %g] elevation min=%g max=%g mean=%g std=%g\n",
			m.Type, m.XMin, m.XMax, m.YMin, m.YMax,
			m.MinElevation, m.MaxElevation, m.MeanElevation, m.StdElevation)
	}
	return nil
}

// runQueries issues n random queries over sampler's grid from several
// goroutines sharing the same sampler and returns the number of queries and the
// highest elevation seen.
func runQueries(sampler *terrain.Sampler, n int, seed int64) (int, float64) {
	xMin, xMax, yMin, yMax := sampler.Grid().Bounds()
	const workers = 8
	counts := make([]int, workers)
	maxElevations := make([]float64, workers)
	var wg sync.WaitGroup
	for worker := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := rand.New(rand.NewPCG(uint64(seed), uint64(worker)))
			maxElevations[worker] = math.Inf(-1)
			for range (n + workers - 1 - worker) / workers {
				x := xMin + (xMax-xMin)*r.Float64()
				y := yMin + (yMax-yMin)*r.Float64()
				maxElevations[worker] = max(maxElevations[worker], sampler.ElevationAt(x, y))
				counts[worker]++
			}
		}()
	}
	wg.Wait()

	count, maxElevation := 0, math.Inf(-1)
	for worker := range workers {
		count += counts[worker]
		maxElevation = max(maxElevation, maxElevations[worker])
	}
	return count, maxElevation
}

func main() {
	if err := run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

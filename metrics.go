package terrain

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	grids = promauto.NewCounter(prometheus.CounterOpts{
		Name: "terrain_grids_total",
		Help: "The total number of grids constructed",
	})
	invalidGrids = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "terrain_invalid_grids_total",
		Help: "The total number of grids rejected at construction",
	}, []string{"reason"})
)

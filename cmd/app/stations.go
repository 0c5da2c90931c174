package main

import (
	"math"
	"math/rand"

	"github.com/caoyingkang/Voronoi-diagram/pkg/voronoi"
)

// generateRandStations scatters n sites with integer coordinates over the
// canvas.
func generateRandStations(n, width, height int, rng *rand.Rand) []voronoi.Site {
	stations := make([]voronoi.Site, n)
	for i := 0; i < n; i++ {
		stations[i] = voronoi.Site{
			X: float64(rng.Intn(width)),
			Y: float64(rng.Intn(height)),
		}
	}
	return stations
}

// generateFixStations lays n sites out on a grid; rows share their height,
// so the top row becomes the first beach line layer.
func generateFixStations(n, width, height int) []voronoi.Site {
	stations := make([]voronoi.Site, 0, n)
	if n <= 0 {
		return stations
	}

	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows

	xStep := float64(width) / float64(cols)
	yStep := float64(height) / float64(rows)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			// the last row may be incomplete
			if len(stations) == n {
				return stations
			}
			x := xStep/2 + float64(j)*xStep
			y := yStep/2 + float64(i)*yStep
			stations = append(stations, voronoi.Site{X: x, Y: y})
		}
	}

	return stations
}

package render

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caoyingkang/Voronoi-diagram/pkg/voronoi"
)

var box = Bounds{MinX: 0, MaxX: 10, MinY: 0, MaxY: 10}

func TestArcPoints_ClipsToBounds(t *testing.T) {
	t.Parallel()

	site := voronoi.Site{X: 5, Y: 4}
	arc := voronoi.Arc{Site: 0, Left: math.Inf(-1), Right: math.Inf(1)}

	points := ArcPoints(site, arc, 2, box, 11)
	require.Len(t, points, 11)
	assert.Equal(t, 0.0, points[0][0])
	assert.Equal(t, 10.0, points[10][0])

	for _, p := range points {
		assert.InDelta(t, voronoi.ParabolaY(site, p[0], 2), p[1], 1e-12)
	}
	// the vertex sits halfway between the site and the sweep line
	assert.InDelta(t, 3.0, points[5][1], 1e-12)
}

func TestArcPoints_Degenerate(t *testing.T) {
	t.Parallel()

	site := voronoi.Site{X: 5, Y: 4}

	// outside the box
	assert.Nil(t, ArcPoints(site, voronoi.Arc{Left: 11, Right: 12}, 2, box, 8))

	assert.Nil(t, ArcPoints(site, voronoi.Arc{Left: math.NaN(), Right: 3}, 2, box, 8))

	// too few samples still gives both ends
	points := ArcPoints(site, voronoi.Arc{Left: 1, Right: 3}, 2, box, 0)
	require.Len(t, points, 2)
	assert.Equal(t, 1.0, points[0][0])
	assert.Equal(t, 3.0, points[1][0])

	// a site on the sweep line is a vertical ray
	points = ArcPoints(site, voronoi.Arc{Left: 5, Right: 5}, 4, box, 8)
	assert.Equal(t, [][2]float64{{5, 4}, {5, 10}}, points)
}

func TestRender(t *testing.T) {
	t.Parallel()

	sites := []voronoi.Site{{X: 2, Y: 8}, {X: 6, Y: 5}}
	s, err := voronoi.NewSweep(sites, nil)
	require.NoError(t, err)
	s.Run()

	scene := Scene{
		Sites:     sites,
		Arcs:      s.Snapshot(3),
		Directrix: 3,
		Bounds:    box,
		Samples:   16,
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, scene))

	out := buf.String()
	assert.Contains(t, out, "echarts")
	assert.Contains(t, out, "Beach line at y = 3.00")
	assert.Contains(t, out, "Sweep line")
}

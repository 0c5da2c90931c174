package voronoi_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caoyingkang/Voronoi-diagram/pkg/voronoi"
)

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func TestRelation_CandidateLevelWithLeftSite(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		pi := voronoi.Site{X: rng.Float64()*100 - 50, Y: rng.Float64() * 10}
		pj := voronoi.Site{X: rng.Float64()*100 - 50, Y: pi.Y + rng.Float64()*10}
		pk := voronoi.Site{X: rng.Float64()*100 - 50, Y: pi.Y}

		assert.Equal(t, sign(pk.X-pi.X), voronoi.Relation(pi, pj, pk), "pi=%v pj=%v pk=%v", pi, pj, pk)
	}

	pi := voronoi.Site{X: 3, Y: 1}
	pk := voronoi.Site{X: 3, Y: 1}
	assert.Equal(t, 0, voronoi.Relation(pi, voronoi.Site{X: -7, Y: 9}, pk))
}

func TestRelation_CandidateLevelWithRightSite(t *testing.T) {
	t.Parallel()

	pi := voronoi.Site{X: 0, Y: 10}
	pj := voronoi.Site{X: 5, Y: 2}

	assert.Equal(t, 1, voronoi.Relation(pi, pj, voronoi.Site{X: 6, Y: 2}))
	assert.Equal(t, -1, voronoi.Relation(pi, pj, voronoi.Site{X: 4, Y: 2}))
	assert.Equal(t, 0, voronoi.Relation(pi, pj, voronoi.Site{X: 5, Y: 2}))
}

func TestRelation_LevelSites(t *testing.T) {
	t.Parallel()

	pi := voronoi.Site{X: 0, Y: 10}
	pj := voronoi.Site{X: 4, Y: 10}

	assert.Equal(t, -1, voronoi.Relation(pi, pj, voronoi.Site{X: 1, Y: 3}))
	assert.Equal(t, 0, voronoi.Relation(pi, pj, voronoi.Site{X: 2, Y: 3}))
	assert.Equal(t, 1, voronoi.Relation(pi, pj, voronoi.Site{X: 3, Y: 3}))

	assert.Panics(t, func() {
		voronoi.Relation(pj, pi, voronoi.Site{X: 1, Y: 3})
	})
}

func TestRelation_VerticallyAligned(t *testing.T) {
	t.Parallel()

	upper := voronoi.Site{X: 0, Y: 10}
	lower := voronoi.Site{X: 0, Y: 6}

	// fast paths
	assert.Equal(t, 1, voronoi.Relation(upper, lower, voronoi.Site{X: 1, Y: 0}))
	assert.Equal(t, -1, voronoi.Relation(lower, upper, voronoi.Site{X: -1, Y: 0}))

	// at y = 0 the parabolas of (0,10) and (0,6) meet where x^2 = 60
	bp := math.Sqrt(60)
	assert.Equal(t, -1, voronoi.Relation(upper, lower, voronoi.Site{X: -bp - 1, Y: 0}))
	assert.Equal(t, 1, voronoi.Relation(upper, lower, voronoi.Site{X: -bp + 1, Y: 0}))
	assert.Equal(t, -1, voronoi.Relation(lower, upper, voronoi.Site{X: bp - 1, Y: 0}))
	assert.Equal(t, 1, voronoi.Relation(lower, upper, voronoi.Site{X: bp + 1, Y: 0}))

	// straight below both sites the candidate is inside the arc of the lower one
	below := voronoi.Site{X: 0, Y: 0}
	assert.Equal(t, 1, voronoi.Relation(upper, lower, below))
	assert.Equal(t, -1, voronoi.Relation(lower, upper, below))
}

func TestRelation_GeneralAgreesWithBreakpointX(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		pi := voronoi.Site{X: rng.Float64()*20 - 10, Y: 5 + rng.Float64()*10}
		pj := voronoi.Site{X: rng.Float64()*20 - 10, Y: 5 + rng.Float64()*10}
		if pi.X == pj.X || pi.Y == pj.Y {
			continue
		}
		yk := rng.Float64() * 4

		x := voronoi.BreakpointX(pi, pj, yk)
		for _, dx := range []float64{-0.5, 0.5} {
			pk := voronoi.Site{X: x + dx, Y: yk}
			assert.Equal(t, sign(dx), voronoi.Relation(pi, pj, pk), "pi=%v pj=%v pk=%v bp=%v", pi, pj, pk, x)
		}
	}
}

func TestBreakpointX_OnBothParabolas(t *testing.T) {
	t.Parallel()

	left := voronoi.Site{X: 0, Y: 1}
	right := voronoi.Site{X: 2, Y: 2}

	x := voronoi.BreakpointX(left, right, 0)
	assert.InDelta(t, -2+math.Sqrt(10), x, 1e-12)
	assert.InDelta(t, voronoi.ParabolaY(left, x, 0), voronoi.ParabolaY(right, x, 0), 1e-9)

	// swapping the sites gives the other intersection
	y := voronoi.BreakpointX(right, left, 0)
	assert.InDelta(t, -2-math.Sqrt(10), y, 1e-12)
}

func TestBreakpointX_Degenerate(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 2.0, voronoi.BreakpointX(voronoi.Site{X: 0, Y: 5}, voronoi.Site{X: 4, Y: 5}, 1), 1e-12)
	assert.Equal(t, 4.0, voronoi.BreakpointX(voronoi.Site{X: 0, Y: 5}, voronoi.Site{X: 4, Y: 1}, 1))
	assert.Equal(t, 0.0, voronoi.BreakpointX(voronoi.Site{X: 0, Y: 1}, voronoi.Site{X: 4, Y: 5}, 1))
}

func TestAboveLeftOf(t *testing.T) {
	t.Parallel()

	a := voronoi.Site{X: 0, Y: 1}
	b := voronoi.Site{X: 1, Y: 0}

	assert.True(t, voronoi.Above(a, b))
	assert.False(t, voronoi.Above(b, a))
	assert.False(t, voronoi.Above(a, a))
	assert.True(t, voronoi.LeftOf(a, b))
	assert.False(t, voronoi.LeftOf(b, a))
}

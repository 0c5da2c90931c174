package voronoi

import "math"

// Arc is one section of the beach line at a given directrix: the arc of Site
// spans x from Left to Right. The outer ends are infinite.
type Arc struct {
	Site  int
	Left  float64
	Right float64
}

// Width returns the horizontal extent of the arc.
func (a Arc) Width() float64 {
	return a.Right - a.Left
}

// Snapshot returns the arcs of the beach line from left to right with their
// breakpoints evaluated at directrix, which must not be above the last
// processed event.
func (s *Sweep) Snapshot(directrix float64) []Arc {
	seq := s.tree.Sequence()
	arcs := make([]Arc, len(seq))
	for i, site := range seq {
		arcs[i] = Arc{Site: site, Left: math.Inf(-1), Right: math.Inf(1)}
	}
	for i := 1; i < len(arcs); i++ {
		x := BreakpointX(s.sites[seq[i-1]], s.sites[seq[i]], directrix)
		arcs[i-1].Right = x
		arcs[i].Left = x
	}
	return arcs
}

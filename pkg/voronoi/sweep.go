package voronoi

import (
	"errors"
	"fmt"
	"math"

	"github.com/caoyingkang/Voronoi-diagram/pkg/logger"
	"go.uber.org/zap"
)

var (
	// ErrInvalidSite is returned for sites with non-finite coordinates.
	ErrInvalidSite = errors.New("invalid site")
	// ErrStaleHandle is returned when a handle no longer refers to an arc.
	ErrStaleHandle = errors.New("stale arc handle")
	// ErrAboveSweep is returned for events above the current sweep line.
	ErrAboveSweep = errors.New("event above the sweep line")
)

// Stats counts what a sweep has processed so far.
type Stats struct {
	Sites          int
	Duplicates     int
	TopLayer       int
	VanishApplied  int
	VanishStale    int
	VanishRejected int
}

// Sweep is one run of the sweep line over a borrowed site slice. It owns its
// event queue and beach line; nothing is shared between sweeps.
type Sweep struct {
	sites  []Site
	tree   *Beachline
	queue  eventQueue
	leafOf map[int]Handle
	sweepY float64
	// the first layer is consumed on the first step
	started bool
	stats   Stats

	Logger *logger.ZapLogger
}

// Validate checks that every site has finite coordinates.
func Validate(sites []Site) error {
	for i, s := range sites {
		if math.IsNaN(s.X) || math.IsNaN(s.Y) || math.IsInf(s.X, 0) || math.IsInf(s.Y, 0) {
			return fmt.Errorf("%w: site %d (%v, %v)", ErrInvalidSite, i, s.X, s.Y)
		}
	}
	return nil
}

// NewSweep queues a site event for every site. Coincident sites are queued
// once; the later copies are logged and skipped.
func NewSweep(sites []Site, log *logger.ZapLogger) (*Sweep, error) {
	if err := Validate(sites); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewNop()
	}

	s := &Sweep{
		sites:  sites,
		tree:   NewBeachline(sites),
		leafOf: make(map[int]Handle, len(sites)),
		sweepY: math.Inf(1),
		Logger: log,
	}

	seen := make(map[Site]int, len(sites))
	for i, site := range sites {
		if first, ok := seen[site]; ok {
			log.Error("[sweep] Duplicate site skipped", zap.Int("site", i), zap.Int("first", first), zap.Any("point", site))
			s.stats.Duplicates++
			continue
		}
		seen[site] = i
		s.queue.push(&Event{Kind: SiteEvent, X: site.X, Y: site.Y, Site: i})
	}

	log.Info("[sweep] Site events queued", zap.Int("sites", s.queue.len()), zap.Int("duplicates", s.stats.Duplicates))
	return s, nil
}

// Beachline returns the beach line of the sweep.
func (s *Sweep) Beachline() *Beachline {
	return s.tree
}

// SweepY returns the height of the last processed event, +Inf before the
// first step.
func (s *Sweep) SweepY() float64 {
	return s.sweepY
}

// Pending returns the number of queued events.
func (s *Sweep) Pending() int {
	return s.queue.len()
}

// Stats returns the counters of the sweep.
func (s *Sweep) Stats() Stats {
	return s.stats
}

// LeafOf returns the arc created when site was inserted. The handle goes
// stale once that arc is removed.
func (s *Sweep) LeafOf(site int) (Handle, bool) {
	h, ok := s.leafOf[site]
	return h, ok
}

// ScheduleVanish queues the removal of arc leaf when the sweep line reaches y.
// The arc must still be live and y must not be above the sweep line.
func (s *Sweep) ScheduleVanish(y float64, leaf Handle) (*Event, error) {
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return nil, fmt.Errorf("%w: vanish height %v", ErrInvalidSite, y)
	}
	if y > s.sweepY {
		return nil, fmt.Errorf("%w: vanish at %v, sweep line at %v", ErrAboveSweep, y, s.sweepY)
	}
	if !s.tree.IsLeaf(leaf) {
		return nil, fmt.Errorf("%w: %v", ErrStaleHandle, leaf)
	}

	site := s.tree.Site(leaf)
	ev := &Event{Kind: VanishEvent, X: s.sites[site].X, Y: y, Site: site, Leaf: leaf}
	s.queue.push(ev)
	s.Logger.Debug("[sweep-vanish] Scheduled", zap.Float64("y", y), zap.Int("site", site), zap.Stringer("leaf", leaf))
	return ev, nil
}

// CancelVanish drops a scheduled vanish event that has not fired yet.
func (s *Sweep) CancelVanish(ev *Event) {
	if ev == nil || ev.Kind != VanishEvent {
		return
	}
	s.queue.remove(ev)
}

// Step processes the next event and reports whether one was processed.
func (s *Sweep) Step() bool {
	if !s.started {
		s.started = true
		if s.queue.len() > 0 {
			s.insertTopLayer()
			return true
		}
	}

	ev := s.queue.pop()
	if ev == nil {
		return false
	}
	s.sweepY = ev.Y

	switch ev.Kind {
	case SiteEvent:
		s.handleSite(ev)
	case VanishEvent:
		s.handleVanish(ev)
	}
	return true
}

// Run processes every queued event.
func (s *Sweep) Run() {
	s.Logger.Info("[sweep] Started")
	for s.Step() {
	}
	s.Logger.Info("[sweep] Finished", zap.Int("arcs", s.tree.Len()), zap.Any("stats", s.stats))
}

// RunUntil processes every event at height y or above.
func (s *Sweep) RunUntil(y float64) {
	s.Logger.Info("[sweep] Started", zap.Float64("until", y))
	for ev := s.queue.peek(); ev != nil && ev.Y >= y; ev = s.queue.peek() {
		s.Step()
	}
	s.Logger.Info("[sweep] Stopped", zap.Float64("sweep_y", s.sweepY), zap.Int("arcs", s.tree.Len()))
}

// insertTopLayer pops every site at the maximum height and builds the first
// layer of the beach line from them.
func (s *Sweep) insertTopLayer() {
	ymax := s.queue.peek().Y
	var ids []int
	for ev := s.queue.peek(); ev != nil && ev.Kind == SiteEvent && ev.Y == ymax; ev = s.queue.peek() {
		s.queue.pop()
		ids = append(ids, ev.Site)
	}

	s.sweepY = ymax
	s.tree.InsertTopmostSites(ids)
	for _, leaf := range s.tree.Leaves() {
		s.leafOf[s.tree.Site(leaf)] = leaf
	}
	s.stats.Sites += len(ids)
	s.stats.TopLayer = len(ids)

	s.Logger.Info("[sweep-top] First layer inserted", zap.Float64("y", ymax), zap.Ints("sites", ids))
}

func (s *Sweep) handleSite(ev *Event) {
	leaf := s.tree.GetLeaf(ev.Site)
	above := s.tree.Site(leaf)
	arc := s.tree.ReplaceLeaf(leaf, ev.Site, false)
	s.leafOf[ev.Site] = arc
	s.stats.Sites++

	s.Logger.Debug("[sweep-site] Arc split",
		zap.Int("site", ev.Site),
		zap.Float64("x", ev.X),
		zap.Float64("y", ev.Y),
		zap.Int("above", above),
	)
}

func (s *Sweep) handleVanish(ev *Event) {
	if !s.tree.IsLeaf(ev.Leaf) {
		s.stats.VanishStale++
		s.Logger.Debug("[sweep-vanish] Stale arc, event discarded", zap.Stringer("leaf", ev.Leaf), zap.Float64("y", ev.Y))
		return
	}

	_, hasPrev := s.tree.PrevLeaf(ev.Leaf)
	_, hasNext := s.tree.NextLeaf(ev.Leaf)
	if !hasPrev || !hasNext {
		s.stats.VanishRejected++
		s.Logger.Error("[sweep-vanish] Arc at the end of the beach line cannot vanish",
			zap.Stringer("leaf", ev.Leaf), zap.Int("site", ev.Site))
		return
	}

	s.tree.RemoveLeaf(ev.Leaf)
	if h, ok := s.leafOf[ev.Site]; ok && h == ev.Leaf {
		delete(s.leafOf, ev.Site)
	}
	s.stats.VanishApplied++
	s.Logger.Debug("[sweep-vanish] Arc removed", zap.Int("site", ev.Site), zap.Float64("y", ev.Y))
}

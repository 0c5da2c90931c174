package voronoi

import (
	"fmt"
)

// EventKind distinguishes sweep events.
type EventKind int

const (
	// SiteEvent fires when the sweep line reaches a site.
	SiteEvent EventKind = iota
	// VanishEvent fires when an arc shrinks to zero width.
	VanishEvent
)

func (k EventKind) String() string {
	switch k {
	case SiteEvent:
		return "site"
	case VanishEvent:
		return "vanish"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is a sweep event. Site events carry the site index; vanish events
// carry a weak handle to the arc that disappears, which may have been removed
// by the time the event is popped.
type Event struct {
	Kind EventKind
	X    float64
	Y    float64
	Site int
	Leaf Handle

	seq  uint64
	node *eventNode
}

// before reports whether a must be processed before b: higher first, and at
// equal height a site event before a vanish event. Equal height and kind are
// ordered by x then site for sites and by scheduling order for vanish events.
func (a *Event) before(b *Event) bool {
	if a.Y != b.Y {
		return a.Y > b.Y
	}
	if a.Kind != b.Kind {
		return a.Kind == SiteEvent
	}
	if a.Kind == SiteEvent {
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Site < b.Site
	}
	return a.seq < b.seq
}

// eventQueue orders pending events and numbers them as they are pushed.
type eventQueue struct {
	tree eventTree
	seq  uint64
}

func (q *eventQueue) len() int {
	return q.tree.size
}

func (q *eventQueue) peek() *Event {
	if q.tree.first == nil {
		return nil
	}
	return q.tree.first.ev
}

func (q *eventQueue) push(ev *Event) {
	if ev.node != nil {
		panic(fmt.Sprintf("event %v at y=%v is already queued", ev.Kind, ev.Y))
	}
	q.seq++
	ev.seq = q.seq
	q.tree.insert(ev)
}

func (q *eventQueue) pop() *Event {
	ev := q.peek()
	if ev != nil {
		q.tree.remove(ev.node)
	}
	return ev
}

// remove drops a queued event; it is a no-op for events not in the queue.
func (q *eventQueue) remove(ev *Event) {
	if ev.node != nil {
		q.tree.remove(ev.node)
	}
}

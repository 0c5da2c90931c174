package voronoi

import (
	"fmt"
	"sort"
)

// Beachline is the balanced arc/breakpoint tree of the sweep.
//
// Leaves are arcs, each carrying one site index. Internal nodes are
// breakpoints carrying the ordered pair (left arc site, right arc site) and
// always have two children. Reading the leaves in order gives the beach line
// from left to right. After every public operation the tree is AVL balanced.
//
// The tree borrows the site slice for its whole lifetime.
type Beachline struct {
	sites []Site
	nodes arena
	root  nodeID
}

// NewBeachline creates an empty beach line over sites.
func NewBeachline(sites []Site) *Beachline {
	return &Beachline{
		sites: sites,
		nodes: newArena(),
	}
}

func (t *Beachline) n(id nodeID) *node {
	return t.nodes.get(id)
}

// IsEmpty reports whether the tree holds no arc.
func (t *Beachline) IsEmpty() bool {
	return t.root == nilNode
}

// Len returns the number of arcs.
func (t *Beachline) Len() int {
	// a full binary tree with k leaves has 2k-1 nodes
	return (t.nodes.used() + 1) / 2
}

// Root returns the root node.
func (t *Beachline) Root() Handle {
	return t.nodes.handle(t.root)
}

// Valid reports whether h still refers to a node of the tree.
func (t *Beachline) Valid(h Handle) bool {
	return t.nodes.valid(h)
}

// IsLeaf reports whether h refers to a live arc.
func (t *Beachline) IsLeaf(h Handle) bool {
	return t.nodes.valid(h) && t.n(h.id).isLeaf()
}

// Site returns the site index of an arc.
func (t *Beachline) Site(h Handle) int {
	return t.n(t.leaf(h)).site
}

// Breakpoint returns the (left, right) site pair of an internal node.
func (t *Beachline) Breakpoint(h Handle) (int, int) {
	id := t.resolve(h)
	nd := t.n(id)
	if nd.isLeaf() {
		panic(fmt.Sprintf("node %v is an arc, not a breakpoint", h))
	}
	return nd.site, nd.site2
}

// Reset drops every node. Handles taken before the call become invalid.
func (t *Beachline) Reset() {
	t.nodes.drop()
	t.root = nilNode
}

func (t *Beachline) resolve(h Handle) nodeID {
	if !t.nodes.valid(h) {
		panic(fmt.Sprintf("stale or foreign beach line handle %v", h))
	}
	return h.id
}

func (t *Beachline) leaf(h Handle) nodeID {
	id := t.resolve(h)
	if !t.n(id).isLeaf() {
		pi, pj := t.n(id).site, t.n(id).site2
		panic(fmt.Sprintf("node %v is breakpoint (%d, %d), not an arc", h, pi, pj))
	}
	return id
}

func (t *Beachline) setRoot(id nodeID) {
	t.root = id
	t.n(id).parent = nilNode
}

// InsertTopmostSites builds the first layer of the beach line from the sites
// sharing the maximum height. It must be called once, on an empty tree.
func (t *Beachline) InsertTopmostSites(ids []int) {
	if len(ids) == 0 {
		panic("InsertTopmostSites: empty site batch")
	}
	if !t.IsEmpty() {
		panic("InsertTopmostSites: beach line already initialized")
	}

	sorted := make([]int, len(ids))
	copy(sorted, ids)
	sort.Sort(sitesByX{ids: sorted, sites: t.sites})

	var l Handle
	for _, idx := range sorted {
		if l.IsZero() {
			t.root = t.nodes.alloc(nilNode, idx, NoSite)
			l = t.nodes.handle(t.root)
			continue
		}
		l = t.ReplaceLeaf(l, idx, true)
	}
}

// descend picks the child of breakpoint p on the side of site idx.
func (t *Beachline) descend(p nodeID, idx int) nodeID {
	nd := t.n(p)
	if Relation(t.sites[nd.site], t.sites[nd.site2], t.sites[idx]) == 1 {
		return nd.right
	}
	return nd.left
}

// GetLeaf returns the arc directly above site idx.
func (t *Beachline) GetLeaf(idx int) Handle {
	if t.IsEmpty() {
		panic("GetLeaf: empty beach line")
	}

	r := t.root
	for !t.n(r).isLeaf() {
		r = t.descend(r, idx)
	}
	return t.nodes.handle(r)
}

// ReplaceLeaf inserts site idx at the arc leaf and returns the new arc.
//
// In the normal mode the arc of site i is split into (i, idx, i) with the
// breakpoints (i, idx) and (idx, i). With topLayer set, which is only valid
// while building the first layer of equal-height sites, the arc becomes
// (i, idx) with the single breakpoint (i, idx).
func (t *Beachline) ReplaceLeaf(leaf Handle, idx int, topLayer bool) Handle {
	id := t.leaf(leaf)
	i := t.n(id).site

	arc := t.split(id, idx)
	if !topLayer {
		t.split(arc, i)
	}
	return t.nodes.handle(arc)
}

// split turns leaf l into breakpoint (l.site, idx) over l and a new arc for
// idx, and returns the new arc. The leaf keeps its id.
func (t *Beachline) split(l nodeID, idx int) nodeID {
	i := t.n(l).site
	parent := t.n(l).parent

	bp := t.nodes.alloc(parent, i, idx)
	arc := t.nodes.alloc(bp, idx, NoSite)

	if parent == nilNode {
		t.root = bp
	} else if t.n(parent).left == l {
		t.n(parent).left = bp
	} else {
		t.n(parent).right = bp
	}

	t.n(bp).left = l
	t.n(bp).right = arc
	t.n(l).parent = bp

	// bp replaced a leaf, so its subtree grew by one level
	if r := t.findUnbalanced(bp); r != nilNode {
		t.rebalanceAfterInsert(r)
	}
	return arc
}

// findUnbalanced walks up from p after the subtree at p grew by one level,
// updating balance factors. It returns the first ancestor whose balance
// factor reached ±2, or nilNode if the growth was absorbed.
func (t *Beachline) findUnbalanced(p nodeID) nodeID {
	r := t.n(p).parent
	for r != nilNode {
		nd := t.n(r)
		if nd.left == p {
			nd.bf--
		} else {
			nd.bf++
		}

		switch nd.bf {
		case 2, -2:
			return r
		case 0:
			return nilNode
		}

		p = r
		r = nd.parent
	}
	return nilNode
}

// RemoveLeaf removes an arc that vanished and merges the two breakpoints
// around it. The arc must have both a previous and a next arc.
func (t *Beachline) RemoveLeaf(leaf Handle) {
	l := t.leaf(leaf)

	p := t.n(l).parent
	if p == nilNode {
		panic(fmt.Sprintf("RemoveLeaf: arc %v is the only arc", leaf))
	}

	// the surviving breakpoint takes over the adjacency of the two neighbours
	var merged, sibling nodeID
	if t.n(p).left == l {
		merged = t.prevBreakpoint(l)
		if merged == nilNode {
			panic(fmt.Sprintf("RemoveLeaf: arc %v has no previous arc", leaf))
		}
		t.n(merged).site2 = t.n(p).site2
		sibling = t.n(p).right
	} else {
		merged = t.nextBreakpoint(l)
		if merged == nilNode {
			panic(fmt.Sprintf("RemoveLeaf: arc %v has no next arc", leaf))
		}
		t.n(merged).site = t.n(p).site
		sibling = t.n(p).left
	}

	// merged is an ancestor of p, so p is never the root
	r := t.n(p).parent
	t.replaceChild(r, p, sibling)
	t.nodes.release(l)
	t.nodes.release(p)
	t.retraceAfterRemove(r, sibling)

	// two arcs of the same site met: they are one arc
	if nd := t.n(merged); nd.site == nd.site2 {
		t.collapse(merged)
	}
}

// collapse removes breakpoint bp between two arcs of the same site together
// with the right one of those arcs.
func (t *Beachline) collapse(bp nodeID) {
	r := t.leftmost(t.n(bp).right)
	q := t.n(r).parent

	if q == bp {
		// r hangs right below bp; the breakpoint after r already starts
		// with the same site
		keep := t.n(bp).left
		g := t.n(bp).parent
		t.replaceChild(g, bp, keep)
		t.nodes.release(r)
		t.nodes.release(bp)
		t.retraceAfterRemove(g, keep)
		return
	}

	// r is the left child of q, the breakpoint after it
	t.n(bp).site2 = t.n(q).site2
	sibling := t.n(q).right
	g := t.n(q).parent
	t.replaceChild(g, q, sibling)
	t.nodes.release(r)
	t.nodes.release(q)
	t.retraceAfterRemove(g, sibling)
}

// retraceAfterRemove walks up from r, whose child c lost one level.
func (t *Beachline) retraceAfterRemove(r, c nodeID) {
	for r != nilNode {
		nd := t.n(r)
		if nd.left == c {
			nd.bf++
		} else {
			nd.bf--
		}

		switch nd.bf {
		case 1, -1:
			// height of r did not change
			return
		case 2, -2:
			r = t.rebalanceAfterRemove(r)
			if t.n(r).bf != 0 {
				return
			}
		}

		c = r
		r = t.n(c).parent
	}
}

// prevBreakpoint returns the breakpoint right before leaf l in order, or
// nilNode if l is the first arc.
func (t *Beachline) prevBreakpoint(l nodeID) nodeID {
	for l != t.root {
		p := t.n(l).parent
		if t.n(p).right == l {
			return p
		}
		l = p
	}
	return nilNode
}

// nextBreakpoint returns the breakpoint right after leaf l in order, or
// nilNode if l is the last arc.
func (t *Beachline) nextBreakpoint(l nodeID) nodeID {
	for l != t.root {
		p := t.n(l).parent
		if t.n(p).left == l {
			return p
		}
		l = p
	}
	return nilNode
}

func (t *Beachline) rightmost(id nodeID) nodeID {
	for !t.n(id).isLeaf() {
		id = t.n(id).right
	}
	return id
}

func (t *Beachline) leftmost(id nodeID) nodeID {
	for !t.n(id).isLeaf() {
		id = t.n(id).left
	}
	return id
}

// PrevLeaf returns the arc left of leaf. ok is false for the first arc.
func (t *Beachline) PrevLeaf(leaf Handle) (Handle, bool) {
	bp := t.prevBreakpoint(t.leaf(leaf))
	if bp == nilNode {
		return NoHandle, false
	}
	return t.nodes.handle(t.rightmost(t.n(bp).left)), true
}

// NextLeaf returns the arc right of leaf. ok is false for the last arc.
func (t *Beachline) NextLeaf(leaf Handle) (Handle, bool) {
	bp := t.nextBreakpoint(t.leaf(leaf))
	if bp == nilNode {
		return NoHandle, false
	}
	return t.nodes.handle(t.leftmost(t.n(bp).right)), true
}

// FirstLeaf returns the leftmost arc.
func (t *Beachline) FirstLeaf() (Handle, bool) {
	if t.IsEmpty() {
		return NoHandle, false
	}
	return t.nodes.handle(t.leftmost(t.root)), true
}

package voronoi

import "fmt"

// nodeID indexes the arena; 0 is reserved as "no node".
type nodeID uint32

const nilNode nodeID = 0

// Handle is a weak reference to a beach line node. It stays comparable after
// the node is removed, and Beachline.Valid reports whether it still refers to
// a live node.
type Handle struct {
	id  nodeID
	gen uint32
}

// NoHandle never refers to a node.
var NoHandle = Handle{}

// IsZero reports whether h is NoHandle.
func (h Handle) IsZero() bool {
	return h.id == nilNode
}

func (h Handle) String() string {
	if h.IsZero() {
		return "<none>"
	}
	return fmt.Sprintf("#%d.%d", h.id, h.gen)
}

// node is either an arc (leaf) or a breakpoint (internal).
// For a breakpoint, site is the left arc and site2 the right arc.
type node struct {
	site   int
	site2  int
	bf     int8
	left   nodeID
	right  nodeID
	parent nodeID
	gen    uint32
	live   bool
}

func (n *node) isLeaf() bool {
	return n.left == nilNode && n.right == nilNode
}

// arena owns every node of a tree. Freed slots are reused in LIFO order with
// a bumped generation so that stale handles never validate.
type arena struct {
	storage []node
	free    []nodeID
}

func newArena() arena {
	// slot 0 is reserved
	return arena{storage: make([]node, 1, 16)}
}

func (a *arena) alloc(parent nodeID, site, site2 int) nodeID {
	var id nodeID
	if n := len(a.free); n > 0 {
		id = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.storage = append(a.storage, node{})
		id = nodeID(len(a.storage) - 1)
	}

	nd := &a.storage[id]
	gen := nd.gen
	*nd = node{
		site:   site,
		site2:  site2,
		parent: parent,
		gen:    gen,
		live:   true,
	}
	return id
}

func (a *arena) release(id nodeID) {
	nd := &a.storage[id]
	if !nd.live {
		panic(fmt.Sprintf("double release of node %d", id))
	}
	nd.live = false
	nd.gen++
	nd.left, nd.right, nd.parent = nilNode, nilNode, nilNode
	a.free = append(a.free, id)
}

func (a *arena) get(id nodeID) *node {
	return &a.storage[id]
}

func (a *arena) handle(id nodeID) Handle {
	if id == nilNode {
		return NoHandle
	}
	return Handle{id: id, gen: a.storage[id].gen}
}

func (a *arena) valid(h Handle) bool {
	if h.id == nilNode || int(h.id) >= len(a.storage) {
		return false
	}
	nd := &a.storage[h.id]
	return nd.live && nd.gen == h.gen
}

// used returns the number of live nodes.
func (a *arena) used() int {
	return len(a.storage) - 1 - len(a.free)
}

// drop releases every node at once. Generations survive so that handles
// taken before the drop stay invalid.
func (a *arena) drop() {
	for i := 1; i < len(a.storage); i++ {
		nd := &a.storage[i]
		if nd.live {
			nd.live = false
			nd.gen++
		}
	}
	a.free = a.free[:0]
	for i := len(a.storage) - 1; i >= 1; i-- {
		a.free = append(a.free, nodeID(i))
	}
}

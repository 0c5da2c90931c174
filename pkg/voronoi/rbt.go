package voronoi

// eventTree is a red-black tree of queued events in processing order. Nodes
// are threaded with prev/next links and the first node is kept at hand, so
// the queue never searches for its head.
type eventTree struct {
	root  *eventNode
	first *eventNode
	size  int
}

type eventNode struct {
	ev     *Event
	left   *eventNode
	right  *eventNode
	parent *eventNode
	prev   *eventNode
	next   *eventNode
	red    bool
}

func isRed(n *eventNode) bool {
	return n != nil && n.red
}

func leftmostEvent(n *eventNode) *eventNode {
	for n.left != nil {
		n = n.left
	}
	return n
}

// insert places ev after every queued event it does not come before.
func (t *eventTree) insert(ev *Event) *eventNode {
	n := &eventNode{ev: ev, red: true}
	ev.node = n

	var parent *eventNode
	toLeft := false
	for cur := t.root; cur != nil; {
		parent = cur
		toLeft = ev.before(cur.ev)
		if toLeft {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}

	n.parent = parent
	switch {
	case parent == nil:
		t.root = n
	case toLeft:
		parent.left = n
		n.prev, n.next = parent.prev, parent
	default:
		parent.right = n
		n.prev, n.next = parent, parent.next
	}
	if n.prev != nil {
		n.prev.next = n
	} else {
		t.first = n
	}
	if n.next != nil {
		n.next.prev = n
	}

	t.size++
	t.insertFixup(n)
	return n
}

func (t *eventTree) insertFixup(n *eventNode) {
	for isRed(n.parent) {
		// a red parent is never the root
		p := n.parent
		g := p.parent
		if p == g.left {
			if u := g.right; isRed(u) {
				p.red, u.red, g.red = false, false, true
				n = g
				continue
			}
			if n == p.right {
				t.rotateLeft(p)
				n, p = p, n
			}
			p.red, g.red = false, true
			t.rotateRight(g)
		} else {
			if u := g.left; isRed(u) {
				p.red, u.red, g.red = false, false, true
				n = g
				continue
			}
			if n == p.left {
				t.rotateRight(p)
				n, p = p, n
			}
			p.red, g.red = false, true
			t.rotateLeft(g)
		}
	}
	t.root.red = false
}

// remove unlinks n from the tree and the thread and detaches it from its
// event.
func (t *eventTree) remove(n *eventNode) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		t.first = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	n.prev, n.next = nil, nil
	n.ev.node = nil
	t.size--

	var x, xParent *eventNode
	blackRemoved := !n.red
	switch {
	case n.left == nil:
		x, xParent = n.right, n.parent
		t.transplant(n, n.right)
	case n.right == nil:
		x, xParent = n.left, n.parent
		t.transplant(n, n.left)
	default:
		// the in-order successor takes the place of n
		y := leftmostEvent(n.right)
		blackRemoved = !y.red
		x = y.right
		if y.parent == n {
			xParent = y
		} else {
			xParent = y.parent
			t.transplant(y, y.right)
			y.right = n.right
			y.right.parent = y
		}
		t.transplant(n, y)
		y.left = n.left
		y.left.parent = y
		y.red = n.red
	}
	n.left, n.right, n.parent = nil, nil, nil

	if blackRemoved {
		t.removeFixup(x, xParent)
	}
}

// removeFixup restores the black height on the side of x, which may be nil;
// parent is the parent of x.
func (t *eventTree) removeFixup(x, parent *eventNode) {
	for x != t.root && !isRed(x) {
		if x == parent.left {
			w := parent.right
			if w.red {
				w.red, parent.red = false, true
				t.rotateLeft(parent)
				w = parent.right
			}
			if !isRed(w.left) && !isRed(w.right) {
				w.red = true
				x, parent = parent, parent.parent
				continue
			}
			if !isRed(w.right) {
				w.left.red, w.red = false, true
				t.rotateRight(w)
				w = parent.right
			}
			w.red, parent.red = parent.red, false
			w.right.red = false
			t.rotateLeft(parent)
		} else {
			w := parent.left
			if w.red {
				w.red, parent.red = false, true
				t.rotateRight(parent)
				w = parent.left
			}
			if !isRed(w.left) && !isRed(w.right) {
				w.red = true
				x, parent = parent, parent.parent
				continue
			}
			if !isRed(w.left) {
				w.right.red, w.red = false, true
				t.rotateLeft(w)
				w = parent.left
			}
			w.red, parent.red = parent.red, false
			w.left.red = false
			t.rotateRight(parent)
		}
		x = t.root
	}
	if x != nil {
		x.red = false
	}
}

// transplant puts v where u hangs.
func (t *eventTree) transplant(u, v *eventNode) {
	switch {
	case u.parent == nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

func (t *eventTree) rotateLeft(p *eventNode) {
	q := p.right
	p.right = q.left
	if q.left != nil {
		q.left.parent = p
	}
	t.transplant(p, q)
	q.left = p
	p.parent = q
}

func (t *eventTree) rotateRight(p *eventNode) {
	q := p.left
	p.left = q.right
	if q.right != nil {
		q.right.parent = p
	}
	t.transplant(p, q)
	q.right = p
	p.parent = q
}

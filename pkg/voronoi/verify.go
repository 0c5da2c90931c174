package voronoi

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnbalanced is returned by Verify when a balance factor is out of
	// range or disagrees with the subtree heights.
	ErrUnbalanced = errors.New("beach line is not balanced")
	// ErrBrokenLink is returned by Verify for inconsistent parent/child links.
	ErrBrokenLink = errors.New("beach line has a broken link")
	// ErrBreakpointMismatch is returned by Verify when a breakpoint does not
	// name the arcs on both of its sides.
	ErrBreakpointMismatch = errors.New("beach line breakpoint does not match its arcs")
)

// Leaves returns the arcs from left to right.
func (t *Beachline) Leaves() []Handle {
	var leaves []Handle
	t.inorder(func(id nodeID) {
		if t.n(id).isLeaf() {
			leaves = append(leaves, t.nodes.handle(id))
		}
	})
	return leaves
}

// Sequence returns the site indices of the arcs from left to right.
func (t *Beachline) Sequence() []int {
	var seq []int
	t.inorder(func(id nodeID) {
		if nd := t.n(id); nd.isLeaf() {
			seq = append(seq, nd.site)
		}
	})
	return seq
}

// inorder visits every node in order using an explicit stack.
func (t *Beachline) inorder(visit func(id nodeID)) {
	var stack []nodeID
	cur := t.root
	for cur != nilNode || len(stack) > 0 {
		for cur != nilNode {
			stack = append(stack, cur)
			cur = t.n(cur).left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(cur)
		cur = t.n(cur).right
	}
}

// Height returns the number of edges on the longest root to leaf path, or
// -1 for an empty tree.
func (t *Beachline) Height() int {
	if t.IsEmpty() {
		return -1
	}
	heights := t.heights()
	return heights[t.root]
}

// heights computes subtree heights bottom-up, children before parents.
func (t *Beachline) heights() map[nodeID]int {
	heights := make(map[nodeID]int)
	type frame struct {
		id       nodeID
		expanded bool
	}
	stack := []frame{{id: t.root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nd := t.n(f.id)
		if nd.isLeaf() {
			heights[f.id] = 0
			continue
		}
		if !f.expanded {
			stack = append(stack, frame{id: f.id, expanded: true}, frame{id: nd.left}, frame{id: nd.right})
			continue
		}
		heights[f.id] = 1 + max(heights[nd.left], heights[nd.right])
	}
	return heights
}

// Verify checks the structural invariants of the tree: links, two children
// per breakpoint, AVL balance factors and breakpoint pairs matching the
// adjacent arcs.
func (t *Beachline) Verify() error {
	if t.IsEmpty() {
		return nil
	}
	if p := t.n(t.root).parent; p != nilNode {
		return fmt.Errorf("%w: root %d has parent %d", ErrBrokenLink, t.root, p)
	}

	var (
		err  error
		prev nodeID
	)
	t.inorder(func(id nodeID) {
		if err != nil {
			return
		}
		nd := t.n(id)
		if !nd.live {
			err = fmt.Errorf("%w: node %d is released", ErrBrokenLink, id)
			return
		}
		if (nd.left == nilNode) != (nd.right == nilNode) {
			err = fmt.Errorf("%w: breakpoint %d has a single child", ErrBrokenLink, id)
			return
		}
		if nd.isLeaf() {
			if nd.site2 != NoSite {
				err = fmt.Errorf("%w: arc %d carries a second site", ErrBrokenLink, id)
				return
			}
		} else if t.n(nd.left).parent != id || t.n(nd.right).parent != id {
			err = fmt.Errorf("%w: children of %d do not point back", ErrBrokenLink, id)
			return
		}

		// in order, arcs and breakpoints alternate
		if prev != nilNode {
			a, b := t.n(prev), nd
			switch {
			case a.isLeaf() == b.isLeaf():
				err = fmt.Errorf("%w: nodes %d and %d do not alternate", ErrBrokenLink, prev, id)
			case a.isLeaf() && a.site != b.site:
				err = fmt.Errorf("%w: breakpoint %d (%d, %d) follows arc of %d",
					ErrBreakpointMismatch, id, b.site, b.site2, a.site)
			case b.isLeaf() && a.site2 != b.site:
				err = fmt.Errorf("%w: arc of %d follows breakpoint %d (%d, %d)",
					ErrBreakpointMismatch, b.site, prev, a.site, a.site2)
			}
		}
		prev = id
	})
	if err != nil {
		return err
	}

	heights := t.heights()
	for id, h := range heights {
		nd := t.n(id)
		if nd.isLeaf() {
			if nd.bf != 0 {
				return fmt.Errorf("%w: arc %d has balance factor %d", ErrUnbalanced, id, nd.bf)
			}
			continue
		}
		want := heights[nd.right] - heights[nd.left]
		if want < -1 || want > 1 {
			return fmt.Errorf("%w: node %d has height difference %d", ErrUnbalanced, id, want)
		}
		if int(nd.bf) != want {
			return fmt.Errorf("%w: node %d has balance factor %d, heights say %d (height %d)",
				ErrUnbalanced, id, nd.bf, want, h)
		}
	}

	if got, want := len(heights), t.nodes.used(); got != want {
		return fmt.Errorf("%w: %d nodes reachable, %d allocated", ErrBrokenLink, got, want)
	}
	return nil
}

// String dumps the tree in order, arcs as [i] and breakpoints as <i,j>.
func (t *Beachline) String() string {
	if t.IsEmpty() {
		return "()"
	}
	var sb strings.Builder
	t.inorder(func(id nodeID) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		nd := t.n(id)
		if nd.isLeaf() {
			fmt.Fprintf(&sb, "[%d]", nd.site)
		} else {
			fmt.Fprintf(&sb, "<%d,%d>", nd.site, nd.site2)
		}
	})
	return sb.String()
}

package voronoi

// Balance factors are height(right) - height(left).

// replaceChild links q where p used to hang below parent, or makes q the root.
func (t *Beachline) replaceChild(parent, p, q nodeID) {
	if parent == nilNode {
		t.setRoot(q)
		return
	}
	if t.n(parent).left == p {
		t.n(parent).left = q
	} else {
		t.n(parent).right = q
	}
	t.n(q).parent = parent
}

// rotateLeft lifts the right child of r and returns it.
func (t *Beachline) rotateLeft(r nodeID) nodeID {
	parent := t.n(r).parent
	q := t.n(r).right

	t.n(r).right = t.n(q).left
	t.n(t.n(q).left).parent = r
	t.n(q).left = r
	t.n(r).parent = q

	t.replaceChild(parent, r, q)
	return q
}

// rotateRight lifts the left child of r and returns it.
func (t *Beachline) rotateRight(r nodeID) nodeID {
	parent := t.n(r).parent
	q := t.n(r).left

	t.n(r).left = t.n(q).right
	t.n(t.n(q).right).parent = r
	t.n(q).right = r
	t.n(r).parent = q

	t.replaceChild(parent, r, q)
	return q
}

// rotateRightLeft lifts the left child of the right child of r.
func (t *Beachline) rotateRightLeft(r nodeID) nodeID {
	t.rotateRight(t.n(r).right)
	return t.rotateLeft(r)
}

// rotateLeftRight lifts the right child of the left child of r.
func (t *Beachline) rotateLeftRight(r nodeID) nodeID {
	t.rotateLeft(t.n(r).left)
	return t.rotateRight(r)
}

// settleDouble fixes balance factors after a double rotation lifted q.
func (t *Beachline) settleDouble(q nodeID) {
	nd := t.n(q)
	left, right := t.n(nd.left), t.n(nd.right)
	left.bf, right.bf = 0, 0
	switch nd.bf {
	case 1:
		left.bf = -1
	case -1:
		right.bf = 1
	}
	nd.bf = 0
}

// rebalanceAfterInsert rotates the subtree at r, whose balance factor is ±2
// after a subtree grew. The rotated subtree gets back its height from before
// the insertion, so nothing above needs updating.
func (t *Beachline) rebalanceAfterInsert(r nodeID) nodeID {
	if t.n(r).bf == 2 {
		if t.n(t.n(r).right).bf == 1 {
			q := t.rotateLeft(r)
			t.n(q).bf = 0
			t.n(r).bf = 0
			return q
		}
		q := t.rotateRightLeft(r)
		t.settleDouble(q)
		return q
	}

	if t.n(t.n(r).left).bf == -1 {
		q := t.rotateRight(r)
		t.n(q).bf = 0
		t.n(r).bf = 0
		return q
	}
	q := t.rotateLeftRight(r)
	t.settleDouble(q)
	return q
}

// rebalanceAfterRemove rotates the subtree at r, whose balance factor is ±2
// after a subtree shrank, and returns the new subtree root. A non-zero
// balance factor on the returned node means the subtree height is unchanged.
func (t *Beachline) rebalanceAfterRemove(r nodeID) nodeID {
	if t.n(r).bf == 2 {
		switch t.n(t.n(r).right).bf {
		case 0:
			q := t.rotateLeft(r)
			t.n(q).bf = -1
			t.n(r).bf = 1
			return q
		case 1:
			q := t.rotateLeft(r)
			t.n(q).bf = 0
			t.n(r).bf = 0
			return q
		default:
			q := t.rotateRightLeft(r)
			t.settleDouble(q)
			return q
		}
	}

	switch t.n(t.n(r).left).bf {
	case 0:
		q := t.rotateRight(r)
		t.n(q).bf = 1
		t.n(r).bf = -1
		return q
	case -1:
		q := t.rotateRight(r)
		t.n(q).bf = 0
		t.n(r).bf = 0
		return q
	default:
		q := t.rotateLeftRight(r)
		t.settleDouble(q)
		return q
	}
}

package avl

// Balancing is expressed in terms of rank differences between a node and one
// of its children. A node is out of balance once its rank exceeds the rank of
// one child by 3 or more, i.e. its subtrees' heights differ by 2.

// rightUnbalanced: right subtree too high. Implies n.right != nil.
func (n *node[V]) rightUnbalanced() bool {
	return n.rank-rankOf(n.left) >= 3
}

// rightOriented: right subtree higher by exactly one. Implies n.right != nil.
func (n *node[V]) rightOriented() bool {
	return n.rank-rankOf(n.left) == 2
}

// leftUnbalanced: left subtree too high. Implies n.left != nil.
func (n *node[V]) leftUnbalanced() bool {
	return n.rank-rankOf(n.right) >= 3
}

// leftOriented: left subtree higher by exactly one. Implies n.left != nil.
func (n *node[V]) leftOriented() bool {
	return n.rank-rankOf(n.right) == 2
}

// isBalanced reports whether the subtree rooted at n satisfies the AVL
// condition at every node.
func (n *node[V]) isBalanced() bool {
	if n == nil {
		return true
	}
	return !n.rightUnbalanced() && !n.leftUnbalanced() &&
		n.left.isBalanced() && n.right.isBalanced()
}

// rotateLeft lifts the right child of n. n must be owned by mc.
func (n *node[V]) rotateLeft(mc *mutation[V]) *node[V] {
	assert(n.right != nil, "rotateLeft called without right child")
	r := n.right.owned(mc)
	n.right = r.left
	n.update(mc)
	r.left = n
	r.update(mc)
	return r
}

// rotateRight lifts the left child of n. n must be owned by mc.
func (n *node[V]) rotateRight(mc *mutation[V]) *node[V] {
	assert(n.left != nil, "rotateRight called without left child")
	l := n.left.owned(mc)
	n.left = l.right
	n.update(mc)
	l.right = n
	l.update(mc)
	return l
}

// balance restores the AVL condition at n, which must be owned by mc and
// whose children must be balanced. It returns the new root of the subtree.
//
// If the heavier child leans towards n, it is rotated away first (double
// rotation).
func (n *node[V]) balance(mc *mutation[V]) *node[V] {
	switch {
	case n.rightUnbalanced():
		if n.right.leftOriented() {
			n.right = n.right.owned(mc).rotateRight(mc)
		}
		return n.rotateLeft(mc)
	case n.leftUnbalanced():
		if n.left.rightOriented() {
			n.left = n.left.owned(mc).rotateLeft(mc)
		}
		return n.rotateRight(mc)
	}
	return n
}

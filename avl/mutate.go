package avl

// insert returns the subtree with v inserted at index. Indices beyond the
// subtree's count append v.
func (n *node[V]) insert(mc *mutation[V], index int, v V) *node[V] {
	at := n.index()
	self := n.owned(mc)
	if index <= at {
		if n.left != nil {
			self.left = n.left.insert(mc, index, v)
		} else {
			self.left = mc.leaf(v)
		}
	} else {
		if n.right != nil {
			self.right = n.right.insert(mc, index-at-1, v)
		} else {
			self.right = mc.leaf(v)
		}
	}
	self.update(mc)
	return self.balance(mc)
}

// replace returns the subtree with the value at index replaced by v.
// The structure does not change, so no rebalancing is needed. An index
// outside of the subtree leaves it untouched.
func (n *node[V]) replace(mc *mutation[V], index int, v V) *node[V] {
	at := n.index()
	var self *node[V]
	switch {
	case index < at:
		self = n.owned(mc)
		self.left = n.left.replace(mc, index, v)
	case index > at:
		if n.right == nil {
			return n
		}
		self = n.owned(mc)
		self.right = n.right.replace(mc, index-at-1, v)
	default:
		self = n.owned(mc)
		self.value = v
	}
	self.update(mc)
	return self
}

// delete returns the subtree without the value at index, or nil if the
// subtree becomes empty. An index outside of the subtree leaves it untouched.
func (n *node[V]) delete(mc *mutation[V], index int) *node[V] {
	at := n.index()
	switch {
	case index < at:
		self := n.owned(mc)
		self.left = n.left.delete(mc, index)
		self.update(mc)
		return self.balance(mc)
	case index > at:
		if n.right == nil {
			return n
		}
		self := n.owned(mc)
		self.right = n.right.delete(mc, index-at-1)
		self.update(mc)
		return self.balance(mc)
	}
	return n.deleteCurrent(mc)
}

// deleteCurrent removes n's own value. With two children, the in-order
// successor's value moves into n and is deleted from the right subtree.
func (n *node[V]) deleteCurrent(mc *mutation[V]) *node[V] {
	if n.left == nil {
		return n.right
	}
	if n.right == nil {
		return n.left
	}
	self := n.owned(mc)
	self.value = leftmost(n.right)
	self.right = n.right.deleteLeftmost(mc)
	self.update(mc)
	return self.balance(mc)
}

// deleteLeftmost removes the first value of the subtree.
func (n *node[V]) deleteLeftmost(mc *mutation[V]) *node[V] {
	if n.left == nil {
		return n.right
	}
	self := n.owned(mc)
	self.left = n.left.deleteLeftmost(mc)
	self.update(mc)
	return self.balance(mc)
}

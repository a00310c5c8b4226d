package btree

import "slices"

// insert returns the subtree with v inserted at index, 0 <= index <= count.
// The returned node may hold MaxVals+1 values; the caller has to split it.
func (n *node[V]) insert(mc *mutation[V], index int, v V) *node[V] {
	self := n.owned(mc)
	if self.isLeaf() {
		self.values = slices.Insert(self.values, index, v)
		self.count++
		self.summary += mc.weight(v)
		return self
	}
	i := 0
	for ; i < len(self.children)-1; i++ {
		if index <= self.children[i].count {
			break
		}
		index -= self.children[i].count + 1
	}
	child := self.children[i].insert(mc, index, v)
	self.children[i] = child
	if len(child.values) > mc.maxVals {
		self.splitChild(mc, i)
	}
	self.refresh(mc)
	return self
}

// splitChild splits the overflowing child i. The middle value moves up into
// n as a separator, the values right of it move to a new sibling.
// Both n and children[i] have to be owned by the mutation.
func (n *node[V]) splitChild(mc *mutation[V], i int) {
	child := n.children[i]
	assert(child.version == mc.version, "btree: split of a shared node")
	mid := (len(child.values)+1)/2 - 1
	sibling := &node[V]{
		values:  slices.Clone(child.values[mid+1:]),
		version: mc.version,
	}
	separator := child.values[mid]
	clear(child.values[mid:])
	child.values = child.values[:mid]
	if !child.isLeaf() {
		sibling.children = slices.Clone(child.children[mid+1:])
		clear(child.children[mid+1:])
		child.children = child.children[:mid+1]
	}
	child.refresh(mc)
	sibling.refresh(mc)
	n.values = slices.Insert(n.values, i, separator)
	n.children = slices.Insert(n.children, i+1, sibling)
}

// replace returns the subtree with the value at index replaced by v,
// 0 <= index < count. The structure does not change.
func (n *node[V]) replace(mc *mutation[V], index int, v V) *node[V] {
	self := n.owned(mc)
	if self.isLeaf() {
		self.summary += mc.weight(v) - mc.weight(self.values[index])
		self.values[index] = v
		return self
	}
	i, local, at := self.route(index)
	if at {
		self.values[i] = v
	} else {
		self.children[i] = self.children[i].replace(mc, local, v)
	}
	self.refresh(mc)
	return self
}

// delete returns the subtree without the value at index, 0 <= index < count.
// The returned node may hold fewer than MinVals values; the caller has to
// rebalance it.
func (n *node[V]) delete(mc *mutation[V], index int) *node[V] {
	self := n.owned(mc)
	if self.isLeaf() {
		self.summary -= mc.weight(self.values[index])
		self.count--
		self.values = slices.Delete(self.values, index, index+1)
		return self
	}
	i, local, at := self.route(index)
	child := self.children[i]
	if at {
		// the predecessor takes the separator's place
		self.values[i] = rightmost(child)
		local = child.count - 1
	}
	self.children[i] = child.delete(mc, local)
	if len(self.children[i].values) < mc.minVals {
		self.rebalance(mc, i)
	}
	self.refresh(mc)
	return self
}

// rebalance repairs the underflowing child i, borrowing from a sibling with
// spare values if possible and merging with a sibling otherwise.
func (n *node[V]) rebalance(mc *mutation[V], i int) {
	switch {
	case i > 0 && len(n.children[i-1].values) > mc.minVals:
		n.rotateRight(mc, i-1)
	case i+1 < len(n.children) && len(n.children[i+1].values) > mc.minVals:
		n.rotateLeft(mc, i)
	default:
		n.merge(mc, min(i, len(n.values)-1))
	}
}

// rotateRight moves the last value (and subtree) of children[s] across the
// separator s into children[s+1].
func (n *node[V]) rotateRight(mc *mutation[V], s int) {
	left, right := n.children[s].owned(mc), n.children[s+1].owned(mc)
	last := len(left.values) - 1
	right.values = slices.Insert(right.values, 0, n.values[s])
	n.values[s] = left.values[last]
	left.values = slices.Delete(left.values, last, last+1)
	if !left.isLeaf() {
		lc := len(left.children) - 1
		right.children = slices.Insert(right.children, 0, left.children[lc])
		left.children = slices.Delete(left.children, lc, lc+1)
	}
	left.refresh(mc)
	right.refresh(mc)
	n.children[s], n.children[s+1] = left, right
}

// rotateLeft moves the first value (and subtree) of children[s+1] across the
// separator s into children[s].
func (n *node[V]) rotateLeft(mc *mutation[V], s int) {
	left, right := n.children[s].owned(mc), n.children[s+1].owned(mc)
	left.values = append(left.values, n.values[s])
	n.values[s] = right.values[0]
	right.values = slices.Delete(right.values, 0, 1)
	if !right.isLeaf() {
		left.children = append(left.children, right.children[0])
		right.children = slices.Delete(right.children, 0, 1)
	}
	left.refresh(mc)
	right.refresh(mc)
	n.children[s], n.children[s+1] = left, right
}

// merge joins children[s], the separator s and children[s+1] into a single
// node, which replaces both children.
func (n *node[V]) merge(mc *mutation[V], s int) {
	left, right := n.children[s].owned(mc), n.children[s+1]
	left.values = append(left.values, n.values[s])
	left.values = append(left.values, right.values...)
	if !left.isLeaf() {
		left.children = append(left.children, right.children...)
	}
	left.refresh(mc)
	n.values = slices.Delete(n.values, s, s+1)
	n.children = slices.Delete(n.children, s+1, s+2)
	n.children[s] = left
}

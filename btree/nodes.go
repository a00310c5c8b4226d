package btree

import (
	"slices"

	"github.com/npillmayer/plist/seq"
)

// node is a B-tree node. Leaves have children == nil, inner nodes have
// exactly one child more than values. The separator values[i] sits between
// the subtrees children[i] and children[i+1].
type node[V any] struct {
	values   []V
	children []*node[V]
	version  seq.Version
	count    int // number of values in this subtree
	summary  int // sum of the weights of all values in this subtree
}

func (n *node[V]) isLeaf() bool {
	return n.children == nil
}

func countOf[V any](n *node[V]) int {
	if n == nil {
		return 0
	}
	return n.count
}

func summaryOf[V any](n *node[V]) int {
	if n == nil {
		return 0
	}
	return n.summary
}

// mutation carries the context of a single edit down the recursion: the
// version which may change nodes in place, the weight of values and the
// occupancy bounds.
type mutation[V any] struct {
	version seq.Version
	weight  seq.Weigher[V]
	maxVals int
	minVals int
}

// leaf creates a leaf holding vs. The leaf takes ownership of vs.
func (mc *mutation[V]) leaf(vs ...V) *node[V] {
	n := &node[V]{values: vs, version: mc.version}
	n.refresh(mc)
	return n
}

// refresh recomputes count and summary from the node's values and direct
// children. It has to be called whenever values or children change.
func (n *node[V]) refresh(mc *mutation[V]) {
	n.count, n.summary = len(n.values), 0
	for _, v := range n.values {
		n.summary += mc.weight(v)
	}
	for _, c := range n.children {
		n.count += c.count
		n.summary += c.summary
	}
}

// owned returns n itself if it belongs to the mutation's version, or a clone
// stamped with that version. The clone has its own value and child slices,
// but shares the children themselves.
func (n *node[V]) owned(mc *mutation[V]) *node[V] {
	if n.version == mc.version {
		return n
	}
	clone := &node[V]{
		values:   slices.Clone(n.values),
		children: slices.Clone(n.children),
		version:  mc.version,
		count:    n.count,
		summary:  n.summary,
	}
	return clone
}

// route finds the child of an inner node which holds position index.
// If index addresses a separator, at is true and i is the separator's index.
// Otherwise local is the position within children[i].
func (n *node[V]) route(index int) (i int, local int, at bool) {
	for i, c := range n.children {
		switch {
		case index < c.count:
			return i, index, false
		case index == c.count && i < len(n.values):
			return i, 0, true
		}
		index -= c.count + 1
	}
	assert(false, "btree: index routing ran off the node")
	return 0, 0, false
}

// rightmost returns the last value of the subtree.
func rightmost[V any](n *node[V]) V {
	for !n.isLeaf() {
		n = n.children[len(n.children)-1]
	}
	return n.values[len(n.values)-1]
}

// reduce folds f over the values of the subtree in order.
func reduce[V, U any](n *node[V], f func(U, V) U, acc U) U {
	if n == nil {
		return acc
	}
	if n.isLeaf() {
		for _, v := range n.values {
			acc = f(acc, v)
		}
		return acc
	}
	for i, v := range n.values {
		acc = f(reduce(n.children[i], f, acc), v)
	}
	return reduce(n.children[len(n.children)-1], f, acc)
}

// each visits the values of the subtree in order, stopping early when
// yield returns false.
func (n *node[V]) each(yield func(V) bool) bool {
	if n == nil {
		return true
	}
	for i, v := range n.values {
		if !n.isLeaf() && !n.children[i].each(yield) {
			return false
		}
		if !yield(v) {
			return false
		}
	}
	return n.isLeaf() || n.children[len(n.children)-1].each(yield)
}

// height is the number of levels of the subtree, 1 for a leaf.
func (n *node[V]) height() int {
	if n == nil {
		return 0
	}
	h := 1
	for ; !n.isLeaf(); h++ {
		n = n.children[0]
	}
	return h
}

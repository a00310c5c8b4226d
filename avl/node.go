package avl

import "github.com/npillmayer/plist/seq"

// node is a node of an AVL tree.
//
// A node is partially persistent: once its version is superseded it must not
// be changed anymore.
type node[V any] struct {
	left    *node[V]
	right   *node[V]
	value   V
	version seq.Version
	count   int // number of values in this subtree
	rank    int // 1 + max(rank(left), rank(right))
	summary int // sum of the weights of all values in this subtree
}

// mutation carries the context of a single edit down the recursion: the
// version which may change nodes in place and the weight of values.
type mutation[V any] struct {
	version seq.Version
	weight  seq.Weigher[V]
}

func countOf[V any](n *node[V]) int {
	if n == nil {
		return 0
	}
	return n.count
}

func rankOf[V any](n *node[V]) int {
	if n == nil {
		return 0
	}
	return n.rank
}

func summaryOf[V any](n *node[V]) int {
	if n == nil {
		return 0
	}
	return n.summary
}

// leaf creates a childless node for v.
func (mc *mutation[V]) leaf(v V) *node[V] {
	return &node[V]{
		value:   v,
		version: mc.version,
		count:   1,
		rank:    1,
		summary: mc.weight(v),
	}
}

// update recomputes count, rank and summary from the direct children.
// It has to be called whenever the value or a child changes.
func (n *node[V]) update(mc *mutation[V]) {
	n.count = countOf(n.left) + 1 + countOf(n.right)
	n.rank = 1 + max(rankOf(n.left), rankOf(n.right))
	n.summary = summaryOf(n.left) + mc.weight(n.value) + summaryOf(n.right)
}

// owned returns n itself if it belongs to the mutation's version, or a shallow
// clone stamped with that version. The clone shares n's children.
func (n *node[V]) owned(mc *mutation[V]) *node[V] {
	if n.version == mc.version {
		return n
	}
	clone := *n
	clone.version = mc.version
	return &clone
}

// index is the position of n's value within n's subtree.
func (n *node[V]) index() int {
	return countOf(n.left)
}

func leftmost[V any](n *node[V]) V {
	for n.left != nil {
		n = n.left
	}
	return n.value
}

// build creates a perfectly balanced tree of size values, drawn in order
// from next. It runs in O(size) without any rotations.
func build[V any](mc *mutation[V], size int, next func() V) *node[V] {
	if size <= 0 {
		return nil
	}
	lsize := size >> 1
	l := build(mc, lsize, next)
	v := next()
	r := build(mc, size-lsize-1, next)
	n := &node[V]{left: l, value: v, right: r, version: mc.version}
	n.update(mc)
	return n
}

// reduce folds f over the values of the subtree in order.
func reduce[V, U any](n *node[V], f func(U, V) U, acc U) U {
	for n != nil {
		acc = f(reduce(n.left, f, acc), n.value)
		n = n.right
	}
	return acc
}

// each visits the values of the subtree in order, stopping early when
// yield returns false.
func (n *node[V]) each(yield func(V) bool) bool {
	if n == nil {
		return true
	}
	return n.left.each(yield) && yield(n.value) && n.right.each(yield)
}

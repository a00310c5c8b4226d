package avl

import (
	"github.com/npillmayer/plist/seq"
)

// Cursor traverses an AVL tree in order.
//
// The path holds the nodes from the root down to the current node. A cursor
// is done if and only if its path is empty.
// Cursor implements seq.Cursor.
type Cursor[V any] struct {
	path    []*node[V]
	root    *node[V]
	weight  seq.Weigher[V]
	index   int
	summary int
}

var _ seq.Cursor[int] = (*Cursor[int])(nil)

// atFirst creates a cursor positioned at the leftmost value of root.
func atFirst[V any](root *node[V], w seq.Weigher[V]) *Cursor[V] {
	c := &Cursor[V]{root: root, weight: w}
	if root != nil {
		c.path = append(c.path, root)
		c.descendFirst()
	}
	return c
}

// atIndex creates a cursor positioned at the value with position index.
// An index at or beyond the tree's count yields an exhausted cursor.
func atIndex[V any](root *node[V], w seq.Weigher[V], index int) *Cursor[V] {
	c := &Cursor[V]{root: root, weight: w}
	if index >= countOf(root) {
		c.index, c.summary = countOf(root), summaryOf(root)
		return c
	}
	index = max(index, 0)
	c.index = index
	for n := root; n != nil; {
		c.path = append(c.path, n)
		at := n.index()
		switch {
		case index < at:
			n = n.left
		case index == at:
			c.summary += summaryOf(n.left)
			return c
		default:
			c.summary += summaryOf(n.left) + w(n.value)
			index -= at + 1
			n = n.right
		}
	}
	assert(false, "avl cursor: index routing ran off the tree")
	return c
}

// seek searches root guided by f. On an exact match the cursor lands on the
// matching value. Otherwise the search comes to rest between two values and
// the cursor lands on the following value, or on the preceding one if
// leftSeekBias is set.
func seek[V any](root *node[V], w seq.Weigher[V], f seq.Pathfinder[V], leftSeekBias bool) *Cursor[V] {
	after, acc := 0, 0
	for n := root; n != nil; {
		prefix := acc + summaryOf(n.left)
		switch f(n.value, prefix) {
		case seq.Before:
			n = n.left
		case seq.Equal:
			return atIndex(root, w, after+n.index())
		default:
			after += n.index() + 1
			acc = prefix + w(n.value)
			n = n.right
		}
	}
	return atIndex(root, w, seq.Landing(after, leftSeekBias))
}

// descendFirst extends the path down to the leftmost node below its head.
func (c *Cursor[V]) descendFirst() {
	for n := c.path[len(c.path)-1].left; n != nil; n = n.left {
		c.path = append(c.path, n)
	}
}

// ascendNext pops the path until its head is the in-order successor of the
// rightmost node of the current head's subtree.
func (c *Cursor[V]) ascendNext() {
	for {
		prev := c.path[len(c.path)-1]
		c.path = c.path[:len(c.path)-1]
		if len(c.path) == 0 || c.path[len(c.path)-1].right != prev {
			return
		}
	}
}

// Done reports whether the cursor is exhausted.
func (c *Cursor[V]) Done() bool {
	return len(c.path) == 0
}

// Index is the position of the current value.
func (c *Cursor[V]) Index() int {
	return c.index
}

// Summary is the cumulative weight of all values before the current one.
func (c *Cursor[V]) Summary() int {
	return c.summary
}

// Value returns the current value, or the zero value of V if the cursor is
// exhausted.
func (c *Cursor[V]) Value() V {
	if c.Done() {
		var zero V
		return zero
	}
	return c.path[len(c.path)-1].value
}

// Forth moves to the next value.
func (c *Cursor[V]) Forth() {
	if c.Done() {
		return
	}
	curr := c.path[len(c.path)-1]
	c.index++
	c.summary += c.weight(curr.value)
	if curr.right != nil {
		c.path = append(c.path, curr.right)
		c.descendFirst()
	} else {
		c.ascendNext()
	}
}

// Complete exhausts the cursor, skipping the remaining values.
func (c *Cursor[V]) Complete() {
	if c.Done() {
		return
	}
	c.index, c.summary = countOf(c.root), summaryOf(c.root)
	clear(c.path)
	c.path = c.path[:0]
}

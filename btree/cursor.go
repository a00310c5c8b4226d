package btree

import "github.com/npillmayer/plist/seq"

// Cursor traverses a B-tree in order.
//
// The cursor keeps a path of nodes from the root down to the node holding
// the current value, together with a position per node. For the head of the
// path the position is the index of the current value, for every ancestor it
// is the index of the child the path descends into. A cursor is done if and
// only if its path is empty.
// Cursor implements seq.Cursor.
type Cursor[V any] struct {
	nodes   []*node[V]
	pos     []int
	root    *node[V]
	weight  seq.Weigher[V]
	index   int
	summary int
}

var _ seq.Cursor[int] = (*Cursor[int])(nil)

func (c *Cursor[V]) push(n *node[V], pos int) {
	c.nodes = append(c.nodes, n)
	c.pos = append(c.pos, pos)
}

func (c *Cursor[V]) top() int {
	return len(c.nodes) - 1
}

// atFirst creates a cursor positioned at the first value of root.
func atFirst[V any](root *node[V], w seq.Weigher[V]) *Cursor[V] {
	c := &Cursor[V]{root: root, weight: w}
	if root != nil {
		c.push(root, 0)
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
	n := root
	for !n.isLeaf() {
		i, local, at := n.route(index)
		for j := range i {
			c.summary += n.children[j].summary + w(n.values[j])
		}
		c.push(n, i)
		if at {
			c.summary += n.children[i].summary
			return c
		}
		index, n = local, n.children[i]
	}
	for _, v := range n.values[:index] {
		c.summary += w(v)
	}
	c.push(n, index)
	return c
}

// seek searches root guided by f, binary searching the values of every node
// on the way down. On an exact match the cursor lands on the matching value.
// Otherwise the search comes to rest between two values and the cursor lands
// on the following value, or on the preceding one if leftSeekBias is set.
func seek[V any](root *node[V], w seq.Weigher[V], f seq.Pathfinder[V], leftSeekBias bool) *Cursor[V] {
	after, acc := 0, 0
	var counts, sums []int
	for n := root; n != nil; {
		// counts[j] and sums[j] cover everything in n left of child j
		counts, sums = counts[:0], sums[:0]
		cnt, sum := 0, 0
		for j, v := range n.values {
			counts, sums = append(counts, cnt), append(sums, sum)
			if !n.isLeaf() {
				cnt += n.children[j].count
				sum += n.children[j].summary
			}
			cnt, sum = cnt+1, sum+w(v)
		}
		counts, sums = append(counts, cnt), append(sums, sum)
		lo, hi := 0, len(n.values)
		for lo < hi {
			mid := lo + (hi-lo)/2
			before, prefix := counts[mid], sums[mid]
			if !n.isLeaf() {
				before += n.children[mid].count
				prefix += n.children[mid].summary
			}
			switch f(n.values[mid], acc+prefix) {
			case seq.Equal:
				return atIndex(root, w, after+before)
			case seq.Before:
				hi = mid
			default:
				lo = mid + 1
			}
		}
		after, acc = after+counts[lo], acc+sums[lo]
		if n.isLeaf() {
			break
		}
		n = n.children[lo]
	}
	return atIndex(root, w, seq.Landing(after, leftSeekBias))
}

// descendFirst extends the path down to the first value below the child
// selected by the head's position.
func (c *Cursor[V]) descendFirst() {
	for n := c.nodes[c.top()]; !n.isLeaf(); n = c.nodes[c.top()] {
		c.push(n.children[c.pos[c.top()]], 0)
	}
}

// Done reports whether the cursor is exhausted.
func (c *Cursor[V]) Done() bool {
	return len(c.nodes) == 0
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
	return c.nodes[c.top()].values[c.pos[c.top()]]
}

// Forth moves to the next value.
func (c *Cursor[V]) Forth() {
	if c.Done() {
		return
	}
	head := c.top()
	n := c.nodes[head]
	c.index++
	c.summary += c.weight(n.values[c.pos[head]])
	c.pos[head]++
	if !n.isLeaf() {
		c.descendFirst()
		return
	}
	for !c.Done() && c.pos[c.top()] >= len(c.nodes[c.top()].values) {
		c.nodes[c.top()] = nil
		c.nodes, c.pos = c.nodes[:c.top()], c.pos[:c.top()]
	}
}

// Complete exhausts the cursor, skipping the remaining values.
func (c *Cursor[V]) Complete() {
	if c.Done() {
		return
	}
	c.index, c.summary = countOf(c.root), summaryOf(c.root)
	clear(c.nodes)
	c.nodes, c.pos = c.nodes[:0], c.pos[:0]
}

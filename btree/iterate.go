package btree

import "iter"

// All returns an iterator over the values of t in order. The iterator sees
// the values at the time All is called.
func (t *Tree[V]) All() iter.Seq[V] {
	root := t.freeze()
	return func(yield func(V) bool) {
		root.each(yield)
	}
}

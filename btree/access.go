package btree

import "encoding/json"

// At returns the value at index.
func (t *Tree[V]) At(index int) (V, bool) {
	var zero V
	if index < 0 || index >= t.Len() {
		return zero, false
	}
	n := t.root
	for !n.isLeaf() {
		i, local, at := n.route(index)
		if at {
			return n.values[i], true
		}
		index, n = local, n.children[i]
	}
	return n.values[index], true
}

// Reduce folds f over the values of t in order, starting with acc.
func Reduce[V, U any](t *Tree[V], f func(U, V) U, acc U) U {
	return reduce(t.root, f, acc)
}

// ToSlice returns the values of t in order.
func (t *Tree[V]) ToSlice() []V {
	return reduce(t.root, func(acc []V, v V) []V {
		return append(acc, v)
	}, make([]V, 0, t.Len()))
}

// MarshalJSON exports t as the plain array of its values.
func (t *Tree[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.ToSlice())
}

package avl

import (
	"encoding/json"
	"iter"

	"github.com/npillmayer/plist/seq"
)

// Tree is a handle to a partially persistent AVL sequence.
//
// A Tree created by
//
//	Tree[V]{}
//
// is a valid empty sequence with default weights.
//
// Trees support two styles of editing:
//
//   - in-place edits (Insert, Delete, Replace, Apply) change the handle,
//   - copy-on-write edits (Inserted, Deleted, Replaced, Applied) return a new
//     handle and leave the receiver's values unchanged.
//
// Fork creates an independently editable handle in O(1). Trees must not be
// edited concurrently; distinct forks may be used by different goroutines.
type Tree[V any] struct {
	root    *node[V]
	version seq.Version
	weight  seq.Weigher[V]
}

// Empty creates an empty tree. If w is nil, seq.WeigherFor[V] is used.
func Empty[V any](w seq.Weigher[V]) *Tree[V] {
	if w == nil {
		w = seq.WeigherFor[V]()
	}
	return &Tree[V]{version: seq.InitialVersion, weight: w}
}

// From creates a tree holding the values of vs in the same order, in O(n).
func From[V any](w seq.Weigher[V], vs []V) *Tree[V] {
	t := Empty(w)
	i := 0
	t.root = build(t.mutation(), len(vs), func() V {
		v := vs[i]
		i++
		return v
	})
	return t
}

// FromSeq creates a tree holding the first n values of vs, in O(n).
// If vs yields fewer than n values, the tree is padded with zero values.
func FromSeq[V any](w seq.Weigher[V], vs iter.Seq[V], n int) *Tree[V] {
	t := Empty(w)
	next, stop := iter.Pull(vs)
	defer stop()
	t.root = build(t.mutation(), n, func() V {
		v, _ := next()
		return v
	})
	return t
}

func (t *Tree[V]) mutation() *mutation[V] {
	return &mutation[V]{version: t.version, weight: t.weigher()}
}

// weigher resolves the default weight lazily, so that the zero Tree is usable.
func (t *Tree[V]) weigher() seq.Weigher[V] {
	if t.weight == nil {
		t.weight = seq.WeigherFor[V]()
	}
	return t.weight
}

// Len returns the number of values.
func (t *Tree[V]) Len() int {
	return countOf(t.root)
}

// Summary returns the sum of the weights of all values.
func (t *Tree[V]) Summary() int {
	return summaryOf(t.root)
}

// Height returns the rank of the root, 0 for an empty tree.
func (t *Tree[V]) Height() int {
	return rankOf(t.root)
}

// At returns the value at index.
func (t *Tree[V]) At(index int) (V, bool) {
	var zero V
	if index < 0 || index >= t.Len() {
		return zero, false
	}
	n := t.root
	for {
		at := n.index()
		switch {
		case index < at:
			n = n.left
		case index > at:
			index -= at + 1
			n = n.right
		default:
			return n.value, true
		}
	}
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

// All returns an iterator over the values of t in order. The iterator sees
// the values at the time All is called.
func (t *Tree[V]) All() iter.Seq[V] {
	root := t.freeze()
	return func(yield func(V) bool) {
		root.each(yield)
	}
}

// MarshalJSON exports t as the plain array of its values.
func (t *Tree[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.ToSlice())
}

// --- Cursors ---------------------------------------------------------------

// freeze seals the current nodes of t: subsequent in-place edits will clone
// them instead of writing to them.
func (t *Tree[V]) freeze() *node[V] {
	t.version++
	return t.root
}

// AtFirst returns a cursor at the first value. The cursor sees a snapshot:
// later edits of t are not visible to it.
func (t *Tree[V]) AtFirst() *Cursor[V] {
	return atFirst(t.freeze(), t.weigher())
}

// AtIndex returns a cursor at the value with position index.
func (t *Tree[V]) AtIndex(index int) *Cursor[V] {
	return atIndex(t.freeze(), t.weigher(), index)
}

// AtEqual returns a cursor at the value selected by f.
//
// The cursor starts at the value for which f returns seq.Equal. If there is
// none, the search comes to rest between the values answering seq.After and
// those answering seq.Before. Without leftSeekBias the cursor starts at the
// first value answering Before (it is exhausted if there is none). With
// leftSeekBias it starts at the last value answering After, or at the first
// value if there is none.
func (t *Tree[V]) AtEqual(f seq.Pathfinder[V], leftSeekBias bool) *Cursor[V] {
	return seek(t.freeze(), t.weigher(), f, leftSeekBias)
}

// --- Editing ---------------------------------------------------------------

// Fork returns a new handle sharing t's nodes. Afterwards t and the fork may
// be edited independently; each of them clones nodes on first write.
func (t *Tree[V]) Fork() *Tree[V] {
	t.version++
	tracer().Debugf("avl: fork at version %d", t.version)
	return &Tree[V]{root: t.root, version: t.version, weight: t.weigher()}
}

// Insert inserts v at index. Indices are clamped to [0, Len].
func (t *Tree[V]) Insert(index int, v V) {
	mc := t.mutation()
	if t.root == nil {
		t.root = mc.leaf(v)
		return
	}
	index = min(max(index, 0), t.Len())
	t.root = t.root.insert(mc, index, v)
}

// Delete removes the value at index. Indices beyond the last value address
// the last value. Negative indices and deletes on an empty tree are ignored.
func (t *Tree[V]) Delete(index int) {
	index, ok := t.clampLast(index)
	if !ok {
		tracer().Debugf("avl: ignoring delete at %d, len=%d", index, t.Len())
		return
	}
	t.root = t.root.delete(t.mutation(), index)
}

// Replace replaces the value at index by v. Indices are handled as for
// Delete.
func (t *Tree[V]) Replace(index int, v V) {
	index, ok := t.clampLast(index)
	if !ok {
		tracer().Debugf("avl: ignoring replace at %d, len=%d", index, t.Len())
		return
	}
	t.root = t.root.replace(t.mutation(), index, v)
}

// clampLast maps indices beyond the last value to the last value. It
// reports false for negative indices and for an empty tree.
func (t *Tree[V]) clampLast(index int) (int, bool) {
	n := t.Len()
	if index < 0 || n == 0 {
		return index, false
	}
	return min(index, n-1), true
}

// Apply applies ops in order.
func (t *Tree[V]) Apply(ops []seq.Op[V]) {
	seq.ApplyOps[V](t, ops)
}

// Inserted returns a new tree with v inserted at index.
func (t *Tree[V]) Inserted(index int, v V) *Tree[V] {
	f := t.Fork()
	f.Insert(index, v)
	return f
}

// Deleted returns a new tree without the value at index.
func (t *Tree[V]) Deleted(index int) *Tree[V] {
	f := t.Fork()
	f.Delete(index)
	return f
}

// Replaced returns a new tree with the value at index replaced by v.
func (t *Tree[V]) Replaced(index int, v V) *Tree[V] {
	f := t.Fork()
	f.Replace(index, v)
	return f
}

// Applied returns a new tree with ops applied in order.
func (t *Tree[V]) Applied(ops []seq.Op[V]) *Tree[V] {
	f := t.Fork()
	f.Apply(ops)
	return f
}

package btree

import (
	"iter"

	"github.com/npillmayer/plist/seq"
)

// Tree is a handle to a partially persistent B-tree sequence.
//
// A Tree created by
//
//	Tree[V]{}
//
// is a valid empty sequence with the default configuration.
//
// Trees support in-place edits (Insert, Delete, Replace, Apply) and
// copy-on-write edits (Inserted, Deleted, Replaced, Applied), the latter
// returning a new handle and leaving the receiver's values unchanged.
// Trees must not be edited concurrently; distinct forks may be used by
// different goroutines.
type Tree[V any] struct {
	cfg     Config[V]
	root    *node[V]
	version seq.Version
}

// New creates an empty tree with validated configuration.
func New[V any](cfg Config[V]) (*Tree[V], error) {
	if err := cfg.validate(); err != nil {
		tracer().Errorf("%s", err.Error())
		return nil, err
	}
	cfg = cfg.normalized()
	tracer().Debugf("btree: new tree with %d..%d values per node", cfg.MinVals, cfg.MaxVals)
	return &Tree[V]{cfg: cfg, version: seq.InitialVersion}, nil
}

// From creates a tree holding the values of vs in the same order, in O(n).
func From[V any](cfg Config[V], vs []V) (*Tree[V], error) {
	t, err := New(cfg)
	if err != nil {
		return nil, err
	}
	i := 0
	t.root = build(t.mutation(), len(vs), func() V {
		v := vs[i]
		i++
		return v
	})
	return t, nil
}

// FromSeq creates a tree holding the first n values of vs, in O(n).
// If vs yields fewer than n values, the tree is padded with zero values.
func FromSeq[V any](cfg Config[V], vs iter.Seq[V], n int) (*Tree[V], error) {
	t, err := New(cfg)
	if err != nil {
		return nil, err
	}
	next, stop := iter.Pull(vs)
	defer stop()
	t.root = build(t.mutation(), n, func() V {
		v, _ := next()
		return v
	})
	return t, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[V]) Config() Config[V] {
	return t.config()
}

// config normalizes the configuration lazily, so that the zero Tree is usable.
func (t *Tree[V]) config() Config[V] {
	if t.cfg.MaxVals == 0 || t.cfg.Weight == nil {
		t.cfg = t.cfg.normalized()
	}
	return t.cfg
}

func (t *Tree[V]) mutation() *mutation[V] {
	cfg := t.config()
	return &mutation[V]{
		version: t.version,
		weight:  cfg.Weight,
		maxVals: cfg.MaxVals,
		minVals: cfg.MinVals,
	}
}

// Len returns the number of values.
func (t *Tree[V]) Len() int {
	return countOf(t.root)
}

// Summary returns the sum of the weights of all values.
func (t *Tree[V]) Summary() int {
	return summaryOf(t.root)
}

// Height returns the tree height, where 0 means empty and 1 means a leaf root.
func (t *Tree[V]) Height() int {
	return t.root.height()
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
	return atFirst(t.freeze(), t.config().Weight)
}

// AtIndex returns a cursor at the value with position index.
func (t *Tree[V]) AtIndex(index int) *Cursor[V] {
	return atIndex(t.freeze(), t.config().Weight, index)
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
	return seek(t.freeze(), t.config().Weight, f, leftSeekBias)
}

// --- Editing ---------------------------------------------------------------

// Fork returns a new handle sharing t's nodes. Afterwards t and the fork may
// be edited independently; each of them clones nodes on first write.
func (t *Tree[V]) Fork() *Tree[V] {
	t.version++
	tracer().Debugf("btree: fork at version %d", t.version)
	return &Tree[V]{cfg: t.config(), root: t.root, version: t.version}
}

// Insert inserts v at index. Indices are clamped to [0, Len].
//
// If the root is full, it is wrapped by a new root before descending, so the
// tree grows at the top only.
func (t *Tree[V]) Insert(index int, v V) {
	mc := t.mutation()
	if t.root == nil {
		t.root = mc.leaf(v)
		return
	}
	index = min(max(index, 0), t.Len())
	root, wrapped := t.root, false
	if len(root.values) >= mc.maxVals {
		root = &node[V]{children: []*node[V]{root}, version: mc.version}
		root.refresh(mc)
		wrapped = true
	}
	root = root.insert(mc, index, v)
	if wrapped {
		if len(root.values) == 0 {
			root = root.children[0] // the old root did not split
		} else {
			tracer().Debugf("btree: tree grows to height %d", root.height())
		}
	}
	t.root = root
}

// Delete removes the value at index. Indices beyond the last value address
// the last value. Negative indices and deletes on an empty tree are ignored.
//
// If an inner root runs out of values, its only child becomes the new root.
func (t *Tree[V]) Delete(index int) {
	index, ok := t.clampLast(index)
	if !ok {
		tracer().Debugf("btree: ignoring delete at %d, len=%d", index, t.Len())
		return
	}
	root := t.root.delete(t.mutation(), index)
	if len(root.values) == 0 {
		if root.isLeaf() {
			root = nil
		} else {
			root = root.children[0]
			tracer().Debugf("btree: tree shrinks to height %d", root.height())
		}
	}
	t.root = root
}

// Replace replaces the value at index by v. Indices are handled as for
// Delete.
func (t *Tree[V]) Replace(index int, v V) {
	index, ok := t.clampLast(index)
	if !ok {
		tracer().Debugf("btree: ignoring replace at %d, len=%d", index, t.Len())
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

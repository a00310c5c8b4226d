package plist

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/npillmayer/plist/avl"
	"github.com/npillmayer/plist/btree"
	"github.com/npillmayer/plist/seq"
)

// Shorthands for the shared vocabulary of package seq, so that clients of
// plist rarely have to import it.
type (
	Op[V any]         = seq.Op[V]
	Cursor[V any]     = seq.Cursor[V]
	Pathfinder[V any] = seq.Pathfinder[V]
	Weigher[V any]    = seq.Weigher[V]
	Ordering          = seq.Ordering
)

// Search directions answered by a Pathfinder.
const (
	Before = seq.Before
	Equal  = seq.Equal
	After  = seq.After
)

// List is a partially persistent, indexed sequence of values of type V.
//
// Every value carries a non-negative weight (see Weigher) and lists maintain
// the sum of weights of all values. Positional and weighted searches take
// logarithmic time, whichever balancing Engine backs the list.
//
// In-place edits (Insert, Delete, Replace, Apply) change the list itself.
// Copy-on-write edits (Inserted, Deleted, Replaced, Applied) return a new
// list and leave the receiver's values unchanged. Fork creates an
// independently editable list in O(1).
//
// Inserting clamps the index into [0, Len]. Deleting or replacing at an index
// beyond the last value addresses the last value. Negative indices, and
// deleting or replacing on an empty list, are ignored.
//
// Cursors and iterators see a snapshot of the list at the time they are
// created. A list must not be edited concurrently; distinct forks may be
// used by different goroutines.
type List[V any] interface {
	// Len returns the number of values.
	Len() int
	// Summary returns the sum of the weights of all values.
	Summary() int
	// At returns the value at index, and false if index is out of range.
	At(index int) (V, bool)
	// ToSlice returns the values in order.
	ToSlice() []V
	// All iterates over the values in order.
	All() iter.Seq[V]

	// AtFirst returns a cursor at the first value.
	AtFirst() Cursor[V]
	// AtIndex returns a cursor at the value with position index.
	AtIndex(index int) Cursor[V]
	// AtEqual returns a cursor at the value selected by f. See
	// avl.Tree.AtEqual for the landing rules without an exact match.
	AtEqual(f Pathfinder[V], leftSeekBias bool) Cursor[V]

	Fork() List[V]
	Insert(index int, v V)
	Delete(index int)
	Replace(index int, v V)
	Apply(ops []Op[V])
	Inserted(index int, v V) List[V]
	Deleted(index int) List[V]
	Replaced(index int, v V) List[V]
	Applied(ops []Op[V]) List[V]

	// Check validates the internal invariants of the list.
	Check() error
	// Dump writes the internal tree structure to w, for debugging.
	Dump(w io.Writer) error
	// MarshalJSON exports the list as the plain array of its values.
	MarshalJSON() ([]byte, error)
}

// Engine selects the balancing strategy of a list.
type Engine int

const (
	// AVL backs a list by a rank balanced binary tree, one value per node.
	AVL Engine = iota
	// BTree backs a list by a B-tree holding several values per node.
	BTree
)

func (e Engine) String() string {
	switch e {
	case AVL:
		return "avl"
	case BTree:
		return "btree"
	}
	return fmt.Sprintf("Engine(%d)", int(e))
}

// ParseEngine parses the name of an engine, as returned by Engine.String.
func ParseEngine(name string) (Engine, error) {
	switch strings.ToLower(name) {
	case "avl":
		return AVL, nil
	case "btree", "b-tree":
		return BTree, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
}

// Config configures a list.
//
// MaxVals and MinVals bound the number of values per node of the BTree
// engine and are ignored by the AVL engine. Zero values select defaults.
// A nil Weight selects seq.WeigherFor[V]: strings and slices weigh their
// length, everything else weighs 1.
type Config[V any] struct {
	Engine  Engine
	MaxVals int
	MinVals int
	Weight  Weigher[V]
}

// Empty creates an empty list.
func Empty[V any](cfg Config[V]) (List[V], error) {
	switch cfg.Engine {
	case AVL:
		return avlList[V]{avl.Empty(cfg.Weight)}, nil
	case BTree:
		t, err := btree.New(cfg.btree())
		if err != nil {
			return nil, err
		}
		return btreeList[V]{t}, nil
	}
	T().Errorf("plist: cannot create list for %v", cfg.Engine)
	return nil, fmt.Errorf("%w: %v", ErrUnknownEngine, cfg.Engine)
}

// From creates a list holding the values of vs in the same order.
// Construction takes O(n) and does not need any rebalancing.
func From[V any](cfg Config[V], vs []V) (List[V], error) {
	switch cfg.Engine {
	case AVL:
		return avlList[V]{avl.From(cfg.Weight, vs)}, nil
	case BTree:
		t, err := btree.From(cfg.btree(), vs)
		if err != nil {
			return nil, err
		}
		return btreeList[V]{t}, nil
	}
	T().Errorf("plist: cannot create list for %v", cfg.Engine)
	return nil, fmt.Errorf("%w: %v", ErrUnknownEngine, cfg.Engine)
}

// FromSeq creates a list holding the first n values produced by vs.
// If vs yields fewer than n values, the list is padded with zero values.
func FromSeq[V any](cfg Config[V], vs iter.Seq[V], n int) (List[V], error) {
	switch cfg.Engine {
	case AVL:
		return avlList[V]{avl.FromSeq(cfg.Weight, vs, n)}, nil
	case BTree:
		t, err := btree.FromSeq(cfg.btree(), vs, n)
		if err != nil {
			return nil, err
		}
		return btreeList[V]{t}, nil
	}
	T().Errorf("plist: cannot create list for %v", cfg.Engine)
	return nil, fmt.Errorf("%w: %v", ErrUnknownEngine, cfg.Engine)
}

func (cfg Config[V]) btree() btree.Config[V] {
	return btree.Config[V]{
		MaxVals: cfg.MaxVals,
		MinVals: cfg.MinVals,
		Weight:  cfg.Weight,
	}
}

// Must is a helper which wraps a call to a constructor and panics if the
// constructor returned an error.
//
//	l := plist.Must(plist.From(plist.Config[string]{}, words))
func Must[V any](l List[V], err error) List[V] {
	if err != nil {
		panic(err)
	}
	return l
}

// Reduce folds f over the values of l in order, starting with acc.
func Reduce[V, U any](l List[V], f func(U, V) U, acc U) U {
	switch l := l.(type) {
	case avlList[V]:
		return avl.Reduce(l.Tree, f, acc)
	case btreeList[V]:
		return btree.Reduce(l.Tree, f, acc)
	}
	for v := range l.All() {
		acc = f(acc, v)
	}
	return acc
}

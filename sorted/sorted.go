/*
Package sorted implements immutable sorted lists with logarithmic insertion,
deletion and lookup.

A sorted list keeps its values in ascending order and allows duplicates.
Editing a sorted list returns a new list, sharing most of its structure with
the receiver, which stays unchanged.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package sorted

import (
	"cmp"
	"iter"
	"slices"

	"github.com/npillmayer/plist"
	"github.com/npillmayer/plist/seq"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'plist'
func tracer() tracing.Trace {
	return tracing.Select("plist")
}

// List is an immutable sorted list of values. The zero value is an empty
// list backed by the AVL engine.
type List[T cmp.Ordered] struct {
	repr plist.List[T]
}

// Empty returns an empty sorted list, backed by a list with configuration cfg.
// Values always carry unit weight, so cfg.Weight is ignored.
func Empty[T cmp.Ordered](cfg plist.Config[T]) (List[T], error) {
	return From(cfg, nil)
}

// From creates a sorted list holding the values of vs. vs is not modified.
func From[T cmp.Ordered](cfg plist.Config[T], vs []T) (List[T], error) {
	cfg.Weight = seq.Unit[T]
	vs = slices.Clone(vs)
	slices.Sort(vs)
	l, err := plist.From(cfg, vs)
	if err != nil {
		tracer().Errorf("cannot create sorted list: %v", err)
		return List[T]{}, err
	}
	return List[T]{repr: l}, nil
}

func (l List[T]) list() plist.List[T] {
	if l.repr == nil {
		return plist.Must(plist.Empty(plist.Config[T]{Weight: seq.Unit[T]}))
	}
	return l.repr
}

// Len returns the number of values in l.
func (l List[T]) Len() int {
	if l.repr == nil {
		return 0
	}
	return l.repr.Len()
}

// At returns the value at index, and false if index is out of range.
func (l List[T]) At(index int) (T, bool) {
	return l.list().At(index)
}

// ToSlice returns the values of l in ascending order.
func (l List[T]) ToSlice() []T {
	return l.list().ToSlice()
}

// All iterates over the values of l in ascending order.
func (l List[T]) All() iter.Seq[T] {
	return l.list().All()
}

// lowerBound returns a cursor at the first value not less than v.
func (l List[T]) lowerBound(v T) plist.Cursor[T] {
	return l.list().AtEqual(func(probe T, _ int) plist.Ordering {
		if cmp.Less(probe, v) {
			return plist.After
		}
		return plist.Before
	}, false)
}

// Inserted returns a list with v inserted in order. Equal values are kept;
// v is placed in front of values equal to it.
func (l List[T]) Inserted(v T) List[T] {
	c := l.lowerBound(v)
	return List[T]{repr: l.list().Inserted(c.Index(), v)}
}

// IndexOf returns the position of the first occurrence of v, and false if l
// does not contain v.
func (l List[T]) IndexOf(v T) (int, bool) {
	c := l.lowerBound(v)
	if c.Done() || cmp.Compare(c.Value(), v) != 0 {
		return c.Index(), false
	}
	return c.Index(), true
}

// Contains reports whether l contains v.
func (l List[T]) Contains(v T) bool {
	_, ok := l.IndexOf(v)
	return ok
}

// Deleted returns a list with the first occurrence of v removed. If l does
// not contain v, l is returned.
func (l List[T]) Deleted(v T) List[T] {
	i, ok := l.IndexOf(v)
	if !ok {
		tracer().Debugf("sorted list does not contain %v, nothing to delete", v)
		return l
	}
	return List[T]{repr: l.list().Deleted(i)}
}

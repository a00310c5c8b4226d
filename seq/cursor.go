package seq

import "iter"

// Cursor is the iteration protocol shared by both engines.
//
// An active cursor has a current value. Index is the position of that value,
// Summary the cumulative weight of all values before it. Once exhausted, a
// cursor stays exhausted: Forth is a no-op, Value returns the zero value,
// Index and Summary report the length and the total summary of the sequence.
type Cursor[V any] interface {
	// Done reports whether the cursor is exhausted.
	Done() bool
	// Index is the position of the current value.
	Index() int
	// Summary is the cumulative weight of the values preceding the current one.
	Summary() int
	// Value is the current value, or the zero value if the cursor is exhausted.
	Value() V
	// Forth advances to the next value, if any.
	Forth()
	// Complete exhausts the cursor without visiting the remaining values.
	Complete()
}

// Values yields the values from the current position of c up to the end,
// advancing c along the way.
func Values[V any](c Cursor[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for ; !c.Done(); c.Forth() {
			if !yield(c.Value()) {
				return
			}
		}
	}
}

package seq

import "fmt"

// OpKind discriminates list operations.
type OpKind uint8

const (
	// OpDelete removes the value at an index.
	OpDelete OpKind = iota
	// OpInsert inserts a value at an index.
	OpInsert
	// OpSubstitute replaces the value at an index.
	OpSubstitute
)

func (k OpKind) String() string {
	switch k {
	case OpDelete:
		return "del"
	case OpInsert:
		return "ins"
	case OpSubstitute:
		return "sub"
	}
	return fmt.Sprintf("OpKind(%d)", uint8(k))
}

// Op is a single positional operation on a sequence.
//
// Ops are order-sensitive: applying a batch of ops has the same effect as
// applying each of them individually, one after the other.
// Value is unused for deletions.
type Op[V any] struct {
	Kind  OpKind
	Index int
	Value V
}

// Delete creates an op which removes the value at index.
func Delete[V any](index int) Op[V] {
	return Op[V]{Kind: OpDelete, Index: index}
}

// Insert creates an op which inserts v at index.
func Insert[V any](index int, v V) Op[V] {
	return Op[V]{Kind: OpInsert, Index: index, Value: v}
}

// Substitute creates an op which replaces the value at index by v.
func Substitute[V any](index int, v V) Op[V] {
	return Op[V]{Kind: OpSubstitute, Index: index, Value: v}
}

func (op Op[V]) String() string {
	if op.Kind == OpDelete {
		return fmt.Sprintf("%s(%d)", op.Kind, op.Index)
	}
	return fmt.Sprintf("%s(%d, %v)", op.Kind, op.Index, op.Value)
}

// Mutator is the in-place mutation API of a sequence handle.
type Mutator[V any] interface {
	Insert(index int, v V)
	Delete(index int)
	Replace(index int, v V)
}

// ApplyOps replays ops on m in order.
//
// An op of unknown kind is a programming error and panics.
func ApplyOps[V any](m Mutator[V], ops []Op[V]) {
	for _, op := range ops {
		switch op.Kind {
		case OpDelete:
			m.Delete(op.Index)
		case OpInsert:
			m.Insert(op.Index, op.Value)
		case OpSubstitute:
			m.Replace(op.Index, op.Value)
		default:
			panic(fmt.Sprintf("plist: unknown operation kind %d", op.Kind))
		}
	}
}

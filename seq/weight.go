package seq

import "reflect"

// Weigher derives the non-negative weight of a value. Summaries of a sequence
// are sums of weights.
//
// A value's weight must not change while the value is stored in a sequence:
// engines cache weights in their subtree summaries.
type Weigher[V any] func(V) int

// Lengthy is implemented by values which know their own length.
type Lengthy interface {
	Len() int
}

// Unit weighs every value as 1. With Unit weights, summaries equal counts.
func Unit[V any](V) int {
	return 1
}

// LengthOf inspects a value at run time: strings, byte and rune slices and
// Lengthy values weigh their length, everything else weighs 1.
func LengthOf(x any) int {
	switch v := x.(type) {
	case string:
		return len(v)
	case []byte:
		return len(v)
	case []rune:
		return len(v)
	case Lengthy:
		return v.Len()
	}
	if x == nil {
		return 1
	}
	switch rv := reflect.ValueOf(x); rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array:
		return rv.Len()
	}
	return 1
}

// WeigherFor resolves the default weigher for values of type V.
//
// The decision is taken once, from the static type V, and not per value:
// string-like and slice-like types weigh their length, types implementing
// Lengthy weigh Len(), interface types are inspected per value with LengthOf,
// and all other types weigh 1.
func WeigherFor[V any]() Weigher[V] {
	var zero V
	switch any(zero).(type) {
	case string:
		return func(v V) int { return len(any(v).(string)) }
	case []byte:
		return func(v V) int { return len(any(v).([]byte)) }
	case []rune:
		return func(v V) int { return len(any(v).([]rune)) }
	}
	typ := reflect.TypeFor[V]()
	if typ.Implements(reflect.TypeFor[Lengthy]()) && typ.Kind() != reflect.Interface {
		return func(v V) int { return any(v).(Lengthy).Len() }
	}
	switch typ.Kind() {
	case reflect.String, reflect.Slice, reflect.Array:
		return func(v V) int { return reflect.ValueOf(v).Len() }
	case reflect.Interface:
		tracer().Debugf("weigher for interface type %v inspects values at run time", typ)
		return func(v V) int { return LengthOf(v) }
	}
	return Unit[V]
}

package btree

import "math"

// build creates a tree of n values, drawn in order from next, in O(n).
//
// The height is the smallest one able to hold n values. Every inner node
// distributes its values as evenly as possible among the fewest children
// which can hold them, but never fewer than MinVals+1 children below the
// root. The result satisfies the occupancy bounds without any splits.
func build[V any](mc *mutation[V], n int, next func() V) *node[V] {
	if n <= 0 {
		return nil
	}
	h := 1
	for capacity(mc.maxVals, h) < n {
		h++
	}
	return buildNode(mc, n, h, 2, next)
}

// capacity is the max number of values a subtree of height h can hold,
// (maxVals+1)^h - 1, saturating at math.MaxInt.
func capacity(maxVals, h int) int {
	p := power(maxVals+1, h)
	if p == math.MaxInt {
		return p
	}
	return p - 1
}

func power(base, exp int) int {
	p := 1
	for range exp {
		if p > math.MaxInt/base {
			return math.MaxInt
		}
		p *= base
	}
	return p
}

// buildNode builds a subtree of height h with n values. An inner node gets at
// least minChildren children.
//
// Each child of height h-1 is assigned a number of units, a child with u units
// holding u-1 values. Together with the separators, n values make up n+1 units.
func buildNode[V any](mc *mutation[V], n, h, minChildren int, next func() V) *node[V] {
	if h == 1 {
		assert(n <= mc.maxVals, "btree: bulk build overfills a leaf")
		vs := make([]V, n)
		for i := range vs {
			vs[i] = next()
		}
		return mc.leaf(vs...)
	}
	units := n + 1
	per := power(mc.maxVals+1, h-1)
	k := max(minChildren, (units-1)/per+1)
	inner := &node[V]{
		values:   make([]V, 0, k-1),
		children: make([]*node[V], 0, k),
		version:  mc.version,
	}
	for i := range k {
		u := units / k
		if i < units%k {
			u++
		}
		inner.children = append(inner.children, buildNode(mc, u-1, h-1, mc.minVals+1, next))
		if i < k-1 {
			inner.values = append(inner.values, next())
		}
	}
	inner.refresh(mc)
	return inner
}

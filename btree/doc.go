/*
Package btree provides an order-statistics B-tree with partial persistence.

The package is not a map/set container. It is specialized for sequence storage
with positional editing: values are addressed by their index in the in-order
sequence. Every node holds between MinVals and MaxVals values (the root may
hold fewer) and keeps the number of values (count) and the sum of their
weights (summary) for its whole subtree.

Current status:
  - positional insert with node split and root growth at the top,
  - positional delete with predecessor substitution, sibling rotation and merge,
  - O(n) bulk construction from a slice or an iterator,
  - index-guided and weight-guided search with cursors (see seq.Pathfinder),
  - copy-on-write by version stamps: Fork is O(1), edits clone the paths they touch.

Nodes are stamped with the version of the handle which created them. A handle
edits a node in place only if the stamps agree, and clones it otherwise.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package btree

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'plist'
func tracer() tracing.Trace {
	return tracing.Select("plist")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

/*
Package avl implements an order-statistics AVL tree with partial persistence.

Values are addressed by their position in the in-order sequence, not by a key.
Every node tracks the number of values in its subtree (count), its rank for
balancing, and the sum of the weights of its subtree's values (summary). This
allows insertion, deletion, replacement and search, either by index or by
cumulative weight, in logarithmic time.

Persistence is achieved by path copying: every node carries the version of the
mutation epoch which created it. A tree handle mutates nodes in place only if
they carry the handle's own version, and clones them otherwise. Forking a
handle is O(1) and subsequent edits on either handle clone just the paths they
touch.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package avl

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

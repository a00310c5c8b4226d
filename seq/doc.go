/*
Package seq holds the contracts shared by the sequence engines of plist.

Both balancing engines (packages avl and btree) address their values by
position and aggregate a weighted summary over every subtree. This package
defines the vocabulary they have in common:

  - Ordering and Pathfinder steer a logarithmic search, either by plain index
    or by cumulative weight,
  - Weigher derives the weight of a single value,
  - Op describes a batched delete/insert/substitute command,
  - Version stamps the mutation epoch which owns a node,
  - Cursor is the iteration protocol of both engines.

The package has no dependencies on the engines; the engines depend on it.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package seq

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'plist'
func tracer() tracing.Trace {
	return tracing.Select("plist")
}

/*
Package rope implements immutable byte strings on top of partially persistent
lists.

A rope holds its text as a list of string fragments, weighted by their byte
length. Inserting and deleting text touches only the fragments at the edit
position and the path leading to them. All the other fragments are shared
between the original rope and the edited one. Editing a rope therefore never
disturbs ropes derived from it earlier, and vice versa.

Offsets are byte offsets. Clients editing UTF-8 text are expected to pass
offsets at rune boundaries, otherwise a rune may get split.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rope

import (
	"errors"
	"fmt"

	"github.com/npillmayer/plist"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'plist'
func tracer() tracing.Trace {
	return tracing.Select("plist")
}

// ErrIndexOutOfBounds is flagged whenever an offset or a range is not
// contained in a rope.
var ErrIndexOutOfBounds = fmt.Errorf("rope: %w", plist.ErrIndexOutOfBounds)

// ErrNegativeLength is flagged for ranges with a negative length.
var ErrNegativeLength = errors.New("rope: negative length")

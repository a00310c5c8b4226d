/*
Package textfile provides API helpers to load text files as ropes.

A file is read in fragments by a background goroutine. Clients interested in
the progress of loading may subscribe to a Loader before starting it, and will
receive a message for every fragment read. Load blocks until the file is
completely read and returns the rope of its content.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'plist'
func tracer() tracing.Trace {
	return tracing.Select("plist")
}

// ErrNotRegular is flagged when trying to load anything other than a regular
// file.
var ErrNotRegular = errors.New("textfile: not a regular file")

// ErrClosed is flagged when loading from a Loader which has been closed
// before.
var ErrClosed = errors.New("textfile: loader closed")

// ErrShortRead is flagged if fewer bytes could be read than the file's size
// announced, e.g., because the file has been truncated while loading.
var ErrShortRead = errors.New("textfile: not all bytes loaded for text fragment")

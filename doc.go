/*
Package plist offers partially persistent, indexed sequences.

Lists

A list holds values in a user defined order, addressed by position. Every value
carries a weight, and lists keep the cumulative weight of every subtree. This
speeds up frequent operations on long sequences: insertion, deletion and
replacement at a position, lookup by position, and lookup by accumulated
weight, all take logarithmic time. With values being text fragments and their
weight being their length, a list becomes a rope (see package rope). With unit
weights and a sorted insertion discipline, a list becomes a sorted set (see
package sorted).

Lists are partially persistent. Forking a list takes constant time and the fork
may be edited without disturbing the original, and vice versa. Internally,
every tree node is stamped with the version of the list which created it. A
list edits a node in place only if it owns it, and copies it otherwise. Thus
clients get the cheap in-place editing of a mutable data structure as long as
they do not share, and pay for copying only on the paths they touch after
sharing.

Lists are backed by one of two balancing engines:

  - AVL: a rank balanced binary tree (package avl),
  - BTree: a B-tree with configurable node occupancy (package btree).

Both engines offer the same functionality and clients do not depend on the
choice, except for performance characteristics.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package plist

import (
	"github.com/npillmayer/plist/seq"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ListError is an error type for the plist module
type ListError string

func (e ListError) Error() string {
	return string(e)
}

// ErrUnknownEngine is flagged whenever a list is to be created for an engine
// other than AVL or BTree.
const ErrUnknownEngine = ListError("unknown balancing engine")

// ErrInvalidConfig is flagged whenever a list configuration is invalid.
// Errors returned by constructors match it with errors.Is.
var ErrInvalidConfig = seq.ErrInvalidConfig

// ErrIndexOutOfBounds is flagged whenever a position is outside of a sequence.
var ErrIndexOutOfBounds = seq.ErrIndexOutOfBounds

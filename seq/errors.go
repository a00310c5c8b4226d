package seq

import "errors"

var (
	// ErrInvalidConfig signals an invalid sequence configuration.
	ErrInvalidConfig = errors.New("plist: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("plist: index out of bounds")
)

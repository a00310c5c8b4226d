package btree

import (
	"fmt"

	"github.com/npillmayer/plist/seq"
)

// ErrInvalidConfig signals an invalid tree configuration.
// It matches seq.ErrInvalidConfig with errors.Is.
var ErrInvalidConfig = fmt.Errorf("btree: %w", seq.ErrInvalidConfig)

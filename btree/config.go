package btree

import (
	"fmt"

	"github.com/npillmayer/plist/seq"
)

const (
	// DefaultMaxVals is the max number of values per node if none is configured.
	DefaultMaxVals = 12
)

// Config configures the node occupancy bounds and the weight of values.
//
// Zero fields are replaced by defaults: MaxVals by DefaultMaxVals, MinVals
// by MaxVals/2 and Weight by seq.WeigherFor[V].
//
// Any configuration must satisfy
//
//	MinVals >= 1 and 2*MinVals <= MaxVals
//
// Splitting an overflowing node of MaxVals+1 values leaves MaxVals values for
// two siblings, and both of them have to hold at least MinVals.
type Config[V any] struct {
	MaxVals int
	MinVals int
	Weight  seq.Weigher[V]
}

func (cfg Config[V]) normalized() Config[V] {
	if cfg.MaxVals == 0 {
		cfg.MaxVals = DefaultMaxVals
	}
	if cfg.MinVals == 0 {
		cfg.MinVals = cfg.MaxVals / 2
	}
	if cfg.Weight == nil {
		cfg.Weight = seq.WeigherFor[V]()
	}
	return cfg
}

func (cfg Config[V]) validate() error {
	cfg = cfg.normalized()
	if cfg.MaxVals < 2 {
		return fmt.Errorf("%w: max values per node must be at least 2, is %d",
			ErrInvalidConfig, cfg.MaxVals)
	}
	if cfg.MinVals < 1 {
		return fmt.Errorf("%w: min values per node must be at least 1, is %d",
			ErrInvalidConfig, cfg.MinVals)
	}
	if 2*cfg.MinVals > cfg.MaxVals {
		return fmt.Errorf("%w: min values %d too large for max values %d",
			ErrInvalidConfig, cfg.MinVals, cfg.MaxVals)
	}
	return nil
}

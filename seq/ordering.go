package seq

// Ordering is the result of a three-way comparison.
type Ordering int8

const (
	// Before signals that the search target precedes the probed value.
	Before Ordering = -1
	// Equal signals that the probed value is the search target.
	Equal Ordering = 0
	// After signals that the search target follows the probed value.
	After Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Before:
		return "BEFORE"
	case Equal:
		return "EQUAL"
	case After:
		return "AFTER"
	}
	return "Ordering(?)"
}

// Pathfinder guides a logarithmic search through a sequence.
//
// v is the probed value, prefix is the cumulative summary of all values
// strictly preceding v. The result tells the search where to continue.
type Pathfinder[V any] func(v V, prefix int) Ordering

// Compare is a convenience for building pathfinders from a three-way compare
// function: it maps negative results to Before and positive results to After.
func Compare(c int) Ordering {
	switch {
	case c < 0:
		return Before
	case c > 0:
		return After
	}
	return Equal
}

// Landing computes where a search without an exact match comes to rest.
//
// afterCount is the number of values the search has stepped over to the right
// (all of them answered After). With leftSeekBias set, the search prefers the
// nearest preceding value, otherwise the nearest following one.
func Landing(afterCount int, leftSeekBias bool) int {
	if leftSeekBias && afterCount > 0 {
		return afterCount - 1
	}
	return afterCount
}

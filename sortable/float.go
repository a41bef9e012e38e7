package sortable

import (
	"math"

	"github.com/amp-labs/ducksort/compare"
)

// Float is a sortable wrapper type for the built-in float64 type.
// It implements the Sortable[Float] interface using the ordinary < and >
// operators.
//
// NaN is not ordered: it is neither less than nor greater than any value,
// so Compare reports it as Equal to everything and Equals returns true.
// Use IsFinite to screen values before relying on the ordering.
//
// To convert back to a regular float64, use a type conversion:
//
//	var f sortable.Float = 2.5
//	regular := float64(f)
type Float float64

// Compile-time check that Float implements Sortable[Float].
var (
	_ Sortable[Float]        = (*Float)(nil)
	_ compare.Ordered[Float] = (*Float)(nil)
)

// Equals returns true if neither value orders before the other.
func (f Float) Equals(other Float) bool {
	return f.Compare(other) == compare.Equal
}

// LessThan returns true if this Float is numerically less than the other Float.
func (f Float) LessThan(other Float) bool {
	return float64(f) < float64(other)
}

func (f Float) Compare(other Float) compare.Ordering {
	return compare.Values(float64(f), float64(other))
}

// IsFinite reports whether f is neither NaN nor an infinity.
func (f Float) IsFinite() bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}

// Package duck defines Duck, a named and weighted record with a total order:
// lighter ducks sort first, and ducks of equal weight sort by name.
package duck

import (
	"errors"
	"fmt"

	"github.com/amp-labs/ducksort/compare"
	"github.com/amp-labs/ducksort/sortable"
)

// ErrInvalidWeight is returned for weights that cannot be ordered (NaN) or
// are not finite.
var ErrInvalidWeight = errors.New("invalid weight")

// Duck is an immutable value. The zero value is a nameless duck weighing
// nothing.
type Duck struct {
	name   string
	weight float64
}

var (
	_ sortable.Sortable[Duck] = Duck{}
	_ compare.Ordered[Duck]   = Duck{}
	_ fmt.Stringer            = Duck{}
)

// New returns a duck with the given name and weight in kilograms. The weight
// is not checked; use NewChecked for data that did not come from a literal.
func New(name string, weight float64) Duck {
	return Duck{name: name, weight: weight}
}

// NewChecked is like New but rejects weights that Validate would reject.
func NewChecked(name string, weight float64) (Duck, error) {
	d := New(name, weight)
	if err := d.Validate(); err != nil {
		return Duck{}, err
	}

	return d, nil
}

// Name returns the duck's name.
func (d Duck) Name() string {
	return d.name
}

// Weight returns the duck's weight in kilograms.
func (d Duck) Weight() float64 {
	return d.weight
}

// Compare orders by ascending weight, then by ascending name in byte order.
//
// The result is unspecified when either weight is NaN: NaN is neither less
// nor greater than any weight, so the name alone decides, and the order is
// no longer transitive. Validate rejects such ducks.
func (d Duck) Compare(other Duck) compare.Ordering {
	return sortable.Float(d.weight).Compare(sortable.Float(other.weight)).Then(func() compare.Ordering {
		return sortable.String(d.name).Compare(sortable.String(other.name))
	})
}

// Equals reports whether Compare finds the two ducks equivalent.
func (d Duck) Equals(other Duck) bool {
	return compare.Equivalent(d, other)
}

// LessThan reports whether d sorts before other.
func (d Duck) LessThan(other Duck) bool {
	return d.Compare(other) == compare.Less
}

// String renders the duck for display, e.g. "The duck Daffy weights 8.00 kg.".
func (d Duck) String() string {
	return fmt.Sprintf("The duck %s weights %.2f kg.", d.name, d.weight)
}

// Validate returns ErrInvalidWeight if the weight is NaN or infinite.
func (d Duck) Validate() error {
	if !sortable.Float(d.weight).IsFinite() {
		return fmt.Errorf("%w: duck %q weights %v", ErrInvalidWeight, d.name, d.weight)
	}

	return nil
}

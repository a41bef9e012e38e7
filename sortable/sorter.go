package sortable

import (
	"slices"

	"go.uber.org/atomic"
)

// Sorter sorts slices of a Sortable type and keeps count of the comparisons
// it makes. A comparison is one call to LessThan. Counts are exported as Prometheus metrics labeled with the
// sorter's name. A Sorter is safe for concurrent use, although each call to
// Sort must own the slice it is given.
type Sorter[T Sortable[T]] struct {
	name        string
	stable      bool
	comparisons atomic.Int64
}

// SorterOption configures a Sorter.
type SorterOption func(*sorterOptions)

type sorterOptions struct {
	stable bool
}

// Stable makes the Sorter preserve the relative order of equal elements.
func Stable() SorterOption {
	return func(o *sorterOptions) {
		o.stable = true
	}
}

// NewSorter returns a Sorter whose metrics are labeled with name.
func NewSorter[T Sortable[T]](name string, opts ...SorterOption) *Sorter[T] {
	var options sorterOptions

	for _, opt := range opts {
		opt(&options)
	}

	return &Sorter[T]{
		name:   name,
		stable: options.stable,
	}
}

// Name returns the metrics label of the sorter.
func (s *Sorter[T]) Name() string {
	return s.name
}

// Sort sorts items in place in ascending order and returns the number of
// LessThan calls made during this call.
func (s *Sorter[T]) Sort(items []T) int64 {
	var count int64

	cmp := threeWay(func(a, b T) bool {
		count++

		return a.LessThan(b)
	})

	if s.stable {
		slices.SortStableFunc(items, cmp)
	} else {
		slices.SortFunc(items, cmp)
	}

	s.comparisons.Add(count)

	sortRuns.WithLabelValues(s.name).Inc()
	sortElements.WithLabelValues(s.name).Add(float64(len(items)))
	sortComparisons.WithLabelValues(s.name).Add(float64(count))

	return count
}

// Comparisons returns the total number of comparisons made by every call
// to Sort on this sorter.
func (s *Sorter[T]) Comparisons() int64 {
	return s.comparisons.Load()
}

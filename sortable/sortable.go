// Package sortable provides sortable wrapper types and generic sorting over the Sortable interface.
package sortable

import (
	"slices"

	"github.com/amp-labs/ducksort/compare"
)

type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

func lessThan[T Sortable[T]](a, b T) bool {
	return a.LessThan(b)
}

// threeWay converts a less function into the three-way comparator used by
// the slices package. Two elements that are not less than each other are
// treated as equal, so less may be called once or twice per comparison.
func threeWay[T any](less func(a, b T) bool) func(a, b T) int {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}

// Sort sorts items in place in ascending order. The sort is not stable.
func Sort[T Sortable[T]](items []T) {
	slices.SortFunc(items, threeWay(lessThan[T]))
}

// SortStable sorts items in place in ascending order, keeping equal
// elements in their original relative order.
func SortStable[T Sortable[T]](items []T) {
	slices.SortStableFunc(items, threeWay(lessThan[T]))
}

// IsSorted reports whether items are in ascending order.
func IsSorted[T Sortable[T]](items []T) bool {
	return slices.IsSortedFunc(items, threeWay(lessThan[T]))
}

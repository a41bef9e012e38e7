// Package sortable provides the Sortable interface, wrapper types for
// primitives that implement it, and generic sorting over it.
//
// # Overview
//
// [Sortable] extends [github.com/amp-labs/ducksort/compare.Comparable] with a
// LessThan method, providing both equality comparison and ordering. The
// wrappers [Float] and [String] also implement
// [github.com/amp-labs/ducksort/compare.Ordered], so they can be used as the
// keys of a composite three-way comparison.
//
// # Sorting
//
// [Sort], [SortStable] and [IsSorted] work on any slice whose element type
// implements Sortable:
//
//	weights := []sortable.Float{8, 2, 7}
//	sortable.Sort(weights)
//	// weights is now 2, 7, 8
//
// A [Sorter] does the same but also counts comparisons and reports them as
// Prometheus metrics (sort_runs_total, sort_elements_total and
// sort_comparisons_total, labeled by sorter name):
//
//	s := sortable.NewSorter[duck.Duck]("flock")
//	n := s.Sort(ducks)
//
// # Creating Custom Sortable Types
//
// Derive equality from the ordering so that Equals and LessThan can never
// disagree:
//
//	type Task struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (t Task) Compare(other Task) compare.Ordering {
//	    return compare.Values(t.Priority, other.Priority).Then(func() compare.Ordering {
//	        return compare.Values(t.Name, other.Name)
//	    })
//	}
//
//	func (t Task) Equals(other Task) bool   { return compare.Equivalent(t, other) }
//	func (t Task) LessThan(other Task) bool { return t.Compare(other) == compare.Less }
//
// # Thread Safety
//
// The wrapper types are value types and are safe for concurrent reads. Sort
// mutates the slice it is given, so callers must not share that slice while
// it is being sorted.
package sortable

// Package compare provides utilities for comparing and ordering values.
package compare

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Ordered is implemented by types that define a total order over themselves.
// Compare must return Less, Equal or Greater, and must be consistent: if
// a.Compare(b) is Less then b.Compare(a) is Greater.
type Ordered[T any] interface {
	Compare(other T) Ordering
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Equivalent reports whether a and b are equal under their ordering.
// Types whose equality is derived from their order should implement
// Equals in terms of this function rather than comparing fields.
func Equivalent[T Ordered[T]](a, b T) bool {
	return a.Compare(b) == Equal
}

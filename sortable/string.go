package sortable

import "github.com/amp-labs/ducksort/compare"

// String is a sortable wrapper for the built-in string type. Strings are
// ordered byte-wise, which is Go's native string ordering.
type String string

var (
	_ Sortable[String]        = (*String)(nil)
	_ compare.Ordered[String] = (*String)(nil)
)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}

func (s String) Compare(other String) compare.Ordering {
	return compare.Values(string(s), string(other))
}

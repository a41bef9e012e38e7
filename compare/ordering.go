package compare

import "cmp"

// Ordering is the result of comparing two values.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// String implements fmt.Stringer.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		return "invalid"
	}
}

// Reverse flips Less and Greater. Equal is returned unchanged.
func (o Ordering) Reverse() Ordering {
	return -o
}

// Then returns o if it is decisive (Less or Greater), otherwise the result
// of next. next is only evaluated when o is Equal, which makes it suitable
// for chaining a primary key with one or more tie-breakers:
//
//	Values(a.weight, b.weight).Then(func() Ordering {
//	    return Values(a.name, b.name)
//	})
func (o Ordering) Then(next func() Ordering) Ordering {
	if o != Equal {
		return o
	}

	return next()
}

// Values orders two primitive values using only the < and > operators.
// Values that are neither less nor greater than each other are Equal.
//
// This differs from cmp.Compare for floating point NaN: cmp.Compare sorts
// NaN before every other value, whereas Values reports NaN as Equal to
// everything. Callers that can see NaN must reject it before ordering.
func Values[T cmp.Ordered](a, b T) Ordering {
	if a < b {
		return Less
	}

	if a > b {
		return Greater
	}

	return Equal
}

// Func adapts an Ordered type's Compare method to the int-valued comparator
// expected by slices.SortFunc and friends.
func Func[T Ordered[T]](a, b T) int {
	return int(a.Compare(b))
}

package compare

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestString is a simple string wrapper that implements Comparable.
type TestString string

func (s TestString) Equals(other TestString) bool {
	return string(s) == string(other)
}

// version orders by major, then minor. Its equality is derived from Compare.
type version struct {
	major int
	minor int
	label string // ignored by the ordering
}

func (v version) Compare(other version) Ordering {
	return Values(v.major, other.major).Then(func() Ordering {
		return Values(v.minor, other.minor)
	})
}

func (v version) Equals(other version) bool {
	return Equivalent(v, other)
}

func TestEquals_Function(t *testing.T) {
	t.Parallel()

	a := TestString("hello")
	b := TestString("hello")
	c := TestString("world")

	assert.True(t, Equals(a, b))
	assert.False(t, Equals(a, c))
}

func TestEquivalent_DerivedFromCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a        version
		b        version
		expected bool
	}{
		{
			name:     "identical",
			a:        version{major: 1, minor: 2},
			b:        version{major: 1, minor: 2},
			expected: true,
		},
		{
			name:     "incidental field differs",
			a:        version{major: 1, minor: 2, label: "stable"},
			b:        version{major: 1, minor: 2, label: "beta"},
			expected: true,
		},
		{
			name:     "minor differs",
			a:        version{major: 1, minor: 2},
			b:        version{major: 1, minor: 3},
			expected: false,
		},
		{
			name:     "major differs",
			a:        version{major: 2, minor: 2},
			b:        version{major: 1, minor: 2},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Equivalent(tt.a, tt.b))
			assert.Equal(t, tt.expected, tt.a.Equals(tt.b))
			assert.Equal(t, tt.expected, Equals[version](tt.a, tt.b))
		})
	}
}

func TestValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Less, Values(1, 2))
	assert.Equal(t, Greater, Values(2, 1))
	assert.Equal(t, Equal, Values(7, 7))

	assert.Equal(t, Less, Values("Dewey", "Huey"))
	assert.Equal(t, Greater, Values("b", "B"), "byte order puts lowercase after uppercase")
	assert.Equal(t, Equal, Values("", ""))

	assert.Equal(t, Less, Values(2.0, 7.5))
	assert.Equal(t, Equal, Values(math.Copysign(0, -1), 0.0))
}

func TestValues_NaN(t *testing.T) {
	t.Parallel()

	nan := math.NaN()

	// NaN is neither less nor greater than anything, so it collapses to Equal.
	assert.Equal(t, Equal, Values(nan, 1.0))
	assert.Equal(t, Equal, Values(1.0, nan))
	assert.Equal(t, Equal, Values(nan, nan))
}

func TestOrdering_Then(t *testing.T) {
	t.Parallel()

	called := false
	next := func() Ordering {
		called = true

		return Greater
	}

	assert.Equal(t, Less, Less.Then(next))
	assert.False(t, called, "tie-breaker must not run for a decisive result")

	assert.Equal(t, Greater, Equal.Then(next))
	assert.True(t, called)
}

func TestOrdering_ReverseAndString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Greater, Less.Reverse())
	assert.Equal(t, Less, Greater.Reverse())
	assert.Equal(t, Equal, Equal.Reverse())

	assert.Equal(t, "less", Less.String())
	assert.Equal(t, "equal", Equal.String())
	assert.Equal(t, "greater", Greater.String())
	assert.Equal(t, "invalid", Ordering(5).String())
}

func TestFunc(t *testing.T) {
	t.Parallel()

	versions := []version{
		{major: 2, minor: 0},
		{major: 1, minor: 9},
		{major: 1, minor: 2},
	}

	slices.SortFunc(versions, Func[version])

	assert.Equal(t, []version{
		{major: 1, minor: 2},
		{major: 1, minor: 9},
		{major: 2, minor: 0},
	}, versions)
}

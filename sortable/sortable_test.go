package sortable

import (
	"math"
	"testing"

	"github.com/amp-labs/ducksort/compare"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pair has a key that drives the order and a tag that does not, which
// makes stability observable.
type pair struct {
	key Float
	tag string
}

func (p pair) Equals(other pair) bool {
	return p.key.Equals(other.key)
}

func (p pair) LessThan(other pair) bool {
	return p.key.LessThan(other.key)
}

// tallied counts every LessThan call made on it through a shared counter.
type tallied struct {
	key   Float
	calls *int64
}

func (v tallied) Equals(other tallied) bool {
	return v.key.Equals(other.key)
}

func (v tallied) LessThan(other tallied) bool {
	*v.calls++

	return v.key.LessThan(other.key)
}

func TestFloat(t *testing.T) {
	t.Parallel()

	assert.True(t, Float(1).LessThan(2))
	assert.False(t, Float(2).LessThan(1))
	assert.True(t, Float(2.5).Equals(2.5))
	assert.Equal(t, compare.Greater, Float(10).Compare(8))

	assert.True(t, Float(8).IsFinite())
	assert.False(t, Float(math.NaN()).IsFinite())
	assert.False(t, Float(math.Inf(1)).IsFinite())
	assert.False(t, Float(math.Inf(-1)).IsFinite())
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.True(t, String("Dewey").LessThan("Huey"))
	assert.True(t, String("Huey").LessThan("Louie"))
	assert.True(t, String("Zed").LessThan("apple"), "byte order")
	assert.True(t, String("Huey").Equals("Huey"))
	assert.Equal(t, compare.Equal, String("Huey").Compare("Huey"))
	assert.Equal(t, compare.Less, String("Daffy").Compare("Donald"))
}

func TestSort(t *testing.T) {
	t.Parallel()

	items := []String{"Louie", "Dewey", "Huey", "Donald"}
	Sort(items)

	assert.Equal(t, []String{"Dewey", "Donald", "Huey", "Louie"}, items)
	assert.True(t, IsSorted(items))
}

func TestSort_Empty(t *testing.T) {
	t.Parallel()

	var items []Float

	Sort(items)
	assert.Empty(t, items)
	assert.True(t, IsSorted(items))
}

func TestSortStable(t *testing.T) {
	t.Parallel()

	items := []pair{
		{key: 2, tag: "a"},
		{key: 1, tag: "b"},
		{key: 2, tag: "c"},
		{key: 1, tag: "d"},
	}

	SortStable(items)

	tags := make([]string, 0, len(items))
	for _, p := range items {
		tags = append(tags, p.tag)
	}

	assert.Equal(t, []string{"b", "d", "a", "c"}, tags)
}

func TestIsSorted(t *testing.T) {
	t.Parallel()

	assert.True(t, IsSorted([]Float{1, 2, 2, 3}))
	assert.False(t, IsSorted([]Float{1, 3, 2}))
}

func TestSorter(t *testing.T) {
	t.Parallel()

	const name = "test_sorter"

	sorter := NewSorter[Float](name)
	assert.Equal(t, name, sorter.Name())

	items := []Float{8, 2, 7, 2, 10, 2}
	first := sorter.Sort(items)

	assert.Equal(t, []Float{2, 2, 2, 7, 8, 10}, items)
	assert.Positive(t, first)
	assert.Equal(t, first, sorter.Comparisons())

	second := sorter.Sort(items)
	assert.Equal(t, first+second, sorter.Comparisons())

	require.InDelta(t, 2, testutil.ToFloat64(sortRuns.WithLabelValues(name)), 0)
	require.InDelta(t, 12, testutil.ToFloat64(sortElements.WithLabelValues(name)), 0)
	require.InDelta(t, float64(first+second), testutil.ToFloat64(sortComparisons.WithLabelValues(name)), 0)
}

func TestSorter_Stable(t *testing.T) {
	t.Parallel()

	sorter := NewSorter[pair]("test_sorter_stable", Stable())

	items := []pair{
		{key: 3, tag: "x"},
		{key: 3, tag: "y"},
		{key: 1, tag: "z"},
		{key: 3, tag: "w"},
	}

	sorter.Sort(items)

	assert.Equal(t, []pair{
		{key: 1, tag: "z"},
		{key: 3, tag: "x"},
		{key: 3, tag: "y"},
		{key: 3, tag: "w"},
	}, items)
}

func TestSorter_CountsEveryLessThan(t *testing.T) {
	t.Parallel()

	const name = "test_sorter_tally"

	var calls int64

	keys := []Float{8, 2, 7, 2, 10, 2, 2, 7}
	items := make([]tallied, 0, len(keys))

	for _, k := range keys {
		items = append(items, tallied{key: k, calls: &calls})
	}

	var total int64

	for _, opts := range [][]SorterOption{nil, {Stable()}} {
		calls = 0
		sorter := NewSorter[tallied](name, opts...)

		got := sorter.Sort(items)

		assert.Positive(t, calls)
		assert.Equal(t, calls, got)
		assert.Equal(t, calls, sorter.Comparisons())

		total += calls
	}

	require.InDelta(t, float64(total), testutil.ToFloat64(sortComparisons.WithLabelValues(name)), 0)
}

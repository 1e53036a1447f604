package list

import (
	"cmp"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keyed struct {
	key int
	seq int
}

func byKey(a, b keyed) int {
	return cmp.Compare(a.key, b.key)
}

func randomInts(r *rand.Rand, n int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = r.Intn(20)
	}
	return values
}

func TestSortThenReverse(t *testing.T) {
	l := Of(3, 1, 4, 6, 5, 9)
	nine := l.Begin().Advance(5)

	Sort(l)
	requireValues(t, l, []int{1, 3, 4, 5, 6, 9})
	assert.Equal(t, 9, *nine.Value())
	assert.Equal(t, l.End(), nine.Next())

	l.Reverse()
	requireValues(t, l, []int{9, 6, 5, 4, 3, 1})
	assert.Equal(t, l.Begin(), nine)
}

func TestSortDescending(t *testing.T) {
	l := Of(8, 7, 5, 9, 0, 1, 3, 2, 6, 4)
	Sort(l)
	requireValues(t, l, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})

	l.SortFunc(func(a, b int) int {
		return cmp.Compare(b, a)
	})
	requireValues(t, l, []int{9, 8, 7, 6, 5, 4, 3, 2, 1, 0})
}

func TestSortIsStable(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for _, n := range []int{0, 1, 2, 3, 17, 64, 1000} {
		items := make([]keyed, n)
		for i := range items {
			items[i] = keyed{key: r.Intn(5), seq: i}
		}
		l := NewList(items)
		l.SortFunc(byKey)

		expected := slices.Clone(items)
		slices.SortStableFunc(expected, byKey)
		requireValues(t, l, expected)

		// 排序是幂等的
		l.SortFunc(byKey)
		requireValues(t, l, expected)
	}
}

func TestReverseRoundTrip(t *testing.T) {
	for _, values := range [][]int{{}, {1}, {1, 2}, {8, 7, 5, 9, 0, 1, 3, 2, 6, 4}} {
		l := NewList(values)
		l.Reverse()
		reversed := slices.Clone(values)
		slices.Reverse(reversed)
		requireValues(t, l, reversed)

		l.Reverse()
		requireValues(t, l, values)
	}
}

func TestMerge(t *testing.T) {
	list1 := Of(5, 9, 0, 1, 3)
	list2 := Of(8, 7, 2, 6, 4)
	Sort(list1)
	Sort(list2)
	requireValues(t, list1, []int{0, 1, 3, 5, 9})
	requireValues(t, list2, []int{2, 4, 6, 7, 8})

	eight := list2.Begin().Advance(4)
	Merge(list1, list2)
	requireValues(t, list1, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	assert.True(t, list2.Empty())
	assert.Equal(t, 0, list2.Len())
	assert.Equal(t, eight, list1.Begin().Advance(8))

	Merge(list1, list1)
	assert.Equal(t, 10, list1.Len())
	Merge(list1, New[int]())
	assert.Equal(t, 10, list1.Len())
}

// failAt 返回一个在第calls次调用时panic的比较函数
func failAt(calls int) func(a, b int) int {
	n := 0
	return func(a, b int) int {
		n++
		if n == calls {
			panic("comparator failed")
		}
		return cmp.Compare(a, b)
	}
}

func TestSortFuncComparatorPanic(t *testing.T) {
	for calls := 1; calls <= 6; calls++ {
		l := Of(5, 4, 3, 2, 1, 0)
		assert.PanicsWithValue(t, "comparator failed", func() {
			l.SortFunc(failAt(calls))
		})
		values := l.Values()
		assert.Equal(t, l.Len(), len(values))
		assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5}, values)

		// 链表仍然可以正常使用
		Sort(l)
		requireValues(t, l, []int{0, 1, 2, 3, 4, 5})
	}
}

func TestMergeFuncComparatorPanic(t *testing.T) {
	for calls := 1; calls <= 6; calls++ {
		a := Of(1, 3, 5, 7)
		b := Of(2, 4, 6, 8)
		assert.PanicsWithValue(t, "comparator failed", func() {
			a.MergeFunc(b, failAt(calls))
		})
		values := a.Values()
		assert.Equal(t, a.Len(), len(values))
		assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, values)
		requireValues(t, b, []int{})
		assert.True(t, b.Empty())
	}
}

func TestMergeIsStable(t *testing.T) {
	a := Of(keyed{1, 0}, keyed{2, 1}, keyed{2, 2}, keyed{3, 3})
	b := Of(keyed{1, 10}, keyed{2, 11}, keyed{4, 12})
	a.MergeFunc(b, byKey)
	requireValues(t, a, []keyed{
		{1, 0}, {1, 10}, {2, 1}, {2, 2}, {2, 11}, {3, 3}, {4, 12},
	})
}

func TestMergeRandom(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		v1, v2 := randomInts(r, r.Intn(30)), randomInts(r, r.Intn(30))
		l1, l2 := NewList(v1), NewList(v2)
		Sort(l1)
		Sort(l2)
		Merge(l1, l2)

		merged := l1.Values()
		assert.Len(t, merged, len(v1)+len(v2))
		assert.True(t, slices.IsSorted(merged))
		assert.ElementsMatch(t, append(slices.Clone(v1), v2...), merged)
		assert.True(t, l2.Empty())
	}
}

func TestUnique(t *testing.T) {
	l := Of(1, 2, 2, 3, 3, 2, 1, 1, 2)
	assert.Equal(t, 3, Unique(l))
	requireValues(t, l, []int{1, 2, 3, 2, 1, 2})

	assert.Equal(t, 0, Unique(New[int]()))
	assert.Equal(t, 0, Unique(Of(1)))
}

func TestUniqueFuncComparesWithRunHead(t *testing.T) {
	l := Of(1, 2, 3, 4)
	removed := l.UniqueFunc(func(a, b int) bool {
		return b-a <= 1
	})
	assert.Equal(t, 2, removed)
	requireValues(t, l, []int{1, 3})
}

func TestRemove(t *testing.T) {
	l := Of(1, 100, 2, 3, 10, 1, 11, -1, 12)

	assert.Equal(t, 2, Remove(l, 1))
	requireValues(t, l, []int{100, 2, 3, 10, 11, -1, 12})

	removed := l.RemoveIf(func(v int) bool {
		return v > 10
	})
	assert.Equal(t, 3, removed)
	requireValues(t, l, []int{2, 3, 10, -1})

	assert.Equal(t, 0, Remove(l, 42))
}

func TestSpliceAfterRange(t *testing.T) {
	l1 := Of(1, 2, 3, 4, 5)
	l2 := Of(10, 11, 12)
	three := l1.Begin().Advance(2)
	ref := three.Value()

	l2.SpliceAfterRange(l2.Begin(), l1, l1.Begin(), l1.End())
	requireValues(t, l1, []int{1})
	requireValues(t, l2, []int{10, 2, 3, 4, 5, 11, 12})

	// 节点没有被复制
	assert.Same(t, ref, l2.Begin().Advance(2).Value())
	assert.Equal(t, three, l2.Begin().Advance(2))

	// 空范围
	l2.SpliceAfterRange(l2.BeforeBegin(), l1, l1.Begin(), l1.End())
	requireValues(t, l1, []int{1})
	assert.Equal(t, 7, l2.Len())
}

func TestSpliceAfterWithinList(t *testing.T) {
	l := Of(1, 2, 3, 4, 5)
	l.SpliceAfterRange(l.Begin().Advance(3), l, l.Begin(), l.Begin().Advance(2))
	requireValues(t, l, []int{1, 3, 4, 2, 5})

	l.SpliceAfterOne(l.BeforeBegin(), l, l.Begin().Advance(3))
	requireValues(t, l, []int{5, 1, 3, 4, 2})

	// pos 等于 it 或 it 的下一个时不做任何操作
	l.SpliceAfterOne(l.Begin(), l, l.Begin())
	l.SpliceAfterOne(l.Begin().Next(), l, l.Begin())
	requireValues(t, l, []int{5, 1, 3, 4, 2})
}

func TestSpliceAfterRangeMalformed(t *testing.T) {
	l1 := Of(1, 2, 3)
	l2 := Of(10, 11, 12)

	// last 在 first 之前，从first出发到不了last
	assert.PanicsWithValue(t, ErrNoSuccessor, func() {
		l1.SpliceAfterRange(l1.Begin(), l2, l2.Begin().Next(), l2.Begin())
	})
	requireValues(t, l1, []int{1, 2, 3})
	requireValues(t, l2, []int{10, 11, 12})
}

func TestSpliceAfterOne(t *testing.T) {
	dst := Of(1, 2)
	src := Of(7, 8, 9)
	eight := src.Begin().Next()

	dst.SpliceAfterOne(dst.Begin(), src, src.Begin())
	requireValues(t, dst, []int{1, 8, 2})
	requireValues(t, src, []int{7, 9})
	assert.Equal(t, eight, dst.Begin().Next())

	assert.PanicsWithValue(t, ErrNoSuccessor, func() {
		dst.SpliceAfterOne(dst.Begin(), src, src.Begin().Next())
	})
}

func TestSpliceAfterWholeList(t *testing.T) {
	dst := Of(1, 5)
	src := Of(2, 3, 4)
	ref := src.Front()

	dst.SpliceAfter(dst.Begin(), src)
	requireValues(t, dst, []int{1, 2, 3, 4, 5})
	assert.True(t, src.Empty())
	assert.Equal(t, 0, src.Len())
	assert.Same(t, ref, dst.Begin().Next().Value())

	dst.SpliceAfter(dst.BeforeBegin(), src)
	dst.SpliceAfter(dst.BeforeBegin(), dst)
	requireValues(t, dst, []int{1, 2, 3, 4, 5})

	require.PanicsWithValue(t, ErrNilList, func() {
		dst.SpliceAfter(dst.BeforeBegin(), nil)
	})
}

package demo

import (
	"cmp"
	"fmt"
	"io"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"

	"flist/datastruct/list"
)

func mergeSection(w io.Writer) {
	list1 := list.Of(5, 9, 0, 1, 3)
	list2 := list.Of(8, 7, 2, 6, 4)

	list.Sort(list1)
	list.Sort(list2)
	show(w, "list1:  ", list1)
	show(w, "list2:  ", list2)
	list.Merge(list1, list2)
	show(w, "merged: ", list1)
}

func spliceAfterSection(w io.Writer) {
	l1 := list.Of(1, 2, 3, 4, 5)
	l2 := list.Of(10, 11, 12)

	show(w, "", l1)
	show(w, "", l2)

	// 和 l2.SpliceAfter(l2.Begin(), l1) 不同，l1的第一个元素不会被移动
	l2.SpliceAfterRange(l2.Begin(), l1, l1.Begin(), l1.End())

	show(w, "", l1)
	show(w, "", l2)
}

func removeSection(w io.Writer) {
	l := list.Of(1, 100, 2, 3, 10, 1, 11, -1, 12)
	show(w, "", l)

	list.Remove(l, 1)
	show(w, "", l)

	l.RemoveIf(func(n int) bool {
		return n > 10
	})
	show(w, "", l)
}

func reverseSection(w io.Writer) {
	l := list.Of(8, 7, 5, 9, 0, 1, 3, 2, 6, 4)
	show(w, "before:     ", l)

	list.Sort(l)
	show(w, "ascending:  ", l)

	l.Reverse()
	show(w, "descending: ", l)
}

func uniqueSection(w io.Writer) {
	l := list.Of(1, 2, 2, 3, 3, 2, 1, 1, 2)
	show(w, "contents before:         ", l)

	list.Unique(l)
	show(w, "contents after Unique(): ", l)
}

func sortSection(w io.Writer) {
	l := list.Of(8, 7, 5, 9, 0, 1, 3, 2, 6, 4)
	show(w, "before:     ", l)

	list.Sort(l)
	show(w, "ascending:  ", l)

	l.SortFunc(func(a, b int) int {
		return cmp.Compare(b, a)
	})
	show(w, "descending: ", l)
}

// containerSection 以gods Container的方式使用ForwardList
func containerSection(w io.Writer) {
	l := list.Of(8, 7, 5, 9, 0)
	c := l.Container()
	fmt.Fprintln(w, c)
	fmt.Fprintf(w, "size: %d sorted view: %v\n", c.Size(), containers.GetSortedValues(c, utils.IntComparator))

	l.SortFunc(list.FromComparator[int](utils.IntComparator))
	show(w, "sorted with gods comparator: ", l)
}

package demo

import (
	"fmt"
	"io"

	"github.com/duke-git/lancet/v2/strutil"

	"flist/datastruct/list"
)

func compareSection(w io.Writer) {
	alice := list.Of(1, 2, 3)
	bob := list.Of(7, 8, 9, 10)
	eve := list.Of(1, 2, 3)

	type comparison struct {
		op string
		fn func(a, b *list.ForwardList[int]) bool
	}
	comparisons := []comparison{
		{"==", list.Equal[int]},
		{"!=", list.NotEqual[int]},
		{"<", list.Less[int]},
		{"<=", list.LessEqual[int]},
		{">", list.Greater[int]},
		{">=", list.GreaterEqual[int]},
	}

	for _, other := range []struct {
		name string
		l    *list.ForwardList[int]
	}{{"bob", bob}, {"eve", eve}} {
		for _, c := range comparisons {
			fmt.Fprintf(w, "alice %s %s returns %t\n", strutil.PadEnd(c.op, 2, " "), other.name, c.fn(alice, other.l))
		}
		fmt.Fprintf(w, "Compare(alice, %s) returns %d\n", other.name, list.Compare(alice, other.l))
		fmt.Fprintln(w)
	}
}

func freeSwapSection(w io.Writer) {
	alice := list.Of(1, 2, 3)
	bob := list.Of(7, 8, 9, 10)

	show(w, "before [alice]: ", alice)
	show(w, "       [bob]  : ", bob)

	fmt.Fprintln(w, "-- SWAP")
	list.Swap(alice, bob)

	show(w, "after  [alice]: ", alice)
	show(w, "       [bob]  : ", bob)
}

func eraseSection(w io.Writer) {
	printChars := func(comment string, chars *list.ForwardList[rune]) {
		fmt.Fprint(w, comment)
		for c := range chars.All() {
			fmt.Fprintf(w, "%c ", c)
		}
		fmt.Fprintln(w)
	}

	cnt := list.NewSized[rune](10)
	next := '0'
	for c := range cnt.Pointers() {
		*c = next
		next++
	}
	printChars("Init:\n", cnt)

	list.Erase(cnt, '3')
	printChars("Erase '3':\n", cnt)

	erased := list.EraseIf(cnt, func(x rune) bool {
		return (x-'0')%2 == 0
	})
	printChars("Erase all even numbers:\n", cnt)
	fmt.Fprintf(w, "In all %d even numbers were erased.\n", erased)
}

func fromRangeSection(w io.Writer) {
	vec := []int{1, 2, 3, 4}

	xlst := list.NewList(vec)
	for x := range xlst.All() {
		fmt.Fprintf(w, "%4d", x)
	}
	fmt.Fprintln(w)

	// ylst 保存的是xlst中的位置，反转前后的头元素构成区间 [begin, end)
	ylst := list.Of(xlst.Begin(), xlst.End())
	i1 := *ylst.Front()
	ylst.Reverse()
	i2 := *ylst.Front()
	acc := 0
	for p := i1; p != i2; p = p.Next() {
		acc += *p.Value()
	}
	fmt.Fprintf(w, "%4d\n", acc)
}

package demo

import (
	"fmt"
	"io"

	"flist/datastruct/list"
)

func clearSection(w io.Writer) {
	container := list.Of(1, 2, 3)

	fmt.Fprint(w, "Before clear:")
	for v := range container.All() {
		fmt.Fprintf(w, " %d", v)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Clear")
	container.Clear()

	fmt.Fprint(w, "After clear:")
	for v := range container.All() {
		fmt.Fprintf(w, " %d", v)
	}
	fmt.Fprintln(w)
}

func insertAfterSection(w io.Writer) {
	words := list.Of("the", "frogurt", "is", "also", "cursed")
	show(w, "words: ", words)

	beginIt := words.Begin()
	words.InsertAfter(beginIt, "strawberry")
	show(w, "words: ", words)

	anotherIt := beginIt.Next()
	anotherIt = words.InsertAfterN(anotherIt, 2, "strawberry")
	show(w, "words: ", words)

	fruits := list.Of("apple", "banana", "cherry")
	anotherIt = words.InsertAfterRange(anotherIt, fruits.Begin(), fruits.End())
	show(w, "words: ", words)

	words.InsertAfterValues(anotherIt, "jackfruit", "kiwifruit", "lime", "mango")
	show(w, "words: ", words)
}

type partialSum struct {
	remark string
	sum    int
}

func emplaceAfterSection(w io.Writer) {
	sums := list.New[partialSum]()

	it := sums.BeforeBegin()
	remark := "1"
	for ix, sum := 1, 1; ix != 10; sum += ix {
		it = sums.EmplaceAfter(it, func(v *partialSum) {
			v.remark = remark
			v.sum = sum
		})
		ix++
		remark += fmt.Sprintf(" + %d", ix)
	}

	for s := range sums.All() {
		fmt.Fprintf(w, "%s = %d\n", s.remark, s.sum)
	}
}

func eraseAfterSection(w io.Writer) {
	nums := list.Of(1, 2, 3, 4, 5, 6, 7, 8, 9)

	// 删除第一个元素
	nums.EraseAfter(nums.BeforeBegin())
	showEach(w, nums, " ")

	fi := nums.Begin().Next()
	la := fi.Advance(3)
	nums.EraseAfterRange(fi, la)
	showEach(w, nums, " ")
}

func pushFrontSection(w io.Writer) {
	lines := henryV()
	showLines(w, lines)

	for i := len(prologue) - 1; i >= 0; i-- {
		lines.PushFront(prologue[i])
	}
	showLines(w, lines)
}

func emplaceFrontSection(w io.Writer) {
	lines := henryV()
	showLines(w, lines)

	for i := len(prologue) - 1; i >= 0; i-- {
		line := prologue[i]
		lines.EmplaceFront(func(v *string) {
			*v = line
		})
	}
	showLines(w, lines)
}

func popFrontSection(w io.Writer) {
	lines := list.NewList(prologue)
	lines.InsertAfterSeq(lines.Begin().Advance(len(prologue)-1), henryV().All())
	showLines(w, lines)

	for i := 0; i < 3; i++ {
		lines.PopFront()
	}
	showLines(w, lines)
}

func resizeSection(w io.Writer) {
	container := list.Of(1, 2, 3)
	fmt.Fprint(w, "The ForwardList holds: ")
	showEach(w, container, " ")

	container.Resize(5)
	fmt.Fprint(w, "After resize up to 5: ")
	showEach(w, container, " ")

	container.Resize(2)
	fmt.Fprint(w, "After resize down to 2: ")
	showEach(w, container, " ")
}

func swapSection(w io.Writer) {
	a1, a2 := list.Of(1, 2, 3), list.Of(4, 5)

	it1 := a1.Begin().Next()
	it2 := a2.Begin().Next()
	ref1 := a1.Front()
	ref2 := a2.Front()

	fmt.Fprintf(w, "%s%s %d %d %d %d\n", a1, a2, *it1.Value(), *it2.Value(), *ref1, *ref2)
	a1.Swap(a2)
	fmt.Fprintf(w, "%s%s %d %d %d %d\n", a1, a2, *it1.Value(), *it2.Value(), *ref1, *ref2)

	// 交换之后位置和引用仍然指向原来的元素，例如it1指向的2现在属于a2
}

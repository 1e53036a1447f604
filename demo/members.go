package demo

import (
	"fmt"
	"io"

	"github.com/duke-git/lancet/v2/strutil"

	"flist/datastruct/list"
)

func henryV() *list.ForwardList[string] {
	return list.Of(
		"O for a Muse of fire, that would ascend",
		"The brightest heaven of invention,",
		"A kingdom for a stage, princes to act",
		"And monarchs to behold the swelling scene!",
	)
}

var prologue = []string{
	"The Life of King Henry the Fifth.",
	"Act I.",
	"Prolog.\n",
}

func constructorSection(w io.Writer) {
	words1 := list.Of("the", "frogurt", "is", "also", "cursed")
	show(w, "words1: ", words1)

	// words2 == words1
	words2 := list.NewFromRange(words1.Begin(), words1.End())
	show(w, "words2: ", words2)

	// words3 == words1
	words3 := words1.Clone()
	show(w, "words3: ", words3)

	words4 := list.NewFilled(5, "Mo")
	show(w, "words4: ", words4)
}

func assignmentSection(w io.Writer) {
	displaySizes := func(nums1, nums2, nums3 *list.ForwardList[int]) {
		fmt.Fprintf(w, "nums1: %d nums2: %d nums3: %d\n", nums1.Len(), nums2.Len(), nums3.Len())
	}

	nums1 := list.Of(3, 1, 4, 6, 5, 9)
	nums2 := list.New[int]()
	nums3 := list.New[int]()

	fmt.Fprintln(w, "Initially:")
	displaySizes(nums1, nums2, nums3)

	nums2.CopyFrom(nums1)
	fmt.Fprintln(w, "After assignment:")
	displaySizes(nums1, nums2, nums3)

	nums3.MoveFrom(nums1)
	fmt.Fprintln(w, "After move assignment:")
	displaySizes(nums1, nums2, nums3)
}

func assignSection(w io.Writer) {
	characters := list.New[string]()

	characters.Assign(5, "a")
	showEach(w, characters, " ")

	extra := list.NewFilled(6, "b")
	characters.AssignRange(extra.Begin(), extra.End())
	showEach(w, characters, " ")

	characters.AssignValues("C", "+", "+", "1", "1")
	showEach(w, characters, " ")
}

func frontSection(w io.Writer) {
	letters := list.Of("o", "m", "g", "w", "t", "f")
	if !letters.Empty() {
		fmt.Fprintf(w, "The first character is %s.\n", strutil.Wrap(*letters.Front(), "'"))
	}
}

func beforeBeginSection(w io.Writer) {
	lines := henryV()
	showLines(w, lines)

	it := lines.BeforeBegin()
	for i := len(prologue) - 1; i >= 0; i-- {
		lines.InsertAfter(it, prologue[i])
	}
	showLines(w, lines)
}

func beginSection(w io.Writer) {
	nums := list.Of(1, 2, 4, 8, 16)
	fruits := list.Of("orange", "apple", "raspberry")
	empty := list.New[rune]()

	showEach(w, nums, " ")

	total := 0
	for n := range nums.All() {
		total += n
	}
	fmt.Fprintf(w, "Sum of nums: %d\n", total)

	if !fruits.Empty() {
		fmt.Fprintf(w, "First fruit: %s\n", *fruits.Begin().Value())
	}

	if empty.Begin() == empty.End() {
		fmt.Fprintln(w, "ForwardList 'empty' is indeed empty.")
	}
}

func emptySection(w io.Writer) {
	numbers := list.New[int]()
	fmt.Fprintf(w, "Initially, numbers.Empty(): %t\n", numbers.Empty())

	numbers.PushFront(42)
	numbers.PushFront(13317)
	fmt.Fprintf(w, "After adding elements, numbers.Empty(): %t\n", numbers.Empty())
}

func maxSizeSection(w io.Writer) {
	s := list.New[byte]()
	fmt.Fprintf(w, "Maximum size of a 'ForwardList' is %d\n", s.MaxLen())
}

package demo

import (
	"fmt"
	"io"

	"github.com/duke-git/lancet/v2/convertor"

	"flist/datastruct/list"
)

// show 打印 label 和 [a, b, c] 形式的链表
func show[T any](w io.Writer, label string, l *list.ForwardList[T]) {
	fmt.Fprintf(w, "%s%s\n", label, l)
}

// showEach 每个元素后面跟一个sep
func showEach[T any](w io.Writer, l *list.ForwardList[T], sep string) {
	for v := range l.All() {
		fmt.Fprint(w, convertor.ToString(v), sep)
	}
	fmt.Fprintln(w)
}

// showLines 每个元素占一行，最后空一行
func showLines(w io.Writer, l *list.ForwardList[string]) {
	for line := range l.All() {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)
}

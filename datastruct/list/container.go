package list

import (
	"strings"

	"github.com/duke-git/lancet/v2/convertor"
	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/utils"
)

// containerView 让ForwardList可以作为gods的Container使用
type containerView[T any] struct {
	l *ForwardList[T]
}

var _ containers.Container = containerView[int]{}

// Container 返回l的gods视图，对视图的修改直接作用于l
func (l *ForwardList[T]) Container() containers.Container {
	return containerView[T]{l: l}
}

func (c containerView[T]) Empty() bool {
	return c.l.Empty()
}

func (c containerView[T]) Size() int {
	return c.l.Len()
}

func (c containerView[T]) Clear() {
	c.l.Clear()
}

func (c containerView[T]) Values() []interface{} {
	values := make([]interface{}, 0, c.l.Len())
	for v := range c.l.All() {
		values = append(values, v)
	}
	return values
}

func (c containerView[T]) String() string {
	return "ForwardList\n" + c.l.join(", ")
}

// FromComparator 把gods的Comparator转换成 SortFunc/MergeFunc 使用的比较函数
func FromComparator[T any](c utils.Comparator) func(a, b T) int {
	return func(a, b T) int {
		return c(a, b)
	}
}

// String 返回形如 [a, b, c] 的字符串
func (l *ForwardList[T]) String() string {
	return "[" + l.join(", ") + "]"
}

func (l *ForwardList[T]) join(sep string) string {
	var sb strings.Builder
	for idx, v := range l.Enumerate() {
		if idx > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(convertor.ToString(v))
	}
	return sb.String()
}

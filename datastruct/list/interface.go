package list

import (
	"iter"
	"slices"
)

// Consumer 遍历list
// 接收index和value作为参数，返回true继续遍历，false停止遍历
type Consumer[T any] func(index int, v T) bool

// Predicate 检查给定的元素是否满足条件，满足返回true
type Predicate[T any] func(v T) bool

// New 新建一个空的单向链表
func New[T any]() *ForwardList[T] {
	return &ForwardList[T]{head: &node[T]{}}
}

// NewList 用切片中的元素按顺序构造链表
func NewList[T any](values []T) *ForwardList[T] {
	return NewFromSeq(slices.Values(values))
}

// Of 用字面量序列构造链表
func Of[T any](values ...T) *ForwardList[T] {
	return NewList(values)
}

// NewFilled 构造包含count个v的链表，count<=0时为空链表
func NewFilled[T any](count int, v T) *ForwardList[T] {
	return NewFromSeq(repeat(count, v))
}

// NewSized 构造包含count个零值的链表
func NewSized[T any](count int) *ForwardList[T] {
	var zero T
	return NewFilled(count, zero)
}

// NewFromRange 复制 [first, last) 中的元素构造新链表，first和last必须来自同一个链表
func NewFromRange[T any](first, last Position[T]) *ForwardList[T] {
	return NewFromSeq(between(first, last))
}

// NewFromSeq 按顺序复制seq中的元素构造新链表
func NewFromSeq[T any](seq iter.Seq[T]) *ForwardList[T] {
	l := New[T]()
	l.InsertAfterSeq(l.BeforeBegin(), seq)
	return l
}

func repeat[T any](count int, v T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < count; i++ {
			if !yield(v) {
				return
			}
		}
	}
}

// between 遍历 [first, last)
func between[T any](first, last Position[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := first.n; n != last.n; n = n.next {
			if n == nil {
				panic(ErrNoSuccessor)
			}
			if !yield(n.val) {
				return
			}
		}
	}
}

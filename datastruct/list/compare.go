package list

import "cmp"

// CompareFunc 按遍历顺序逐个比较元素（字典序）
// 公共前缀相同时，较短的链表更小
func CompareFunc[T any](a, b *ForwardList[T], cmp func(x, y T) int) int {
	x, y := a.sentinel().next, b.sentinel().next
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if c := cmp(x.val, y.val); c != 0 {
			return c
		}
	}
	switch {
	case x == nil && y == nil:
		return 0
	case x == nil:
		return -1
	default:
		return 1
	}
}

// Compare 三路比较，返回 -1、0、+1
func Compare[T cmp.Ordered](a, b *ForwardList[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// EqualFunc 长度相等并且每个位置上的元素都满足eq
func EqualFunc[T any](a, b *ForwardList[T], eq func(x, y T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	x, y := a.sentinel().next, b.sentinel().next
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if !eq(x.val, y.val) {
			return false
		}
	}
	return x == nil && y == nil
}

func Equal[T comparable](a, b *ForwardList[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool {
		return x == y
	})
}

func NotEqual[T comparable](a, b *ForwardList[T]) bool {
	return !Equal(a, b)
}

func Less[T cmp.Ordered](a, b *ForwardList[T]) bool {
	return Compare(a, b) < 0
}

func LessEqual[T cmp.Ordered](a, b *ForwardList[T]) bool {
	return Compare(a, b) <= 0
}

func Greater[T cmp.Ordered](a, b *ForwardList[T]) bool {
	return Compare(a, b) > 0
}

func GreaterEqual[T cmp.Ordered](a, b *ForwardList[T]) bool {
	return Compare(a, b) >= 0
}

// Swap 等价于 a.Swap(b)
func Swap[T any](a, b *ForwardList[T]) {
	a.Swap(b)
}

// Erase 删除所有等于v的元素，返回删除的个数
func Erase[T comparable](l *ForwardList[T], v T) int {
	return Remove(l, v)
}

// EraseIf 删除所有满足pred的元素，返回删除的个数
func EraseIf[T any](l *ForwardList[T], pred Predicate[T]) int {
	return l.RemoveIf(pred)
}

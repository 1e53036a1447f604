package list

import (
	"iter"
	"math"
	"slices"
	"unsafe"

	"github.com/duke-git/lancet/v2/mathutil"
)

// ForwardList 单向链表，只支持向前遍历
// 头部插入删除、在给定位置之后插入删除都是O(1)，不支持随机访问和反向遍历
// ForwardList 不是并发安全的，多个goroutine同时访问需要调用方自己加锁
type ForwardList[T any] struct {
	head   *node[T] // 哨兵节点，head.next 指向第一个元素
	length int
}

// node 持有一个元素，并且独占下一个节点
type node[T any] struct {
	val  T
	next *node[T]
}

// sentinel 返回哨兵节点，零值ForwardList也可以直接使用
func (l *ForwardList[T]) sentinel() *node[T] {
	if l.head == nil {
		l.head = &node[T]{}
	}
	return l.head
}

// anchor 返回pos指向的节点，作为insert/erase after的锚点
func anchor[T any](pos Position[T]) *node[T] {
	if pos.n == nil {
		panic(ErrEndPosition)
	}
	return pos.n
}

// chain 把seq中的元素构造成一条独立的节点链，还没有挂到链表上
func chain[T any](seq iter.Seq[T]) (first, last *node[T], count int) {
	for v := range seq {
		n := &node[T]{val: v}
		if last == nil {
			first = n
		} else {
			last.next = n
		}
		last = n
		count++
	}
	return
}

// linkAfter 把 first..last 这条链挂到at之后，返回链的最后一个节点
func (l *ForwardList[T]) linkAfter(at, first, last *node[T], count int) *node[T] {
	if count == 0 {
		return at
	}
	last.next = at.next
	at.next = first
	l.length += count
	return last
}

// release 断开 [first, last) 之间节点的链接，逐个迭代而不是递归
func release[T any](first, last *node[T]) {
	for n := first; n != last; {
		next := n.next
		n.next = nil // for Go garbage collection
		n = next
	}
}

/* 位置与遍历 */

// BeforeBegin 返回第一个元素之前的位置，只能作为 InsertAfter/EraseAfter/SpliceAfter 的参数
func (l *ForwardList[T]) BeforeBegin() Position[T] {
	return Position[T]{n: l.sentinel()}
}

// Begin 返回第一个元素的位置，空链表返回end
func (l *ForwardList[T]) Begin() Position[T] {
	return Position[T]{n: l.sentinel().next}
}

func (l *ForwardList[T]) End() Position[T] {
	return Position[T]{}
}

// All 按顺序遍历所有元素，可以多次遍历
func (l *ForwardList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.sentinel().next; n != nil; n = n.next {
			if !yield(n.val) {
				return
			}
		}
	}
}

// Pointers 按顺序返回所有元素的引用，可以原地修改元素
func (l *ForwardList[T]) Pointers() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := l.sentinel().next; n != nil; n = n.next {
			if !yield(&n.val) {
				return
			}
		}
	}
}

func (l *ForwardList[T]) Enumerate() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		idx := 0
		for n := l.sentinel().next; n != nil; n = n.next {
			if !yield(idx, n.val) {
				return
			}
			idx++
		}
	}
}

func (l *ForwardList[T]) ForEach(consumer Consumer[T]) {
	for idx, v := range l.Enumerate() {
		if !consumer(idx, v) {
			break
		}
	}
}

// Values 返回所有元素的快照
func (l *ForwardList[T]) Values() []T {
	return slices.AppendSeq(make([]T, 0, l.length), l.All())
}

/* 元素访问与容量 */

// Front 返回第一个元素的引用，空链表返回nil
func (l *ForwardList[T]) Front() *T {
	first := l.sentinel().next
	if first == nil {
		return nil
	}
	return &first.val
}

func (l *ForwardList[T]) Empty() bool {
	return l.sentinel().next == nil
}

func (l *ForwardList[T]) Len() int {
	return l.length
}

// MaxLen 理论上能容纳的最大元素个数
func (l *ForwardList[T]) MaxLen() int {
	return math.MaxInt / int(unsafe.Sizeof(node[T]{}))
}

/* 构造与赋值 */

// Clone 深拷贝，元素按赋值语义复制
func (l *ForwardList[T]) Clone() *ForwardList[T] {
	return NewFromSeq(l.All())
}

// Take 把l的所有节点转移到新链表中，l变为空，O(1)
func (l *ForwardList[T]) Take() *ForwardList[T] {
	out := New[T]()
	out.Swap(l)
	return out
}

// CopyFrom 用src的元素替换l的内容
func (l *ForwardList[T]) CopyFrom(src *ForwardList[T]) {
	if src == nil {
		panic(ErrNilList)
	}
	if src == l {
		return
	}
	l.AssignSeq(src.All())
}

// MoveFrom 接管src的所有节点，src变为空，O(1)
func (l *ForwardList[T]) MoveFrom(src *ForwardList[T]) {
	if src == nil {
		panic(ErrNilList)
	}
	if src == l {
		return
	}
	l.Clear()
	l.Swap(src)
}

func (l *ForwardList[T]) Assign(count int, v T) {
	l.AssignSeq(repeat(count, v))
}

// AssignRange 用 [first, last) 的元素替换内容，范围可以来自l自身
func (l *ForwardList[T]) AssignRange(first, last Position[T]) {
	l.AssignSeq(between(first, last))
}

func (l *ForwardList[T]) AssignValues(values ...T) {
	l.AssignSeq(slices.Values(values))
}

// AssignSeq 先构造新的节点链再替换旧内容，所以seq读取l自身也是安全的
func (l *ForwardList[T]) AssignSeq(seq iter.Seq[T]) {
	first, last, count := chain(seq)
	l.Clear()
	l.linkAfter(l.sentinel(), first, last, count)
}

/* 插入 */

// InsertAfter 在pos之后插入v，返回新元素的位置
func (l *ForwardList[T]) InsertAfter(pos Position[T], v T) Position[T] {
	at := anchor(pos)
	n := &node[T]{val: v}
	return Position[T]{n: l.linkAfter(at, n, n, 1)}
}

// InsertAfterN 在pos之后插入count个v，返回最后一个插入元素的位置，没有插入时返回pos
func (l *ForwardList[T]) InsertAfterN(pos Position[T], count int, v T) Position[T] {
	return l.InsertAfterSeq(pos, repeat(count, v))
}

// InsertAfterRange 在pos之后插入 [first, last) 的副本
func (l *ForwardList[T]) InsertAfterRange(pos Position[T], first, last Position[T]) Position[T] {
	return l.InsertAfterSeq(pos, between(first, last))
}

func (l *ForwardList[T]) InsertAfterValues(pos Position[T], values ...T) Position[T] {
	return l.InsertAfterSeq(pos, slices.Values(values))
}

// InsertAfterSeq 插入seq中的所有元素并保持顺序
// 新节点先串成一条独立的链，最后一次性挂到pos之后
func (l *ForwardList[T]) InsertAfterSeq(pos Position[T], seq iter.Seq[T]) Position[T] {
	at := anchor(pos)
	first, last, count := chain(seq)
	return Position[T]{n: l.linkAfter(at, first, last, count)}
}

// EmplaceAfter 在pos之后新建节点，并由init直接初始化节点中的元素
func (l *ForwardList[T]) EmplaceAfter(pos Position[T], init func(v *T)) Position[T] {
	at := anchor(pos)
	n := &node[T]{}
	if init != nil {
		init(&n.val)
	}
	return Position[T]{n: l.linkAfter(at, n, n, 1)}
}

func (l *ForwardList[T]) PushFront(v T) {
	l.InsertAfter(l.BeforeBegin(), v)
}

func (l *ForwardList[T]) EmplaceFront(init func(v *T)) {
	l.EmplaceAfter(l.BeforeBegin(), init)
}

// PopFront 移除头元素并返回，空链表返回false
func (l *ForwardList[T]) PopFront() (val T, ok bool) {
	if l.Empty() {
		return val, false
	}
	val = l.sentinel().next.val
	l.EraseAfter(l.BeforeBegin())
	return val, true
}

/* 删除 */

// EraseAfter 删除pos之后的节点，返回被删除节点之后的位置
func (l *ForwardList[T]) EraseAfter(pos Position[T]) Position[T] {
	at := anchor(pos)
	victim := at.next
	if victim == nil {
		panic(ErrNoSuccessor)
	}
	at.next = victim.next
	victim.next = nil
	l.length--
	return Position[T]{n: at.next}
}

// EraseAfterRange 删除 (first, last) 之间的节点，返回last
// 先检查last可达再修改链表，范围不合法时链表保持不变
func (l *ForwardList[T]) EraseAfterRange(first, last Position[T]) Position[T] {
	at := anchor(first)
	count := 0
	for n := at.next; n != last.n; n = n.next {
		if n == nil {
			panic(ErrNoSuccessor)
		}
		count++
	}
	if count == 0 {
		return last
	}
	victims := at.next
	at.next = last.n
	release(victims, last.n)
	l.length -= count
	return last
}

// Clear 删除所有节点，哨兵节点保留，所以之前的 BeforeBegin 位置仍然有效
func (l *ForwardList[T]) Clear() {
	h := l.sentinel()
	release(h.next, nil)
	h.next = nil
	l.length = 0
}

// Resize 调整元素个数为count，新增的元素为零值
func (l *ForwardList[T]) Resize(count int) {
	var zero T
	l.ResizeWith(count, zero)
}

// ResizeWith 调整元素个数为count
// count小于当前长度时删除尾部多余的节点；大于时在末尾追加 count-Len() 个fill
func (l *ForwardList[T]) ResizeWith(count int, fill T) {
	count = mathutil.Max(count, 0)
	at := l.sentinel()
	kept := 0
	for kept < count && at.next != nil {
		at = at.next
		kept++
	}
	if kept == count {
		l.EraseAfterRange(Position[T]{n: at}, End[T]())
		return
	}
	l.InsertAfterN(Position[T]{n: at}, count-kept, fill)
}

// Swap 交换两个链表的内容，O(1)
// 只交换哨兵之后的链，节点不动，指向元素的Position继续指向原来的元素
func (l *ForwardList[T]) Swap(other *ForwardList[T]) {
	if other == nil {
		panic(ErrNilList)
	}
	if other == l {
		return
	}
	a, b := l.sentinel(), other.sentinel()
	a.next, b.next = b.next, a.next
	l.length, other.length = other.length, l.length
}

package list

import "cmp"

// 本文件中的操作只修改节点之间的链接，不复制也不重新分配节点，
// 指向元素的Position和引用在操作之后仍然指向原来的元素

// mergeInto 合并两条已排序的链并写入out，相等的元素a中的在前
// cmp panic时把剩余的a、b接在已合并部分之后再写入out，节点不会丢失
func mergeInto[T any](out **node[T], a, b *node[T], cmp func(x, y T) int) {
	var head node[T]
	tail := &head
	defer func() {
		if r := recover(); r != nil {
			tail.next = a
			for tail.next != nil {
				tail = tail.next
			}
			tail.next = b
			*out = head.next
			panic(r)
		}
	}()
	for a != nil && b != nil {
		if cmp(b.val, a.val) < 0 {
			tail.next = b
			b = b.next
		} else {
			tail.next = a
			a = a.next
		}
		tail = tail.next
	}
	if a != nil {
		tail.next = a
	} else {
		tail.next = b
	}
	*out = head.next
}

// joinChains 按顺序首尾相连，忽略nil
func joinChains[T any](chains ...*node[T]) *node[T] {
	var head node[T]
	tail := &head
	for _, c := range chains {
		if c == nil {
			continue
		}
		tail.next = c
		for tail.next != nil {
			tail = tail.next
		}
	}
	return head.next
}

// sortChain 自底向上的归并排序，结果写回out
// bins[i] 保存长度为 2^i 的有序链，编号越大的bin里的元素在输入中越靠前，合并时总是把它放在前面以保证稳定
// cmp panic时所有节点按未指定的顺序重新串回out
func sortChain[T any](out **node[T], cmp func(x, y T) int) {
	head := *out
	var bins [64]*node[T]
	var run, sorted *node[T]
	defer func() {
		if r := recover(); r != nil {
			chains := append([]*node[T]{sorted, run}, bins[:]...)
			*out = joinChains(append(chains, head)...)
			panic(r)
		}
	}()
	for head != nil {
		run = head
		head = head.next
		run.next = nil
		i := 0
		for ; bins[i] != nil; i++ {
			bin := bins[i]
			bins[i] = nil
			mergeInto(&run, bin, run, cmp)
		}
		bins[i] = run
		run = nil
	}
	for i, bin := range bins {
		if bin != nil {
			bins[i] = nil
			mergeInto(&sorted, bin, sorted, cmp)
		}
	}
	*out = sorted
}

// MergeFunc 把已按cmp排好序的other合并进已排序的l，other变为空
// 合并是稳定的：相等的元素中l的在前。cmp panic时other的节点也已经全部移到l中
func (l *ForwardList[T]) MergeFunc(other *ForwardList[T], cmp func(a, b T) int) {
	if other == nil {
		panic(ErrNilList)
	}
	if other == l {
		return
	}
	src := other.sentinel()
	if src.next == nil {
		return
	}
	h := l.sentinel()
	moved := src.next
	src.next = nil
	l.length += other.length
	other.length = 0
	mergeInto(&h.next, h.next, moved, cmp)
}

// SortFunc 按cmp稳定排序，O(n log n)
// cmp panic时元素都还在链表中，只是顺序未指定
func (l *ForwardList[T]) SortFunc(cmp func(a, b T) int) {
	h := l.sentinel()
	if h.next == nil || h.next.next == nil {
		return
	}
	sortChain(&h.next, cmp)
}

// Reverse 原地反转链接方向
func (l *ForwardList[T]) Reverse() {
	h := l.sentinel()
	var prev *node[T]
	cur := h.next
	for cur != nil {
		next := cur.next
		cur.next = prev
		prev = cur
		cur = next
	}
	h.next = prev
}

// UniqueFunc 删除相邻的重复元素，每一段重复只保留第一个，返回删除的个数
// 每个元素都和所在段的第一个元素比较
func (l *ForwardList[T]) UniqueFunc(eq func(a, b T) bool) int {
	cur := l.sentinel().next
	if cur == nil {
		return 0
	}
	removed := 0
	for cur.next != nil {
		if eq(cur.val, cur.next.val) {
			victim := cur.next
			cur.next = victim.next
			victim.next = nil
			removed++
		} else {
			cur = cur.next
		}
	}
	l.length -= removed
	return removed
}

// RemoveIf 删除所有满足pred的元素，剩余元素保持原来的相对顺序，返回删除的个数
func (l *ForwardList[T]) RemoveIf(pred Predicate[T]) int {
	prev := l.sentinel()
	removed := 0
	for cur := prev.next; cur != nil; cur = prev.next {
		if pred(cur.val) {
			prev.next = cur.next
			cur.next = nil
			removed++
		} else {
			prev = cur
		}
	}
	l.length -= removed
	return removed
}

// SpliceAfter 把other的所有节点移动到pos之后，other变为空
// other不能是l本身
func (l *ForwardList[T]) SpliceAfter(pos Position[T], other *ForwardList[T]) {
	if other == nil {
		panic(ErrNilList)
	}
	at := anchor(pos)
	if other == l {
		return
	}
	src := other.sentinel()
	if src.next == nil {
		return
	}
	tail := src.next
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = at.next
	at.next = src.next
	l.length += other.length
	src.next = nil
	other.length = 0
}

// SpliceAfterRange 把other中 (first, last) 之间的节点移动到pos之后
// other可以是l本身，此时pos不能位于 (first, last) 之内
func (l *ForwardList[T]) SpliceAfterRange(pos Position[T], other *ForwardList[T], first, last Position[T]) {
	if other == nil {
		panic(ErrNilList)
	}
	at, from := anchor(pos), anchor(first)
	if from.next == last.n {
		return
	}
	moved := from.next
	tail := moved
	count := 1
	for tail.next != last.n {
		if tail.next == nil {
			panic(ErrNoSuccessor)
		}
		tail = tail.next
		count++
	}
	from.next = last.n
	tail.next = at.next
	at.next = moved
	if other != l {
		l.length += count
		other.length -= count
	}
}

// SpliceAfterOne 把other中it之后的那个节点移动到pos之后
func (l *ForwardList[T]) SpliceAfterOne(pos Position[T], other *ForwardList[T], it Position[T]) {
	if other == nil {
		panic(ErrNilList)
	}
	at, from := anchor(pos), anchor(it)
	moved := from.next
	if moved == nil {
		panic(ErrNoSuccessor)
	}
	if at == from || at == moved {
		return
	}
	from.next = moved.next
	moved.next = at.next
	at.next = moved
	if other != l {
		l.length++
		other.length--
	}
}

// Sort 按元素的自然顺序升序稳定排序
func Sort[T cmp.Ordered](l *ForwardList[T]) {
	l.SortFunc(cmp.Compare[T])
}

// Merge 按元素的自然顺序合并，l和other都必须已经升序
func Merge[T cmp.Ordered](l, other *ForwardList[T]) {
	l.MergeFunc(other, cmp.Compare[T])
}

// Unique 用 == 判断相邻元素是否重复
func Unique[T comparable](l *ForwardList[T]) int {
	return l.UniqueFunc(func(a, b T) bool {
		return a == b
	})
}

// Remove 删除所有等于v的元素
func Remove[T comparable](l *ForwardList[T], v T) int {
	return l.RemoveIf(func(x T) bool {
		return x == v
	})
}

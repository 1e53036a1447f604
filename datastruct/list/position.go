package list

// Position 指向链表中的一个节点或者哨兵节点（before-begin），零值表示end
// 只有被指向的节点被删除时Position才会失效，splice、merge、sort、reverse、swap都只修改链接，
// 因此这些操作之后Position仍然指向原来的元素（即使元素已经属于另一个链表）
type Position[T any] struct {
	n *node[T]
}

// End 返回表示"没有节点"的位置
func End[T any]() Position[T] {
	return Position[T]{}
}

func (p Position[T]) IsEnd() bool {
	return p.n == nil
}

// Next 前进一步，p不能是end
func (p Position[T]) Next() Position[T] {
	if p.n == nil {
		panic(ErrEndPosition)
	}
	return Position[T]{n: p.n.next}
}

// Advance 前进count步，相当于调用count次Next
func (p Position[T]) Advance(count int) Position[T] {
	for i := 0; i < count; i++ {
		p = p.Next()
	}
	return p
}

// Value 返回元素的引用，对before-begin位置调用是未定义行为
func (p Position[T]) Value() *T {
	if p.n == nil {
		panic(ErrEndPosition)
	}
	return &p.n.val
}

// Distance 返回从first前进到last需要的步数
func Distance[T any](first, last Position[T]) int {
	d := 0
	for n := first.n; n != last.n; n = n.next {
		if n == nil {
			panic(ErrNoSuccessor)
		}
		d++
	}
	return d
}

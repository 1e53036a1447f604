package demo

func init() {
	// 成员函数
	register("constructor", "constructor", constructorSection)
	register("assignment", "CopyFrom, MoveFrom", assignmentSection)
	register("assign", "Assign, AssignRange, AssignValues", assignSection)
	register("front", "Front", frontSection)
	register("before_begin", "BeforeBegin", beforeBeginSection)
	register("begin", "Begin, End", beginSection)
	register("empty", "Empty", emptySection)
	register("max_size", "MaxLen", maxSizeSection)

	// 修改
	register("clear", "Clear", clearSection)
	register("insert_after", "InsertAfter", insertAfterSection)
	register("emplace_after", "EmplaceAfter", emplaceAfterSection)
	register("erase_after", "EraseAfter", eraseAfterSection)
	register("push_front", "PushFront", pushFrontSection)
	register("emplace_front", "EmplaceFront", emplaceFrontSection)
	register("pop_front", "PopFront", popFrontSection)
	register("resize", "Resize", resizeSection)
	register("swap", "Swap", swapSection)

	// 整体操作
	register("merge", "Merge", mergeSection)
	register("splice_after", "SpliceAfterRange", spliceAfterSection)
	register("remove", "Remove, RemoveIf", removeSection)
	register("reverse", "Reverse", reverseSection)
	register("unique", "Unique", uniqueSection)
	register("sort", "Sort, SortFunc", sortSection)
	register("container", "gods Container view", containerSection)

	// 非成员函数
	register("compare", "Equal, Less, Compare, etc.", compareSection)
	register("free_swap", "list.Swap", freeSwapSection)
	register("erase", "Erase, EraseIf", eraseSection)
	register("from_range", "NewList", fromRangeSection)
}

package list

import "errors"

// 以下错误只用于 panic：它们表示调用方违反了前置条件，而不是可以恢复的运行时错误
var (
	ErrEndPosition = errors.New("list: position does not denote a node")
	ErrNoSuccessor = errors.New("list: no node after position")
	ErrNilList     = errors.New("list: nil list")
)

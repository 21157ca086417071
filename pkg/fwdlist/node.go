package fwdlist

// node is a single storage cell. It is owned by its predecessor, or by the
// list head when it is first.
type node[T any] struct {
	next  *node[T]
	value T
}

func newNode[T any](value T) *node[T] {
	return &node[T]{value: value}
}

package fwdlist

// Iterator is a forward position in a List. It references a node without
// owning it; the zero Iterator is the end sentinel.
//
// An iterator stays valid until the element it references is removed from
// its list. Using an invalidated iterator does not corrupt memory, but its
// successor is no longer reachable and results are meaningless.
type Iterator[T any] struct {
	current *node[T]
}

// Next advances it to the following element and returns it, like a prefix
// increment. It panics if it is the end sentinel.
func (it *Iterator[T]) Next() *Iterator[T] {
	if it.current == nil {
		panic("fwdlist: Next called on end iterator")
	}
	it.current = it.current.next
	return it
}

// PostNext advances it and returns a copy of its previous position, like a
// postfix increment. It panics if it is the end sentinel.
func (it *Iterator[T]) PostNext() Iterator[T] {
	prev := *it
	it.Next()
	return prev
}

// Value returns the referenced element. It panics on the end sentinel.
func (it Iterator[T]) Value() T {
	return *it.Ptr()
}

// Ptr returns a pointer to the referenced element, allowing it to be updated
// in place. It panics on the end sentinel.
func (it Iterator[T]) Ptr() *T {
	if it.current == nil {
		panic("fwdlist: dereference of end iterator")
	}
	return &it.current.value
}

// Equal reports whether it and other reference the same element, or are
// both the end sentinel.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.current == other.current
}

// IsEnd reports whether it is the end sentinel.
func (it Iterator[T]) IsEnd() bool {
	return it.current == nil
}

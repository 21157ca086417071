// Package fwdlist provides a generic singly-linked list with forward
// iterators and insert-after / erase-after positional mutation.
//
// A List is not safe for concurrent use. The zero value is an empty list
// ready to use.
package fwdlist

import (
	"fmt"
	"iter"
	"strings"
)

// List is a singly-linked list of comparable values.
type List[T comparable] struct {
	head *node[T]
	size int
}

// New returns an empty list.
func New[T comparable]() *List[T] {
	return &List[T]{}
}

// NewSized returns a list holding n zero values. Elements are pushed to the
// front one at a time, so the resulting order is the reverse of construction
// order.
func NewSized[T comparable](n int) *List[T] {
	l := New[T]()
	var zero T
	for i := 0; i < n; i++ {
		l.PushFront(zero)
	}
	return l
}

// Of returns a list holding values in the given order: values[0] becomes
// the front.
func Of[T comparable](values ...T) *List[T] {
	l := New[T]()
	for i := len(values) - 1; i >= 0; i-- {
		l.PushFront(values[i])
	}
	return l
}

// Clone returns a deep copy of l. The copy shares no nodes with l.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	c.copyFrom(l)
	return c
}

// Assign releases the current chain of l and replaces it with a deep copy of
// other. Assigning a list to itself does nothing.
func (l *List[T]) Assign(other *List[T]) {
	if l == other {
		return
	}
	l.Clear()
	l.copyFrom(other)
}

// copyFrom appends copies of other's nodes to an empty l.
func (l *List[T]) copyFrom(other *List[T]) {
	var prev *node[T]
	for n := other.head; n != nil; n = n.next {
		copied := newNode(n.value)
		if prev != nil {
			prev.next = copied
		} else {
			l.head = copied
		}
		prev = copied
	}
	l.size = other.size
}

// Begin returns an iterator to the first element, or End if l is empty.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{current: l.head}
}

// End returns the sentinel iterator positioned one past the last element.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// Front returns a pointer to the first element. Writes through the pointer
// update the element in place.
func (l *List[T]) Front() (*T, error) {
	if l.IsEmpty() {
		return nil, emptyContainer("Front")
	}
	return &l.head.value, nil
}

// IsEmpty reports whether l holds no elements.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Size returns the number of elements in l.
func (l *List[T]) Size() int {
	return l.size
}

// PushFront inserts a copy of value before the current first element.
func (l *List[T]) PushFront(value T) {
	n := newNode(value)
	n.next = l.head
	l.head = n
	l.size++
}

// PopFront removes the first element.
func (l *List[T]) PopFront() error {
	if l.IsEmpty() {
		return emptyContainer("PopFront")
	}
	n := l.head
	l.head = n.next
	n.next = nil
	l.size--
	return nil
}

// InsertAfter inserts a copy of value immediately after pos and returns an
// iterator to the new element. When pos is End the element becomes the new
// front, exactly as PushFront would place it.
//
// pos must belong to l.
func (l *List[T]) InsertAfter(pos Iterator[T], value T) Iterator[T] {
	n := newNode(value)
	if cur := pos.current; cur != nil {
		n.next = cur.next
		cur.next = n
	} else {
		n.next = l.head
		l.head = n
	}
	l.size++
	return Iterator[T]{current: n}
}

// EraseAfter removes the element following pos. It returns
// ErrEmptyContainer when l is empty, and does nothing when pos is End or has
// no successor. Iterators to the removed element become invalid; all others
// stay valid.
//
// pos must belong to l.
func (l *List[T]) EraseAfter(pos Iterator[T]) error {
	if l.IsEmpty() {
		return emptyContainer("EraseAfter")
	}
	cur := pos.current
	if cur == nil || cur.next == nil {
		return nil
	}
	erased := cur.next
	cur.next = erased.next
	erased.next = nil
	l.size--
	return nil
}

// Find returns an iterator to the first element equal to value, or End.
func (l *List[T]) Find(value T) Iterator[T] {
	return l.FindFunc(func(v T) bool { return v == value })
}

// FindFunc returns an iterator to the first element for which match returns
// true, or End.
func (l *List[T]) FindFunc(match func(T) bool) Iterator[T] {
	for n := l.head; n != nil; n = n.next {
		if match(n.value) {
			return Iterator[T]{current: n}
		}
	}
	return l.End()
}

// Clear removes every element. Clearing an empty list does nothing.
func (l *List[T]) Clear() {
	for !l.IsEmpty() {
		// Cannot fail: the list is not empty.
		_ = l.PopFront()
	}
}

// Swap exchanges the contents of l and other without touching any node.
func (l *List[T]) Swap(other *List[T]) {
	l.head, other.head = other.head, l.head
	l.size, other.size = other.size, l.size
}

// Swap exchanges the contents of a and b. It is equivalent to a.Swap(b).
func Swap[T comparable](a, b *List[T]) {
	a.Swap(b)
}

// All returns an iterator over the elements from front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns the elements from front to back in a new slice.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.size)
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}

// String formats l the way fmt formats a slice, e.g. "[3 2 1]".
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, n.value)
	}
	sb.WriteByte(']')
	return sb.String()
}

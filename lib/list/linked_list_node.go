package list

import (
	"github.com/benz9527/xlist/lib/infra"
)

// The links of a node are owned by the list. A node removed from
// its list has all links cleared, so it never references the list again.

type SinglyNode[T infra.Integer] struct {
	next  *SinglyNode[T]
	Value T // The type of value may be a small size type.
	// It should be placed at the end of the struct to avoid taking too much padding.
}

func (e *SinglyNode[T]) HasNext() bool {
	if e == nil {
		return false
	}
	return e.next != nil
}

func (e *SinglyNode[T]) Next() *SinglyNode[T] {
	if e == nil {
		return nil
	}
	return e.next
}

// DoublyNode.prev is a back reference, used for relinking only.
type DoublyNode[T infra.Integer] struct {
	prev, next *DoublyNode[T]
	Value      T
}

func (e *DoublyNode[T]) HasNext() bool {
	if e == nil {
		return false
	}
	return e.next != nil
}

func (e *DoublyNode[T]) HasPrev() bool {
	if e == nil {
		return false
	}
	return e.prev != nil
}

func (e *DoublyNode[T]) Next() *DoublyNode[T] {
	if e == nil {
		return nil
	}
	return e.next
}

func (e *DoublyNode[T]) Prev() *DoublyNode[T] {
	if e == nil {
		return nil
	}
	return e.prev
}

// RingNode.next of the tail node is the first node.
// A single node ring is a self loop.
type RingNode[T infra.Integer] struct {
	next  *RingNode[T]
	Value T
}

func (e *RingNode[T]) Next() *RingNode[T] {
	if e == nil {
		return nil
	}
	return e.next
}

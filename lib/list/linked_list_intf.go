package list

import (
	"iter"

	"github.com/benz9527/xlist/lib/infra"
)

// Note that the linked lists are not thread safe.
// The callers have to serialize the access to a list.

// PositionalLinkedList is the contract shared by the singly, doubly
// and circular linked lists.
// Positions are 1-based. The valid insert positions are [1, Len()+1]
// and the valid delete positions are [1, Len()].
// A failed operation never mutates the list and returns an error
// matching exactly one of the ListErr kinds by errors.Is.
type PositionalLinkedList[T infra.Integer] interface {
	// Len counts the nodes by traversal, the count is never stored.
	Len() int
	IsEmpty() bool
	// InsertAtStart inserts value v as the new first element.
	InsertAtStart(v T) error
	// InsertAtEnd inserts value v as the new last element.
	InsertAtEnd(v T) error
	// InsertAtPosition inserts value v, so it becomes the element at position.
	InsertAtPosition(v T, position int) error
	// DeleteAtStart removes the first element and returns its value.
	DeleteAtStart() (T, error)
	// DeleteAtEnd removes the last element and returns its value.
	DeleteAtEnd() (T, error)
	// DeleteAtPosition removes the element at position and returns its value.
	DeleteAtPosition(position int) (T, error)
	// Search returns the position of the first element equal to key.
	Search(key T) (int, error)
	// All returns the values from the first to the last element.
	// Each range over the sequence restarts from the current first element.
	// The list must not be mutated while ranging.
	All() iter.Seq[T]
}

// SinglyLinkedList is referenced by its first node.
type SinglyLinkedList[T infra.Integer] interface {
	PositionalLinkedList[T]
	// Front returns the first node or nil if the list is empty.
	Front() *SinglyNode[T]
}

// DoublyLinkedList is referenced by its first node.
type DoublyLinkedList[T infra.Integer] interface {
	PositionalLinkedList[T]
	// Front returns the first node or nil if the list is empty.
	Front() *DoublyNode[T]
	// Backward returns the values from the last to the first element.
	Backward() iter.Seq[T]
}

// CircularLinkedList is referenced by its last node (tail),
// the first node is always Tail().Next().
type CircularLinkedList[T infra.Integer] interface {
	PositionalLinkedList[T]
	// Tail returns the last node or nil if the ring is empty.
	Tail() *RingNode[T]
	// Front returns Tail().Next() or nil if the ring is empty.
	Front() *RingNode[T]
}

type ListErr string

const (
	ErrEmptyList          ListErr = "list is empty"
	ErrInvalidPosition    ListErr = "invalid position"
	ErrPositionOutOfRange ListErr = "position out of range"
	ErrNotFound           ListErr = "key not found"
	ErrAllocationFailure  ListErr = "failed to allocate node"
)

func (err ListErr) Error() string {
	return string(err)
}

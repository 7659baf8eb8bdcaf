package list

import (
	"iter"

	"go.uber.org/zap"

	"github.com/benz9527/xlist/lib/infra"
)

var _ DoublyLinkedList[int] = (*doublyLinkedList[int])(nil) // Type check assertion

type nodeElementInListStatus uint8

const (
	theOnlyOne nodeElementInListStatus = iota
	theFirstButNotTheLast
	theLastButNotTheFirst
	inMiddle
)

// The first node has no prev and the last node has no next.
// For every node n with a next, n.next.prev == n.
type doublyLinkedList[T infra.Integer] struct {
	head *DoublyNode[T]
	env  *linkedListEnv
}

func NewDoublyLinkedList[T infra.Integer](opts ...ListOption) DoublyLinkedList[T] {
	return &doublyLinkedList[T]{
		env: newLinkedListEnv(doublyLinkedListKind, opts...),
	}
}

func (l *doublyLinkedList[T]) Front() *DoublyNode[T] {
	return l.head
}

func (l *doublyLinkedList[T]) back() *DoublyNode[T] {
	if l.head == nil {
		return nil
	}
	e := l.head
	for e.next != nil {
		e = e.next
	}
	return e
}

func (l *doublyLinkedList[T]) Len() int {
	count := 0
	for e := l.head; e != nil; e = e.next {
		count++
	}
	return count
}

func (l *doublyLinkedList[T]) IsEmpty() bool {
	return l.head == nil
}

func (l *doublyLinkedList[T]) newNode(op string, v T, fields ...zap.Field) (*DoublyNode[T], error) {
	if err := l.env.allocate(op, fields...); err != nil {
		return nil, err
	}
	return &DoublyNode[T]{Value: v}, nil
}

func (l *doublyLinkedList[T]) insertAfter(newE, at *DoublyNode[T]) *DoublyNode[T] {
	newE.prev = at
	newE.next = at.next
	if at.next != nil {
		at.next.prev = newE
	}
	at.next = newE
	return newE
}

func (l *doublyLinkedList[T]) InsertAtStart(v T) error {
	return l.insertAtStart(opInsertAtStart, v)
}

func (l *doublyLinkedList[T]) insertAtStart(op string, v T, fields ...zap.Field) error {
	e, err := l.newNode(op, v, fields...)
	if err != nil {
		return err
	}
	e.next = l.head
	if l.head != nil {
		l.head.prev = e
	}
	l.head = e
	return nil
}

func (l *doublyLinkedList[T]) InsertAtEnd(v T) error {
	if l.head == nil {
		return l.insertAtStart(opInsertAtEnd, v)
	}
	e, err := l.newNode(opInsertAtEnd, v)
	if err != nil {
		return err
	}
	l.insertAfter(e, l.back())
	return nil
}

func (l *doublyLinkedList[T]) InsertAtPosition(v T, position int) error {
	if position <= 0 {
		return l.env.reject(opInsertAtPosition, ErrInvalidPosition, zap.Int("position", position))
	}
	if position == 1 {
		return l.insertAtStart(opInsertAtPosition, v, zap.Int("position", position))
	}

	at := l.head
	for i := 1; at != nil && i < position-1; i++ {
		at = at.next
	}
	if at == nil {
		return l.env.reject(opInsertAtPosition, ErrPositionOutOfRange, zap.Int("position", position))
	}

	e, err := l.newNode(opInsertAtPosition, v, zap.Int("position", position))
	if err != nil {
		return err
	}
	l.insertAfter(e, at)
	return nil
}

func (l *doublyLinkedList[T]) checkElement(at *DoublyNode[T]) nodeElementInListStatus {
	switch {
	case at.prev == nil && at.next == nil:
		return theOnlyOne
	case at.prev == nil:
		return theFirstButNotTheLast
	case at.next == nil:
		return theLastButNotTheFirst
	default:
	}
	return inMiddle
}

func (l *doublyLinkedList[T]) remove(at *DoublyNode[T]) T {
	switch l.checkElement(at) {
	case theOnlyOne:
		l.head = nil
	case theFirstButNotTheLast:
		l.head = at.next
		at.next.prev = nil
	case theLastButNotTheFirst:
		at.prev.next = nil
	case inMiddle:
		at.prev.next = at.next
		at.next.prev = at.prev
	}

	// avoid memory leaks
	at.next = nil
	at.prev = nil

	l.env.release()
	return at.Value
}

func (l *doublyLinkedList[T]) DeleteAtStart() (T, error) {
	if l.head == nil {
		var zero T
		return zero, l.env.reject(opDeleteAtStart, ErrEmptyList)
	}
	return l.remove(l.head), nil
}

func (l *doublyLinkedList[T]) DeleteAtEnd() (T, error) {
	if l.head == nil {
		var zero T
		return zero, l.env.reject(opDeleteAtEnd, ErrEmptyList)
	}
	return l.remove(l.back()), nil
}

// DeleteAtPosition reports the empty list as an invalid position.
func (l *doublyLinkedList[T]) DeleteAtPosition(position int) (T, error) {
	var zero T
	if position <= 0 || l.head == nil {
		return zero, l.env.reject(opDeleteAtPosition, ErrInvalidPosition, zap.Int("position", position))
	}
	if position == 1 {
		return l.DeleteAtStart()
	}

	at := l.head
	for i := 1; at != nil && i < position; i++ {
		at = at.next
	}
	if at == nil {
		return zero, l.env.reject(opDeleteAtPosition, ErrPositionOutOfRange, zap.Int("position", position))
	}
	return l.remove(at), nil
}

func (l *doublyLinkedList[T]) Search(key T) (int, error) {
	position := 1
	for e := l.head; e != nil; e = e.next {
		if e.Value == key {
			return position, nil
		}
		position++
	}
	return 0, l.env.reject(opSearch, ErrNotFound, zap.Any("key", key))
}

func (l *doublyLinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.head; e != nil; e = e.next {
			if !yield(e.Value) {
				return
			}
		}
	}
}

func (l *doublyLinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.back(); e != nil; e = e.prev {
			if !yield(e.Value) {
				return
			}
		}
	}
}

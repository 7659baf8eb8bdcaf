package list

import (
	"iter"

	"go.uber.org/zap"

	"github.com/benz9527/xlist/lib/infra"
)

var _ SinglyLinkedList[int] = (*singlyLinkedList[int])(nil)

type singlyLinkedList[T infra.Integer] struct {
	head *SinglyNode[T]
	env  *linkedListEnv
}

func NewSinglyLinkedList[T infra.Integer](opts ...ListOption) SinglyLinkedList[T] {
	return &singlyLinkedList[T]{
		env: newLinkedListEnv(singlyLinkedListKind, opts...),
	}
}

func (l *singlyLinkedList[T]) Front() *SinglyNode[T] {
	return l.head
}

func (l *singlyLinkedList[T]) Len() int {
	count := 0
	for e := l.head; e != nil; e = e.next {
		count++
	}
	return count
}

func (l *singlyLinkedList[T]) IsEmpty() bool {
	return l.head == nil
}

func (l *singlyLinkedList[T]) newNode(op string, v T, fields ...zap.Field) (*SinglyNode[T], error) {
	if err := l.env.allocate(op, fields...); err != nil {
		return nil, err
	}
	return &SinglyNode[T]{Value: v}, nil
}

func (l *singlyLinkedList[T]) InsertAtStart(v T) error {
	return l.insertAtStart(opInsertAtStart, v)
}

func (l *singlyLinkedList[T]) insertAtStart(op string, v T, fields ...zap.Field) error {
	e, err := l.newNode(op, v, fields...)
	if err != nil {
		return err
	}
	e.next = l.head
	l.head = e
	return nil
}

func (l *singlyLinkedList[T]) InsertAtEnd(v T) error {
	if l.head == nil {
		return l.insertAtStart(opInsertAtEnd, v)
	}
	e, err := l.newNode(opInsertAtEnd, v)
	if err != nil {
		return err
	}
	last := l.head
	for last.next != nil {
		last = last.next
	}
	last.next = e
	return nil
}

func (l *singlyLinkedList[T]) InsertAtPosition(v T, position int) error {
	if position <= 0 {
		return l.env.reject(opInsertAtPosition, ErrInvalidPosition, zap.Int("position", position))
	}
	if position == 1 {
		return l.insertAtStart(opInsertAtPosition, v, zap.Int("position", position))
	}

	prev := l.head
	for i := 1; prev != nil && i < position-1; i++ {
		prev = prev.next
	}
	if prev == nil {
		return l.env.reject(opInsertAtPosition, ErrPositionOutOfRange, zap.Int("position", position))
	}

	e, err := l.newNode(opInsertAtPosition, v, zap.Int("position", position))
	if err != nil {
		return err
	}
	e.next = prev.next
	prev.next = e
	return nil
}

func (l *singlyLinkedList[T]) remove(e *SinglyNode[T]) T {
	v := e.Value
	// avoid memory leaks
	e.next = nil
	l.env.release()
	return v
}

func (l *singlyLinkedList[T]) DeleteAtStart() (T, error) {
	if l.head == nil {
		var zero T
		return zero, l.env.reject(opDeleteAtStart, ErrEmptyList)
	}
	e := l.head
	l.head = e.next
	return l.remove(e), nil
}

func (l *singlyLinkedList[T]) DeleteAtEnd() (T, error) {
	if l.head == nil {
		var zero T
		return zero, l.env.reject(opDeleteAtEnd, ErrEmptyList)
	}
	if l.head.next == nil {
		e := l.head
		l.head = nil
		return l.remove(e), nil
	}

	prev := l.head
	for prev.next.next != nil {
		prev = prev.next
	}
	e := prev.next
	prev.next = nil
	return l.remove(e), nil
}

func (l *singlyLinkedList[T]) DeleteAtPosition(position int) (T, error) {
	var zero T
	if l.head == nil {
		return zero, l.env.reject(opDeleteAtPosition, ErrEmptyList, zap.Int("position", position))
	}
	if position <= 0 {
		return zero, l.env.reject(opDeleteAtPosition, ErrInvalidPosition, zap.Int("position", position))
	}
	if position == 1 {
		return l.DeleteAtStart()
	}

	prev := l.head
	for i := 1; prev != nil && i < position-1; i++ {
		prev = prev.next
	}
	if prev == nil || prev.next == nil {
		return zero, l.env.reject(opDeleteAtPosition, ErrPositionOutOfRange, zap.Int("position", position))
	}
	e := prev.next
	prev.next = e.next
	return l.remove(e), nil
}

func (l *singlyLinkedList[T]) Search(key T) (int, error) {
	position := 1
	for e := l.head; e != nil; e = e.next {
		if e.Value == key {
			return position, nil
		}
		position++
	}
	return 0, l.env.reject(opSearch, ErrNotFound, zap.Any("key", key))
}

func (l *singlyLinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.head; e != nil; e = e.next {
			if !yield(e.Value) {
				return
			}
		}
	}
}

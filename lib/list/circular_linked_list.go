package list

import (
	"iter"

	"go.uber.org/zap"

	"github.com/benz9527/xlist/lib/infra"
)

var _ CircularLinkedList[int] = (*circularLinkedList[int])(nil)

// circularLinkedList only references the tail node.
// The first node is always tail.next, so both ends are reachable in O(1).
type circularLinkedList[T infra.Integer] struct {
	tail *RingNode[T]
	env  *linkedListEnv
}

func NewCircularLinkedList[T infra.Integer](opts ...ListOption) CircularLinkedList[T] {
	return &circularLinkedList[T]{
		env: newLinkedListEnv(circularLinkedListKind, opts...),
	}
}

func (l *circularLinkedList[T]) Tail() *RingNode[T] {
	return l.tail
}

func (l *circularLinkedList[T]) Front() *RingNode[T] {
	if l.tail == nil {
		return nil
	}
	return l.tail.next
}

func (l *circularLinkedList[T]) Len() int {
	if l.tail == nil {
		return 0
	}
	count := 1
	for e := l.tail.next; e != l.tail; e = e.next {
		count++
	}
	return count
}

func (l *circularLinkedList[T]) IsEmpty() bool {
	return l.tail == nil
}

func (l *circularLinkedList[T]) newNode(op string, v T, fields ...zap.Field) (*RingNode[T], error) {
	if err := l.env.allocate(op, fields...); err != nil {
		return nil, err
	}
	return &RingNode[T]{Value: v}, nil
}

// link places e after the tail, so e becomes the first node.
func (l *circularLinkedList[T]) link(e *RingNode[T]) {
	if l.tail == nil {
		e.next = e
		l.tail = e
		return
	}
	e.next = l.tail.next
	l.tail.next = e
}

func (l *circularLinkedList[T]) InsertAtStart(v T) error {
	e, err := l.newNode(opInsertAtStart, v)
	if err != nil {
		return err
	}
	l.link(e)
	return nil
}

func (l *circularLinkedList[T]) InsertAtEnd(v T) error {
	e, err := l.newNode(opInsertAtEnd, v)
	if err != nil {
		return err
	}
	l.link(e)
	l.tail = e
	return nil
}

func (l *circularLinkedList[T]) InsertAtPosition(v T, position int) error {
	if position < 1 {
		return l.env.reject(opInsertAtPosition, ErrInvalidPosition, zap.Int("position", position))
	}
	if position == 1 {
		e, err := l.newNode(opInsertAtPosition, v, zap.Int("position", position))
		if err != nil {
			return err
		}
		l.link(e)
		return nil
	}
	if l.tail == nil {
		return l.env.reject(opInsertAtPosition, ErrPositionOutOfRange, zap.Int("position", position))
	}

	at, count := l.tail.next, 1
	for at != l.tail && count < position-1 {
		at = at.next
		count++
	}
	if count < position-1 {
		return l.env.reject(opInsertAtPosition, ErrPositionOutOfRange, zap.Int("position", position))
	}

	e, err := l.newNode(opInsertAtPosition, v, zap.Int("position", position))
	if err != nil {
		return err
	}
	e.next = at.next
	at.next = e
	if at == l.tail {
		l.tail = e
	}
	return nil
}

func (l *circularLinkedList[T]) remove(e *RingNode[T]) T {
	// avoid memory leaks
	e.next = nil
	l.env.release()
	return e.Value
}

func (l *circularLinkedList[T]) DeleteAtStart() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, l.env.reject(opDeleteAtStart, ErrEmptyList)
	}
	first := l.tail.next
	if first == l.tail {
		l.tail = nil
	} else {
		l.tail.next = first.next
	}
	return l.remove(first), nil
}

func (l *circularLinkedList[T]) DeleteAtEnd() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, l.env.reject(opDeleteAtEnd, ErrEmptyList)
	}
	last, first := l.tail, l.tail.next
	if first == last {
		l.tail = nil
		return l.remove(last), nil
	}

	prev := first
	for prev.next != last {
		prev = prev.next
	}
	prev.next = first
	l.tail = prev
	return l.remove(last), nil
}

func (l *circularLinkedList[T]) DeleteAtPosition(position int) (T, error) {
	var zero T
	if l.tail == nil {
		return zero, l.env.reject(opDeleteAtPosition, ErrEmptyList, zap.Int("position", position))
	}
	if position <= 0 {
		return zero, l.env.reject(opDeleteAtPosition, ErrInvalidPosition, zap.Int("position", position))
	}
	if position == 1 {
		return l.DeleteAtStart()
	}

	prev, count := l.tail.next, 1
	for prev != l.tail && count < position-1 {
		prev = prev.next
		count++
	}
	// The target must not wrap around to the first node.
	if count < position-1 || prev == l.tail {
		return zero, l.env.reject(opDeleteAtPosition, ErrPositionOutOfRange, zap.Int("position", position))
	}
	e := prev.next
	prev.next = e.next
	if e == l.tail {
		l.tail = prev
	}
	return l.remove(e), nil
}

// Search makes exactly one revolution from the first node.
func (l *circularLinkedList[T]) Search(key T) (int, error) {
	if l.tail != nil {
		first := l.tail.next
		e, position := first, 1
		for {
			if e.Value == key {
				return position, nil
			}
			if e = e.next; e == first {
				break
			}
			position++
		}
	}
	return 0, l.env.reject(opSearch, ErrNotFound, zap.Any("key", key))
}

func (l *circularLinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.tail == nil {
			return
		}
		first := l.tail.next
		for e := first; ; {
			if !yield(e.Value) {
				return
			}
			if e = e.next; e == first {
				return
			}
		}
	}
}

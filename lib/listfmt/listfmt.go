// Package listfmt renders the linked lists and their errors as the
// human-readable text lines printed by the xlist command.
package listfmt

import (
	"errors"
	"iter"
	"strconv"
	"strings"

	"github.com/benz9527/xlist/lib/infra"
	"github.com/benz9527/xlist/lib/list"
)

const (
	emptyList    = "List is Empty"
	emptyRing    = "List is empty."
	doublyPrefix = "Doubly Linked List: "
)

func formatInt[T infra.Integer](v T) string {
	if v < 0 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}

func join[T infra.Integer](seq iter.Seq[T], sep, end string) (string, bool) {
	builder := &strings.Builder{}
	empty := true
	for v := range seq {
		if !empty {
			builder.WriteString(sep)
		}
		builder.WriteString(formatInt(v))
		empty = false
	}
	if empty {
		return "", false
	}
	builder.WriteString(end)
	return builder.String(), true
}

// Singly renders "d1 -> d2 -> NULL".
func Singly[T infra.Integer](seq iter.Seq[T]) string {
	if s, ok := join(seq, " -> ", " -> NULL"); ok {
		return s
	}
	return emptyList
}

// Doubly renders "Doubly Linked List: d1 <-> d2 -> NULL".
func Doubly[T infra.Integer](seq iter.Seq[T]) string {
	if s, ok := join(seq, " <-> ", " -> NULL"); ok {
		return doublyPrefix + s
	}
	return emptyList
}

// Circular renders "d1 -> d2 -> (HEAD)", the ring closes at the first node.
func Circular[T infra.Integer](seq iter.Seq[T]) string {
	if s, ok := join(seq, " -> ", " -> (HEAD)"); ok {
		return s
	}
	return emptyRing
}

func SearchResult[T infra.Integer](key T, position int, err error) string {
	if err == nil {
		return "Value " + formatInt(key) + " found at position " + strconv.Itoa(position)
	}
	if errors.Is(err, list.ErrNotFound) {
		return "Value " + formatInt(key) + " not found in the list."
	}
	return Failure(err)
}

func Failure(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, list.ErrEmptyList):
		return emptyList
	case errors.Is(err, list.ErrInvalidPosition):
		return "Invalid position!"
	case errors.Is(err, list.ErrPositionOutOfRange):
		return "Position out of range."
	case errors.Is(err, list.ErrAllocationFailure):
		return "Failed to allocate memory"
	case errors.Is(err, list.ErrNotFound):
		return "Key is not found in the list"
	default:
	}
	return err.Error()
}

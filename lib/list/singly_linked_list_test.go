package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSinglyLinkedList_Scenario(t *testing.T) {
	l := NewSinglyLinkedList[int]()
	require.NoError(t, l.InsertAtEnd(200))
	require.NoError(t, l.InsertAtStart(100))
	require.NoError(t, l.InsertAtEnd(20))
	require.Equal(t, []int{100, 200, 20}, values(l.All()))

	require.NoError(t, l.InsertAtPosition(1000, 1))
	require.Equal(t, []int{1000, 100, 200, 20}, values(l.All()))

	err := l.InsertAtPosition(8000, 8)
	requireListErr(t, err, ErrPositionOutOfRange)
	require.Equal(t, []int{1000, 100, 200, 20}, values(l.All()))

	require.NoError(t, l.InsertAtPosition(8000, 5))
	require.Equal(t, []int{1000, 100, 200, 20, 8000}, values(l.All()))
}

func TestSinglyLinkedList_Boundaries(t *testing.T) {
	testcases := []struct {
		name     string
		op       func(l SinglyLinkedList[int]) error
		expected []int
		err      ListErr
	}{
		{
			name:     "insert at position 0",
			op:       func(l SinglyLinkedList[int]) error { return l.InsertAtPosition(9, 0) },
			expected: []int{1, 2, 3},
			err:      ErrInvalidPosition,
		},
		{
			name:     "insert at negative position",
			op:       func(l SinglyLinkedList[int]) error { return l.InsertAtPosition(9, -3) },
			expected: []int{1, 2, 3},
			err:      ErrInvalidPosition,
		},
		{
			name:     "insert at len+1",
			op:       func(l SinglyLinkedList[int]) error { return l.InsertAtPosition(9, 4) },
			expected: []int{1, 2, 3, 9},
		},
		{
			name:     "insert at len+2",
			op:       func(l SinglyLinkedList[int]) error { return l.InsertAtPosition(9, 5) },
			expected: []int{1, 2, 3},
			err:      ErrPositionOutOfRange,
		},
		{
			name:     "insert in the middle",
			op:       func(l SinglyLinkedList[int]) error { return l.InsertAtPosition(9, 2) },
			expected: []int{1, 9, 2, 3},
		},
		{
			name: "delete at position 0",
			op: func(l SinglyLinkedList[int]) error {
				_, err := l.DeleteAtPosition(0)
				return err
			},
			expected: []int{1, 2, 3},
			err:      ErrInvalidPosition,
		},
		{
			name: "delete at len",
			op: func(l SinglyLinkedList[int]) error {
				_, err := l.DeleteAtPosition(3)
				return err
			},
			expected: []int{1, 2},
		},
		{
			name: "delete at len+1",
			op: func(l SinglyLinkedList[int]) error {
				_, err := l.DeleteAtPosition(4)
				return err
			},
			expected: []int{1, 2, 3},
			err:      ErrPositionOutOfRange,
		},
		{
			name: "delete at far position",
			op: func(l SinglyLinkedList[int]) error {
				_, err := l.DeleteAtPosition(10)
				return err
			},
			expected: []int{1, 2, 3},
			err:      ErrPositionOutOfRange,
		},
		{
			name: "delete in the middle",
			op: func(l SinglyLinkedList[int]) error {
				_, err := l.DeleteAtPosition(2)
				return err
			},
			expected: []int{1, 3},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			l := NewSinglyLinkedList[int]()
			for i := 1; i <= 3; i++ {
				require.NoError(t, l.InsertAtEnd(i))
			}
			err := tc.op(l)
			if tc.err == "" {
				require.NoError(t, err)
			} else {
				requireListErr(t, err, tc.err)
			}
			require.Equal(t, tc.expected, values(l.All()))
		})
	}
}

func TestSinglyLinkedList_DeleteAtPositionOnEmpty(t *testing.T) {
	l := NewSinglyLinkedList[int]()
	// The empty list is checked before the position.
	_, err := l.DeleteAtPosition(0)
	requireListErr(t, err, ErrEmptyList)
	_, err = l.DeleteAtPosition(3)
	requireListErr(t, err, ErrEmptyList)
}

func TestSinglyLinkedList_DeleteReturnsValue(t *testing.T) {
	l := NewSinglyLinkedList[int]()
	for _, v := range []int{5, 10, 20, 30} {
		require.NoError(t, l.InsertAtEnd(v))
	}

	v, err := l.DeleteAtStart()
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	v, err = l.DeleteAtEnd()
	require.NoError(t, err)
	assert.Equal(t, 30, v)

	v, err = l.DeleteAtPosition(2)
	require.NoError(t, err)
	assert.Equal(t, 20, v)

	v, err = l.DeleteAtEnd()
	require.NoError(t, err)
	assert.Equal(t, 10, v)
	assert.True(t, l.IsEmpty())
	assert.Nil(t, l.Front())
}

func TestSinglyLinkedList_RemovedNodeIsDetached(t *testing.T) {
	l := NewSinglyLinkedList[int]()
	for i := 1; i <= 3; i++ {
		require.NoError(t, l.InsertAtEnd(i))
	}
	first := l.Front()
	require.True(t, first.HasNext())
	_, err := l.DeleteAtStart()
	require.NoError(t, err)
	require.False(t, first.HasNext())
	require.Nil(t, first.Next())
	require.Equal(t, 2, l.Front().Value)
}

func TestSinglyLinkedList_ErrorMessage(t *testing.T) {
	l := NewSinglyLinkedList[int]()
	_, err := l.DeleteAtStart()
	require.EqualError(t, err, "[singly-linked-list] DeleteAtStart rejected: list is empty")

	err = l.InsertAtPosition(1, 0)
	require.EqualError(t, err, "[singly-linked-list] InsertAtPosition rejected: invalid position")
}

func TestSinglyLinkedList_SearchFirstMatch(t *testing.T) {
	l := NewSinglyLinkedList[int64]()
	for _, v := range []int64{7, 3, 7, 3} {
		require.NoError(t, l.InsertAtEnd(v))
	}
	position, err := l.Search(3)
	require.NoError(t, err)
	require.Equal(t, 2, position)
	position, err = l.Search(7)
	require.NoError(t, err)
	require.Equal(t, 1, position)
}

func TestSinglyNode_Nil(t *testing.T) {
	var e *SinglyNode[int]
	require.False(t, e.HasNext())
	require.Nil(t, e.Next())
}

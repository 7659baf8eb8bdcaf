package list

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap/zapcore"

	"github.com/benz9527/xlist/xlog"
)

func envOf(l PositionalLinkedList[int]) *linkedListEnv {
	switch impl := l.(type) {
	case *singlyLinkedList[int]:
		return impl.env
	case *doublyLinkedList[int]:
		return impl.env
	case *circularLinkedList[int]:
		return impl.env
	}
	return nil
}

func TestNodeBudget(t *testing.T) {
	testcases := []struct {
		capacity int
		acquired int
	}{
		{capacity: -1, acquired: 16},
		{capacity: 0, acquired: 16},
		{capacity: 1, acquired: 1},
		{capacity: 5, acquired: 5},
	}
	for _, tc := range testcases {
		b := &nodeBudget{capacity: tc.capacity}
		acquired := 0
		for i := 0; i < 16; i++ {
			if b.acquire() {
				acquired++
			}
		}
		require.Equal(t, tc.acquired, acquired)
		require.Equal(t, tc.acquired, b.live)
		for i := 0; i < 32; i++ {
			b.release()
		}
		require.Equal(t, 0, b.live)
	}
}

func TestLinkedList_NodeCapacity(t *testing.T) {
	for _, variant := range linkedListVariants() {
		t.Run(variant.name, func(t *testing.T) {
			l := variant.newList(WithNodeCapacity(3))
			for i := 1; i <= 3; i++ {
				require.NoError(t, l.InsertAtEnd(i))
			}
			require.Equal(t, 3, envOf(l).budget.live)

			requireListErr(t, l.InsertAtEnd(4), ErrAllocationFailure)
			requireListErr(t, l.InsertAtStart(4), ErrAllocationFailure)
			requireListErr(t, l.InsertAtPosition(4, 1), ErrAllocationFailure)
			requireListErr(t, l.InsertAtPosition(4, 2), ErrAllocationFailure)
			// The position is validated before the allocation.
			requireListErr(t, l.InsertAtPosition(4, 0), ErrInvalidPosition)
			requireListErr(t, l.InsertAtPosition(4, 9), ErrPositionOutOfRange)
			require.Equal(t, []int{1, 2, 3}, values(l.All()))
			require.Equal(t, 3, envOf(l).budget.live)
			variant.checkLinks(t, l)

			_, err := l.DeleteAtPosition(2)
			require.NoError(t, err)
			require.Equal(t, 2, envOf(l).budget.live)
			require.NoError(t, l.InsertAtPosition(4, 2))
			require.Equal(t, []int{1, 4, 3}, values(l.All()))
			require.Equal(t, l.Len(), envOf(l).budget.live)
		})
	}
}

func TestLinkedList_BudgetTracksLen(t *testing.T) {
	for _, variant := range linkedListVariants() {
		t.Run(variant.name, func(t *testing.T) {
			l := variant.newList()
			ops := []func() error{
				func() error { return l.InsertAtEnd(1) },
				func() error { return l.InsertAtStart(2) },
				func() error { return l.InsertAtPosition(3, 2) },
				func() error { return l.InsertAtPosition(3, 7) },
				func() error { _, err := l.DeleteAtEnd(); return err },
				func() error { _, err := l.DeleteAtPosition(5); return err },
				func() error { _, err := l.DeleteAtPosition(2); return err },
				func() error { _, err := l.DeleteAtStart(); return err },
				func() error { _, err := l.DeleteAtStart(); return err },
			}
			for _, op := range ops {
				_ = op()
				require.Equal(t, l.Len(), envOf(l).budget.live)
			}
			require.True(t, l.IsEmpty())
		})
	}
}

func TestLinkedList_DefaultName(t *testing.T) {
	l := NewDoublyLinkedList[int](nil, WithListName(""))
	env := l.(*doublyLinkedList[int]).env
	require.Equal(t, defaultLinkedListName, env.name)
	require.Equal(t, doublyLinkedListKind, env.kind)
	require.Nil(t, env.logger)
	require.Nil(t, env.stats)
}

func TestLinkedList_RejectionLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := xlog.NewXLogger(
		xlog.WithXLoggerWriteSyncer(zapcore.AddSync(buf)),
		xlog.WithXLoggerEncoder(xlog.JSON),
		xlog.WithXLoggerLevel(xlog.LogLevelDebug),
	)
	l := NewSinglyLinkedList[int](
		WithListName("orders"),
		WithListLogger(logger),
		WithNodeCapacity(1),
	)

	_, err := l.DeleteAtStart()
	requireListErr(t, err, ErrEmptyList)
	out := buf.String()
	require.Contains(t, out, "\"msg\":\"operation rejected\"")
	require.Contains(t, out, "\"component\":\"singly-linked-list\"")
	require.Contains(t, out, "\"list\":\"orders\"")
	require.Contains(t, out, "\"op\":\"DeleteAtStart\"")
	require.Contains(t, out, "\"error\":\"list is empty\"")

	buf.Reset()
	requireListErr(t, l.InsertAtPosition(1, 0), ErrInvalidPosition)
	require.Contains(t, buf.String(), "\"op\":\"InsertAtPosition\"")
	require.Contains(t, buf.String(), "\"position\":0")

	buf.Reset()
	require.NoError(t, l.InsertAtEnd(1))
	require.Empty(t, buf.String())
	requireListErr(t, l.InsertAtEnd(2), ErrAllocationFailure)
	require.Contains(t, buf.String(), "\"op\":\"InsertAtEnd\"")
	require.Contains(t, buf.String(), "\"error\":\"failed to allocate node\"")

	buf.Reset()
	_, err = l.Search(3)
	requireListErr(t, err, ErrNotFound)
	require.Contains(t, buf.String(), "\"op\":\"Search\"")
	require.Contains(t, buf.String(), "\"key\":3")

	buf.Reset()
	logger.IncreaseLogLevel(zapcore.InfoLevel)
	_, err = l.Search(3)
	requireListErr(t, err, ErrNotFound)
	require.Empty(t, buf.String())
}

func findInt64Sum(t *testing.T, rm *metricdata.ResourceMetrics, name string) metricdata.Sum[int64] {
	t.Helper()
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "%s is not an int64 sum", name)
			return sum
		}
	}
	require.FailNow(t, "metric not found", name)
	return metricdata.Sum[int64]{}
}

func TestLinkedList_Stats(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() {
		_ = mp.Shutdown(context.Background())
	}()

	l := NewCircularLinkedList[int](
		WithListName("ring"),
		WithListStats(mp),
		WithNodeCapacity(2),
	)
	require.NoError(t, l.InsertAtEnd(1))
	require.NoError(t, l.InsertAtEnd(2))
	requireListErr(t, l.InsertAtEnd(3), ErrAllocationFailure)
	_, err := l.DeleteAtStart()
	require.NoError(t, err)
	_, err = l.Search(9)
	requireListErr(t, err, ErrNotFound)
	_, err = l.Search(8)
	requireListErr(t, err, ErrNotFound)

	rm := metricdata.ResourceMetrics{}
	require.NoError(t, reader.Collect(context.Background(), &rm))

	require.Len(t, rm.ScopeMetrics, 1)
	require.Equal(t, LinkedListStatsName+"/"+circularLinkedListKind, rm.ScopeMetrics[0].Scope.Name)

	nodes := findInt64Sum(t, &rm, "xlist.node.count")
	require.False(t, nodes.IsMonotonic)
	require.Len(t, nodes.DataPoints, 1)
	require.Equal(t, int64(1), nodes.DataPoints[0].Value)
	name, ok := nodes.DataPoints[0].Attributes.Value(attribute.Key("xlist.name"))
	require.True(t, ok)
	require.Equal(t, "ring", name.AsString())

	rejected := findInt64Sum(t, &rm, "xlist.op.rejected")
	require.True(t, rejected.IsMonotonic)
	counts := make(map[string]int64, len(rejected.DataPoints))
	for _, dp := range rejected.DataPoints {
		op, ok := dp.Attributes.Value(attribute.Key("xlist.op"))
		require.True(t, ok)
		errKind, ok := dp.Attributes.Value(attribute.Key("xlist.error"))
		require.True(t, ok)
		counts[op.AsString()+"/"+errKind.AsString()] = dp.Value
	}
	require.Equal(t, map[string]int64{
		"InsertAtEnd/" + string(ErrAllocationFailure): 1,
		"Search/" + string(ErrNotFound):               2,
	}, counts)
}

package list

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	LinkedListStatsName = "xlist"
)

type linkedListStats struct {
	nodeAttrs     attribute.Set
	name          string
	nodeCount     metric.Int64UpDownCounter
	rejectedCount metric.Int64Counter
}

func (stats *linkedListStats) RecordNodeCount(delta int64) {
	if stats == nil {
		return
	}
	stats.nodeCount.Add(context.Background(), delta, metric.WithAttributeSet(stats.nodeAttrs))
}

func (stats *linkedListStats) IncreaseRejectedCount(op string, errKind ListErr) {
	if stats == nil {
		return
	}
	as := attribute.NewSet(
		attribute.String("xlist.name", stats.name),
		attribute.String("xlist.op", op),
		attribute.String("xlist.error", string(errKind)),
	)
	stats.rejectedCount.Add(context.Background(), 1, metric.WithAttributeSet(as))
}

func newLinkedListStats(mp metric.MeterProvider, kind, name string) *linkedListStats {
	builder := &strings.Builder{}
	builder.WriteString(LinkedListStatsName)
	builder.WriteString("/")
	builder.WriteString(kind)
	meter := mp.Meter(builder.String())
	return &linkedListStats{
		nodeAttrs: attribute.NewSet(attribute.String("xlist.name", name)),
		name:      name,
		nodeCount: lo.Must[metric.Int64UpDownCounter](meter.Int64UpDownCounter(
			"xlist.node.count",
			metric.WithDescription(`The live nodes of the linked list.`),
		)),
		rejectedCount: lo.Must[metric.Int64Counter](meter.Int64Counter(
			"xlist.op.rejected",
			metric.WithDescription(`The rejected operations of the linked list.`),
		)),
	}
}

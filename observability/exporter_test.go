package observability

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

func TestNewConsoleMetricsExporter(t *testing.T) {
	buf := &bytes.Buffer{}
	shutdown, err := NewConsoleMetricsExporter(
		WithConsoleMetricsWriter(buf),
		WithConsoleMetricsInterval(time.Hour),
		WithConsoleMetricsTimeout(time.Second),
	)
	require.NoError(t, err)
	require.NotNil(t, shutdown)

	counter, err := otel.Meter("xlist/observability/test").Int64Counter("xlist.test.counter")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	// The last collection is flushed on shutdown.
	require.NoError(t, shutdown(context.Background()))
	require.Contains(t, buf.String(), "xlist.test.counter")
	require.Contains(t, buf.String(), "xlist/observability/test")
}

func TestNewConsoleMetricsExporter_InvalidOptions(t *testing.T) {
	testcases := []struct {
		name string
		opts []ConsoleMetricsOption
	}{
		{"nil writer", []ConsoleMetricsOption{WithConsoleMetricsWriter(nil)}},
		{"zero interval", []ConsoleMetricsOption{WithConsoleMetricsInterval(0)}},
		{"negative timeout", []ConsoleMetricsOption{WithConsoleMetricsTimeout(-time.Second)}},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			shutdown, err := NewConsoleMetricsExporter(tc.opts...)
			require.Error(t, err)
			require.Nil(t, shutdown)
		})
	}
}

func TestNewConsoleMetricsExporter_PrettyPrint(t *testing.T) {
	buf := &bytes.Buffer{}
	shutdown, err := NewConsoleMetricsExporter(
		nil,
		WithConsoleMetricsWriter(buf),
		WithConsoleMetricsPrettyPrint(),
	)
	require.NoError(t, err)
	var mp metric.MeterProvider = otel.GetMeterProvider()
	gauge, err := mp.Meter("xlist/observability/pretty").Int64UpDownCounter("xlist.test.updown")
	require.NoError(t, err)
	gauge.Add(context.Background(), -1)
	require.NoError(t, shutdown(context.Background()))
	require.Greater(t, strings.Count(buf.String(), "\n"), 1)
	require.Contains(t, buf.String(), "xlist.test.updown")
}

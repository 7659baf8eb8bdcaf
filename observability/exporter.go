package observability

// https://opentelemetry.io/docs/languages/go/exporters/

import (
	"context"
	"io"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/sdk/metric"

	"github.com/benz9527/xlist/lib/infra"
)

const (
	defaultMetricsInterval = 10 * time.Second
	defaultMetricsTimeout  = 5 * time.Second
)

type consoleMetricsCfg struct {
	writer   io.Writer
	interval time.Duration
	timeout  time.Duration
	opts     []stdoutmetric.Option
}

type ConsoleMetricsOption func(cfg *consoleMetricsCfg)

// WithConsoleMetricsWriter redirects the exported metrics, stdout by default.
func WithConsoleMetricsWriter(w io.Writer) ConsoleMetricsOption {
	return func(cfg *consoleMetricsCfg) {
		cfg.writer = w
	}
}

func WithConsoleMetricsInterval(interval time.Duration) ConsoleMetricsOption {
	return func(cfg *consoleMetricsCfg) {
		cfg.interval = interval
	}
}

func WithConsoleMetricsTimeout(timeout time.Duration) ConsoleMetricsOption {
	return func(cfg *consoleMetricsCfg) {
		cfg.timeout = timeout
	}
}

func WithConsoleMetricsPrettyPrint() ConsoleMetricsOption {
	return func(cfg *consoleMetricsCfg) {
		cfg.opts = append(cfg.opts, stdoutmetric.WithPrettyPrint())
	}
}

// NewConsoleMetricsExporter serves for test/dev environment.
// The meter provider is registered as the otel global one.
// The returned callback flushes the last metrics and shuts the provider down.
func NewConsoleMetricsExporter(opts ...ConsoleMetricsOption) (func(ctx context.Context) error, error) {
	cfg := &consoleMetricsCfg{
		writer:   os.Stdout,
		interval: defaultMetricsInterval,
		timeout:  defaultMetricsTimeout,
	}
	for _, o := range opts {
		if o == nil {
			continue
		}
		o(cfg)
	}
	if cfg.writer == nil {
		return nil, infra.NewErrorStack("[observability] nil metrics writer")
	}
	if cfg.interval <= 0 || cfg.timeout <= 0 {
		return nil, infra.NewErrorStack("[observability] non-positive metrics interval or timeout")
	}

	exporter, err := stdoutmetric.New(append([]stdoutmetric.Option{
		stdoutmetric.WithWriter(cfg.writer),
	}, cfg.opts...)...)
	if err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "[observability] create stdout metrics exporter")
	}
	mp := metric.NewMeterProvider(metric.WithReader(metric.NewPeriodicReader(
		exporter,
		metric.WithInterval(cfg.interval),
		metric.WithTimeout(cfg.timeout),
	)))
	callback := mp.Shutdown
	otel.SetMeterProvider(mp)
	return callback, nil
}

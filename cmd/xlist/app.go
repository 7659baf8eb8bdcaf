package main

import (
	"context"
	"io"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/benz9527/xlist/lib/list"
	"github.com/benz9527/xlist/observability"
	"github.com/benz9527/xlist/xlog"
)

type transcript struct {
	io.Writer
}

type listOptions []list.ListOption

func newListOptions(lc fx.Lifecycle, cfg *config, logger xlog.XLogger) (listOptions, error) {
	opts := listOptions{
		list.WithListLogger(logger),
		list.WithNodeCapacity(cfg.nodeCapacity),
	}
	if cfg.metrics != metricsStdout {
		return opts, nil
	}

	shutdown, err := observability.NewConsoleMetricsExporter(
		observability.WithConsoleMetricsWriter(cfg.metricsOut),
		observability.WithConsoleMetricsInterval(cfg.metricsInterval),
	)
	if err != nil {
		return nil, err
	}
	// The last metrics are flushed after the scenarios.
	lc.Append(fx.Hook{OnStop: shutdown})
	return append(opts, list.WithListStats()), nil
}

func registerScenarios(lc fx.Lifecycle, cfg *config, out transcript, logger xlog.XLogger, opts listOptions) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return runScenarios(ctx, out, logger, cfg.scenarios, opts...)
		},
		OnStop: func(ctx context.Context) error {
			// Syncing the stderr may fail on some terminals.
			_ = logger.Sync()
			return nil
		},
	})
}

func appOptions(cfg *config, out io.Writer, logger xlog.XLogger) fx.Option {
	return fx.Options(
		fx.Supply(cfg, transcript{Writer: out}),
		fx.Provide(
			func() xlog.XLogger { return logger },
			newListOptions,
		),
		fx.WithLogger(func(logger xlog.XLogger) fxevent.Logger {
			return xlog.NewFxXLogger(logger)
		}),
		fx.Invoke(registerScenarios),
	)
}

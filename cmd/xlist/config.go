package main

import (
	"flag"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/benz9527/xlist/lib/infra"
)

const (
	envNodeCapacity    = "XLIST_NODE_CAPACITY"
	envMetrics         = "XLIST_METRICS"
	envMetricsInterval = "XLIST_METRICS_INTERVAL"

	metricsNone   = "none"
	metricsStdout = "stdout"

	defaultMetricsInterval = 10 * time.Second
)

type config struct {
	scenarios       []string
	nodeCapacity    int
	metrics         string
	metricsInterval time.Duration
	metricsOut      io.Writer
}

// loadConfig reads the scenarios from the args and the rest from
// the environment. The log level is read by xlog from XLOG_LVL.
func loadConfig(args []string) (*config, error) {
	cfg := &config{
		metrics:         metricsNone,
		metricsInterval: defaultMetricsInterval,
		metricsOut:      os.Stderr,
	}

	fs := flag.NewFlagSet("xlist", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	names := fs.String("scenario", "all", "comma separated scenarios to run: singly, doubly, circular or all")
	if err := fs.Parse(args); err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "[xlist] parse flags")
	}
	for _, name := range strings.Split(*names, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		switch {
		case len(name) <= 0:
			continue
		case name == "all":
			cfg.scenarios = lo.Map(scenarios, func(sc *scenario, _ int) string {
				return sc.name
			})
			continue
		}
		if _, ok := lookupScenario(name); !ok {
			return nil, infra.NewErrorStack("[xlist] unknown scenario " + name)
		}
		cfg.scenarios = append(cfg.scenarios, name)
	}
	if len(cfg.scenarios) <= 0 {
		return nil, infra.NewErrorStack("[xlist] no scenario to run")
	}

	if v, ok := os.LookupEnv(envNodeCapacity); ok && len(strings.TrimSpace(v)) > 0 {
		capacity, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, infra.WrapErrorStackWithMessage(err, "[xlist] invalid "+envNodeCapacity)
		}
		cfg.nodeCapacity = capacity
	}

	if v, ok := os.LookupEnv(envMetrics); ok && len(strings.TrimSpace(v)) > 0 {
		switch m := strings.ToLower(strings.TrimSpace(v)); m {
		case metricsNone, metricsStdout:
			cfg.metrics = m
		default:
			return nil, infra.NewErrorStack("[xlist] invalid " + envMetrics + " " + v)
		}
	}

	if v, ok := os.LookupEnv(envMetricsInterval); ok && len(strings.TrimSpace(v)) > 0 {
		interval, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return nil, infra.WrapErrorStackWithMessage(err, "[xlist] invalid "+envMetricsInterval)
		}
		if interval <= 0 {
			return nil, infra.NewErrorStack("[xlist] non-positive " + envMetricsInterval)
		}
		cfg.metricsInterval = interval
	}
	return cfg, nil
}

package list

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/benz9527/xlist/lib/infra"
	"github.com/benz9527/xlist/xlog"
)

const (
	singlyLinkedListKind   = "singly-linked-list"
	doublyLinkedListKind   = "doubly-linked-list"
	circularLinkedListKind = "circular-linked-list"
	defaultLinkedListName  = "default"
)

const (
	opInsertAtStart    = "InsertAtStart"
	opInsertAtEnd      = "InsertAtEnd"
	opInsertAtPosition = "InsertAtPosition"
	opDeleteAtStart    = "DeleteAtStart"
	opDeleteAtEnd      = "DeleteAtEnd"
	opDeleteAtPosition = "DeleteAtPosition"
	opSearch           = "Search"
)

type listCfg struct {
	name           string
	capacity       int
	logger         xlog.XLogger
	isStatsEnabled bool
	meterProvider  metric.MeterProvider
}

type ListOption func(cfg *listCfg)

func WithListName(name string) ListOption {
	return func(cfg *listCfg) {
		cfg.name = name
	}
}

// WithNodeCapacity bounds the live nodes of a list.
// An insert beyond the bound fails by ErrAllocationFailure.
// The capacity less than or equal to 0 means unbounded.
func WithNodeCapacity(capacity int) ListOption {
	return func(cfg *listCfg) {
		cfg.capacity = capacity
	}
}

// WithListLogger logs the rejected operations at debug level.
func WithListLogger(logger xlog.XLogger) ListOption {
	return func(cfg *listCfg) {
		cfg.logger = logger
	}
}

// WithListStats enables the otel metrics of a list.
// The global meter provider is used if the mp is absent.
func WithListStats(mp ...metric.MeterProvider) ListOption {
	return func(cfg *listCfg) {
		cfg.isStatsEnabled = true
		if len(mp) > 0 && mp[0] != nil {
			cfg.meterProvider = mp[0]
		}
	}
}

type nodeBudget struct {
	capacity int
	live     int
}

func (b *nodeBudget) acquire() bool {
	if b.capacity > 0 && b.live >= b.capacity {
		return false
	}
	b.live++
	return true
}

func (b *nodeBudget) release() {
	if b.live > 0 {
		b.live--
	}
}

// linkedListEnv is shared by all the linked list variants.
// It accounts the node budget and reports the rejected operations.
type linkedListEnv struct {
	kind   string
	name   string
	budget nodeBudget
	logger xlog.XLogger
	stats  *linkedListStats
}

func newLinkedListEnv(kind string, opts ...ListOption) *linkedListEnv {
	cfg := &listCfg{}
	for _, o := range opts {
		if o == nil {
			continue
		}
		o(cfg)
	}
	if len(cfg.name) <= 0 {
		cfg.name = defaultLinkedListName
	}

	env := &linkedListEnv{
		kind:   kind,
		name:   cfg.name,
		budget: nodeBudget{capacity: cfg.capacity},
	}
	if cfg.logger != nil {
		env.logger = cfg.logger.Named(kind)
	}
	if cfg.isStatsEnabled {
		mp := cfg.meterProvider
		if mp == nil {
			mp = otel.GetMeterProvider()
		}
		env.stats = newLinkedListStats(mp, kind, cfg.name)
	}
	return env
}

func (env *linkedListEnv) allocate(op string, fields ...zap.Field) error {
	if !env.budget.acquire() {
		return env.reject(op, ErrAllocationFailure, fields...)
	}
	env.stats.RecordNodeCount(1)
	return nil
}

func (env *linkedListEnv) release() {
	env.budget.release()
	env.stats.RecordNodeCount(-1)
}

func (env *linkedListEnv) reject(op string, errKind ListErr, fields ...zap.Field) error {
	err := infra.WrapErrorStackWithMessage(errKind, "["+env.kind+"] "+op+" rejected")
	env.stats.IncreaseRejectedCount(op, errKind)
	if env.logger != nil {
		newFields := make([]zap.Field, 0, len(fields)+3)
		newFields = append(newFields,
			zap.String("list", env.name),
			zap.String("op", op),
			zap.String("error", errKind.Error()),
		)
		newFields = append(newFields, fields...)
		env.logger.Debug("operation rejected", newFields...)
	}
	return err
}

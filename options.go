package colstore

import (
	"log/slog"

	"github.com/hupe1980/colstore/column"
)

type options struct {
	name             string
	format           column.FormatProvider
	initialCapacity  int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures New and Wrap.
type Option func(*options)

// WithName sets the column name attached to every log record.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithFormatProvider configures the culture rules used to convert string input.
//
// If nil is passed, column.InvariantFormat is used.
func WithFormatProvider(fp column.FormatProvider) Option {
	return func(o *options) {
		if fp == nil {
			fp = column.InvariantFormat
		}
		o.format = fp
	}
}

// WithInitialCapacity pre-allocates rows. Ignored by Wrap.
func WithInitialCapacity(n int) Option {
	return func(o *options) {
		o.initialCapacity = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &colstore.BasicMetricsCollector{}
//	c, _ := colstore.New(model.TypeUint16, colstore.WithMetricsCollector(metrics))
//	// ... use c ...
//	stats := metrics.GetStats()
//	fmt.Printf("Aggregates: %d, Avg latency: %dns\n", stats.AggregateCount, stats.AggregateAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := colstore.NewJSONLogger(slog.LevelInfo)
//	c, _ := colstore.New(model.TypeInt64, colstore.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		format:           column.InvariantFormat,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

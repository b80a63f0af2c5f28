package colstore

import (
	"github.com/hupe1980/colstore/column"
	"github.com/hupe1980/colstore/model"
)

// Of creates a new column builder for the given type.
//
// The builder is immutable - each method returns a new builder with the updated configuration.
// This ensures thread-safety and prevents accidental state sharing.
//
// Example:
//
//	c, err := colstore.Of(model.TypeDecimal).
//	    Name("price").
//	    Capacity(1 << 16).
//	    Format(column.Format{Decimal: ",", Group: "."}).
//	    Build()
func Of(t model.Type) Builder {
	return Builder{typ: t}
}

// Builder is an immutable fluent builder for instrumented columns.
type Builder struct {
	typ      model.Type
	name     string
	capacity int
	format   column.FormatProvider
	logger   *Logger
	metrics  MetricsCollector
}

// Name sets the column name attached to log records.
func (b Builder) Name(name string) Builder {
	b.name = name
	return b
}

// Capacity sets the number of rows allocated up front.
func (b Builder) Capacity(n int) Builder {
	b.capacity = n
	return b
}

// Format sets the format provider used for string conversion.
func (b Builder) Format(fp column.FormatProvider) Builder {
	b.format = fp
	return b
}

// Logger sets the structured logger.
func (b Builder) Logger(l *Logger) Builder {
	b.logger = l
	return b
}

// Metrics sets the metrics collector.
func (b Builder) Metrics(mc MetricsCollector) Builder {
	b.metrics = mc
	return b
}

// Build creates the column.
func (b Builder) Build() (*Column, error) {
	var opts []Option
	if b.name != "" {
		opts = append(opts, WithName(b.name))
	}
	if b.capacity > 0 {
		opts = append(opts, WithInitialCapacity(b.capacity))
	}
	if b.format != nil {
		opts = append(opts, WithFormatProvider(b.format))
	}
	if b.logger != nil {
		opts = append(opts, WithLogger(b.logger))
	}
	if b.metrics != nil {
		opts = append(opts, WithMetricsCollector(b.metrics))
	}

	return New(b.typ, opts...)
}

// MustBuild creates the column, panicking on error.
func (b Builder) MustBuild() *Column {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}

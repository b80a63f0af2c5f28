package colstore

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/hupe1980/colstore/column"
	"github.com/hupe1980/colstore/model"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    aggregateHistogram *prometheus.HistogramVec
//	}
//
//	func (p *PrometheusCollector) RecordAggregate(kind model.AggregateKind, rows int, d time.Duration, err error) {
//	    p.aggregateHistogram.WithLabelValues(kind.String()).Observe(d.Seconds())
//	}
type MetricsCollector interface {
	// RecordGrow is called after each Grow call.
	// from and to are the capacities before and after.
	RecordGrow(from, to int, duration time.Duration, err error)

	// RecordAggregate is called after each aggregate computation.
	// rows is the length of the supplied row list.
	RecordAggregate(kind model.AggregateKind, rows int, duration time.Duration, err error)

	// RecordConversion is called after each value conversion (Set, Convert,
	// CompareValue, ToText, FromText). err is nil if successful.
	RecordConversion(t model.Type, err error)

	// RecordSnapshot is called after each snapshot encode or decode.
	RecordSnapshot(size int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordGrow(int, int, time.Duration, error)                      {}
func (NoopMetricsCollector) RecordAggregate(model.AggregateKind, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordConversion(model.Type, error)                             {}
func (NoopMetricsCollector) RecordSnapshot(int, time.Duration, error)                       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	GrowCount           atomic.Int64
	GrowErrors          atomic.Int64
	RowsAdded           atomic.Int64
	AggregateCount      atomic.Int64
	AggregateErrors     atomic.Int64
	AggregateOverflows  atomic.Int64
	AggregateRows       atomic.Int64
	AggregateTotalNanos atomic.Int64
	ConversionCount     atomic.Int64
	ConversionErrors    atomic.Int64
	SnapshotCount       atomic.Int64
	SnapshotErrors      atomic.Int64
	SnapshotBytes       atomic.Int64
}

// RecordGrow implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGrow(from, to int, duration time.Duration, err error) {
	b.GrowCount.Add(1)
	if err != nil {
		b.GrowErrors.Add(1)
		return
	}
	if to > from {
		b.RowsAdded.Add(int64(to - from))
	}
}

// RecordAggregate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAggregate(kind model.AggregateKind, rows int, duration time.Duration, err error) {
	b.AggregateCount.Add(1)
	b.AggregateRows.Add(int64(rows))
	b.AggregateTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.AggregateErrors.Add(1)
		if errors.Is(err, column.ErrOverflow) {
			b.AggregateOverflows.Add(1)
		}
	}
}

// RecordConversion implements MetricsCollector.
func (b *BasicMetricsCollector) RecordConversion(t model.Type, err error) {
	b.ConversionCount.Add(1)
	if err != nil {
		b.ConversionErrors.Add(1)
	}
}

// RecordSnapshot implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSnapshot(size int, duration time.Duration, err error) {
	b.SnapshotCount.Add(1)
	if err != nil {
		b.SnapshotErrors.Add(1)
		return
	}
	b.SnapshotBytes.Add(int64(size))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		GrowCount:          b.GrowCount.Load(),
		GrowErrors:         b.GrowErrors.Load(),
		RowsAdded:          b.RowsAdded.Load(),
		AggregateCount:     b.AggregateCount.Load(),
		AggregateErrors:    b.AggregateErrors.Load(),
		AggregateOverflows: b.AggregateOverflows.Load(),
		AggregateRows:      b.AggregateRows.Load(),
		AggregateAvgNanos:  b.getAvgAggregateNanos(),
		ConversionCount:    b.ConversionCount.Load(),
		ConversionErrors:   b.ConversionErrors.Load(),
		SnapshotCount:      b.SnapshotCount.Load(),
		SnapshotErrors:     b.SnapshotErrors.Load(),
		SnapshotBytes:      b.SnapshotBytes.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgAggregateNanos() int64 {
	count := b.AggregateCount.Load()
	if count == 0 {
		return 0
	}
	return b.AggregateTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	GrowCount          int64
	GrowErrors         int64
	RowsAdded          int64
	AggregateCount     int64
	AggregateErrors    int64
	AggregateOverflows int64
	AggregateRows      int64
	AggregateAvgNanos  int64
	ConversionCount    int64
	ConversionErrors   int64
	SnapshotCount      int64
	SnapshotErrors     int64
	SnapshotBytes      int64
}

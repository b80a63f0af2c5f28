package colstore

import (
	"errors"
	"time"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/colstore/column"
	"github.com/hupe1980/colstore/model"
	"github.com/hupe1980/colstore/snapshot"
)

// Column is an instrumented column.Storage.
//
// It forwards every call to the wrapped storage and reports growth,
// aggregates, conversions and snapshots to the configured Logger and
// MetricsCollector. Like the storage itself it is not safe for concurrent use.
type Column struct {
	column.Storage

	name    string
	logger  *Logger
	metrics MetricsCollector
}

var _ column.Storage = (*Column)(nil)

// New creates an instrumented storage for t.
//
// Example:
//
//	c, err := colstore.New(model.TypeUint16,
//	    colstore.WithName("age"),
//	    colstore.WithInitialCapacity(1024),
//	    colstore.WithLogLevel(slog.LevelDebug),
//	)
func New(t model.Type, opts ...Option) (*Column, error) {
	o := applyOptions(opts)

	s, err := column.New(t,
		column.WithCapacity(o.initialCapacity),
		column.WithFormatProvider(o.format),
	)
	if err != nil {
		o.logger.Error("create storage failed", "type", t.String(), "error", err)
		return nil, err
	}
	return wrap(s, o), nil
}

// Wrap instruments an existing storage. WithInitialCapacity and
// WithFormatProvider have no effect since s is already configured.
func Wrap(s column.Storage, opts ...Option) *Column {
	return wrap(s, applyOptions(opts))
}

func wrap(s column.Storage, o options) *Column {
	logger := o.logger.WithType(s.Type())
	if o.name != "" {
		logger = logger.WithColumn(o.name)
	}
	return &Column{
		Storage: s,
		name:    o.name,
		logger:  logger,
		metrics: o.metricsCollector,
	}
}

// Name returns the configured column name.
func (c *Column) Name() string { return c.name }

// Unwrap returns the underlying storage.
func (c *Column) Unwrap() column.Storage { return c.Storage }

// Set implements column.Storage.
func (c *Column) Set(row int, v model.Value) error {
	err := c.Storage.Set(row, v)
	if !v.IsNull() {
		c.conversion("set", v, err)
	}
	return err
}

// CompareValue implements column.Storage.
func (c *Column) CompareValue(row int, v model.Value) (int, error) {
	r, err := c.Storage.CompareValue(row, v)
	if !v.IsNull() {
		c.conversion("compare", v, err)
	}
	return r, err
}

// Convert implements column.Storage.
func (c *Column) Convert(v model.Value) (model.Value, error) {
	r, err := c.Storage.Convert(v)
	if !v.IsNull() {
		c.conversion("convert", v, err)
	}
	return r, err
}

// ToText implements column.Storage.
func (c *Column) ToText(v model.Value) (string, error) {
	s, err := c.Storage.ToText(v)
	c.conversion("to_text", v, err)
	return s, err
}

// FromText implements column.Storage.
func (c *Column) FromText(text string) (model.Value, error) {
	v, err := c.Storage.FromText(text)
	c.conversion("from_text", model.String(text), err)
	return v, err
}

// Aggregate implements column.Storage.
func (c *Column) Aggregate(rows []int, kind model.AggregateKind) (model.Value, error) {
	start := time.Now()
	v, err := c.Storage.Aggregate(rows, kind)
	d := time.Since(start)

	c.metrics.RecordAggregate(kind, len(rows), d, err)
	c.logger.LogAggregate(kind, len(rows), d, err)
	return v, err
}

// Grow implements column.Storage.
func (c *Column) Grow(n int) error {
	from := c.Storage.Cap()
	start := time.Now()
	err := c.Storage.Grow(n)

	c.metrics.RecordGrow(from, c.Storage.Cap(), time.Since(start), err)
	c.logger.LogGrow(from, n, err)
	return err
}

// LoadFrom implements column.Storage.
func (c *Column) LoadFrom(values any, nulls *bitset.BitSet) error {
	err := c.Storage.LoadFrom(values, nulls)
	c.logger.LogLoad(c.Storage.Cap(), err)
	return err
}

// Snapshot encodes the column with the snapshot package.
func (c *Column) Snapshot(opts ...snapshot.Option) ([]byte, error) {
	start := time.Now()
	data, err := snapshot.Encode(c.Storage, opts...)

	c.metrics.RecordSnapshot(len(data), time.Since(start), err)
	c.logger.LogSnapshot("encode", len(data), err)
	return data, err
}

// Restore decodes a snapshot into a new instrumented column. The format
// provider configured with WithFormatProvider is applied to the rebuilt storage.
func Restore(data []byte, opts ...Option) (*Column, error) {
	o := applyOptions(opts)
	start := time.Now()

	s, err := snapshot.Decode(data,
		snapshot.WithLogger(o.logger.Logger),
		snapshot.WithColumnOptions(column.WithFormatProvider(o.format)),
	)

	o.metricsCollector.RecordSnapshot(len(data), time.Since(start), err)
	o.logger.LogSnapshot("decode", len(data), err)
	if err != nil {
		return nil, err
	}
	return wrap(s, o), nil
}

// Stats computes every aggregate kind supported by the column type over rows.
// Unsupported kinds are skipped; the first other error is returned.
func (c *Column) Stats(rows []int) (map[model.AggregateKind]model.Value, error) {
	out := make(map[model.AggregateKind]model.Value, len(model.AggregateKinds))
	for _, kind := range model.AggregateKinds {
		v, err := c.Aggregate(rows, kind)
		if err != nil {
			if errors.Is(err, ErrUnsupportedAggregate) {
				continue
			}
			return nil, err
		}
		out[kind] = v
	}
	return out, nil
}

func (c *Column) conversion(op string, v model.Value, err error) {
	c.metrics.RecordConversion(c.Storage.Type(), err)
	if err != nil {
		c.logger.LogConversion(op, v, err)
	}
}

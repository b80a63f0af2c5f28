// Package colstore provides typed, nullable, in-memory column storage.
//
// A column is a dense array of one native type plus a null bitmap. The
// column package holds the storage engine; this package wraps it with
// structured logging, metrics and snapshot helpers.
//
// # Quick Start
//
//	c, _ := colstore.New(model.TypeUint16, colstore.WithInitialCapacity(4))
//	_ = c.Set(0, model.Uint16(10))
//	_ = c.Set(1, model.Null())
//	_ = c.Set(2, model.Int64(20)) // converted to Uint16
//
//	sum, _ := c.Aggregate([]int{0, 1, 2}, model.AggregateSum) // Uint64(30)
//
// Or with the fluent builder:
//
//	c, _ := colstore.Of(model.TypeDecimal).
//	    Name("price").
//	    Capacity(1024).
//	    Format(column.Format{Decimal: ",", Group: "."}).
//	    Build()
//
// # Nulls
//
// A null row stores the default value of its type and has its bit set in
// the null bitmap. Compare only consults the bitmap when a stored value
// equals the default, and null sorts before every non-null value.
//
// # Aggregates
//
// Sum widens integers to Int64 or Uint64, Mean stays in the native type,
// and Var and StdDev return Float64 sample statistics. Every aggregate
// skips nulls and reports accumulator overflow as *OverflowError.
//
// # Snapshots
//
// Snapshot and Restore encode a column to a compressed, self-describing
// byte stream. The snapshot package also encodes many columns in parallel.
//
//	data, _ := c.Snapshot(snapshot.WithCompression(snapshot.CompressionZSTD))
//	restored, _ := colstore.Restore(data)
//
// # Observability
//
// Configure logging with WithLogger or WithLogLevel, and metrics with
// WithMetricsCollector:
//
//	metrics := &colstore.BasicMetricsCollector{}
//	c, _ := colstore.New(model.TypeFloat64,
//	    colstore.WithLogLevel(slog.LevelDebug),
//	    colstore.WithMetricsCollector(metrics),
//	)
//
// # Thread Safety
//
// A Column is not safe for concurrent mutation. Concurrent readers are
// safe while no goroutine writes or grows the column.
package colstore

// Package column implements typed, nullable column storage.
//
// One Store instantiation exists per native type. Each holds a dense slice of
// native values plus a null bitmap, and all of them satisfy the Storage
// interface so the owning table can stay polymorphic over the column type.
//
// # Null Representation
//
// A null row stores the type default (0, false, "", zero time) and is flagged
// in the bitmap:
//
//	rows:    0    1     2    3
//	values: [10] [0]  [0]  [30]
//	nulls:        ✓
//
// Row 1 is null, row 2 holds a real zero. Compare only consults the bitmap
// when one side equals the default, so nulls order first without a bitmap
// lookup per comparison.
//
// # Conversion
//
// Set, CompareValue and Convert accept any model.Value and coerce it into the
// native type, failing with a *ConversionError when the value is not
// representable. String input is interpreted through the configured
// FormatProvider. ToText and FromText use a fixed, locale-free format:
//
//	float:    strconv shortest form, INF, -INF, NaN
//	decimal:  plain digits, scale preserved ("1.50")
//	time:     RFC 3339 with nanoseconds, UTC
//	duration: Go duration syntax ("1h30m0s")
//
// # Aggregates
//
//	             Sum  Mean  Min/Max  Var/StdDev  First  Count
//	integers      ✓    ✓      ✓         ✓         ✓      ✓
//	floats        ✓    ✓      ✓         ✓         ✓      ✓
//	decimal       ✓    ✓      ✓         ✓         ✓      ✓
//	duration      ✓    ✓      ✓         ✓         ✓      ✓
//	time, bool                ✓                   ✓      ✓
//	string                                        ✓      ✓
//
// Sum widens to int64, uint64, float64 or decimal. Mean keeps the native
// type. Overflow of the accumulator or of the narrowing step yields an
// *OverflowError that names the column type.
//
// # Concurrency
//
// A Storage is not safe for concurrent use. The owner serializes access.
package column

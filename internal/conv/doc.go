// Package conv provides checked integer arithmetic and conversion utilities.
//
// Every function reports range violations as an error wrapping ErrOverflow
// instead of wrapping silently.
//
// Use cases:
//   - Checked accumulation in column aggregates (AddInt64, AddUint64)
//   - Checked narrowing of widened aggregate results back to a column's
//     native width (Narrow)
//   - Coercing floating point and decimal input into integer columns (FloatToInt)
//   - Converting between Go's int row indices and 32-bit bitmap positions
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv

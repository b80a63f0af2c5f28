// Package model defines the value model shared by every column storage.
//
// # Types
//
//   - Type: the closed set of native primitive types a column can hold
//     (Bool, Int8..Int64, Uint8..Uint64, Float32, Float64, Decimal, String,
//     Time, Duration)
//   - AggregateKind: Sum, Mean, Min, Max, First, Count, Var, StdDev
//
// # Values
//
// Value is a tagged sum: either the null sentinel or one typed native value.
// The null sentinel is distinct from every type's default (zero) value:
//
//	model.Null()      // no value
//	model.Uint16(0)   // a present zero
//
// Use Of to box arbitrary Go values:
//
//	v, err := model.Of(uint16(42))
package model

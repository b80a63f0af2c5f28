// Package testutil provides testing utilities for colstore.
//
// This package is intended for use in tests and benchmarks only.
// It provides deterministic generators for row index lists, null patterns
// and random or boundary values of every column type.
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	rows := rng.Rows(100, capacity)          // random order, repeats allowed
//	nulls := rng.SparseNulls(capacity, 0.3)  // ~30% null
//	v := rng.Value(model.TypeUint16)
//
// # Boundary Values
//
//	for _, v := range testutil.Boundaries(model.TypeFloat64) {
//	    // min, max, ±INF, NaN, ...
//	}
package testutil

// Package bitmap provides the null-presence bitmap of a column storage.
//
// # Design
//
// Nulls pairs a Roaring bitmap (the set of null row indices) with an explicit
// capacity that always equals the length of the owning value slice. Rows in
// the grown region start out not null.
//
// Roaring keeps the common case (few or no nulls) close to free while still
// handling all-null columns compactly:
//
//	┌──────────────────────────────────────────────────────────┐
//	│ capacity: 8                                              │
//	│ rows:      0  1  2  3  4  5  6  7                        │
//	│ null set: {1, 3}        ──►  roaring container [1,3]     │
//	└──────────────────────────────────────────────────────────┘
//
// Row indices are ints supplied by the caller and validated by the caller;
// an index outside [0, Cap()) panics like a slice access would.
//
// # Interop
//
//   - ToBitSet / FromBitSet convert to dense bits-and-blooms bitsets used as
//     caller-owned external buffers for bulk extraction and loading.
//   - WriteTo / ReadFrom use the portable Roaring serialization format.
package bitmap

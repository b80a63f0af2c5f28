// Package snapshot serializes a column storage into a self-describing byte
// stream and rebuilds it again.
//
// A snapshot is a copy-on-read image: Encode reads every row once and the
// result no longer shares memory with the storage. The package performs no
// file I/O; callers decide where the bytes go.
//
// # Format
//
//	┌──────┬─────┬────────────┬─────────┬──────────────┬──────────────────────┐
//	│ CSNP │ len │ codec name │ u32 len │ header (JSON)│ body block           │
//	└──────┴─────┴────────────┴─────────┴──────────────┴──────────────────────┘
//
// The body block carries an 8-byte frame (uncompressed and compressed size)
// followed by the optionally LZ4 or ZSTD compressed body. The body holds the
// Roaring null set followed by one length-prefixed canonical text cell per
// row; null cells are empty.
//
// # Usage
//
//	data, err := snapshot.Encode(s, snapshot.WithCompression(snapshot.CompressionZSTD))
//	restored, err := snapshot.Decode(data)
//
//	// Several columns in parallel:
//	all, err := snapshot.EncodeAll(ctx, columns, snapshot.WithConcurrency(4))
package snapshot

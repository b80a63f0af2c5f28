package snapshot

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/hupe1980/colstore/codec"
	"github.com/hupe1980/colstore/column"
)

type options struct {
	compression   Compression
	codec         codec.Codec
	concurrency   int
	logger        *slog.Logger
	columnOptions []column.Option
}

// Option configures Encode, Decode and their batch variants.
type Option func(*options)

// WithCompression sets the body compression for encoding. Default: CompressionNone.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithCodec sets the header codec for encoding. Default: codec.Default.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithConcurrency bounds the number of storages EncodeAll and DecodeAll
// process in parallel. Values below 1 mean GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithLogger sets the logger. Default: discard.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithColumnOptions passes options to column.New when decoding.
func WithColumnOptions(opts ...column.Option) Option {
	return func(o *options) {
		o.columnOptions = append(o.columnOptions, opts...)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		compression: CompressionNone,
		codec:       codec.Default,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.concurrency < 1 {
		o.concurrency = runtime.GOMAXPROCS(0)
	}
	return o
}

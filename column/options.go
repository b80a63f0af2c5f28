package column

type options struct {
	format   FormatProvider
	capacity int
}

// Option configures a storage at construction time.
type Option func(*options)

// WithFormatProvider configures the provider Convert uses for string input.
//
// If nil is passed, InvariantFormat is used.
func WithFormatProvider(fp FormatProvider) Option {
	return func(o *options) {
		if fp == nil {
			fp = InvariantFormat
		}
		o.format = fp
	}
}

// WithCapacity pre-allocates rows. All rows start as the type default, not null.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		format: InvariantFormat,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

package column

import (
	"cmp"
	"strconv"
	"strings"
	"time"

	"github.com/govalues/decimal"
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/colstore/model"
)

// traits describes one native type: everything the generic Store needs to
// know about T.
type traits[T any] struct {
	typ     model.Type
	zero    T
	compare func(a, b T) int
	box     func(T) model.Value
	convert func(v model.Value, fp FormatProvider) (T, error)
	format  func(T) string
	parse   func(string) (T, error)

	// minMax enables Min/Max. First and Count are always available.
	minMax bool
	// numeric handles Sum, Mean, Var and StdDev; nil if unsupported.
	numeric numericFunc[T]
}

var (
	boolTraits = &traits[bool]{
		typ:     model.TypeBool,
		compare: compareBool,
		box:     model.Bool,
		convert: toBool,
		format:  strconv.FormatBool,
		parse:   parseBool,
		minMax:  true,
	}

	int8Traits  = signedTraits(model.TypeInt8, model.Int8, 8)
	int16Traits = signedTraits(model.TypeInt16, model.Int16, 16)
	int32Traits = signedTraits(model.TypeInt32, model.Int32, 32)
	int64Traits = signedTraits(model.TypeInt64, model.Int64, 64)

	uint8Traits  = unsignedTraits(model.TypeUint8, model.Uint8, 8)
	uint16Traits = unsignedTraits(model.TypeUint16, model.Uint16, 16)
	uint32Traits = unsignedTraits(model.TypeUint32, model.Uint32, 32)
	uint64Traits = unsignedTraits(model.TypeUint64, model.Uint64, 64)

	float32Traits = floatTraits(model.TypeFloat32, model.Float32, 32)
	float64Traits = floatTraits(model.TypeFloat64, model.Float64, 64)

	decimalTraits = &traits[decimal.Decimal]{
		typ:     model.TypeDecimal,
		compare: decimal.Decimal.Cmp,
		box:     model.Decimal,
		convert: toDecimal,
		format:  decimal.Decimal.String,
		parse:   decimal.Parse,
		minMax:  true,
		numeric: decimalNumeric,
	}

	stringTraits = &traits[string]{
		typ:     model.TypeString,
		compare: strings.Compare,
		box:     model.String,
		convert: toString,
		format:  func(s string) string { return s },
		parse:   func(s string) (string, error) { return s, nil },
	}

	timeTraits = &traits[time.Time]{
		typ:     model.TypeTime,
		compare: time.Time.Compare,
		box:     model.Time,
		convert: toTime,
		format:  formatTime,
		parse:   parseTime,
		minMax:  true,
	}

	durationTraits = &traits[time.Duration]{
		typ:     model.TypeDuration,
		compare: cmp.Compare[time.Duration],
		box:     model.Duration,
		convert: toDuration,
		format:  time.Duration.String,
		parse:   time.ParseDuration,
		minMax:  true,
		numeric: signedNumeric[time.Duration](func(ns int64) model.Value {
			return model.Duration(time.Duration(ns))
		}),
	}
)

func signedTraits[T constraints.Signed](typ model.Type, box func(T) model.Value, bits int) *traits[T] {
	return &traits[T]{
		typ:     typ,
		compare: cmp.Compare[T],
		box:     box,
		convert: toInteger[T],
		format:  func(v T) string { return strconv.FormatInt(int64(v), 10) },
		parse: func(s string) (T, error) {
			i, err := strconv.ParseInt(s, 10, bits)
			return T(i), err
		},
		minMax:  true,
		numeric: signedNumeric[T](model.Int64),
	}
}

func unsignedTraits[T constraints.Unsigned](typ model.Type, box func(T) model.Value, bits int) *traits[T] {
	return &traits[T]{
		typ:     typ,
		compare: cmp.Compare[T],
		box:     box,
		convert: toInteger[T],
		format:  func(v T) string { return strconv.FormatUint(uint64(v), 10) },
		parse: func(s string) (T, error) {
			u, err := strconv.ParseUint(s, 10, bits)
			return T(u), err
		},
		minMax:  true,
		numeric: unsignedNumeric[T],
	}
}

func floatTraits[T constraints.Float](typ model.Type, box func(T) model.Value, bits int) *traits[T] {
	return &traits[T]{
		typ:     typ,
		compare: cmp.Compare[T],
		box:     box,
		convert: func(v model.Value, fp FormatProvider) (T, error) {
			f, err := toFloat(v, fp, bits)
			return T(f), err
		},
		format: func(v T) string { return formatFloat(float64(v), bits) },
		parse: func(s string) (T, error) {
			f, err := parseFloat(s, bits)
			return T(f), err
		},
		minMax:  true,
		numeric: floatNumeric[T],
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

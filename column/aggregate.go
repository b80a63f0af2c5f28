package column

import (
	"fmt"
	"math"

	"github.com/govalues/decimal"
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/colstore/internal/conv"
	"github.com/hupe1980/colstore/model"
)

// varianceEpsilon is the relative variance below which the result is treated
// as a cancellation artifact. float64 carries about 15 significant digits.
const varianceEpsilon = 1e-15

// numericFunc reduces rows for Sum, Mean, Var and StdDev.
type numericFunc[T any] func(s *Store[T], rows []int, kind model.AggregateKind) (model.Value, error)

// Aggregate implements Storage.
//
// Rows may repeat and appear in any order. Null rows are skipped by every
// kind except First, which returns the stored value of rows[0] as is
// (model.Null() for an empty list).
func (s *Store[T]) Aggregate(rows []int, kind model.AggregateKind) (model.Value, error) {
	switch kind {
	case model.AggregateFirst:
		if len(rows) == 0 {
			return model.Null(), nil
		}
		return s.tr.box(s.values[rows[0]]), nil
	case model.AggregateCount:
		n := 0
		for _, r := range rows {
			if !s.nulls.IsNull(r) {
				n++
			}
		}
		return model.Int64(int64(n)), nil
	case model.AggregateMin, model.AggregateMax:
		if s.tr.minMax {
			return s.extreme(rows, kind == model.AggregateMax), nil
		}
	case model.AggregateSum, model.AggregateMean, model.AggregateVar, model.AggregateStdDev:
		if s.tr.numeric != nil {
			return s.tr.numeric(s, rows, kind)
		}
	}
	return model.Null(), &UnsupportedAggregateError{Type: s.tr.typ, Kind: kind}
}

func (s *Store[T]) extreme(rows []int, wantMax bool) model.Value {
	var best T
	found := false
	for _, r := range rows {
		if s.nulls.IsNull(r) {
			continue
		}
		v := s.values[r]
		if !found {
			best, found = v, true
			continue
		}
		c := s.tr.compare(v, best)
		if (wantMax && c > 0) || (!wantMax && c < 0) {
			best = v
		}
	}
	if !found {
		return model.Null()
	}
	return s.tr.box(best)
}

func (s *Store[T]) overflow(kind model.AggregateKind, cause error) error {
	return &OverflowError{Type: s.tr.typ, Kind: kind, cause: cause}
}

// signedNumeric accumulates in int64. sumBox wraps the widened Sum result.
func signedNumeric[T constraints.Signed](sumBox func(int64) model.Value) numericFunc[T] {
	return func(s *Store[T], rows []int, kind model.AggregateKind) (model.Value, error) {
		if kind == model.AggregateVar || kind == model.AggregateStdDev {
			return variance(s, rows, kind, func(v T) float64 { return float64(v) }), nil
		}
		var sum int64
		n := 0
		for _, r := range rows {
			if s.nulls.IsNull(r) {
				continue
			}
			var err error
			if sum, err = conv.AddInt64(sum, int64(s.values[r])); err != nil {
				return model.Null(), s.overflow(kind, err)
			}
			n++
		}
		if n == 0 {
			return model.Null(), nil
		}
		if kind == model.AggregateSum {
			return sumBox(sum), nil
		}
		mean, err := conv.Narrow[T](sum / int64(n))
		if err != nil {
			return model.Null(), s.overflow(kind, err)
		}
		return s.tr.box(mean), nil
	}
}

// unsignedNumeric accumulates in uint64.
func unsignedNumeric[T constraints.Unsigned](s *Store[T], rows []int, kind model.AggregateKind) (model.Value, error) {
	if kind == model.AggregateVar || kind == model.AggregateStdDev {
		return variance(s, rows, kind, func(v T) float64 { return float64(v) }), nil
	}
	var sum uint64
	n := 0
	for _, r := range rows {
		if s.nulls.IsNull(r) {
			continue
		}
		var err error
		if sum, err = conv.AddUint64(sum, uint64(s.values[r])); err != nil {
			return model.Null(), s.overflow(kind, err)
		}
		n++
	}
	if n == 0 {
		return model.Null(), nil
	}
	if kind == model.AggregateSum {
		return model.Uint64(sum), nil
	}
	mean, err := conv.Narrow[T](sum / uint64(n))
	if err != nil {
		return model.Null(), s.overflow(kind, err)
	}
	return s.tr.box(mean), nil
}

// floatNumeric accumulates in float64. A sum that leaves the finite range
// while every input was finite is reported as overflow.
func floatNumeric[T constraints.Float](s *Store[T], rows []int, kind model.AggregateKind) (model.Value, error) {
	if kind == model.AggregateVar || kind == model.AggregateStdDev {
		return variance(s, rows, kind, func(v T) float64 { return float64(v) }), nil
	}
	var sum float64
	n := 0
	finite := true
	for _, r := range rows {
		if s.nulls.IsNull(r) {
			continue
		}
		x := float64(s.values[r])
		if math.IsInf(x, 0) || math.IsNaN(x) {
			finite = false
		}
		sum += x
		n++
	}
	if n == 0 {
		return model.Null(), nil
	}
	if finite && math.IsInf(sum, 0) {
		return model.Null(), s.overflow(kind, fmt.Errorf("%w: float64 sum", conv.ErrOverflow))
	}
	if kind == model.AggregateSum {
		return model.Float64(sum), nil
	}
	return s.tr.box(T(sum / float64(n))), nil
}

func decimalNumeric(s *Store[decimal.Decimal], rows []int, kind model.AggregateKind) (model.Value, error) {
	if kind == model.AggregateVar || kind == model.AggregateStdDev {
		return variance(s, rows, kind, func(d decimal.Decimal) float64 {
			f, _ := d.Float64()
			return f
		}), nil
	}
	sum := decimal.Decimal{}
	n := 0
	for _, r := range rows {
		if s.nulls.IsNull(r) {
			continue
		}
		var err error
		if sum, err = sum.Add(s.values[r]); err != nil {
			return model.Null(), s.overflow(kind, err)
		}
		n++
	}
	if n == 0 {
		return model.Null(), nil
	}
	if kind == model.AggregateSum {
		return model.Decimal(sum), nil
	}
	count, err := decimal.New(int64(n), 0)
	if err != nil {
		return model.Null(), s.overflow(kind, err)
	}
	mean, err := sum.Quo(count)
	if err != nil {
		return model.Null(), s.overflow(kind, err)
	}
	return model.Decimal(mean), nil
}

// variance computes the sample variance in one pass from Σx and Σx².
// Fewer than two non-null rows yield model.Null().
func variance[T any](s *Store[T], rows []int, kind model.AggregateKind, toFloat func(T) float64) model.Value {
	var sum, sqr float64
	n := 0
	for _, r := range rows {
		if s.nulls.IsNull(r) {
			continue
		}
		x := toFloat(s.values[r])
		sum += x
		sqr += x * x
		n++
	}
	if n < 2 {
		return model.Null()
	}

	count := float64(n)
	v := count*sqr - sum*sum
	rel := v / (sum * sum)
	if rel < varianceEpsilon || v < 0 {
		v = 0
	} else {
		v /= count * (count - 1)
	}

	if kind == model.AggregateStdDev {
		return model.Float64(math.Sqrt(v))
	}
	return model.Float64(v)
}

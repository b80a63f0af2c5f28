package column

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/govalues/decimal"
	"golang.org/x/exp/constraints"

	"github.com/hupe1980/colstore/internal/conv"
	"github.com/hupe1980/colstore/model"
)

var errNotConvertible = errors.New("no conversion defined")

// toInteger converts v into any integer type with range checking.
// Fractional input (float, decimal) is rounded half to even first.
func toInteger[T constraints.Integer](v model.Value, _ FormatProvider) (T, error) {
	k := v.Kind()
	switch {
	case k.IsSigned():
		i, _ := v.AsInt64()
		return conv.Narrow[T](i)
	case k.IsUnsigned():
		u, _ := v.AsUint64()
		return conv.Narrow[T](u)
	case k.IsFloat():
		f, _ := v.AsFloat64()
		return conv.FloatToInt[T](f)
	case k == model.TypeDecimal:
		d, _ := v.AsDecimal()
		return parseInteger[T](d.Round(0).String())
	case k == model.TypeBool:
		if b, _ := v.AsBool(); b {
			return 1, nil
		}
		return 0, nil
	case k == model.TypeString:
		s, _ := v.AsString()
		// Group separators are only accepted for fractional targets.
		return parseInteger[T](strings.TrimSpace(s))
	}
	return 0, errNotConvertible
}

// parseInteger parses base-10 digits into T; values beyond int64 are parsed unsigned.
func parseInteger[T constraints.Integer](s string) (T, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return conv.Narrow[T](i)
	}
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return conv.Narrow[T](u)
}

func toFloat(v model.Value, fp FormatProvider, bits int) (float64, error) {
	var f float64
	k := v.Kind()
	switch {
	case k.IsSigned():
		i, _ := v.AsInt64()
		f = float64(i)
	case k.IsUnsigned():
		u, _ := v.AsUint64()
		f = float64(u)
	case k.IsFloat():
		f, _ = v.AsFloat64()
	case k == model.TypeDecimal:
		d, _ := v.AsDecimal()
		f, _ = d.Float64()
	case k == model.TypeBool:
		if b, _ := v.AsBool(); b {
			f = 1
		}
	case k == model.TypeString:
		s, _ := v.AsString()
		var err error
		if f, err = strconv.ParseFloat(normalizeNumber(s, fp), bits); err != nil {
			return 0, err
		}
	default:
		return 0, errNotConvertible
	}
	if bits == 32 && !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
		return 0, fmt.Errorf("%w: %v exceeds float32", conv.ErrOverflow, f)
	}
	return f, nil
}

func toDecimal(v model.Value, fp FormatProvider) (decimal.Decimal, error) {
	k := v.Kind()
	switch {
	case k.IsSigned():
		i, _ := v.AsInt64()
		return decimal.New(i, 0)
	case k.IsUnsigned():
		u, _ := v.AsUint64()
		return decimal.Parse(strconv.FormatUint(u, 10))
	case k.IsFloat():
		f, _ := v.AsFloat64()
		return decimal.NewFromFloat64(f)
	case k == model.TypeDecimal:
		d, _ := v.AsDecimal()
		return d, nil
	case k == model.TypeBool:
		if b, _ := v.AsBool(); b {
			return decimal.New(1, 0)
		}
		return decimal.Decimal{}, nil
	case k == model.TypeString:
		s, _ := v.AsString()
		return decimal.Parse(normalizeNumber(s, fp))
	}
	return decimal.Decimal{}, errNotConvertible
}

func toBool(v model.Value, _ FormatProvider) (bool, error) {
	k := v.Kind()
	switch {
	case k == model.TypeBool:
		b, _ := v.AsBool()
		return b, nil
	case k.IsSigned():
		i, _ := v.AsInt64()
		return i != 0, nil
	case k.IsUnsigned():
		u, _ := v.AsUint64()
		return u != 0, nil
	case k.IsFloat():
		f, _ := v.AsFloat64()
		return f != 0, nil
	case k == model.TypeDecimal:
		d, _ := v.AsDecimal()
		return !d.IsZero(), nil
	case k == model.TypeString:
		s, _ := v.AsString()
		return strconv.ParseBool(strings.TrimSpace(s))
	}
	return false, errNotConvertible
}

// toString formats any value through the provider. Nothing fails.
func toString(v model.Value, fp FormatProvider) (string, error) {
	k := v.Kind()
	switch {
	case k == model.TypeString:
		s, _ := v.AsString()
		return s, nil
	case k.IsFloat() || k == model.TypeDecimal:
		return localizeNumber(v.String(), fp), nil
	case k == model.TypeTime:
		t, _ := v.AsTime()
		return t.In(fp.Location()).Format(fp.TimeLayout()), nil
	}
	return v.String(), nil
}

// Time columns hold instants whose UTC year is 1 through 9999, the range
// the canonical RFC3339 text form can represent.
const (
	minTimeYear = 1
	maxTimeYear = 9999
)

func toTime(v model.Value, fp FormatProvider) (time.Time, error) {
	switch v.Kind() {
	case model.TypeTime:
		t, _ := v.AsTime()
		return checkTime(t)
	case model.TypeString:
		s, _ := v.AsString()
		t, err := time.ParseInLocation(fp.TimeLayout(), strings.TrimSpace(s), fp.Location())
		if err != nil {
			return time.Time{}, err
		}
		return checkTime(t)
	}
	return time.Time{}, errNotConvertible
}

func checkTime(t time.Time) (time.Time, error) {
	if y := t.UTC().Year(); y < minTimeYear || y > maxTimeYear {
		return time.Time{}, fmt.Errorf("year %d outside %d..%d", y, minTimeYear, maxTimeYear)
	}
	return t, nil
}

// toDuration accepts durations, integers as nanoseconds, and duration strings.
func toDuration(v model.Value, _ FormatProvider) (time.Duration, error) {
	k := v.Kind()
	switch {
	case k == model.TypeDuration:
		d, _ := v.AsDuration()
		return d, nil
	case k.IsSigned():
		i, _ := v.AsInt64()
		return time.Duration(i), nil
	case k.IsUnsigned():
		u, _ := v.AsUint64()
		ns, err := conv.Narrow[int64](u)
		return time.Duration(ns), err
	case k == model.TypeString:
		s, _ := v.AsString()
		return time.ParseDuration(strings.TrimSpace(s))
	}
	return 0, errNotConvertible
}

package model

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/govalues/decimal"
)

// Value is either the null sentinel or exactly one typed native value.
//
// The representation avoids boxing: every payload lives in a fixed field
// selected by the kind. float32 payloads are stored widened to float64,
// which is exact.
type Value struct {
	kind Type
	i    int64 // signed integers, bool (0/1), duration nanoseconds
	u    uint64
	f    float64
	s    string
	d    decimal.Decimal
	t    time.Time
}

// Null returns the null sentinel.
func Null() Value { return Value{} }

// Bool returns a bool Value.
func Bool(v bool) Value {
	if v {
		return Value{kind: TypeBool, i: 1}
	}
	return Value{kind: TypeBool}
}

// Int8 returns an int8 Value.
func Int8(v int8) Value { return Value{kind: TypeInt8, i: int64(v)} }

// Int16 returns an int16 Value.
func Int16(v int16) Value { return Value{kind: TypeInt16, i: int64(v)} }

// Int32 returns an int32 Value.
func Int32(v int32) Value { return Value{kind: TypeInt32, i: int64(v)} }

// Int64 returns an int64 Value.
func Int64(v int64) Value { return Value{kind: TypeInt64, i: v} }

// Uint8 returns a uint8 Value.
func Uint8(v uint8) Value { return Value{kind: TypeUint8, u: uint64(v)} }

// Uint16 returns a uint16 Value.
func Uint16(v uint16) Value { return Value{kind: TypeUint16, u: uint64(v)} }

// Uint32 returns a uint32 Value.
func Uint32(v uint32) Value { return Value{kind: TypeUint32, u: uint64(v)} }

// Uint64 returns a uint64 Value.
func Uint64(v uint64) Value { return Value{kind: TypeUint64, u: v} }

// Float32 returns a float32 Value.
func Float32(v float32) Value { return Value{kind: TypeFloat32, f: float64(v)} }

// Float64 returns a float64 Value.
func Float64(v float64) Value { return Value{kind: TypeFloat64, f: v} }

// Decimal returns a decimal Value.
func Decimal(v decimal.Decimal) Value { return Value{kind: TypeDecimal, d: v} }

// String returns a string Value.
func String(v string) Value { return Value{kind: TypeString, s: v} }

// Time returns a date-time Value.
func Time(v time.Time) Value { return Value{kind: TypeTime, t: v} }

// Duration returns a time span Value.
func Duration(v time.Duration) Value { return Value{kind: TypeDuration, i: int64(v)} }

// Of boxes a Go value into a Value. nil maps to Null.
func Of(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case int8:
		return Int8(x), nil
	case int16:
		return Int16(x), nil
	case int32:
		return Int32(x), nil
	case int64:
		return Int64(x), nil
	case int:
		return Int64(int64(x)), nil
	case uint8:
		return Uint8(x), nil
	case uint16:
		return Uint16(x), nil
	case uint32:
		return Uint32(x), nil
	case uint64:
		return Uint64(x), nil
	case uint:
		return Uint64(uint64(x)), nil
	case float32:
		return Float32(x), nil
	case float64:
		return Float64(x), nil
	case decimal.Decimal:
		return Decimal(x), nil
	case string:
		return String(x), nil
	case time.Time:
		return Time(x), nil
	case time.Duration:
		return Duration(x), nil
	default:
		return Null(), fmt.Errorf("unsupported value type %T", v)
	}
}

// MustOf is like Of but panics on unsupported types. Intended for tests and literals.
func MustOf(v any) Value {
	val, err := Of(v)
	if err != nil {
		panic(err)
	}
	return val
}

// Kind returns the native type of the payload, or TypeNull for the sentinel.
func (v Value) Kind() Type { return v.kind }

// IsNull reports whether v is the null sentinel.
func (v Value) IsNull() bool { return v.kind == TypeNull }

// AsBool returns the payload if Kind is TypeBool.
func (v Value) AsBool() (bool, bool) {
	if v.kind != TypeBool {
		return false, false
	}
	return v.i != 0, true
}

// AsInt64 returns the payload widened to int64 if Kind is a signed integer type.
func (v Value) AsInt64() (int64, bool) {
	if !v.kind.IsSigned() {
		return 0, false
	}
	return v.i, true
}

// AsUint64 returns the payload widened to uint64 if Kind is an unsigned integer type.
func (v Value) AsUint64() (uint64, bool) {
	if !v.kind.IsUnsigned() {
		return 0, false
	}
	return v.u, true
}

// AsFloat64 returns the payload widened to float64 if Kind is a floating point type.
func (v Value) AsFloat64() (float64, bool) {
	if !v.kind.IsFloat() {
		return 0, false
	}
	return v.f, true
}

// AsDecimal returns the payload if Kind is TypeDecimal.
func (v Value) AsDecimal() (decimal.Decimal, bool) {
	if v.kind != TypeDecimal {
		return decimal.Decimal{}, false
	}
	return v.d, true
}

// AsString returns the payload if Kind is TypeString.
func (v Value) AsString() (string, bool) {
	if v.kind != TypeString {
		return "", false
	}
	return v.s, true
}

// AsTime returns the payload if Kind is TypeTime.
func (v Value) AsTime() (time.Time, bool) {
	if v.kind != TypeTime {
		return time.Time{}, false
	}
	return v.t, true
}

// AsDuration returns the payload if Kind is TypeDuration.
func (v Value) AsDuration() (time.Duration, bool) {
	if v.kind != TypeDuration {
		return 0, false
	}
	return time.Duration(v.i), true
}

// Native returns the payload as its exact Go type (uint16 for TypeUint16 and
// so on), or nil for the null sentinel.
func (v Value) Native() any {
	switch v.kind {
	case TypeBool:
		return v.i != 0
	case TypeInt8:
		return int8(v.i)
	case TypeInt16:
		return int16(v.i)
	case TypeInt32:
		return int32(v.i)
	case TypeInt64:
		return v.i
	case TypeUint8:
		return uint8(v.u)
	case TypeUint16:
		return uint16(v.u)
	case TypeUint32:
		return uint32(v.u)
	case TypeUint64:
		return v.u
	case TypeFloat32:
		return float32(v.f)
	case TypeFloat64:
		return v.f
	case TypeDecimal:
		return v.d
	case TypeString:
		return v.s
	case TypeTime:
		return v.t
	case TypeDuration:
		return time.Duration(v.i)
	default:
		return nil
	}
}

// Equal reports whether v and other have the same kind and payload.
// Decimals compare numerically (1.0 equals 1.00), times by instant.
// NaN equals NaN so that round trips can be asserted.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch {
	case v.kind == TypeNull:
		return true
	case v.kind.IsUnsigned():
		return v.u == other.u
	case v.kind.IsFloat():
		if math.IsNaN(v.f) {
			return math.IsNaN(other.f)
		}
		return v.f == other.f
	case v.kind == TypeDecimal:
		return v.d.Cmp(other.d) == 0
	case v.kind == TypeString:
		return v.s == other.s
	case v.kind == TypeTime:
		return v.t.Equal(other.t)
	default:
		return v.i == other.i
	}
}

// String returns a human readable representation for logs and tables.
// It is not the canonical text format; see column.Storage.ToText.
func (v Value) String() string {
	switch {
	case v.kind == TypeNull:
		return "NULL"
	case v.kind == TypeBool:
		return strconv.FormatBool(v.i != 0)
	case v.kind.IsSigned():
		return strconv.FormatInt(v.i, 10)
	case v.kind.IsUnsigned():
		return strconv.FormatUint(v.u, 10)
	case v.kind == TypeFloat32:
		return strconv.FormatFloat(v.f, 'g', -1, 32)
	case v.kind == TypeFloat64:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case v.kind == TypeDecimal:
		return v.d.String()
	case v.kind == TypeString:
		return v.s
	case v.kind == TypeTime:
		return v.t.Format(time.RFC3339Nano)
	case v.kind == TypeDuration:
		return time.Duration(v.i).String()
	default:
		return "invalid"
	}
}

package model

import (
	"math"
	"testing"
	"time"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNull(t *testing.T) {
	v := Null()

	assert.True(t, v.IsNull())
	assert.Equal(t, TypeNull, v.Kind())
	assert.Nil(t, v.Native())
	assert.Equal(t, "NULL", v.String())
	assert.Equal(t, Value{}, v)
}

func TestOf(t *testing.T) {
	ts := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	d := decimal.MustParse("1.25")

	tests := []struct {
		in   any
		kind Type
	}{
		{nil, TypeNull},
		{true, TypeBool},
		{int8(-1), TypeInt8},
		{int16(-1), TypeInt16},
		{int32(-1), TypeInt32},
		{int64(-1), TypeInt64},
		{7, TypeInt64},
		{uint8(1), TypeUint8},
		{uint16(1), TypeUint16},
		{uint32(1), TypeUint32},
		{uint64(1), TypeUint64},
		{uint(1), TypeUint64},
		{float32(1.5), TypeFloat32},
		{1.5, TypeFloat64},
		{d, TypeDecimal},
		{"x", TypeString},
		{ts, TypeTime},
		{time.Second, TypeDuration},
		{Uint16(3), TypeUint16},
	}

	for _, tt := range tests {
		v, err := Of(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.kind, v.Kind(), "%T", tt.in)
	}

	_, err := Of(struct{}{})
	assert.Error(t, err)
	assert.Panics(t, func() { MustOf([]byte("x")) })
}

func TestNativeRoundTrip(t *testing.T) {
	natives := []any{
		true, int8(-8), int16(-16), int32(-32), int64(-64),
		uint8(8), uint16(16), uint32(32), uint64(math.MaxUint64),
		float32(0.5), 0.25, "s", time.Minute,
	}

	for _, n := range natives {
		assert.Equal(t, n, MustOf(n).Native(), "%T", n)
	}
}

func TestAccessorsCheckKind(t *testing.T) {
	v := Uint16(5)

	u, ok := v.AsUint64()
	assert.True(t, ok)
	assert.Equal(t, uint64(5), u)

	_, ok = v.AsInt64()
	assert.False(t, ok)
	_, ok = v.AsFloat64()
	assert.False(t, ok)
	_, ok = v.AsString()
	assert.False(t, ok)
	_, ok = v.AsBool()
	assert.False(t, ok)
	_, ok = v.AsDecimal()
	assert.False(t, ok)
	_, ok = v.AsTime()
	assert.False(t, ok)
	_, ok = v.AsDuration()
	assert.False(t, ok)

	f, ok := Float32(0.5).AsFloat64()
	assert.True(t, ok)
	assert.Equal(t, 0.5, f)
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"null", Null(), Null(), true},
		{"kind differs", Int32(1), Int64(1), false},
		{"decimal scale", Decimal(decimal.MustParse("1.0")), Decimal(decimal.MustParse("1.00")), true},
		{"nan", Float64(math.NaN()), Float64(math.NaN()), true},
		{"nan vs number", Float64(math.NaN()), Float64(1), false},
		{"time zones", Time(time.Date(2024, 1, 1, 1, 0, 0, 0, time.FixedZone("X", 3600))), Time(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)), true},
		{"strings", String("a"), String("b"), false},
		{"bools", Bool(true), Bool(true), true},
		{"durations", Duration(time.Second), Duration(time.Millisecond), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Equal(tt.b))
			assert.Equal(t, tt.want, tt.b.Equal(tt.a))
		})
	}
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "-3", Int8(-3).String())
	assert.Equal(t, "65535", Uint16(65535).String())
	assert.Equal(t, "0.1", Float32(0.1).String())
	assert.Equal(t, "1.50", Decimal(decimal.MustParse("1.50")).String())
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "1m30s", Duration(90*time.Second).String())
}

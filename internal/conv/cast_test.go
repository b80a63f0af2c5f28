//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntToUint32(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := IntToUint32(0)
		assert.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	})

	t.Run("valid max uint32", func(t *testing.T) {
		got, err := IntToUint32(math.MaxUint32)
		assert.NoError(t, err)
		assert.Equal(t, uint32(math.MaxUint32), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := IntToUint32(-1)
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := IntToUint32(math.MaxUint32 + 1)
		assert.ErrorIs(t, err, ErrOverflow)
	})
}

func TestUint32ToInt(t *testing.T) {
	got, err := Uint32ToInt(math.MaxUint32)
	// On 64-bit (amd64/arm64), MaxUint32 fits in int
	assert.NoError(t, err)
	assert.Equal(t, int(math.MaxUint32), got)
}

func TestAddInt64(t *testing.T) {
	tests := []struct {
		name    string
		a, b    int64
		want    int64
		wantErr bool
	}{
		{"small", 2, 3, 5, false},
		{"mixed signs", math.MaxInt64, math.MinInt64, -1, false},
		{"max", math.MaxInt64 - 1, 1, math.MaxInt64, false},
		{"positive overflow", math.MaxInt64, 1, 0, true},
		{"negative overflow", math.MinInt64, -1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddInt64(tt.a, tt.b)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrOverflow)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddUint64(t *testing.T) {
	got, err := AddUint64(math.MaxUint64-1, 1)
	assert.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), got)

	_, err = AddUint64(math.MaxUint64, 1)
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestNarrow(t *testing.T) {
	t.Run("fits", func(t *testing.T) {
		got, err := Narrow[uint16](int64(65535))
		assert.NoError(t, err)
		assert.Equal(t, uint16(65535), got)
	})

	t.Run("too large", func(t *testing.T) {
		_, err := Narrow[uint16](int64(65536))
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("negative to unsigned", func(t *testing.T) {
		_, err := Narrow[uint8](int64(-1))
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("large unsigned to signed", func(t *testing.T) {
		_, err := Narrow[int64](uint64(math.MaxUint64))
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("signed min", func(t *testing.T) {
		got, err := Narrow[int8](int64(-128))
		assert.NoError(t, err)
		assert.Equal(t, int8(-128), got)
	})
}

func TestFloatToInt(t *testing.T) {
	t.Run("rounds half to even", func(t *testing.T) {
		got, err := FloatToInt[int32](2.5)
		assert.NoError(t, err)
		assert.Equal(t, int32(2), got)

		got, err = FloatToInt[int32](3.5)
		assert.NoError(t, err)
		assert.Equal(t, int32(4), got)
	})

	t.Run("bounds", func(t *testing.T) {
		got, err := FloatToInt[uint8](255)
		assert.NoError(t, err)
		assert.Equal(t, uint8(255), got)

		_, err = FloatToInt[uint8](256)
		assert.ErrorIs(t, err, ErrOverflow)

		_, err = FloatToInt[uint8](-1)
		assert.ErrorIs(t, err, ErrOverflow)

		got8, err := FloatToInt[int8](-128)
		assert.NoError(t, err)
		assert.Equal(t, int8(-128), got8)
	})

	t.Run("non finite", func(t *testing.T) {
		_, err := FloatToInt[int64](math.NaN())
		assert.ErrorIs(t, err, ErrOverflow)
		_, err = FloatToInt[int64](math.Inf(1))
		assert.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("int64 upper bound", func(t *testing.T) {
		_, err := FloatToInt[int64](math.Ldexp(1, 63))
		assert.ErrorIs(t, err, ErrOverflow)
	})
}

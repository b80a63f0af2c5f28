package testutil

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/govalues/decimal"

	"github.com/hupe1980/colstore/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Rows returns n row indices in [0, capacity), in random order with repeats.
func (r *RNG) Rows(n, capacity int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	rows := make([]int, n)
	for i := range rows {
		rows[i] = r.rand.Intn(capacity)
	}
	return rows
}

// SparseNulls returns n null flags where each row is null with probability nullRate.
func (r *RNG) SparseNulls(n int, nullRate float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	flags := make([]bool, n)
	for i := range flags {
		flags[i] = r.rand.Float64() < nullRate
	}
	return flags
}

// Value returns a random non-null value of type t. Roughly one value in
// eight is the type default, which exercises the null/default disambiguation.
func (r *RNG) Value(t model.Type) model.Value {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rand.Intn(8) == 0 {
		return Default(t)
	}
	u := r.rand.Uint64()
	switch t {
	case model.TypeBool:
		return model.Bool(u&1 == 1)
	case model.TypeInt8:
		return model.Int8(int8(u))
	case model.TypeInt16:
		return model.Int16(int16(u))
	case model.TypeInt32:
		return model.Int32(int32(u))
	case model.TypeInt64:
		return model.Int64(int64(u))
	case model.TypeUint8:
		return model.Uint8(uint8(u))
	case model.TypeUint16:
		return model.Uint16(uint16(u))
	case model.TypeUint32:
		return model.Uint32(uint32(u))
	case model.TypeUint64:
		return model.Uint64(u)
	case model.TypeFloat32:
		return model.Float32(float32(r.rand.NormFloat64() * 1e6))
	case model.TypeFloat64:
		return model.Float64(r.rand.NormFloat64() * 1e12)
	case model.TypeDecimal:
		return model.Decimal(decimal.MustNew(int64(u>>8)-int64(1)<<54, r.rand.Intn(10)))
	case model.TypeString:
		return model.String(randomString(r.rand, 1+r.rand.Intn(12)))
	case model.TypeTime:
		return model.Time(time.Unix(int64(u%(1<<35)), int64(u%1e9)).UTC())
	case model.TypeDuration:
		return model.Duration(time.Duration(int64(u >> 2)))
	}
	return model.Null()
}

// Default returns the default (zero) value of type t.
func Default(t model.Type) model.Value {
	switch t {
	case model.TypeBool:
		return model.Bool(false)
	case model.TypeInt8:
		return model.Int8(0)
	case model.TypeInt16:
		return model.Int16(0)
	case model.TypeInt32:
		return model.Int32(0)
	case model.TypeInt64:
		return model.Int64(0)
	case model.TypeUint8:
		return model.Uint8(0)
	case model.TypeUint16:
		return model.Uint16(0)
	case model.TypeUint32:
		return model.Uint32(0)
	case model.TypeUint64:
		return model.Uint64(0)
	case model.TypeFloat32:
		return model.Float32(0)
	case model.TypeFloat64:
		return model.Float64(0)
	case model.TypeDecimal:
		return model.Decimal(decimal.Decimal{})
	case model.TypeString:
		return model.String("")
	case model.TypeTime:
		return model.Time(time.Time{})
	case model.TypeDuration:
		return model.Duration(0)
	}
	return model.Null()
}

// Boundaries returns extreme and special values of type t.
func Boundaries(t model.Type) []model.Value {
	switch t {
	case model.TypeBool:
		return []model.Value{model.Bool(false), model.Bool(true)}
	case model.TypeInt8:
		return []model.Value{model.Int8(math.MinInt8), model.Int8(-1), model.Int8(0), model.Int8(math.MaxInt8)}
	case model.TypeInt16:
		return []model.Value{model.Int16(math.MinInt16), model.Int16(0), model.Int16(math.MaxInt16)}
	case model.TypeInt32:
		return []model.Value{model.Int32(math.MinInt32), model.Int32(0), model.Int32(math.MaxInt32)}
	case model.TypeInt64:
		return []model.Value{model.Int64(math.MinInt64), model.Int64(0), model.Int64(math.MaxInt64)}
	case model.TypeUint8:
		return []model.Value{model.Uint8(0), model.Uint8(math.MaxUint8)}
	case model.TypeUint16:
		return []model.Value{model.Uint16(0), model.Uint16(math.MaxUint16)}
	case model.TypeUint32:
		return []model.Value{model.Uint32(0), model.Uint32(math.MaxUint32)}
	case model.TypeUint64:
		return []model.Value{model.Uint64(0), model.Uint64(math.MaxUint64)}
	case model.TypeFloat32:
		return []model.Value{
			model.Float32(math.SmallestNonzeroFloat32), model.Float32(-math.MaxFloat32),
			model.Float32(math.MaxFloat32), model.Float32(0.1),
			model.Float32(float32(math.Inf(1))), model.Float32(float32(math.Inf(-1))),
			model.Float32(float32(math.NaN())),
		}
	case model.TypeFloat64:
		return []model.Value{
			model.Float64(math.SmallestNonzeroFloat64), model.Float64(-math.MaxFloat64),
			model.Float64(math.MaxFloat64), model.Float64(0.1),
			model.Float64(math.Inf(1)), model.Float64(math.Inf(-1)), model.Float64(math.NaN()),
		}
	case model.TypeDecimal:
		return []model.Value{
			model.Decimal(decimal.MustParse("-9999999999999999999")),
			model.Decimal(decimal.MustParse("0.0000000000000000001")),
			model.Decimal(decimal.MustParse("9999999999999999999")),
			model.Decimal(decimal.MustParse("1.50")),
		}
	case model.TypeString:
		return []model.Value{model.String(""), model.String(" padded "), model.String("ünïcødé\n\t")}
	case model.TypeTime:
		return []model.Value{
			model.Time(time.Time{}),
			model.Time(time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC)),
			model.Time(time.Date(2024, 2, 29, 12, 0, 0, 1, time.UTC)),
			// Local year 10000, UTC year 9999.
			model.Time(time.Date(10000, 1, 1, 1, 0, 0, 0, time.FixedZone("UTC+2", 2*3600))),
		}
	case model.TypeDuration:
		return []model.Value{model.Duration(0), model.Duration(-time.Nanosecond), model.Duration(90 * time.Minute)}
	}
	return nil
}

func randomString(r *rand.Rand, n int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 _-"
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(b)
}

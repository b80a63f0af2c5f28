package column

import (
	"fmt"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/govalues/decimal"

	"github.com/hupe1980/colstore/model"
)

// Storage is the per-column storage contract shared by every native type.
//
// Row indices are supplied and validated by the owner; an index outside
// [0, Cap()) panics. A Storage is not safe for concurrent use.
type Storage interface {
	// Type returns the native type of the column.
	Type() model.Type

	// Cap returns the number of addressable rows.
	Cap() int

	// Get returns the value at row, or model.Null() if the row is flagged null.
	Get(row int) model.Value

	// IsNull reports whether row is flagged null.
	IsNull(row int) bool

	// Set stores v at row. model.Null() stores the type default and flags
	// the row null; any other value is converted to the native type first.
	// On a *ConversionError the row is left unchanged.
	Set(row int, v model.Value) error

	// Copy copies the value and the null flag of src to dst.
	Copy(src, dst int)

	// Compare orders two rows. Nulls sort before every non-null value.
	Compare(a, b int) int

	// CompareValue orders a row against an external literal.
	CompareValue(row int, v model.Value) (int, error)

	// Convert coerces v into the native type. model.Null() passes through.
	Convert(v model.Value) (model.Value, error)

	// ToText returns the canonical text form of v (converted first).
	ToText(v model.Value) (string, error)

	// FromText parses the canonical text form produced by ToText.
	FromText(s string) (model.Value, error)

	// Aggregate reduces the given rows.
	Aggregate(rows []int, kind model.AggregateKind) (model.Value, error)

	// Grow raises the capacity to n rows, preserving existing rows.
	// New rows hold the type default and are not null. Grow never shrinks.
	Grow(n int) error

	// NewBuffer allocates an external value buffer ([]T) with n elements.
	NewBuffer(n int) any

	// ExtractInto copies row into dst[index] (dst must be []T) and its null
	// flag into nulls at index.
	ExtractInto(row int, dst any, nulls *bitset.BitSet, index int) error

	// LoadFrom replaces the backing values ([]T) and null flags wholesale.
	// The storage takes ownership of values. A nil bitset means no nulls.
	LoadFrom(values any, nulls *bitset.BitSet) error

	// Nulls returns a copy of the set of null rows.
	Nulls() *roaring.Bitmap
}

// Native is the set of Go types a Store can hold.
type Native interface {
	bool | int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 | decimal.Decimal | string | time.Time | time.Duration
}

// New creates the storage variant for t.
func New(t model.Type, opts ...Option) (Storage, error) {
	switch t {
	case model.TypeBool:
		return open(boolTraits, opts)
	case model.TypeInt8:
		return open(int8Traits, opts)
	case model.TypeInt16:
		return open(int16Traits, opts)
	case model.TypeInt32:
		return open(int32Traits, opts)
	case model.TypeInt64:
		return open(int64Traits, opts)
	case model.TypeUint8:
		return open(uint8Traits, opts)
	case model.TypeUint16:
		return open(uint16Traits, opts)
	case model.TypeUint32:
		return open(uint32Traits, opts)
	case model.TypeUint64:
		return open(uint64Traits, opts)
	case model.TypeFloat32:
		return open(float32Traits, opts)
	case model.TypeFloat64:
		return open(float64Traits, opts)
	case model.TypeDecimal:
		return open(decimalTraits, opts)
	case model.TypeString:
		return open(stringTraits, opts)
	case model.TypeTime:
		return open(timeTraits, opts)
	case model.TypeDuration:
		return open(durationTraits, opts)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, t)
	}
}

// NewOf creates a typed storage for the Go type T.
//
// Example:
//
//	s, _ := column.NewOf[uint16](column.WithCapacity(8))
//	s.SetNative(0, 42)
//	v, ok := s.Native(0) // 42, true
func NewOf[T Native](opts ...Option) (*Store[T], error) {
	return newStore(traitsOf[T](), opts)
}

func newStore[T any](tr *traits[T], optFns []Option) (*Store[T], error) {
	o := applyOptions(optFns)
	s := &Store[T]{tr: tr, format: o.format}
	if err := s.reset(o.capacity); err != nil {
		return nil, err
	}
	return s, nil
}

// open returns a nil interface, not a typed nil, on failure.
func open[T any](tr *traits[T], optFns []Option) (Storage, error) {
	s, err := newStore(tr, optFns)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func traitsOf[T Native]() *traits[T] {
	var zero T
	var tr any
	switch any(zero).(type) {
	case bool:
		tr = boolTraits
	case int8:
		tr = int8Traits
	case int16:
		tr = int16Traits
	case int32:
		tr = int32Traits
	case int64:
		tr = int64Traits
	case uint8:
		tr = uint8Traits
	case uint16:
		tr = uint16Traits
	case uint32:
		tr = uint32Traits
	case uint64:
		tr = uint64Traits
	case float32:
		tr = float32Traits
	case float64:
		tr = float64Traits
	case decimal.Decimal:
		tr = decimalTraits
	case string:
		tr = stringTraits
	case time.Time:
		tr = timeTraits
	case time.Duration:
		tr = durationTraits
	}
	return tr.(*traits[T])
}

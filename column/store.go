package column

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/colstore/internal/bitmap"
	"github.com/hupe1980/colstore/model"
)

// Store is the generic column storage: a dense slice of native values plus a
// null bitmap of equal capacity.
//
// Invariant: values[r] holds the type default whenever row r is flagged null.
// The bitmap is the source of truth for nullness.
type Store[T any] struct {
	tr     *traits[T]
	values []T
	nulls  *bitmap.Nulls
	format FormatProvider
}

var _ Storage = (*Store[uint16])(nil)

// Type implements Storage.
func (s *Store[T]) Type() model.Type { return s.tr.typ }

// Cap implements Storage.
func (s *Store[T]) Cap() int { return len(s.values) }

// Get implements Storage.
func (s *Store[T]) Get(row int) model.Value {
	if s.nulls.IsNull(row) {
		return model.Null()
	}
	return s.tr.box(s.values[row])
}

// IsNull implements Storage.
func (s *Store[T]) IsNull(row int) bool {
	return s.nulls.IsNull(row)
}

// Native returns the native value at row and whether it is present.
func (s *Store[T]) Native(row int) (T, bool) {
	if s.nulls.IsNull(row) {
		var zero T
		return zero, false
	}
	return s.values[row], true
}

// SetNative stores a native value at row and clears its null flag.
func (s *Store[T]) SetNative(row int, v T) {
	s.nulls.SetNull(row, false)
	s.values[row] = v
}

// SetNull stores the type default at row and flags it null.
func (s *Store[T]) SetNull(row int) {
	var zero T
	s.nulls.SetNull(row, true)
	s.values[row] = zero
}

// Set implements Storage.
func (s *Store[T]) Set(row int, v model.Value) error {
	if v.IsNull() {
		s.SetNull(row)
		return nil
	}
	x, err := s.tr.convert(v, s.format)
	if err != nil {
		return conversionError(s.tr.typ, v, err)
	}
	s.SetNative(row, x)
	return nil
}

// Copy implements Storage.
func (s *Store[T]) Copy(src, dst int) {
	s.nulls.Copy(src, dst)
	s.values[dst] = s.values[src]
}

// Compare implements Storage.
//
// Only when one of the stored values equals the type default can a null be
// involved, so the bitmap is consulted only then.
func (s *Store[T]) Compare(a, b int) int {
	va, vb := s.values[a], s.values[b]
	if s.isDefault(va) || s.isDefault(vb) {
		if c := s.compareNulls(a, b); c != 0 {
			return c
		}
	}
	return s.tr.compare(va, vb)
}

// CompareValue implements Storage.
func (s *Store[T]) CompareValue(row int, v model.Value) (int, error) {
	if v.IsNull() {
		if s.nulls.IsNull(row) {
			return 0, nil
		}
		return 1, nil
	}
	val := s.values[row]
	if s.isDefault(val) && s.nulls.IsNull(row) {
		return -1, nil
	}
	x, err := s.tr.convert(v, s.format)
	if err != nil {
		return 0, conversionError(s.tr.typ, v, err)
	}
	return s.tr.compare(val, x), nil
}

// Convert implements Storage.
func (s *Store[T]) Convert(v model.Value) (model.Value, error) {
	if v.IsNull() {
		return v, nil
	}
	x, err := s.tr.convert(v, s.format)
	if err != nil {
		return model.Null(), conversionError(s.tr.typ, v, err)
	}
	return s.tr.box(x), nil
}

// ToText implements Storage.
func (s *Store[T]) ToText(v model.Value) (string, error) {
	if v.IsNull() {
		return "", conversionError(s.tr.typ, v, fmt.Errorf("null has no text form"))
	}
	x, err := s.tr.convert(v, InvariantFormat)
	if err != nil {
		return "", conversionError(s.tr.typ, v, err)
	}
	return s.tr.format(x), nil
}

// FromText implements Storage.
func (s *Store[T]) FromText(text string) (model.Value, error) {
	x, err := s.tr.parse(text)
	if err != nil {
		return model.Null(), textError(s.tr.typ, text, err)
	}
	return s.tr.box(x), nil
}

// Grow implements Storage.
//
// The new slice is fully prepared before anything is published, so a failed
// Grow leaves the storage untouched.
func (s *Store[T]) Grow(n int) error {
	if err := bitmap.ValidateCapacity(n); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCapacity, err)
	}
	if n <= len(s.values) {
		return nil
	}
	grown := make([]T, n)
	copy(grown, s.values)
	if err := s.nulls.Grow(n); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCapacity, err)
	}
	s.values = grown
	return nil
}

// NewBuffer implements Storage.
func (s *Store[T]) NewBuffer(n int) any {
	return make([]T, n)
}

// ExtractInto implements Storage.
func (s *Store[T]) ExtractInto(row int, dst any, nulls *bitset.BitSet, index int) error {
	buf, ok := dst.([]T)
	if !ok {
		return fmt.Errorf("%w: want []%s buffer, got %T", ErrBufferType, s.tr.typ, dst)
	}
	if nulls == nil {
		return fmt.Errorf("%w: nil null bitset", ErrBufferType)
	}
	buf[index] = s.values[row]
	nulls.SetTo(uint(index), s.nulls.IsNull(row))
	return nil
}

// LoadFrom implements Storage.
func (s *Store[T]) LoadFrom(values any, nulls *bitset.BitSet) error {
	vals, ok := values.([]T)
	if !ok {
		return fmt.Errorf("%w: want []%s buffer, got %T", ErrBufferType, s.tr.typ, values)
	}
	n, err := bitmap.FromBitSet(nulls, len(vals))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCapacity, err)
	}
	var zero T
	for row := range n.All() {
		vals[row] = zero
	}
	s.values = vals
	s.nulls = n
	return nil
}

// Nulls implements Storage.
func (s *Store[T]) Nulls() *roaring.Bitmap {
	return s.nulls.Bitmap()
}

func (s *Store[T]) reset(capacity int) error {
	n, err := bitmap.New(capacity)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCapacity, err)
	}
	s.values = make([]T, capacity)
	s.nulls = n
	return nil
}

func (s *Store[T]) isDefault(v T) bool {
	return s.tr.compare(v, s.tr.zero) == 0
}

// compareNulls orders by null flag only: null < not null.
func (s *Store[T]) compareNulls(a, b int) int {
	na, nb := s.nulls.IsNull(a), s.nulls.IsNull(b)
	switch {
	case na == nb:
		return 0
	case na:
		return -1
	default:
		return 1
	}
}

package bitmap

import (
	"fmt"
	"io"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/colstore/internal/conv"
)

// Nulls tracks which rows of a column are null.
// It wraps the official roaring implementation.
type Nulls struct {
	rb  *roaring.Bitmap
	cap int
}

// New creates an empty bitmap (no nulls) for the given capacity.
func New(capacity int) (*Nulls, error) {
	if err := ValidateCapacity(capacity); err != nil {
		return nil, err
	}
	return &Nulls{rb: roaring.New(), cap: capacity}, nil
}

// ValidateCapacity checks that every row below capacity is addressable as a
// 32-bit bitmap position.
func ValidateCapacity(capacity int) error {
	if _, err := conv.IntToUint32(capacity); err != nil {
		return fmt.Errorf("invalid capacity %d: %w", capacity, err)
	}
	return nil
}

// Cap returns the number of addressable rows.
func (n *Nulls) Cap() int {
	return n.cap
}

// SetNull flags or clears the null marker of row.
func (n *Nulls) SetNull(row int, null bool) {
	r := n.pos(row)
	if null {
		n.rb.Add(r)
	} else {
		n.rb.Remove(r)
	}
}

// IsNull reports whether row is flagged null.
func (n *Nulls) IsNull(row int) bool {
	return n.rb.Contains(n.pos(row))
}

// Copy copies the null flag of src to dst.
func (n *Nulls) Copy(src, dst int) {
	n.SetNull(dst, n.IsNull(src))
}

// Grow raises the capacity. Rows in the new region are not null.
// A capacity below the current one is ignored.
func (n *Nulls) Grow(capacity int) error {
	if err := ValidateCapacity(capacity); err != nil {
		return err
	}
	if capacity > n.cap {
		n.cap = capacity
	}
	return nil
}

// Count returns the number of null rows.
func (n *Nulls) Count() int {
	return int(n.rb.GetCardinality())
}

// Clone returns a deep copy.
func (n *Nulls) Clone() *Nulls {
	return &Nulls{rb: n.rb.Clone(), cap: n.cap}
}

// Bitmap returns a copy of the null row set.
func (n *Nulls) Bitmap() *roaring.Bitmap {
	return n.rb.Clone()
}

// All iterates the null rows in ascending order.
func (n *Nulls) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		it := n.rb.Iterator()
		for it.HasNext() {
			if !yield(int(it.Next())) {
				return
			}
		}
	}
}

// ToBitSet returns a dense copy with one bit per row (set = null).
func (n *Nulls) ToBitSet() *bitset.BitSet {
	bs := bitset.New(uint(n.cap))
	for row := range n.All() {
		bs.Set(uint(row))
	}
	return bs
}

// FromBitSet builds a bitmap of the given capacity from a dense bitset.
// Set bits at or beyond capacity are rejected. A nil bitset means no nulls.
func FromBitSet(bs *bitset.BitSet, capacity int) (*Nulls, error) {
	n, err := New(capacity)
	if err != nil {
		return nil, err
	}
	if bs == nil {
		return n, nil
	}
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		if i >= uint(capacity) {
			return nil, fmt.Errorf("null flag at row %d beyond capacity %d", i, capacity)
		}
		n.rb.Add(uint32(i))
	}
	return n, nil
}

// WriteTo writes the null set in the portable Roaring format.
func (n *Nulls) WriteTo(w io.Writer) (int64, error) {
	return n.rb.WriteTo(w)
}

// ReadFrom reads a null set written by WriteTo into a bitmap of the given capacity.
func ReadFrom(r io.Reader, capacity int) (*Nulls, error) {
	n, err := New(capacity)
	if err != nil {
		return nil, err
	}
	if _, err := n.rb.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("read null bitmap: %w", err)
	}
	if !n.rb.IsEmpty() && int(n.rb.Maximum()) >= capacity {
		return nil, fmt.Errorf("null flag at row %d beyond capacity %d", n.rb.Maximum(), capacity)
	}
	return n, nil
}

func (n *Nulls) pos(row int) uint32 {
	if row < 0 || row >= n.cap {
		panic(fmt.Sprintf("bitmap: row %d out of range [0, %d)", row, n.cap))
	}
	return uint32(row)
}

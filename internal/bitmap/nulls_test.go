package bitmap

import (
	"bytes"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNulls(t *testing.T) {
	n, err := New(100)
	require.NoError(t, err)
	assert.Equal(t, 100, n.Cap())
	assert.Equal(t, 0, n.Count())

	n.SetNull(10, true)
	assert.True(t, n.IsNull(10))
	assert.False(t, n.IsNull(11))
	assert.Equal(t, 1, n.Count())

	n.SetNull(10, false)
	assert.False(t, n.IsNull(10))
	assert.Equal(t, 0, n.Count())
}

func TestNulls_Copy(t *testing.T) {
	n, err := New(4)
	require.NoError(t, err)

	n.SetNull(0, true)
	n.Copy(0, 3)
	assert.True(t, n.IsNull(3))

	n.Copy(1, 0)
	assert.False(t, n.IsNull(0))
}

func TestNulls_Grow(t *testing.T) {
	n, err := New(10)
	require.NoError(t, err)
	n.SetNull(5, true)

	require.NoError(t, n.Grow(100000))
	assert.Equal(t, 100000, n.Cap())
	assert.True(t, n.IsNull(5), "existing flag must persist after grow")
	assert.False(t, n.IsNull(99999), "grown region starts not null")

	require.NoError(t, n.Grow(3))
	assert.Equal(t, 100000, n.Cap(), "grow never shrinks")

	assert.Error(t, n.Grow(-1))
	assert.Equal(t, 100000, n.Cap())
}

func TestNulls_OutOfRangePanics(t *testing.T) {
	n, err := New(2)
	require.NoError(t, err)

	assert.Panics(t, func() { n.IsNull(2) })
	assert.Panics(t, func() { n.SetNull(-1, true) })
}

func TestNulls_Clone(t *testing.T) {
	n, err := New(8)
	require.NoError(t, err)
	n.SetNull(1, true)

	c := n.Clone()
	c.SetNull(2, true)

	assert.False(t, n.IsNull(2))
	assert.True(t, c.IsNull(1))
	assert.Equal(t, uint64(1), n.Bitmap().GetCardinality())
}

func TestNulls_BitSet(t *testing.T) {
	n, err := New(70)
	require.NoError(t, err)
	n.SetNull(0, true)
	n.SetNull(65, true)

	bs := n.ToBitSet()
	assert.Equal(t, uint(70), bs.Len())
	assert.True(t, bs.Test(0))
	assert.True(t, bs.Test(65))
	assert.Equal(t, uint(2), bs.Count())

	back, err := FromBitSet(bs, 70)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 65}, collect(back))

	_, err = FromBitSet(bitset.New(10).Set(9), 5)
	assert.Error(t, err)

	empty, err := FromBitSet(nil, 5)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Count())
}

func TestNulls_Serialization(t *testing.T) {
	n, err := New(1000)
	require.NoError(t, err)
	n.SetNull(1, true)
	n.SetNull(999, true)

	var buf bytes.Buffer
	_, err = n.WriteTo(&buf)
	require.NoError(t, err)

	data := buf.Bytes()
	got, err := ReadFrom(bytes.NewReader(data), 1000)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 999}, collect(got))

	_, err = ReadFrom(bytes.NewReader(data), 500)
	assert.Error(t, err)
}

func collect(n *Nulls) []int {
	var rows []int
	for r := range n.All() {
		rows = append(rows, r)
	}
	return rows
}

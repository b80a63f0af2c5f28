package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/colstore/model"
)

func TestRows(t *testing.T) {
	rng := NewRNG(4711)

	rows := rng.Rows(64, 10)

	assert.Len(t, rows, 64)
	for _, r := range rows {
		assert.GreaterOrEqual(t, r, 0)
		assert.Less(t, r, 10)
	}
}

func TestSparseNulls(t *testing.T) {
	rng := NewRNG(4711)

	assert.NotContains(t, rng.SparseNulls(100, 0), true)
	assert.NotContains(t, rng.SparseNulls(100, 1), false)
}

func TestValueKinds(t *testing.T) {
	rng := NewRNG(4711)

	for typ := model.TypeBool; typ <= model.TypeDuration; typ++ {
		for range 16 {
			v := rng.Value(typ)
			assert.Equal(t, typ, v.Kind(), "type %s", typ)
		}
		assert.Equal(t, typ, Default(typ).Kind())
		for _, b := range Boundaries(typ) {
			assert.Equal(t, typ, b.Kind())
		}
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(7)
	first := rng.Uint64()

	rng.Reset()

	assert.Equal(t, first, rng.Uint64())
	assert.Equal(t, int64(7), rng.Seed())
}

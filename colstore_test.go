package colstore

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/colstore/column"
	"github.com/hupe1980/colstore/model"
	"github.com/hupe1980/colstore/snapshot"
)

func bufferLogger(buf *bytes.Buffer) *Logger {
	return NewLogger(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestNew(t *testing.T) {
	c, err := New(model.TypeUint16, WithInitialCapacity(4), WithName("age"))
	require.NoError(t, err)

	assert.Equal(t, model.TypeUint16, c.Type())
	assert.Equal(t, 4, c.Cap())
	assert.Equal(t, "age", c.Name())
	assert.Equal(t, model.TypeUint16, c.Unwrap().Type())

	_, err = New(model.TypeNull)
	assert.ErrorIs(t, err, ErrUnknownType)

	_, err = New(model.TypeInt8, WithInitialCapacity(-1))
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestWrap(t *testing.T) {
	s, err := column.New(model.TypeString, column.WithCapacity(2))
	require.NoError(t, err)

	c := Wrap(s, WithInitialCapacity(100))
	assert.Equal(t, 2, c.Cap())
	assert.Same(t, s, c.Unwrap())

	require.NoError(t, c.Set(1, model.String("x")))
	assert.Equal(t, model.String("x"), s.Get(1))
}

func TestColumnForwardsStorage(t *testing.T) {
	c, err := New(model.TypeInt64, WithInitialCapacity(3))
	require.NoError(t, err)

	require.NoError(t, c.Set(0, model.Int64(5)))
	require.NoError(t, c.Set(1, model.Null()))
	c.Copy(0, 2)

	assert.Equal(t, model.Int64(5), c.Get(2))
	assert.True(t, c.IsNull(1))
	assert.Equal(t, 1, c.Compare(0, 1))

	r, err := c.CompareValue(0, model.Int64(7))
	require.NoError(t, err)
	assert.Equal(t, -1, r)

	text, err := c.ToText(model.Int64(-12))
	require.NoError(t, err)
	assert.Equal(t, "-12", text)

	v, err := c.FromText("42")
	require.NoError(t, err)
	assert.Equal(t, model.Int64(42), v)

	v, err = c.Convert(model.Uint8(3))
	require.NoError(t, err)
	assert.Equal(t, model.Int64(3), v)
}

func TestColumnMetrics(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	c, err := New(model.TypeUint8, WithMetricsCollector(metrics))
	require.NoError(t, err)

	require.NoError(t, c.Grow(3))
	require.NoError(t, c.Grow(2))
	require.NoError(t, c.Set(0, model.Int64(7)))
	require.ErrorIs(t, c.Set(1, model.Int64(300)), ErrConversion)
	require.NoError(t, c.Set(2, model.Null()))

	_, err = c.Aggregate([]int{0, 1}, model.AggregateSum)
	require.NoError(t, err)

	n, err := New(model.TypeInt64, WithInitialCapacity(2), WithMetricsCollector(metrics))
	require.NoError(t, err)
	require.NoError(t, n.Set(0, model.Int64(math.MaxInt64)))
	require.NoError(t, n.Set(1, model.Int64(math.MaxInt64)))
	_, err = n.Aggregate([]int{0, 1}, model.AggregateMean)
	require.ErrorIs(t, err, ErrOverflow)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.GrowCount)
	assert.Equal(t, int64(3), stats.RowsAdded)
	assert.Equal(t, int64(4), stats.ConversionCount)
	assert.Equal(t, int64(1), stats.ConversionErrors)
	assert.Equal(t, int64(2), stats.AggregateCount)
	assert.Equal(t, int64(1), stats.AggregateErrors)
	assert.Equal(t, int64(1), stats.AggregateOverflows)
	assert.Equal(t, int64(4), stats.AggregateRows)
}

func TestColumnLogging(t *testing.T) {
	var buf bytes.Buffer
	c, err := New(model.TypeInt16, WithName("delta"), WithLogger(bufferLogger(&buf)))
	require.NoError(t, err)

	require.NoError(t, c.Grow(2))
	require.Error(t, c.Set(0, model.String("abc")))
	_, err = c.Aggregate([]int{0, 1}, model.AggregateMax)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "storage grown")
	assert.Contains(t, out, "conversion failed")
	assert.Contains(t, out, "op=set")
	assert.Contains(t, out, "aggregate completed")
	assert.Contains(t, out, "column=delta")
	assert.Contains(t, out, "type=Int16")
}

func TestColumnLoadFrom(t *testing.T) {
	var buf bytes.Buffer
	c, err := New(model.TypeFloat32, WithLogger(bufferLogger(&buf)))
	require.NoError(t, err)

	nulls := bitset.New(3).Set(1)
	require.NoError(t, c.LoadFrom([]float32{1, 2, 3}, nulls))

	assert.Equal(t, 3, c.Cap())
	assert.True(t, c.IsNull(1))
	assert.Equal(t, model.Float32(3), c.Get(2))
	assert.Contains(t, buf.String(), "storage loaded")

	assert.ErrorIs(t, c.LoadFrom([]int32{1}, nil), ErrBufferType)
	assert.Contains(t, buf.String(), "load failed")
}

func TestSnapshotRestore(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	c, err := New(model.TypeString, WithInitialCapacity(3), WithMetricsCollector(metrics))
	require.NoError(t, err)
	require.NoError(t, c.Set(0, model.String("a")))
	require.NoError(t, c.Set(1, model.Null()))
	require.NoError(t, c.Set(2, model.String("")))

	data, err := c.Snapshot(snapshot.WithCompression(snapshot.CompressionZSTD))
	require.NoError(t, err)

	restored, err := Restore(data, WithName("copy"), WithMetricsCollector(metrics))
	require.NoError(t, err)
	assert.Equal(t, "copy", restored.Name())
	assert.Equal(t, 3, restored.Cap())
	assert.Equal(t, model.String("a"), restored.Get(0))
	assert.True(t, restored.IsNull(1))
	assert.False(t, restored.IsNull(2))

	_, err = Restore([]byte("nope"), WithMetricsCollector(metrics))
	assert.ErrorIs(t, err, ErrInvalidSnapshot)

	stats := metrics.GetStats()
	assert.Equal(t, int64(3), stats.SnapshotCount)
	assert.Equal(t, int64(1), stats.SnapshotErrors)
	assert.Equal(t, int64(2*len(data)), stats.SnapshotBytes)
}

func TestRestoreAppliesFormat(t *testing.T) {
	c, err := New(model.TypeDecimal, WithInitialCapacity(1))
	require.NoError(t, err)

	data, err := c.Snapshot()
	require.NoError(t, err)

	restored, err := Restore(data, WithFormatProvider(column.Format{Decimal: ","}))
	require.NoError(t, err)

	require.NoError(t, restored.Set(0, model.String("1,25")))
	text, err := restored.ToText(restored.Get(0))
	require.NoError(t, err)
	assert.Equal(t, "1.25", text)
}

func TestStats(t *testing.T) {
	c, err := New(model.TypeString, WithInitialCapacity(2))
	require.NoError(t, err)
	require.NoError(t, c.Set(0, model.String("x")))
	require.NoError(t, c.Set(1, model.Null()))

	stats, err := c.Stats([]int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, map[model.AggregateKind]model.Value{
		model.AggregateFirst: model.String("x"),
		model.AggregateCount: model.Int64(1),
	}, stats)

	n, err := New(model.TypeInt64, WithInitialCapacity(2))
	require.NoError(t, err)
	require.NoError(t, n.Set(0, model.Int64(1<<62)))
	require.NoError(t, n.Set(1, model.Int64(1<<62)))
	_, err = n.Stats([]int{0, 1})
	assert.ErrorIs(t, err, ErrOverflow)
}

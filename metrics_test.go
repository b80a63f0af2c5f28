package colstore

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/colstore/column"
	"github.com/hupe1980/colstore/model"
)

func TestBasicMetricsCollector(t *testing.T) {
	m := &BasicMetricsCollector{}

	m.RecordGrow(0, 10, time.Microsecond, nil)
	m.RecordGrow(10, 5, time.Microsecond, nil)
	m.RecordGrow(10, -1, 0, errors.New("bad"))

	m.RecordAggregate(model.AggregateSum, 4, 100*time.Nanosecond, nil)
	m.RecordAggregate(model.AggregateSum, 2, 300*time.Nanosecond, fmt.Errorf("wrap: %w", column.ErrOverflow))

	m.RecordConversion(model.TypeInt8, nil)
	m.RecordConversion(model.TypeInt8, errors.New("bad"))

	m.RecordSnapshot(64, time.Millisecond, nil)
	m.RecordSnapshot(64, time.Millisecond, errors.New("bad"))

	assert.Equal(t, BasicMetricsStats{
		GrowCount:          3,
		GrowErrors:         1,
		RowsAdded:          10,
		AggregateCount:     2,
		AggregateErrors:    1,
		AggregateOverflows: 1,
		AggregateRows:      6,
		AggregateAvgNanos:  200,
		ConversionCount:    2,
		ConversionErrors:   1,
		SnapshotCount:      2,
		SnapshotErrors:     1,
		SnapshotBytes:      64,
	}, m.GetStats())
}

func TestBasicMetricsCollectorConcurrent(t *testing.T) {
	m := &BasicMetricsCollector{}

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				m.RecordConversion(model.TypeString, nil)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(800), m.GetStats().ConversionCount)
	assert.Zero(t, m.GetStats().AggregateAvgNanos)
}

func TestNoopMetricsCollector(t *testing.T) {
	var mc MetricsCollector = NoopMetricsCollector{}
	mc.RecordGrow(0, 1, 0, nil)
	mc.RecordAggregate(model.AggregateMin, 1, 0, nil)
	mc.RecordConversion(model.TypeBool, nil)
	mc.RecordSnapshot(1, 0, nil)
}

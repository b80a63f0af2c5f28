package colstore_test

import (
	"testing"

	"github.com/hupe1980/colstore"
	"github.com/hupe1980/colstore/column"
	"github.com/hupe1980/colstore/model"
)

func TestBuilder_Basic(t *testing.T) {
	c, err := colstore.Of(model.TypeInt32).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if c.Type() != model.TypeInt32 {
		t.Fatalf("expected Int32, got %s", c.Type())
	}
	if c.Cap() != 0 {
		t.Fatalf("expected empty column, got %d rows", c.Cap())
	}
}

func TestBuilder_FullOptions(t *testing.T) {
	metrics := &colstore.BasicMetricsCollector{}

	c, err := colstore.Of(model.TypeFloat64).
		Name("ratio").
		Capacity(8).
		Format(column.Format{Decimal: ","}).
		Logger(colstore.NoopLogger()).
		Metrics(metrics).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if c.Name() != "ratio" {
		t.Fatalf("expected name ratio, got %q", c.Name())
	}
	if c.Cap() != 8 {
		t.Fatalf("expected 8 rows, got %d", c.Cap())
	}
	if err := c.Set(0, model.String("2,5")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if got := c.Get(0); !got.Equal(model.Float64(2.5)) {
		t.Fatalf("expected 2.5, got %s", got)
	}
	if stats := metrics.GetStats(); stats.ConversionCount != 1 {
		t.Fatalf("expected 1 conversion, got %d", stats.ConversionCount)
	}
}

func TestBuilder_Immutable(t *testing.T) {
	base := colstore.Of(model.TypeString).Capacity(2)
	named := base.Name("a")

	c1 := base.MustBuild()
	c2 := named.MustBuild()

	if c1.Name() != "" {
		t.Fatalf("base builder was modified: %q", c1.Name())
	}
	if c2.Name() != "a" {
		t.Fatalf("expected name a, got %q", c2.Name())
	}
}

func TestBuilder_InvalidType(t *testing.T) {
	_, err := colstore.Of(model.TypeNull).Build()
	if err == nil {
		t.Fatal("expected error for Null type")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("MustBuild should panic")
		}
	}()
	colstore.Of(model.TypeNull).Capacity(-1).MustBuild()
}

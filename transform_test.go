package housekit

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

const tol = 1e-12

func priceFrame(t *testing.T, prices []float64) *Frame {
	t.Helper()
	n := len(prices)
	hoods := make([]string, n)
	areas := make([]int64, n)
	for i := range prices {
		hoods[i] = "NAmes"
		areas[i] = int64(7000 + i)
	}
	f, err := NewFrame(
		Column{Name: "Neighborhood", Type: String, Strings: hoods},
		Column{Name: "LotArea", Type: Int, Ints: areas},
		Column{Name: "SalePrice", Type: Float, Floats: prices},
	)
	if err != nil {
		t.Fatalf("building frame: %v", err)
	}
	return f
}

func TestLog10Transformer(t *testing.T) {
	prices := []float64{100000, 12789, 755000, 35311, 250000}
	f := priceFrame(t, prices)

	out, err := Log10Transformer{Column: "SalePrice"}.Transform(f)
	if err != nil {
		t.Fatalf("transforming: %v", err)
	}

	if out.NumRows() != f.NumRows() {
		t.Fatalf("row count changed: %d vs %d", out.NumRows(), f.NumRows())
	}
	if out.NumCols() != f.NumCols() {
		t.Fatalf("column count changed: %d vs %d", out.NumCols(), f.NumCols())
	}
	for i, name := range f.Names() {
		if out.Names()[i] != name {
			t.Fatalf("column order changed at %d: %q vs %q", i, out.Names()[i], name)
		}
	}

	logs, err := out.Floats("SalePrice")
	if err != nil {
		t.Fatalf("getting transformed column: %v", err)
	}
	for i, v := range prices {
		if math.Abs(logs[i]-math.Log10(v)) > tol {
			t.Fatalf("row %d: got %v, want log10(%v)=%v", i, logs[i], v, math.Log10(v))
		}
	}

	// Other columns are untouched value-for-value.
	hoods, err := out.Strings("Neighborhood")
	if err != nil {
		t.Fatalf("getting neighborhoods: %v", err)
	}
	for i, h := range hoods {
		if h != "NAmes" {
			t.Fatalf("row %d: neighborhood changed to %q", i, h)
		}
	}
	areas, err := out.Ints("LotArea")
	if err != nil {
		t.Fatalf("getting areas: %v", err)
	}
	for i, a := range areas {
		if a != int64(7000+i) {
			t.Fatalf("row %d: lot area changed to %d", i, a)
		}
	}

	// Input frame is not modified.
	orig, err := f.Floats("SalePrice")
	if err != nil {
		t.Fatalf("getting original column: %v", err)
	}
	for i, v := range orig {
		if v != prices[i] {
			t.Fatalf("input frame modified at row %d: %v", i, v)
		}
	}
}

func TestLog10TransformerIntColumn(t *testing.T) {
	// Whole-dollar prices come off CSV files as int columns. The transform
	// must widen them rather than reject them as a wrong type.
	f, err := NewFrame(
		Column{Name: "Neighborhood", Type: String, Strings: []string{"OldTown", "Somerst"}},
		Column{Name: "SalePrice", Type: Int, Ints: []int64{100000, 250000}},
	)
	if err != nil {
		t.Fatalf("building frame: %v", err)
	}
	out, err := Log10Transformer{Column: "SalePrice"}.Transform(f)
	if err != nil {
		t.Fatalf("transforming int column: %v", err)
	}
	col, err := out.Column("SalePrice")
	if err != nil {
		t.Fatalf("getting transformed column: %v", err)
	}
	if col.Type != Float {
		t.Fatalf("transformed column is %s, want %s", col.Type, Float)
	}
	if col.Floats[0] != 5 {
		t.Fatalf("log10(100000) = %v, want 5", col.Floats[0])
	}
	if math.Abs(col.Floats[1]-math.Log10(250000)) > tol {
		t.Fatalf("log10(250000) = %v, want %v", col.Floats[1], math.Log10(250000))
	}

	// a negative integer price is still a domain error, not a type error
	f2, err := NewFrame(Column{Name: "SalePrice", Type: Int, Ints: []int64{100000, -5, 250000}})
	if err != nil {
		t.Fatalf("building frame: %v", err)
	}
	if _, err := (Log10Transformer{Column: "SalePrice"}).Transform(f2); errors.Cause(err) != ErrNotPositive {
		t.Fatalf("expected ErrNotPositive, got %v", err)
	}
}

func TestLog10TransformerMonotonic(t *testing.T) {
	prices := []float64{35311, 100000, 12789, 755000, 250000, 250001}
	f := priceFrame(t, prices)
	out, err := Log10Transformer{Column: "SalePrice"}.Transform(f)
	if err != nil {
		t.Fatalf("transforming: %v", err)
	}
	logs, err := out.Floats("SalePrice")
	if err != nil {
		t.Fatalf("getting transformed column: %v", err)
	}
	for i := range prices {
		for j := range prices {
			if prices[i] < prices[j] && !(logs[i] < logs[j]) {
				t.Fatalf("rank order broken: price %v < %v but log %v >= %v", prices[i], prices[j], logs[i], logs[j])
			}
		}
	}
}

func TestLog10TransformerInvertible(t *testing.T) {
	prices := []float64{100000, 12789, 755000, 35311, 250000}
	f := priceFrame(t, prices)
	out, err := Log10Transformer{Column: "SalePrice"}.Transform(f)
	if err != nil {
		t.Fatalf("transforming: %v", err)
	}
	logs, err := out.Floats("SalePrice")
	if err != nil {
		t.Fatalf("getting transformed column: %v", err)
	}
	back := Pow10(logs)
	for i, v := range prices {
		if math.Abs(back[i]-v)/v > 1e-9 {
			t.Fatalf("row %d: 10**%v = %v, want %v", i, logs[i], back[i], v)
		}
	}
}

func TestLog10TransformerDomainError(t *testing.T) {
	tests := []struct {
		name   string
		prices []float64
	}{
		{name: "negative", prices: []float64{100000, -5, 250000}},
		{name: "zero", prices: []float64{100000, 0, 250000}},
	}
	for _, test := range tests {
		f := priceFrame(t, test.prices)
		out, err := Log10Transformer{Column: "SalePrice"}.Transform(f)
		if err == nil {
			t.Fatalf("%s: expected domain error, got frame %v", test.name, out)
		}
		if errors.Cause(err) != ErrNotPositive {
			t.Fatalf("%s: expected ErrNotPositive, got %v", test.name, err)
		}
		if out != nil {
			t.Fatalf("%s: got partial result alongside error", test.name)
		}
	}
}

func TestLog10TransformerSchemaError(t *testing.T) {
	f := priceFrame(t, []float64{100000})
	if _, err := (Log10Transformer{Column: "Price"}).Transform(f); errors.Cause(err) != ErrNoColumn {
		t.Fatalf("expected ErrNoColumn, got %v", err)
	}
	if _, err := (Log10Transformer{Column: "Neighborhood"}).Transform(f); errors.Cause(err) != ErrWrongType {
		t.Fatalf("expected ErrWrongType, got %v", err)
	}
}

func TestApply(t *testing.T) {
	f := priceFrame(t, []float64{100, 1000})
	out, err := Apply(f,
		Log10Transformer{Column: "SalePrice"},
		TransformerFunc(func(f *Frame) (*Frame, error) {
			return f.WithColumn(Column{Name: "Tag", Type: String, Strings: []string{"a", "b"}})
		}),
	)
	if err != nil {
		t.Fatalf("applying chain: %v", err)
	}
	logs, err := out.Floats("SalePrice")
	if err != nil {
		t.Fatalf("getting transformed column: %v", err)
	}
	if logs[0] != 2 || logs[1] != 3 {
		t.Fatalf("wrong logs: %v", logs)
	}
	if !out.HasColumn("Tag") {
		t.Fatal("chained transformer not applied")
	}

	if _, err := Apply(f, Log10Transformer{Column: "Nope"}); err == nil {
		t.Fatal("expected error from chain")
	}
}

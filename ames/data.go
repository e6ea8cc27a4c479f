// Package ames bundles a reference sample of residential sales from Ames,
// Iowa (after De Cock's assessor dataset). The data is embedded in the
// package, schema-validated on load, and never changes for a given Version -
// downstream analysis can treat it as immutable.
package ames

import (
	"bytes"
	_ "embed"
	"io"

	"github.com/housekit/housekit"
	"github.com/housekit/housekit/csv"
	"github.com/pkg/errors"
)

// Version identifies the bundled snapshot. It changes only when ames.csv
// does.
const Version = "2011.1"

// Column names of the bundled dataset.
const (
	PID          = "PID"
	Neighborhood = "Neighborhood"
	Zoning       = "Zoning"
	LotArea      = "LotArea"
	YearBuilt    = "YearBuilt"
	GrLivArea    = "GrLivArea"
	Longitude    = "Longitude"
	Latitude     = "Latitude"
	SalePrice    = "SalePrice"
)

//go:embed ames.csv
var raw []byte

// Schema returns the column specs of the bundled dataset, in file order. PID
// is kept as a string: it is an identifier with leading zeros, not a
// quantity.
func Schema() []housekit.ColumnSpec {
	return []housekit.ColumnSpec{
		{Name: PID, Type: housekit.String},
		{Name: Neighborhood, Type: housekit.String},
		{Name: Zoning, Type: housekit.String},
		{Name: LotArea, Type: housekit.Int},
		{Name: YearBuilt, Type: housekit.Int},
		{Name: GrLivArea, Type: housekit.Int},
		{Name: Longitude, Type: housekit.Float},
		{Name: Latitude, Type: housekit.Float},
		{Name: SalePrice, Type: housekit.Float},
	}
}

// Load parses the embedded dataset into a Frame and checks the invariant
// downstream transforms rely on: every sale price is strictly positive.
func Load() (*housekit.Frame, error) {
	src := csv.NewSource(csv.WithOpenStringers([]csv.OpenStringer{embedded{}}))
	f, err := housekit.FromSource(src, Schema())
	if err != nil {
		return nil, errors.Wrap(err, "parsing embedded dataset")
	}
	prices, err := f.Floats(SalePrice)
	if err != nil {
		return nil, errors.Wrap(err, "getting sale prices")
	}
	for i, p := range prices {
		if p <= 0 {
			return nil, errors.Errorf("sale price %v at row %d is not strictly positive - bad snapshot", p, i)
		}
	}
	return f, nil
}

// embedded is a csv.OpenStringer over the compiled-in dataset.
type embedded struct{}

func (embedded) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(raw)), nil
}

func (embedded) String() string {
	return "embedded:ames.csv@" + Version
}

// Package geohash buckets the geographic coordinates of a frame into
// geohash cells, so that spatial patterns can be summarized per cell without
// any map rendering.
package geohash

import (
	"github.com/housekit/housekit"
	"github.com/mmcloughlin/geohash"
	"github.com/pkg/errors"
)

// Default column names and precision used when a Transformer field is left
// zero. Precision 6 is a cell of roughly 1.2km x 0.6km - neighborhood scale.
const (
	DefaultLatColumn    = "Latitude"
	DefaultLonColumn    = "Longitude"
	DefaultResultColumn = "Geohash"
	DefaultPrecision    = 6
)

// Transformer is a housekit.Transformer which appends a string column holding
// the geohash of each row's coordinates.
type Transformer struct {
	Precision    int
	LatColumn    string
	LonColumn    string
	ResultColumn string
}

// Transform hashes the latitude and longitude of every row and returns a new
// frame with the result column appended. It fails if either coordinate column
// is missing or non-float, or if a coordinate is outside its valid range.
func (t Transformer) Transform(f *housekit.Frame) (*housekit.Frame, error) {
	precision := t.Precision
	if precision <= 0 {
		precision = DefaultPrecision
	}
	latCol, lonCol, resCol := t.LatColumn, t.LonColumn, t.ResultColumn
	if latCol == "" {
		latCol = DefaultLatColumn
	}
	if lonCol == "" {
		lonCol = DefaultLonColumn
	}
	if resCol == "" {
		resCol = DefaultResultColumn
	}

	lats, err := f.Floats(latCol)
	if err != nil {
		return nil, errors.Wrap(err, "getting latitude")
	}
	lons, err := f.Floats(lonCol)
	if err != nil {
		return nil, errors.Wrap(err, "getting longitude")
	}

	hashes := make([]string, len(lats))
	for i := range lats {
		if lats[i] < -90 || lats[i] > 90 {
			return nil, errors.Errorf("latitude %v at row %d out of range", lats[i], i)
		}
		if lons[i] < -180 || lons[i] > 180 {
			return nil, errors.Errorf("longitude %v at row %d out of range", lons[i], i)
		}
		hashes[i] = geohash.EncodeWithPrecision(lats[i], lons[i], uint(precision))
	}
	return f.WithColumn(housekit.Column{Name: resCol, Type: housekit.String, Strings: hashes})
}

// Package stats summarizes the numeric columns of housing-data frames:
// descriptive statistics, fixed-width histograms, and per-category
// breakdowns.
package stats

import (
	moremath "github.com/aclements/go-moremath/stats"
	"github.com/housekit/housekit"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary holds descriptive statistics for a numeric column.
type Summary struct {
	N        int
	Mean     float64
	GeoMean  float64
	StdDev   float64
	Variance float64
	Skew     float64

	Min    float64
	P5     float64
	Q1     float64
	Median float64
	Q3     float64
	P95    float64
	Max    float64
}

// Describe computes a Summary of xs. It fails on empty input. The input slice
// is not modified.
func Describe(xs []float64) (Summary, error) {
	if len(xs) == 0 {
		return Summary{}, errors.New("no values to describe")
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	s := moremath.Sample{Xs: sorted}
	s.Sort()

	return Summary{
		N:        len(xs),
		Mean:     s.Mean(),
		GeoMean:  s.GeoMean(),
		StdDev:   s.StdDev(),
		Variance: s.Variance(),
		Skew:     stat.Skew(sorted, nil),
		Min:      floats.Min(sorted),
		P5:       s.Quantile(0.05),
		Q1:       s.Quantile(0.25),
		Median:   s.Quantile(0.5),
		Q3:       s.Quantile(0.75),
		P95:      s.Quantile(0.95),
		Max:      floats.Max(sorted),
	}, nil
}

// DescribeColumn computes a Summary of the named numeric column of f.
func DescribeColumn(f *housekit.Frame, name string) (Summary, error) {
	xs, err := f.Floats(name)
	if err != nil {
		return Summary{}, errors.Wrap(err, "getting column")
	}
	sum, err := Describe(xs)
	return sum, errors.Wrapf(err, "describing %q", name)
}

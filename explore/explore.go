// Package explore holds the worked analysis pipelines behind the housekit
// subcommands: summarize a column, histogram it, or break it down by
// neighborhood or geographic cell - optionally on the log10 scale.
package explore

import (
	"github.com/housekit/housekit"
	"github.com/housekit/housekit/ames"
	"github.com/housekit/housekit/csv"
	"github.com/pkg/errors"
)

// loadFrame reads file as CSV, or loads the bundled ames dataset when file
// is empty.
func loadFrame(file string) (*housekit.Frame, error) {
	if file == "" {
		f, err := ames.Load()
		return f, errors.Wrap(err, "loading bundled dataset")
	}
	f, err := csv.ReadFrame(csv.WithURLs([]string{file}))
	return f, errors.Wrapf(err, "reading '%s'", file)
}

// prepare loads a frame and log-transforms the column if asked to.
func prepare(file, column string, logScale bool) (*housekit.Frame, error) {
	f, err := loadFrame(file)
	if err != nil {
		return nil, err
	}
	if logScale {
		f, err = housekit.Apply(f, housekit.Log10Transformer{Column: column})
		if err != nil {
			return nil, errors.Wrap(err, "log-transforming")
		}
	}
	return f, nil
}

// label names a column for output, marking the log scale.
func label(column string, logScale bool) string {
	if logScale {
		return "log10(" + column + ")"
	}
	return column
}

package csv

import (
	"log"
	"os"
	"time"

	"github.com/housekit/housekit"
	"github.com/pkg/errors"
)

// Main holds the configuration for the CSV log-transform pipeline: read a CSV
// file, replace the outcome column with its base-10 logarithm, and write the
// result back out as CSV.
type Main struct {
	File       string `help:"CSV file or URL to read from."`
	Column     string `help:"Name of the strictly positive outcome column to log-transform."`
	Out        string `help:"File to write the transformed CSV to. Empty writes to stdout."`
	MaxRetries int    `help:"Max retries per file for flaky sources."`
}

// NewMain gets a new Main with the default configuration.
func NewMain() *Main {
	return &Main{
		File:       "data.csv",
		Column:     "SalePrice",
		MaxRetries: 3,
	}
}

// Run runs the pipeline.
func (m *Main) Run() error {
	start := time.Now()

	frame, err := ReadFrame(
		WithURLs([]string{m.File}),
		WithMaxRetries(m.MaxRetries),
	)
	if err != nil {
		return errors.Wrapf(err, "reading '%s'", m.File)
	}

	transformed, err := housekit.Apply(frame, housekit.Log10Transformer{Column: m.Column})
	if err != nil {
		return errors.Wrapf(err, "transforming column %q", m.Column)
	}

	out := os.Stdout
	if m.Out != "" {
		out, err = os.Create(m.Out)
		if err != nil {
			return errors.Wrap(err, "creating output file")
		}
		defer out.Close()
	}
	if err := Write(out, transformed); err != nil {
		return errors.Wrap(err, "writing output")
	}

	log.Printf("transformed %d rows in %s", transformed.NumRows(), time.Since(start))
	return nil
}

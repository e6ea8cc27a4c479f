package explore

import (
	"io"
	"os"

	"github.com/housekit/housekit/stats"
	"github.com/housekit/housekit/termplot"
	"github.com/pkg/errors"
)

// SummaryMain holds the configuration for the summary subcommand.
type SummaryMain struct {
	File   string `help:"CSV file or URL to read. Empty loads the bundled ames dataset."`
	Column string `help:"Numeric column to describe."`
	Log    bool   `help:"Describe the base-10 log of the column instead of the raw values."`

	Out io.Writer `flag:"-"`
}

// NewSummaryMain gets a new SummaryMain with the default configuration.
func NewSummaryMain() *SummaryMain {
	return &SummaryMain{
		Column: "SalePrice",
		Out:    os.Stdout,
	}
}

// Run loads the data, optionally log-transforms the column, and renders its
// descriptive statistics.
func (m *SummaryMain) Run() error {
	f, err := prepare(m.File, m.Column, m.Log)
	if err != nil {
		return err
	}
	sum, err := stats.DescribeColumn(f, m.Column)
	if err != nil {
		return errors.Wrap(err, "describing")
	}
	return termplot.NewRenderer(m.Out).Summary(label(m.Column, m.Log), sum)
}

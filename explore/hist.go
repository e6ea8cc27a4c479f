package explore

import (
	"io"
	"os"

	"github.com/housekit/housekit/stats"
	"github.com/housekit/housekit/termplot"
	"github.com/pkg/errors"
)

// HistMain holds the configuration for the hist subcommand.
type HistMain struct {
	File   string  `help:"CSV file or URL to read. Empty loads the bundled ames dataset."`
	Column string  `help:"Numeric column to bin."`
	Log    bool    `help:"Bin the base-10 log of the column instead of the raw values."`
	Bins   int     `help:"Number of bins. Zero uses the default."`
	Width  float64 `help:"Bin width. Overrides the bin count when set."`
	Chars  int     `help:"Character width of the longest bar."`

	Out io.Writer `flag:"-"`
}

// NewHistMain gets a new HistMain with the default configuration.
func NewHistMain() *HistMain {
	return &HistMain{
		Column: "SalePrice",
		Chars:  50,
		Out:    os.Stdout,
	}
}

// Run loads the data, optionally log-transforms the column, and renders its
// histogram as text.
func (m *HistMain) Run() error {
	f, err := prepare(m.File, m.Column, m.Log)
	if err != nil {
		return err
	}
	opts := &stats.HistOptions{NumBins: m.Bins}
	if m.Width > 0 {
		opts = &stats.HistOptions{BinWidth: m.Width}
	}
	h, err := stats.HistColumn(f, m.Column, opts)
	if err != nil {
		return errors.Wrap(err, "binning")
	}
	r := termplot.NewRenderer(m.Out, termplot.WithWidth(m.Chars))
	return r.Histogram(label(m.Column, m.Log), h)
}

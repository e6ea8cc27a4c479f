package explore

import (
	"io"
	"os"

	"github.com/housekit/housekit"
	"github.com/housekit/housekit/geohash"
	"github.com/housekit/housekit/stats"
	"github.com/housekit/housekit/termplot"
	"github.com/pkg/errors"
)

// NeighborhoodsMain holds the configuration for the neighborhoods
// subcommand.
type NeighborhoodsMain struct {
	File      string `help:"CSV file or URL to read. Empty loads the bundled ames dataset."`
	Column    string `help:"Numeric column to summarize per group."`
	By        string `help:"String column to group by. 'geohash' derives cells from coordinates instead."`
	Log       bool   `help:"Summarize the base-10 log of the column instead of the raw values."`
	Precision int    `help:"Geohash precision when grouping by 'geohash'."`

	Out io.Writer `flag:"-"`
}

// NewNeighborhoodsMain gets a new NeighborhoodsMain with the default
// configuration.
func NewNeighborhoodsMain() *NeighborhoodsMain {
	return &NeighborhoodsMain{
		Column:    "SalePrice",
		By:        "Neighborhood",
		Precision: geohash.DefaultPrecision,
		Out:       os.Stdout,
	}
}

// Run loads the data, optionally log-transforms the column, and renders a
// per-group summary. Grouping by 'geohash' first buckets each row's
// coordinates into a geohash cell.
func (m *NeighborhoodsMain) Run() error {
	f, err := prepare(m.File, m.Column, m.Log)
	if err != nil {
		return err
	}

	key := m.By
	if key == "geohash" {
		f, err = housekit.Apply(f, geohash.Transformer{Precision: m.Precision})
		if err != nil {
			return errors.Wrap(err, "bucketing coordinates")
		}
		key = geohash.DefaultResultColumn
	}

	groups, err := stats.GroupBy(f, key, m.Column)
	if err != nil {
		return errors.Wrap(err, "grouping")
	}
	header := label(m.Column, m.Log) + " by " + key
	return termplot.NewRenderer(m.Out).Groups(header, groups)
}

package explore

import (
	"io"
	"os"

	"github.com/housekit/housekit/csv"
	"github.com/housekit/housekit/fake"
	"github.com/pkg/errors"
)

// GenMain holds the configuration for the gen subcommand, which emits
// synthetic sale data as CSV.
type GenMain struct {
	N    int   `help:"Number of sale records to generate."`
	Seed int64 `help:"Random seed. The same seed produces the same data."`

	Out io.Writer `flag:"-"`
}

// NewGenMain gets a new GenMain with the default configuration.
func NewGenMain() *GenMain {
	return &GenMain{
		N:   1000,
		Out: os.Stdout,
	}
}

// Run generates the data and writes it as CSV.
func (m *GenMain) Run() error {
	f, err := fake.NewSaleGenerator(m.Seed).Frame(m.N)
	if err != nil {
		return errors.Wrap(err, "generating sales")
	}
	return errors.Wrap(csv.Write(m.Out, f), "writing csv")
}

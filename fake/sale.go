// Package fake generates synthetic housing-sale records for tests,
// benchmarks, and demo data. Prices are drawn log-normal, so a generated
// sample has the right-skewed shape real sale prices do.
package fake

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/housekit/housekit"
)

// Sale is a synthetic residential sale record.
type Sale struct {
	PID          string
	Neighborhood string
	Zoning       string
	LotArea      int
	YearBuilt    int
	GrLivArea    int
	Longitude    float64
	Latitude     float64
	SalePrice    float64
}

var neighborhoods = []string{
	"NAmes", "CollgCr", "OldTown", "Edwards", "Somerst",
	"Gilbert", "NridgHt", "Sawyer", "Mitchel", "BrkSide",
}

var zonings = []string{"RL", "RL", "RL", "RM", "FV", "RH"}

// SaleGenerator generates random sales. Using the same seed gives the same
// series of sales on a given version of Go.
type SaleGenerator struct {
	r   *rand.Rand
	pid int
}

// NewSaleGenerator gets a new SaleGenerator with the given random seed.
func NewSaleGenerator(seed int64) *SaleGenerator {
	return &SaleGenerator{
		r:   rand.New(rand.NewSource(seed)),
		pid: 527000000,
	}
}

// Sale generates a random sale.
func (g *SaleGenerator) Sale() Sale {
	g.pid += g.r.Intn(9000) + 1000
	// log10 of price is normal around 5.2 (~160k) - strictly positive by
	// construction
	logPrice := 5.2 + 0.18*g.r.NormFloat64()
	return Sale{
		PID:          fmt.Sprintf("%010d", g.pid),
		Neighborhood: neighborhoods[g.r.Intn(len(neighborhoods))],
		Zoning:       zonings[g.r.Intn(len(zonings))],
		LotArea:      g.r.Intn(18000) + 2500,
		YearBuilt:    g.r.Intn(139) + 1872,
		GrLivArea:    g.r.Intn(3000) + 630,
		Longitude:    -93.64 + g.r.Float64()*0.09 - 0.045,
		Latitude:     42.03 + g.r.Float64()*0.07 - 0.035,
		SalePrice:    math.Round(math.Pow(10, logPrice)),
	}
}

// Frame generates a frame of n random sales.
func (g *SaleGenerator) Frame(n int) (*housekit.Frame, error) {
	sales := make([]Sale, n)
	for i := range sales {
		sales[i] = g.Sale()
	}
	cols := []housekit.Column{
		{Name: "PID", Type: housekit.String, Strings: make([]string, n)},
		{Name: "Neighborhood", Type: housekit.String, Strings: make([]string, n)},
		{Name: "Zoning", Type: housekit.String, Strings: make([]string, n)},
		{Name: "LotArea", Type: housekit.Int, Ints: make([]int64, n)},
		{Name: "YearBuilt", Type: housekit.Int, Ints: make([]int64, n)},
		{Name: "GrLivArea", Type: housekit.Int, Ints: make([]int64, n)},
		{Name: "Longitude", Type: housekit.Float, Floats: make([]float64, n)},
		{Name: "Latitude", Type: housekit.Float, Floats: make([]float64, n)},
		{Name: "SalePrice", Type: housekit.Float, Floats: make([]float64, n)},
	}
	for i, s := range sales {
		cols[0].Strings[i] = s.PID
		cols[1].Strings[i] = s.Neighborhood
		cols[2].Strings[i] = s.Zoning
		cols[3].Ints[i] = int64(s.LotArea)
		cols[4].Ints[i] = int64(s.YearBuilt)
		cols[5].Ints[i] = int64(s.GrLivArea)
		cols[6].Floats[i] = s.Longitude
		cols[7].Floats[i] = s.Latitude
		cols[8].Floats[i] = s.SalePrice
	}
	return housekit.NewFrame(cols...)
}

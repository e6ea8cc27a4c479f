package fake

import (
	"io"
	"strconv"
	"sync"
)

// Source is a housekit.Source which generates n fake sale records.
type Source struct {
	mu sync.Mutex
	g  *SaleGenerator
	n  int
}

// NewSource creates a new Source with the given random seed which will
// produce n records before io.EOF.
func NewSource(seed int64, n int) *Source {
	return &Source{
		g: NewSaleGenerator(seed),
		n: n,
	}
}

// Record implements housekit.Source and returns a randomly generated sale.
func (s *Source) Record() (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.n <= 0 {
		return nil, io.EOF
	}
	s.n--
	sale := s.g.Sale()
	return map[string]string{
		"PID":          sale.PID,
		"Neighborhood": sale.Neighborhood,
		"Zoning":       sale.Zoning,
		"LotArea":      strconv.Itoa(sale.LotArea),
		"YearBuilt":    strconv.Itoa(sale.YearBuilt),
		"GrLivArea":    strconv.Itoa(sale.GrLivArea),
		"Longitude":    strconv.FormatFloat(sale.Longitude, 'f', 4, 64),
		"Latitude":     strconv.FormatFloat(sale.Latitude, 'f', 4, 64),
		"SalePrice":    strconv.FormatFloat(sale.SalePrice, 'f', -1, 64),
	}, nil
}

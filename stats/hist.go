package stats

import (
	"math"

	"github.com/housekit/housekit"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Bin is a single histogram bin covering [Lo, Hi). The last bin of a
// histogram also includes its upper edge.
type Bin struct {
	Lo, Hi  float64
	Count   int
	Density float64
}

// Histogram is a fixed-width binning of a float column.
type Histogram struct {
	Bins []Bin
	N    int
}

// HistOptions configures binning. Exactly one of NumBins or BinWidth may be
// set; a nil options or zero values use the default bin count.
type HistOptions struct {
	NumBins  int
	BinWidth float64
}

// DefaultNumBins is the bin count used when no option is given.
const DefaultNumBins = 30

// Hist bins xs into fixed-width bins spanning [min, max]. It fails on empty
// input or when all values are identical (zero-width range).
func Hist(xs []float64, options *HistOptions) (Histogram, error) {
	if len(xs) == 0 {
		return Histogram{}, errors.New("no values to bin")
	}
	if options == nil {
		options = &HistOptions{}
	}
	if options.NumBins != 0 && options.BinWidth != 0 {
		return Histogram{}, errors.New("set at most one of NumBins and BinWidth")
	}
	if options.BinWidth < 0 {
		return Histogram{}, errors.Errorf("negative bin width %v", options.BinWidth)
	}

	lo, hi := floats.Min(xs), floats.Max(xs)
	if lo == hi {
		return Histogram{}, errors.Errorf("all %d values equal %v - nothing to bin", len(xs), lo)
	}

	var nbins int
	var width float64
	if options.BinWidth > 0 {
		width = options.BinWidth
		nbins = int(math.Ceil((hi - lo) / width))
	} else {
		nbins = options.NumBins
		if nbins <= 0 {
			nbins = DefaultNumBins
		}
		width = (hi - lo) / float64(nbins)
	}

	h := Histogram{Bins: make([]Bin, nbins), N: len(xs)}
	for i := range h.Bins {
		h.Bins[i].Lo = lo + float64(i)*width
		h.Bins[i].Hi = lo + float64(i+1)*width
	}
	for _, x := range xs {
		i := int((x - lo) / width)
		if i >= nbins {
			i = nbins - 1 // the max value lands in the last bin
		}
		h.Bins[i].Count++
	}
	for i := range h.Bins {
		h.Bins[i].Density = float64(h.Bins[i].Count) / (float64(h.N) * width)
	}
	return h, nil
}

// HistColumn bins the named numeric column of f.
func HistColumn(f *housekit.Frame, name string, options *HistOptions) (Histogram, error) {
	xs, err := f.Floats(name)
	if err != nil {
		return Histogram{}, errors.Wrap(err, "getting column")
	}
	h, err := Hist(xs, options)
	return h, errors.Wrapf(err, "binning %q", name)
}

package housekit

import (
	"math"

	"github.com/pkg/errors"
)

// ErrNotPositive is the cause of errors returned when a transform which is
// only defined for strictly positive values encounters a zero or negative
// one. Use errors.Cause to test for it.
var ErrNotPositive = errors.New("value is not strictly positive")

// Transformer is the interface for operations which derive a new Frame from
// an existing one. Implementations must not modify the input Frame, and must
// return no Frame at all on error rather than a partial result.
type Transformer interface {
	Transform(f *Frame) (*Frame, error)
}

// TransformerFunc can be wrapped around a function to make it implement the
// Transformer interface. Similar to http.HandlerFunc.
type TransformerFunc func(f *Frame) (*Frame, error)

// Transform implements Transformer for TransformerFunc.
func (fn TransformerFunc) Transform(f *Frame) (*Frame, error) {
	return fn(f)
}

// Log10Transformer replaces a strictly positive numeric column with its
// base-10 logarithm. An Int column is widened, so the result column is always
// Float. The output Frame has the same rows, columns, and ordering as the
// input; only the named column's values change. The mapping is monotonic and
// invertible (10**y recovers the original values), so rank order among rows
// is preserved and the original scale is always recoverable. It is not
// idempotent: apply it exactly once.
type Log10Transformer struct {
	// Column is the name of the outcome column to transform.
	Column string
}

// Transform implements Transformer. It fails without producing a frame if the
// column is missing or non-numeric, or if any value is zero or negative - a
// non-positive outcome indicates a data-quality problem upstream and is never
// silently coerced.
func (t Log10Transformer) Transform(f *Frame) (*Frame, error) {
	vals, err := f.Floats(t.Column)
	if err != nil {
		return nil, errors.Wrap(err, "getting outcome column")
	}
	logs := make([]float64, len(vals))
	for i, v := range vals {
		if v <= 0 {
			return nil, errors.Wrapf(ErrNotPositive, "log10 of %v at row %d of column %q", v, i, t.Column)
		}
		logs[i] = math.Log10(v)
	}
	return f.WithColumn(Column{Name: t.Column, Type: Float, Floats: logs})
}

// Pow10 inverts a base-10 log transform, recovering values on the original
// scale.
func Pow10(logs []float64) []float64 {
	vals := make([]float64, len(logs))
	for i, y := range logs {
		vals[i] = math.Pow(10, y)
	}
	return vals
}

// Apply runs each transformer in order, feeding the output of one to the
// next. The first error stops the chain.
func Apply(f *Frame, transformers ...Transformer) (*Frame, error) {
	var err error
	for _, t := range transformers {
		f, err = t.Transform(f)
		if err != nil {
			return nil, errors.Wrapf(err, "applying %T", t)
		}
	}
	return f, nil
}

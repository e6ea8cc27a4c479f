// Package termplot renders summaries and histograms as plain text for
// terminal use. It is meant for exploring data at the terminal in lieu of an
// actual graphics device writing image files.
package termplot

import (
	"fmt"
	"io"
	"strings"

	"github.com/housekit/housekit/stats"
	"github.com/pkg/errors"
)

// Renderer writes text renderings of stats results to out.
type Renderer struct {
	out   io.Writer
	width int // widest histogram bar, in characters
}

// Option is a functional option to pass to NewRenderer.
type Option func(*Renderer)

// WithWidth returns an Option which sets the width in characters of the
// longest histogram bar.
func WithWidth(w int) Option {
	return func(r *Renderer) {
		if w > 0 {
			r.width = w
		}
	}
}

// NewRenderer initializes and returns a new Renderer writing to out.
func NewRenderer(out io.Writer, options ...Option) *Renderer {
	r := &Renderer{
		out:   out,
		width: 50,
	}
	for _, opt := range options {
		opt(r)
	}
	return r
}

// Summary writes a labeled table of the statistics in s.
func (r *Renderer) Summary(label string, s stats.Summary) error {
	rows := []struct {
		name string
		val  float64
	}{
		{"mean", s.Mean},
		{"geomean", s.GeoMean},
		{"std dev", s.StdDev},
		{"skewness", s.Skew},
		{"min", s.Min},
		{"5%ile", s.P5},
		{"25%ile", s.Q1},
		{"median", s.Median},
		{"75%ile", s.Q3},
		{"95%ile", s.P95},
		{"max", s.Max},
	}
	if _, err := fmt.Fprintf(r.out, "%s  (n=%d)\n", label, s.N); err != nil {
		return errors.Wrap(err, "writing header")
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(r.out, "%10s %.6g\n", row.name, row.val); err != nil {
			return errors.Wrapf(err, "writing %s", row.name)
		}
	}
	return nil
}

// Histogram writes an ASCII bar chart of h, one bin per line, bars scaled so
// the fullest bin spans the renderer's width.
func (r *Renderer) Histogram(label string, h stats.Histogram) error {
	if len(h.Bins) == 0 {
		return errors.New("histogram has no bins")
	}
	max := 0
	for _, b := range h.Bins {
		if b.Count > max {
			max = b.Count
		}
	}
	if max == 0 {
		return errors.New("histogram is empty")
	}
	if _, err := fmt.Fprintf(r.out, "%s  (n=%d)\n", label, h.N); err != nil {
		return errors.Wrap(err, "writing header")
	}
	for _, b := range h.Bins {
		bar := strings.Repeat("*", b.Count*r.width/max)
		if _, err := fmt.Fprintf(r.out, "%12.6g %6d %s\n", b.Lo, b.Count, bar); err != nil {
			return errors.Wrap(err, "writing bin")
		}
	}
	return nil
}

// Groups writes one summary line per group: key, count, mean, and median.
func (r *Renderer) Groups(label string, groups []stats.Group) error {
	if _, err := fmt.Fprintf(r.out, "%s\n", label); err != nil {
		return errors.Wrap(err, "writing header")
	}
	keyWidth := 0
	for _, g := range groups {
		if len(g.Key) > keyWidth {
			keyWidth = len(g.Key)
		}
	}
	for _, g := range groups {
		_, err := fmt.Fprintf(r.out, "%-*s n=%-4d mean=%-10.6g median=%.6g\n",
			keyWidth, g.Key, g.Summary.N, g.Summary.Mean, g.Summary.Median)
		if err != nil {
			return errors.Wrapf(err, "writing group %s", g.Key)
		}
	}
	return nil
}

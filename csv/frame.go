package csv

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/housekit/housekit"
	"github.com/pkg/errors"
)

// ReadFrame drains a Source built from the given options into a
// housekit.Frame. Columns appear in header order, and each column's type
// (int, float, or string) is inferred from its values. Every data row must
// populate every header field - a blank field is a schema error here, since a
// Frame has no missing-value representation.
func ReadFrame(options ...Option) (*housekit.Frame, error) {
	src := NewSource(options...)
	var records []map[string]string
	var readErr error
	for {
		rec, err := src.Record()
		if err == io.EOF {
			break
		}
		if err != nil {
			// keep draining so the source's fetch goroutines can exit
			if readErr == nil {
				readErr = err
			}
			continue
		}
		records = append(records, rec)
	}
	if readErr != nil {
		return nil, errors.Wrap(readErr, "reading csv")
	}
	header := src.Header()
	if len(header) == 0 {
		return nil, errors.New("no header found - no csv data read")
	}

	schema := make([]housekit.ColumnSpec, len(header))
	vals := make([]string, len(records))
	for i, name := range header {
		for j, rec := range records {
			vals[j] = rec[name]
		}
		schema[i] = housekit.ColumnSpec{Name: name, Type: housekit.InferType(vals)}
	}
	return housekit.FromSource(&replaySource{records: records}, schema)
}

// replaySource feeds already-collected records back through the
// housekit.Source interface.
type replaySource struct {
	records []map[string]string
	i       int
}

func (r *replaySource) Record() (map[string]string, error) {
	if r.i >= len(r.records) {
		return nil, io.EOF
	}
	rec := r.records[r.i]
	r.i++
	return rec, nil
}

// Write writes f to w as CSV with a header line, columns in frame order.
func Write(w io.Writer, f *housekit.Frame) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(f.Names()); err != nil {
		return errors.Wrap(err, "writing header")
	}
	names := f.Names()
	cols := make([]housekit.Column, len(names))
	for i, name := range names {
		col, err := f.Column(name)
		if err != nil {
			return errors.Wrapf(err, "getting column %q", name)
		}
		cols[i] = col
	}
	row := make([]string, len(cols))
	for i := 0; i < f.NumRows(); i++ {
		for j, col := range cols {
			switch col.Type {
			case housekit.Float:
				row[j] = strconv.FormatFloat(col.Floats[i], 'g', -1, 64)
			case housekit.Int:
				row[j] = strconv.FormatInt(col.Ints[i], 10)
			case housekit.String:
				row[j] = col.Strings[i]
			}
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "writing row %d", i)
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "flushing csv")
}

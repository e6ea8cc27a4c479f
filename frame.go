package housekit

import (
	"sort"

	"github.com/pkg/errors"
)

// ErrNoColumn is the cause of errors returned when a named column does not
// exist in a Frame. Use errors.Cause to test for it.
var ErrNoColumn = errors.New("no such column")

// ErrWrongType is the cause of errors returned when a column exists but does
// not have the requested type.
var ErrWrongType = errors.New("wrong column type")

// FieldType represents the basic type of a column.
type FieldType uint

const (
	Float FieldType = iota
	Int
	String
)

func (ft FieldType) String() string {
	switch ft {
	case Float:
		return "float"
	case Int:
		return "int"
	case String:
		return "string"
	}
	return "unknown"
}

// Column is a single named column of a Frame. Exactly one of the backing
// slices is populated, according to Type.
type Column struct {
	Name string
	Type FieldType

	Floats  []float64
	Ints    []int64
	Strings []string
}

// Len returns the number of values in the column.
func (c Column) Len() int {
	switch c.Type {
	case Float:
		return len(c.Floats)
	case Int:
		return len(c.Ints)
	case String:
		return len(c.Strings)
	}
	return 0
}

// Value returns the i'th value of the column as an interface.
func (c Column) Value(i int) interface{} {
	switch c.Type {
	case Float:
		return c.Floats[i]
	case Int:
		return c.Ints[i]
	case String:
		return c.Strings[i]
	}
	return nil
}

// Frame is an ordered collection of equal-length typed columns - an in-memory
// tabular dataset. A Frame is built once and treated as read-only afterward;
// operations which change data return a new Frame. Callers must not modify
// slices handed out by accessor methods.
type Frame struct {
	cols  []Column
	index map[string]int
	n     int
}

// NewFrame builds a Frame from the given columns. Column names must be
// non-empty and unique, and all columns must have the same length.
func NewFrame(cols ...Column) (*Frame, error) {
	f := &Frame{
		cols:  cols,
		index: make(map[string]int, len(cols)),
	}
	for i, col := range cols {
		if col.Name == "" {
			return nil, errors.Errorf("column %d has an empty name", i)
		}
		if pos, exists := f.index[col.Name]; exists {
			return nil, errors.Errorf("column %q appears at both %d and %d", col.Name, pos, i)
		}
		f.index[col.Name] = i
		if i == 0 {
			f.n = col.Len()
		} else if col.Len() != f.n {
			return nil, errors.Errorf("column %q has %d values, expected %d", col.Name, col.Len(), f.n)
		}
	}
	return f, nil
}

// NumRows returns the number of rows in the frame.
func (f *Frame) NumRows() int { return f.n }

// NumCols returns the number of columns in the frame.
func (f *Frame) NumCols() int { return len(f.cols) }

// Names returns the column names in frame order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.cols))
	for i, col := range f.cols {
		names[i] = col.Name
	}
	return names
}

// HasColumn reports whether the frame has a column with the given name.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Column returns the named column.
func (f *Frame) Column(name string) (Column, error) {
	i, ok := f.index[name]
	if !ok {
		return Column{}, errors.Wrapf(ErrNoColumn, "%q (have %v)", name, f.Names())
	}
	return f.cols[i], nil
}

// Floats returns the values of the named column as float64s. The column must
// be numeric: a Float column's backing slice is returned directly, and an Int
// column is widened into a freshly allocated slice.
func (f *Frame) Floats(name string) ([]float64, error) {
	col, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	switch col.Type {
	case Float:
		return col.Floats, nil
	case Int:
		vals := make([]float64, len(col.Ints))
		for i, v := range col.Ints {
			vals[i] = float64(v)
		}
		return vals, nil
	}
	return nil, errors.Wrapf(ErrWrongType, "column %q is %s, want a numeric type", name, col.Type)
}

// Ints returns the values of the named column, which must have type Int.
func (f *Frame) Ints(name string) ([]int64, error) {
	col, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	if col.Type != Int {
		return nil, errors.Wrapf(ErrWrongType, "column %q is %s, want %s", name, col.Type, Int)
	}
	return col.Ints, nil
}

// Strings returns the values of the named column, which must have type String.
func (f *Frame) Strings(name string) ([]string, error) {
	col, err := f.Column(name)
	if err != nil {
		return nil, err
	}
	if col.Type != String {
		return nil, errors.Wrapf(ErrWrongType, "column %q is %s, want %s", name, col.Type, String)
	}
	return col.Strings, nil
}

// WithColumn returns a new Frame where the column matching col's name is
// replaced by col. If no column has that name, col is appended. The receiver
// is not modified; unreplaced columns are shared between the two frames.
func (f *Frame) WithColumn(col Column) (*Frame, error) {
	if f.n != col.Len() && len(f.cols) > 0 {
		return nil, errors.Errorf("column %q has %d values, frame has %d rows", col.Name, col.Len(), f.n)
	}
	cols := make([]Column, len(f.cols))
	copy(cols, f.cols)
	if i, ok := f.index[col.Name]; ok {
		cols[i] = col
	} else {
		cols = append(cols, col)
	}
	return NewFrame(cols...)
}

// Uniques returns the sorted distinct values of the named String column.
func (f *Frame) Uniques(name string) ([]string, error) {
	vals, err := f.Strings(name)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	for _, v := range vals {
		seen[v] = struct{}{}
	}
	un := make([]string, 0, len(seen))
	for v := range seen {
		un = append(un, v)
	}
	sort.Strings(un)
	return un, nil
}

// Equal returns nil if the two frames have identical schemas and values, and
// an error describing the first difference found otherwise.
func (f *Frame) Equal(f2 *Frame) error {
	if f.n != f2.n {
		return errors.Errorf("frames have different row counts, %d and %d", f.n, f2.n)
	}
	if len(f.cols) != len(f2.cols) {
		return errors.Errorf("frames have different column counts, %d and %d", len(f.cols), len(f2.cols))
	}
	for i, col := range f.cols {
		col2 := f2.cols[i]
		if col.Name != col2.Name {
			return errors.Errorf("column %d named %q in one frame and %q in the other", i, col.Name, col2.Name)
		}
		if col.Type != col2.Type {
			return errors.Errorf("column %q is %s in one frame and %s in the other", col.Name, col.Type, col2.Type)
		}
		for j := 0; j < f.n; j++ {
			if col.Value(j) != col2.Value(j) {
				return errors.Errorf("column %q differs at row %d: %v and %v", col.Name, j, col.Value(j), col2.Value(j))
			}
		}
	}
	return nil
}

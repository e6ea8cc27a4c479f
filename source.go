package housekit

import (
	"io"
	"sort"

	"github.com/pkg/errors"
)

// Source is the interface for getting raw data one record at a time. A record
// maps field names to their unparsed string values. Record returns io.EOF
// after the last record. Implementations of Source should be thread safe.
type Source interface {
	Record() (map[string]string, error)
}

// ColumnSpec names a column and the type its values should be parsed to.
type ColumnSpec struct {
	Name string
	Type FieldType
}

// FromSource drains src and builds a Frame with one column per spec, in spec
// order. Every record must carry a value for every spec'd column; values
// which fail to parse as the spec'd type are schema errors. If schema is nil,
// all records are inspected first and a schema is inferred with columns in
// sorted name order.
func FromSource(src Source, schema []ColumnSpec) (*Frame, error) {
	records, err := drain(src)
	if err != nil {
		return nil, err
	}
	if schema == nil {
		schema = inferSchema(records)
	}
	cols := make([]Column, len(schema))
	for i, spec := range schema {
		col := Column{Name: spec.Name, Type: spec.Type}
		parser := ParserFor(spec.Type)
		switch spec.Type {
		case Float:
			col.Floats = make([]float64, len(records))
		case Int:
			col.Ints = make([]int64, len(records))
		case String:
			col.Strings = make([]string, len(records))
		}
		for j, rec := range records {
			raw, ok := rec[spec.Name]
			if !ok {
				return nil, errors.Errorf("record %d has no value for column %q", j, spec.Name)
			}
			val, err := parser.Parse(raw)
			if err != nil {
				return nil, errors.Wrapf(err, "record %d: parsing %q as %s for column %q", j, raw, spec.Type, spec.Name)
			}
			switch spec.Type {
			case Float:
				col.Floats[j] = val.(float64)
			case Int:
				col.Ints[j] = val.(int64)
			case String:
				col.Strings[j] = val.(string)
			}
		}
		cols[i] = col
	}
	return NewFrame(cols...)
}

func drain(src Source) ([]map[string]string, error) {
	var records []map[string]string
	for {
		rec, err := src.Record()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "reading record")
		}
		records = append(records, rec)
	}
}

func inferSchema(records []map[string]string) []ColumnSpec {
	byName := make(map[string][]string)
	for _, rec := range records {
		for name, val := range rec {
			byName[name] = append(byName[name], val)
		}
	}
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	schema := make([]ColumnSpec, len(names))
	for i, name := range names {
		schema[i] = ColumnSpec{Name: name, Type: InferType(byName[name])}
	}
	return schema
}

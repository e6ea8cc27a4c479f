package housekit

import (
	"strconv"
	"strings"
)

// Parser represents a single method for parsing a string field to a value.
type Parser interface {
	Parse(string) (interface{}, error)
}

// IntParser is a parser for integer types.
type IntParser struct {
}

// FloatParser is a parser for float types.
type FloatParser struct {
}

// StringParser is a parser for string types.
type StringParser struct {
}

// Parse parses an integer string to an int64 value.
func (p IntParser) Parse(field string) (result interface{}, err error) {
	return strconv.ParseInt(strings.TrimSpace(field), 10, 64)
}

// Parse parses a float string to a float64 value.
func (p FloatParser) Parse(field string) (result interface{}, err error) {
	return strconv.ParseFloat(strings.TrimSpace(field), 64)
}

// Parse is an identity parser for strings.
func (p StringParser) Parse(field string) (result interface{}, err error) {
	return field, nil
}

// ParserFor returns the Parser matching a FieldType.
func ParserFor(ft FieldType) Parser {
	switch ft {
	case Int:
		return IntParser{}
	case Float:
		return FloatParser{}
	}
	return StringParser{}
}

// InferType guesses the narrowest FieldType which can represent every value
// in vals: Int if every value parses as an integer, Float if every value
// parses as a float, String otherwise. An empty vals infers String.
func InferType(vals []string) FieldType {
	if len(vals) == 0 {
		return String
	}
	isInt, isFloat := true, true
	for _, v := range vals {
		if isInt {
			if _, err := (IntParser{}).Parse(v); err != nil {
				isInt = false
			}
		}
		if isFloat {
			if _, err := (FloatParser{}).Parse(v); err != nil {
				isFloat = false
			}
		}
		if !isInt && !isFloat {
			return String
		}
	}
	if isInt {
		return Int
	}
	return Float
}

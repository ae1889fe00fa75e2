package codegen

import (
	"errors"
	"strconv"
	"strings"
)

// ErrEmptyTable is returned when an integer kind is requested for an
// empty table; an empty sequence has no defined value range.
var ErrEmptyTable = errors.New("codegen: empty integer table")

// IntType is one of the integer representations a parser table can be
// declared with. Types are ordered narrowest first.
type IntType int

const (
	Int8 IntType = iota
	Uint8
	Int16
	Uint16
	Int // generic fallback
)

// CType returns the C declaration type for the integer kind.
func (t IntType) CType() string {
	switch t {
	case Int8:
		return "yytype_int8"
	case Uint8:
		return "yytype_uint8"
	case Int16:
		return "yytype_int16"
	case Uint16:
		return "yytype_uint16"
	}
	return "int"
}

func (t IntType) String() string {
	return t.CType()
}

// Bounds of each representable kind. The signed bounds are symmetric
// (-127, not -128) so the generated tables stay portable to targets
// without two's-complement guarantees.
const (
	int8Min   = -127
	int8Max   = 127
	uint8Max  = 255
	int16Min  = -32767
	int16Max  = 32767
	uint16Max = 65535
)

// SelectIntegerType returns the narrowest integer kind able to represent
// every value in seq. An empty sequence is an error.
func SelectIntegerType(seq []int) (IntType, error) {
	if len(seq) == 0 {
		return Int, ErrEmptyTable
	}

	min, max := seq[0], seq[0]
	for _, v := range seq[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	switch {
	case min >= int8Min && max <= int8Max:
		return Int8, nil
	case min >= 0 && max <= uint8Max:
		return Uint8, nil
	case min >= int16Min && max <= int16Max:
		return Int16, nil
	case min >= 0 && max <= uint16Max:
		return Uint16, nil
	}
	return Int, nil
}

// valuesPerLine is the number of table values emitted per source line.
const valuesPerLine = 10

// FormatIntegerArray serializes seq as the body of a C array literal:
// right-aligned 6-character decimal fields, ten per line, each line
// prefixed by two spaces, every value comma-terminated except the last.
// The grouping matches the established skeleton format byte for byte.
func FormatIntegerArray(seq []int) string {
	var b strings.Builder
	for i, v := range seq {
		switch {
		case i == 0:
			b.WriteString("  ")
		case i%valuesPerLine == 0:
			b.WriteString(",\n  ")
		default:
			b.WriteByte(',')
		}
		b.WriteString(rjust(v, 6))
	}
	return b.String()
}

// rjust formats v in decimal, right-aligned in a field of width w.
func rjust(v, w int) string {
	s := strconv.Itoa(v)
	if len(s) >= w {
		return s
	}
	return strings.Repeat(" ", w-len(s)) + s
}

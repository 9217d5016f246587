// Package models defines the tabular data structures shared across tabkit.
package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// CellKind identifies the variant held by a Cell.
type CellKind int

const (
	// Absent marks a cell that carries no value: never written, or empty
	// in the source sheet.
	Absent CellKind = iota
	// Text marks a string cell.
	Text
	// Number marks a numeric cell.
	Number
	// Bool marks a boolean cell.
	Bool
)

// Cell is a closed tagged variant for a single spreadsheet cell value.
// Exactly one of the value fields is meaningful, selected by Kind.
type Cell struct {
	Kind CellKind
	Str  string
	Num  float64
	Flag bool
}

// AbsentCell returns a cell with no value.
func AbsentCell() Cell {
	return Cell{Kind: Absent}
}

// TextCell returns a text cell holding s.
func TextCell(s string) Cell {
	return Cell{Kind: Text, Str: s}
}

// NumberCell returns a numeric cell holding n.
func NumberCell(n float64) Cell {
	return Cell{Kind: Number, Num: n}
}

// BoolCell returns a boolean cell holding b.
func BoolCell(b bool) Cell {
	return Cell{Kind: Bool, Flag: b}
}

// IsBlank reports whether the cell carries no usable value: absent, or text
// that trims to the empty string. Numeric zero and false are not blank.
func (c Cell) IsBlank() bool {
	switch c.Kind {
	case Absent:
		return true
	case Text:
		return strings.TrimSpace(c.Str) == ""
	default:
		return false
	}
}

// String renders the cell value as text. Absent cells render as "".
func (c Cell) String() string {
	switch c.Kind {
	case Text:
		return c.Str
	case Number:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case Bool:
		return strconv.FormatBool(c.Flag)
	default:
		return ""
	}
}

// MarshalJSON emits the underlying scalar: null for absent cells, otherwise
// the text, number, or boolean value.
func (c Cell) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case Text:
		return json.Marshal(c.Str)
	case Number:
		return json.Marshal(c.Num)
	case Bool:
		return json.Marshal(c.Flag)
	default:
		return []byte("null"), nil
	}
}

package types

import (
	"strconv"
	"strings"
)

// Kind identifies the semantic type of a cell value.
type Kind uint8

const (
	KindMissing Kind = iota
	KindText
	KindInt
	KindFloat
)

// Value is a single typed cell loaded from a CSV table. Missing is a
// first-class state distinct from zero or the empty string, so "column
// absent" and "value missing" never collapse into a sentinel.
type Value struct {
	kind Kind
	text string
	num  float64
	i    int64
}

// Missing returns the missing value.
func Missing() Value {
	return Value{kind: KindMissing}
}

// Text returns a string-valued cell.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Int returns an integer-valued cell.
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// Float returns a float-valued cell.
func Float(f float64) Value {
	return Value{kind: KindFloat, num: f}
}

// Parse sniffs a raw CSV cell into a typed value: integer, then float,
// then text. Empty (or whitespace-only) cells are missing.
func Parse(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Missing()
	}
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return Int(i)
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Float(f)
	}
	return Text(raw)
}

// Kind reports the value's kind.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether the value is missing.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// AsFloat returns the numeric value as a float64. Integers widen; text
// and missing report false.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.num, true
	case KindInt:
		return float64(v.i), true
	default:
		return 0, false
	}
}

// AsInt returns the value as an int64. Floats truncate; text and missing
// report false.
func (v Value) AsInt() (int64, bool) {
	switch v.kind {
	case KindInt:
		return v.i, true
	case KindFloat:
		return int64(v.num), true
	default:
		return 0, false
	}
}

// AsString returns the textual value. Numeric and missing values report
// false; use String for display formatting instead.
func (v Value) AsString() (string, bool) {
	if v.kind == KindText {
		return v.text, true
	}
	return "", false
}

// String renders the value for display. Missing renders as the empty
// string.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	default:
		return ""
	}
}

// Interface returns the value as a plain Go value suitable for JSON
// encoding: string, int64, float64, or nil for missing.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindText:
		return v.text
	case KindInt:
		return v.i
	case KindFloat:
		return v.num
	default:
		return nil
	}
}

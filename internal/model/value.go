// Package model holds the dataset, role and result types shared by the
// locator, loader, resolver and aggregator.
package model

import (
	"math"
	"strconv"
)

// Kind identifies the type held by a Value.
type Kind int

const (
	// KindMissing marks an absent reading.
	KindMissing Kind = iota
	// KindNumber marks a numeric reading.
	KindNumber
	// KindBool marks a boolean flag.
	KindBool
	// KindString marks free text.
	KindString
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	default:
		return "unknown(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a single dataset cell.
type Value struct {
	text string
	num  float64
	kind Kind
	flag bool
}

// Missing returns an absent value.
func Missing() Value {
	return Value{kind: KindMissing}
}

// Number returns a numeric value. NaN and infinities are stored as missing.
func Number(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Missing()
	}
	return Value{kind: KindNumber, num: f}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// String returns a text value.
func String(s string) Value {
	return Value{kind: KindString, text: s}
}

// Kind returns the value's kind.
func (v Value) Kind() Kind {
	return v.kind
}

// IsMissing reports whether the value is absent.
func (v Value) IsMissing() bool {
	return v.kind == KindMissing
}

// Float returns the numeric value. Booleans are not numbers here.
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Truthy reports whether the value counts as a raised flag: a true boolean or a
// non-zero number.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindBool:
		return v.flag
	case KindNumber:
		return v.num != 0
	default:
		return false
	}
}

// Text returns the value rendered as plain text. Missing values render empty.
func (v Value) Text() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindString:
		return v.text
	default:
		return ""
	}
}

// Interface returns the value as a plain Go value for serialization.
func (v Value) Interface() any {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindBool:
		return v.flag
	case KindString:
		return v.text
	default:
		return nil
	}
}

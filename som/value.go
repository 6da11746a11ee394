// SPDX-License-Identifier: MIT

package som

import (
	"strconv"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	// KindInvalid is the zero Value; it never comes out of Cell.Get.
	KindInvalid Kind = iota
	// KindNumber holds a float64.
	KindNumber
	// KindString holds a string.
	KindString
	// KindBool holds a bool.
	KindBool
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Value is a tagged attribute value: exactly one of number, string or bool.
// Values are immutable and comparable with Equal.
type Value struct {
	kind Kind
	num  float64
	str  string
	flag bool
}

// NumberValue wraps f.
func NumberValue(f float64) Value { return Value{kind: KindNumber, num: f} }

// StringValue wraps s.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// BoolValue wraps b.
func BoolValue(b bool) Value { return Value{kind: KindBool, flag: b} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// Number returns the numeric payload and whether v is a number.
func (v Value) Number() (float64, bool) { return v.num, v.kind == KindNumber }

// Text returns the string payload and whether v is a string.
func (v Value) Text() (string, bool) { return v.str, v.kind == KindString }

// Bool returns the boolean payload and whether v is a bool.
func (v Value) Bool() (bool, bool) { return v.flag, v.kind == KindBool }

// Equal reports whether v and o hold the same variant and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == o.num
	case KindString:
		return v.str == o.str
	case KindBool:
		return v.flag == o.flag
	default:
		return true
	}
}

// String renders the payload.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.str)
	case KindBool:
		return strconv.FormatBool(v.flag)
	default:
		return "<invalid>"
	}
}

// appendHash appends a canonical byte encoding of v, used by Cell.Hash.
func (v Value) appendHash(b []byte) []byte {
	b = append(b, byte(v.kind))
	switch v.kind {
	case KindNumber:
		n := v.num
		if n == 0 {
			n = 0 // fold -0 into +0
		}
		b = strconv.AppendFloat(b, n, 'g', -1, 64)
	case KindString:
		b = strconv.AppendQuote(b, v.str)
	case KindBool:
		b = strconv.AppendBool(b, v.flag)
	}

	return b
}

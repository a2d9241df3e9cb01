package leptjson

import "fmt"

// Value holds a single parsed scalar. The zero Value is null.
//
// Exactly one variant is active at a time. Only the number variant carries a
// payload; n is kept at zero for every other type.
type Value struct {
	typ Type
	n   float64
}

// Type returns the active variant.
func (v *Value) Type() Type {
	return v.typ
}

// Number returns the numeric payload. It panics if v is not a number.
func (v *Value) Number() float64 {
	if v.typ != TypeNumber {
		panic(fmt.Sprintf("leptjson: Number called on %s value", v.typ))
	}
	return v.n
}

// Bool returns the boolean held by a true or false value. It panics for
// any other type.
func (v *Value) Bool() bool {
	switch v.typ {
	case TypeTrue:
		return true
	case TypeFalse:
		return false
	default:
		panic(fmt.Sprintf("leptjson: Bool called on %s value", v.typ))
	}
}

// IsNull reports whether v holds null.
func (v *Value) IsNull() bool {
	return v.typ == TypeNull
}

// Reset sets v back to null.
func (v *Value) Reset() {
	v.typ = TypeNull
	v.n = 0
}

// Interface returns v as a Go value: nil for null, bool for true and false,
// float64 for numbers.
func (v *Value) Interface() any {
	switch v.typ {
	case TypeTrue:
		return true
	case TypeFalse:
		return false
	case TypeNumber:
		return v.n
	default:
		return nil
	}
}

// setLiteral switches v to one of the payload-free variants.
func (v *Value) setLiteral(typ Type) {
	v.typ = typ
	v.n = 0
}

func (v *Value) setNumber(f float64) {
	v.typ = TypeNumber
	v.n = f
}

// Package leptjson parses a minimal JSON subset: a single null, true, false
// or number, surrounded by optional whitespace.
package leptjson

import (
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
)

var valueType = reflect.TypeOf(Value{})

// Decoder reads and decodes a value from an input stream.
type Decoder struct {
	r io.Reader
}

// NewDecoder returns a new decoder that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads all remaining input and stores the parsed value in the
// pointer v. See Unmarshal for the supported destinations.
func (dec *Decoder) Decode(v any) error {
	data, err := io.ReadAll(dec.r)
	if err != nil {
		return fmt.Errorf("leptjson: read input: %w", err)
	}

	return Unmarshal(data, v)
}

// Unmarshal parses data and stores the result in the value pointed to by v.
// If v is nil or not a pointer, it returns an error.
//
// Values map onto destinations as follows:
//   - *Value receives the parsed value as is.
//   - interface{} receives nil, bool or float64.
//   - bool receives true or false.
//   - float kinds receive numbers; integer kinds receive whole numbers that fit.
//   - null sets any destination to its zero value.
//
// Syntax errors are returned as *SyntaxError.
func Unmarshal(data []byte, v any) error {
	var val Value
	if err := ParseBytes(&val, data); err != nil {
		return err
	}

	return setValue(v, &val)
}

// Valid reports whether data is a single well-formed value.
func Valid(data []byte) bool {
	var val Value
	return ParseBytes(&val, data) == nil
}

// setValue sets the destination value from the parsed source value.
func setValue(dst any, src *Value) error {
	if dst == nil {
		return errors.New("leptjson: cannot unmarshal into a nil value")
	}

	val := reflect.ValueOf(dst)
	if val.Kind() != reflect.Ptr {
		return errors.New("leptjson: destination is not a pointer")
	}
	if val.IsNil() {
		return errors.New("leptjson: destination pointer is nil")
	}

	return setValueReflect(val.Elem(), src)
}

// setValueReflect sets dst from src using reflection.
func setValueReflect(dst reflect.Value, src *Value) error {
	if dst.Type() == valueType {
		dst.Set(reflect.ValueOf(*src))
		return nil
	}

	if src.IsNull() {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}

	switch dst.Kind() {
	case reflect.Interface:
		s := reflect.ValueOf(src.Interface())
		if !s.Type().AssignableTo(dst.Type()) {
			return fmt.Errorf("leptjson: cannot unmarshal %s into %s", src.Type(), dst.Type())
		}
		dst.Set(s)
		return nil
	case reflect.Ptr:
		return setPtr(dst, src)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return setInt(dst, src)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return setUint(dst, src)
	case reflect.Float32, reflect.Float64:
		return setFloat(dst, src)
	case reflect.Bool:
		return setBool(dst, src)
	default:
		return fmt.Errorf("leptjson: cannot unmarshal %s into %s", src.Type(), dst.Type())
	}
}

// setPtr unmarshals into a pointer, allocating its target.
func setPtr(dst reflect.Value, src *Value) error {
	newPtr := reflect.New(dst.Type().Elem())
	if err := setValueReflect(newPtr.Elem(), src); err != nil {
		return err
	}

	dst.Set(newPtr)
	return nil
}

// setInt stores a whole number into a signed integer.
func setInt(dst reflect.Value, src *Value) error {
	if src.Type() != TypeNumber {
		return fmt.Errorf("leptjson: cannot unmarshal %s into %s", src.Type(), dst.Type())
	}

	f := src.Number()
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return fmt.Errorf("leptjson: cannot unmarshal number %g into integer type", f)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return fmt.Errorf("leptjson: value %g overflows %s", f, dst.Type())
	}

	intVal := int64(f)
	if dst.OverflowInt(intVal) {
		return fmt.Errorf("leptjson: value %g overflows %s", f, dst.Type())
	}
	dst.SetInt(intVal)
	return nil
}

// setUint stores a non-negative whole number into an unsigned integer.
func setUint(dst reflect.Value, src *Value) error {
	if src.Type() != TypeNumber {
		return fmt.Errorf("leptjson: cannot unmarshal %s into %s", src.Type(), dst.Type())
	}

	f := src.Number()
	if f < 0 {
		return fmt.Errorf("leptjson: cannot unmarshal negative value %g into unsigned integer", f)
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return fmt.Errorf("leptjson: cannot unmarshal number %g into integer type", f)
	}
	if f >= math.MaxUint64 {
		return fmt.Errorf("leptjson: value %g overflows %s", f, dst.Type())
	}

	uintVal := uint64(f)
	if dst.OverflowUint(uintVal) {
		return fmt.Errorf("leptjson: value %g overflows %s", f, dst.Type())
	}
	dst.SetUint(uintVal)
	return nil
}

// setFloat stores a number into a float.
func setFloat(dst reflect.Value, src *Value) error {
	if src.Type() != TypeNumber {
		return fmt.Errorf("leptjson: cannot unmarshal %s into %s", src.Type(), dst.Type())
	}

	f := src.Number()
	if !math.IsInf(f, 0) && dst.OverflowFloat(f) {
		return fmt.Errorf("leptjson: value %g overflows %s", f, dst.Type())
	}
	dst.SetFloat(f)
	return nil
}

// setBool stores true or false into a bool.
func setBool(dst reflect.Value, src *Value) error {
	switch src.Type() {
	case TypeTrue, TypeFalse:
		dst.SetBool(src.Bool())
		return nil
	default:
		return fmt.Errorf("leptjson: cannot unmarshal %s into bool", src.Type())
	}
}

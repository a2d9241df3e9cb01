package leptjson

import (
	"errors"
	"fmt"
)

// ErrorCode classifies the outcome of a parse.
type ErrorCode int

const (
	OK              ErrorCode = iota // Value fully and validly parsed.
	ExpectValue                      // Input was empty or whitespace only.
	InvalidValue                     // A literal or number failed validation.
	RootNotSingular                  // Extra content follows the value.
)

// String returns the name of the code.
func (c ErrorCode) String() string {
	switch c {
	case OK:
		return "ok"
	case ExpectValue:
		return "expect value"
	case InvalidValue:
		return "invalid value"
	case RootNotSingular:
		return "root not singular"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
}

// Sentinel errors for use with errors.Is. Parse never returns these exact
// values; it returns a *SyntaxError carrying the offset, which matches the
// sentinel with the same code.
var (
	ErrExpectValue     = &SyntaxError{Code: ExpectValue, Offset: -1}
	ErrInvalidValue    = &SyntaxError{Code: InvalidValue, Offset: -1}
	ErrRootNotSingular = &SyntaxError{Code: RootNotSingular, Offset: -1}
)

// SyntaxError describes why input could not be parsed.
type SyntaxError struct {
	Code   ErrorCode
	Offset int // Byte offset of the violation, or -1 if unknown.
}

func (e *SyntaxError) Error() string {
	if e.Offset < 0 {
		return "leptjson: " + e.Code.String()
	}
	return fmt.Sprintf("leptjson: %s at offset %d", e.Code, e.Offset)
}

// Is reports whether target is a *SyntaxError with the same code.
func (e *SyntaxError) Is(target error) bool {
	t, ok := target.(*SyntaxError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// CodeOf maps err back to an ErrorCode. A nil error is OK; errors that do
// not come from the parser are reported as InvalidValue.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return OK
	}

	var se *SyntaxError
	if errors.As(err, &se) {
		return se.Code
	}
	return InvalidValue
}

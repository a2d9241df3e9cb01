package leptjson

import "fmt"

// Type identifies which variant a Value holds.
type Type int

const (
	TypeNull Type = iota
	TypeFalse
	TypeTrue
	TypeNumber
)

// String returns a human-readable name for the type.
func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeFalse:
		return "false"
	case TypeTrue:
		return "true"
	case TypeNumber:
		return "number"
	default:
		return fmt.Sprintf("Unknown(%d)", int(t))
	}
}

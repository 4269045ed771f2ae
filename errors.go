package utctime

import (
	"fmt"

	"github.com/go-faster/errors"
)

// Field identifies the DateTime component an Error refers to.
type Field uint8

const (
	// FieldLayout marks text that does not match the canonical layout at
	// all, as opposed to a well-formed string naming an impossible instant.
	FieldLayout Field = iota
	FieldYear
	FieldMonth
	FieldDay
	FieldHour
	FieldMinute
	FieldSecond
)

func (f Field) String() string {
	switch f {
	case FieldLayout:
		return "layout"
	case FieldYear:
		return "year"
	case FieldMonth:
		return "month"
	case FieldDay:
		return "day"
	case FieldHour:
		return "hour"
	case FieldMinute:
		return "minute"
	case FieldSecond:
		return "second"
	default:
		return fmt.Sprintf("Field(%d)", uint8(f))
	}
}

// Error is an illegal time: a rejected calendar component, text that does
// not match the canonical layout, or a timestamp that overflows 32 bits.
// It is the single error type of the package.
type Error struct {
	Field Field
	Msg   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("illegal time: %s", e.Msg)
}

// AsError finds the first *Error in the err chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return nil, false
	}
	return e, true
}

func illegalf(f Field, format string, a ...interface{}) *Error {
	return &Error{Field: f, Msg: fmt.Sprintf(format, a...)}
}

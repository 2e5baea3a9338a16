package conv

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

var (
	// ErrUnsupportedConversion is reported when the (source, target) category pair is never convertible
	ErrUnsupportedConversion = errors.New("unsupported conversion")
	// ErrValueOutOfRange is reported when a convertible value cannot be represented by the target
	ErrValueOutOfRange = errors.New("value out of range")
	// ErrMalformedInput is reported when a string does not parse with the target grammar
	ErrMalformedInput = errors.New("malformed input")
	// ErrNullValue is reported when a null value targets a non nullable type
	ErrNullValue = errors.New("null value")
)

// Error represents conversion error
type Error struct {
	//Reason is one of ErrUnsupportedConversion, ErrValueOutOfRange, ErrMalformedInput, ErrNullValue
	Reason error
	Value  interface{}
	Source *Category
	Target reflect.Type
	cause  error
}

func (e *Error) Error() string {
	source := "null"
	if e.Source != nil && e.Source != nullCategory {
		source = e.Source.String()
	}
	msg := fmt.Sprintf("failed to convert %v [%v] to %v: %v", e.value(), source, e.Target, e.Reason)
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

func (e *Error) value() string {
	if e.Value == nil {
		return "<nil>"
	}
	text := fmt.Sprintf("%v", e.Value)
	if len(text) > 64 {
		text = text[:61] + "..."
	}
	return text
}

// Is matches error reason
func (e *Error) Is(target error) bool {
	return target == e.Reason
}

// Unwrap returns underlying cause
func (e *Error) Unwrap() error {
	return e.cause
}

// Cause returns underlying cause
func (e *Error) Cause() error {
	return e.cause
}

func unsupported() *Error {
	return &Error{Reason: ErrUnsupportedConversion}
}

func outOfRange(cause error) *Error {
	return &Error{Reason: ErrValueOutOfRange, cause: cause}
}

func malformed(cause error) *Error {
	return &Error{Reason: ErrMalformedInput, cause: cause}
}

func outOfRangef(format string, args ...interface{}) *Error {
	return outOfRange(errors.Errorf(format, args...))
}

func malformedf(format string, args ...interface{}) *Error {
	return malformed(errors.Errorf(format, args...))
}

// asError decorates err with conversion context
func asError(err error, src interface{}, source *Category, target reflect.Type) *Error {
	var ret *Error
	if !errors.As(err, &ret) {
		ret = &Error{Reason: ErrMalformedInput, cause: err}
		for _, reason := range []error{ErrUnsupportedConversion, ErrValueOutOfRange, ErrNullValue} {
			if errors.Is(err, reason) {
				ret.Reason = reason
				break
			}
		}
	}
	if ret.Target == nil {
		ret.Value = src
		ret.Source = source
		ret.Target = target
	}
	return ret
}

package column

import (
	"errors"
	"fmt"

	"github.com/hupe1980/colstore/model"
)

var (
	// ErrConversion matches every *ConversionError.
	ErrConversion = errors.New("conversion failed")
	// ErrOverflow matches every *OverflowError.
	ErrOverflow = errors.New("overflow")
	// ErrUnsupportedAggregate matches every *UnsupportedAggregateError.
	ErrUnsupportedAggregate = errors.New("unsupported aggregate")
	// ErrUnknownType is returned when no storage exists for a type.
	ErrUnknownType = errors.New("unknown column type")
	// ErrInvalidCapacity is returned when a capacity cannot be addressed by the null bitmap.
	ErrInvalidCapacity = errors.New("invalid capacity")
	// ErrBufferType is returned when an external buffer does not match the native type.
	ErrBufferType = errors.New("buffer type mismatch")
)

// ConversionError indicates that a value is not representable in a column's native type.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ConversionError struct {
	Type  model.Type
	Input string
	cause error
}

func (e *ConversionError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("cannot convert %s to %s: %v", e.Input, e.Type, e.cause)
	}
	return fmt.Sprintf("cannot convert %s to %s", e.Input, e.Type)
}

func (e *ConversionError) Unwrap() error { return e.cause }

// Is reports whether target is ErrConversion.
func (e *ConversionError) Is(target error) bool { return target == ErrConversion }

// OverflowError indicates that an aggregate exceeded the range of its accumulator
// or of the column's native type.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type OverflowError struct {
	Type  model.Type
	Kind  model.AggregateKind
	cause error
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s over %s column: value was either too large or too small for %s", e.Kind, e.Type, e.Type)
}

func (e *OverflowError) Unwrap() error { return e.cause }

// Is reports whether target is ErrOverflow.
func (e *OverflowError) Is(target error) bool { return target == ErrOverflow }

// UnsupportedAggregateError indicates an aggregate kind that is not defined for a column type.
type UnsupportedAggregateError struct {
	Type model.Type
	Kind model.AggregateKind
}

func (e *UnsupportedAggregateError) Error() string {
	return fmt.Sprintf("aggregate %s is not supported for %s columns", e.Kind, e.Type)
}

// Is reports whether target is ErrUnsupportedAggregate.
func (e *UnsupportedAggregateError) Is(target error) bool { return target == ErrUnsupportedAggregate }

func conversionError(t model.Type, v model.Value, cause error) error {
	input := v.Kind().String() + " " + v.String()
	if v.Kind() == model.TypeString {
		input = fmt.Sprintf("String %q", v.String())
	}
	return &ConversionError{Type: t, Input: input, cause: cause}
}

func textError(t model.Type, s string, cause error) error {
	return &ConversionError{Type: t, Input: fmt.Sprintf("text %q", s), cause: cause}
}

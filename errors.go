package colstore

import (
	"github.com/hupe1980/colstore/column"
	"github.com/hupe1980/colstore/snapshot"
)

var (
	// ErrConversion matches every *ConversionError.
	ErrConversion = column.ErrConversion
	// ErrOverflow matches every *OverflowError.
	ErrOverflow = column.ErrOverflow
	// ErrUnsupportedAggregate matches every *UnsupportedAggregateError.
	ErrUnsupportedAggregate = column.ErrUnsupportedAggregate
	// ErrUnknownType is returned when no storage exists for a type.
	ErrUnknownType = column.ErrUnknownType
	// ErrInvalidCapacity is returned for a negative or unaddressable capacity.
	ErrInvalidCapacity = column.ErrInvalidCapacity
	// ErrBufferType is returned when an external buffer does not match the native type.
	ErrBufferType = column.ErrBufferType
	// ErrInvalidSnapshot is returned when restoring from malformed bytes.
	ErrInvalidSnapshot = snapshot.ErrInvalidSnapshot
)

type (
	// ConversionError indicates that a value is not representable in a column's native type.
	ConversionError = column.ConversionError
	// OverflowError indicates that an aggregate exceeded its accumulator or native range.
	OverflowError = column.OverflowError
	// UnsupportedAggregateError indicates an aggregate kind not defined for a column type.
	UnsupportedAggregateError = column.UnsupportedAggregateError
)

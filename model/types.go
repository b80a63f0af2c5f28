package model

import (
	"fmt"
	"strings"
)

// Type identifies the native primitive type of a column storage or a Value.
//
// NOTE: Type values are written into snapshot headers; keep them stable.
type Type uint8

const (
	// TypeNull is the kind of the null sentinel. It is never a column type.
	TypeNull Type = iota
	// TypeBool is a boolean column.
	TypeBool
	// TypeInt8 is a signed 8-bit integer column.
	TypeInt8
	// TypeInt16 is a signed 16-bit integer column.
	TypeInt16
	// TypeInt32 is a signed 32-bit integer column.
	TypeInt32
	// TypeInt64 is a signed 64-bit integer column.
	TypeInt64
	// TypeUint8 is an unsigned 8-bit integer column.
	TypeUint8
	// TypeUint16 is an unsigned 16-bit integer column.
	TypeUint16
	// TypeUint32 is an unsigned 32-bit integer column.
	TypeUint32
	// TypeUint64 is an unsigned 64-bit integer column.
	TypeUint64
	// TypeFloat32 is a single precision floating point column.
	TypeFloat32
	// TypeFloat64 is a double precision floating point column.
	TypeFloat64
	// TypeDecimal is a fixed-point decimal column (19 significant digits).
	TypeDecimal
	// TypeString is a string column.
	TypeString
	// TypeTime is a date-time column.
	TypeTime
	// TypeDuration is a time span column.
	TypeDuration
)

var typeNames = [...]string{
	TypeNull:     "Null",
	TypeBool:     "Bool",
	TypeInt8:     "Int8",
	TypeInt16:    "Int16",
	TypeInt32:    "Int32",
	TypeInt64:    "Int64",
	TypeUint8:    "Uint8",
	TypeUint16:   "Uint16",
	TypeUint32:   "Uint32",
	TypeUint64:   "Uint64",
	TypeFloat32:  "Float32",
	TypeFloat64:  "Float64",
	TypeDecimal:  "Decimal",
	TypeString:   "String",
	TypeTime:     "Time",
	TypeDuration: "Duration",
}

// String returns the string representation of the Type.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Unknown"
}

// Valid reports whether t names a column type (any known type except TypeNull).
func (t Type) Valid() bool {
	return t > TypeNull && int(t) < len(typeNames)
}

// IsSigned reports whether t is a signed integer type.
func (t Type) IsSigned() bool {
	return t >= TypeInt8 && t <= TypeInt64
}

// IsUnsigned reports whether t is an unsigned integer type.
func (t Type) IsUnsigned() bool {
	return t >= TypeUint8 && t <= TypeUint64
}

// IsInteger reports whether t is a signed or unsigned integer type.
func (t Type) IsInteger() bool {
	return t.IsSigned() || t.IsUnsigned()
}

// IsFloat reports whether t is a floating point type.
func (t Type) IsFloat() bool {
	return t == TypeFloat32 || t == TypeFloat64
}

// IsNumeric reports whether t is an integer, floating point or decimal type.
func (t Type) IsNumeric() bool {
	return t.IsInteger() || t.IsFloat() || t == TypeDecimal
}

// ParseType resolves a type by its case-insensitive name.
// A few common aliases are accepted (e.g. "double", "ushort", "timespan").
func ParseType(name string) (Type, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i := TypeBool; int(i) < len(typeNames); i++ {
		if strings.ToLower(typeNames[i]) == n {
			return i, nil
		}
	}
	switch n {
	case "boolean":
		return TypeBool, nil
	case "sbyte":
		return TypeInt8, nil
	case "short":
		return TypeInt16, nil
	case "int":
		return TypeInt32, nil
	case "long":
		return TypeInt64, nil
	case "byte":
		return TypeUint8, nil
	case "ushort":
		return TypeUint16, nil
	case "uint":
		return TypeUint32, nil
	case "ulong":
		return TypeUint64, nil
	case "single", "float":
		return TypeFloat32, nil
	case "double":
		return TypeFloat64, nil
	case "datetime":
		return TypeTime, nil
	case "timespan":
		return TypeDuration, nil
	}
	return TypeNull, fmt.Errorf("unknown type %q", name)
}

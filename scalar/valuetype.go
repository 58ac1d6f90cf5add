package scalar

import (
	"fmt"
	"strings"
)

// ValueType is the closed set of kinds a Value can hold.
// The zero ValueType is invalid.
type ValueType uint8

const (
	_ ValueType = iota
	TypeChar
	TypeString
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt64
	TypeInt128
	TypeUInt8
	TypeUInt16
	TypeUInt32
	TypeUInt64
	TypeUInt128
	TypeFloat32
	TypeFloat64
	TypeBool
	TypeDecimal
	TypeNaiveDate
	TypeNaiveDateTime
	TypeDateTime

	numValueTypes = int(TypeDateTime)
)

// ValueTypes returns all valid kinds in declaration order.
func ValueTypes() []ValueType {
	types := make([]ValueType, 0, numValueTypes)
	for t := TypeChar; t <= TypeDateTime; t++ {
		types = append(types, t)
	}
	return types
}

// Valid reports whether t is one of the 19 kinds.
func (t ValueType) Valid() bool {
	return t >= TypeChar && t <= TypeDateTime
}

// IsSignedInt reports whether t is Int8, Int16, Int32, Int64 or Int128.
func (t ValueType) IsSignedInt() bool {
	return t >= TypeInt8 && t <= TypeInt128
}

// IsUnsignedInt reports whether t is UInt8, UInt16, UInt32, UInt64 or UInt128.
func (t ValueType) IsUnsignedInt() bool {
	return t >= TypeUInt8 && t <= TypeUInt128
}

// IsInt reports whether t is a signed or unsigned integer kind.
func (t ValueType) IsInt() bool {
	return t.IsSignedInt() || t.IsUnsignedInt()
}

// IsFloat reports whether t is Float32 or Float64.
func (t ValueType) IsFloat() bool {
	return t == TypeFloat32 || t == TypeFloat64
}

// IsDate reports whether t is NaiveDate, NaiveDateTime or DateTime.
func (t ValueType) IsDate() bool {
	return t == TypeNaiveDate || t == TypeNaiveDateTime || t == TypeDateTime
}

// IsNumeric reports whether t is an integer, float or decimal kind.
func (t ValueType) IsNumeric() bool {
	return t.IsInt() || t.IsFloat() || t == TypeDecimal
}

// Bits returns the width of integer and float kinds and 0 for everything else.
func (t ValueType) Bits() int {
	switch t {
	case TypeInt8, TypeUInt8:
		return 8
	case TypeInt16, TypeUInt16:
		return 16
	case TypeInt32, TypeUInt32, TypeFloat32:
		return 32
	case TypeInt64, TypeUInt64, TypeFloat64:
		return 64
	case TypeInt128, TypeUInt128:
		return 128
	default:
		return 0
	}
}

// ParseValueType resolves a kind name such as "UInt16" or "naivedate".
// Matching ignores case and underscores.
func ParseValueType(name string) (ValueType, error) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", ""))
	if t, ok := valueTypesByName[key]; ok {
		return t, nil
	}
	return 0, &GenericError{Msg: fmt.Sprintf("unknown value type %q", name)}
}

// TypeOf derives the kind of v. A nil v has no kind and yields a generic error.
func TypeOf(v Value) (ValueType, error) {
	if v == nil {
		return 0, errNoValue("type of")
	}
	return v.Type(), nil
}

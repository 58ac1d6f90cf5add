package scalar

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"time"

	"github.com/cockroachdb/apd/v3"
)

// Value is a scalar of exactly one ValueType.
//
// The set of implementations is closed: Char, String, Int8, Int16, Int32, Int64,
// Int128, UInt8, UInt16, UInt32, UInt64, UInt128, Float32, Float64, Bool, Decimal,
// NaiveDate, NaiveDateTime and DateTime. The absence of a value is expressed as
// mo.None[Value]() by the parsing and conversion functions.
type Value interface {
	Type() ValueType
	// String returns the canonical rendering, which the default parser accepts again.
	String() string
	Equal(other Value) bool
	isValue()
}

type (
	Char    rune
	String  string
	Int8    int8
	Int16   int16
	Int32   int32
	Int64   int64
	UInt8   uint8
	UInt16  uint16
	UInt32  uint32
	UInt64  uint64
	Float32 float32
	Float64 float64
	Bool    bool
)

func (Char) Type() ValueType    { return TypeChar }
func (String) Type() ValueType  { return TypeString }
func (Int8) Type() ValueType    { return TypeInt8 }
func (Int16) Type() ValueType   { return TypeInt16 }
func (Int32) Type() ValueType   { return TypeInt32 }
func (Int64) Type() ValueType   { return TypeInt64 }
func (UInt8) Type() ValueType   { return TypeUInt8 }
func (UInt16) Type() ValueType  { return TypeUInt16 }
func (UInt32) Type() ValueType  { return TypeUInt32 }
func (UInt64) Type() ValueType  { return TypeUInt64 }
func (Float32) Type() ValueType { return TypeFloat32 }
func (Float64) Type() ValueType { return TypeFloat64 }
func (Bool) Type() ValueType    { return TypeBool }

func (c Char) String() string    { return string(c) }
func (s String) String() string  { return string(s) }
func (i Int8) String() string    { return strconv.FormatInt(int64(i), 10) }
func (i Int16) String() string   { return strconv.FormatInt(int64(i), 10) }
func (i Int32) String() string   { return strconv.FormatInt(int64(i), 10) }
func (i Int64) String() string   { return strconv.FormatInt(int64(i), 10) }
func (u UInt8) String() string   { return strconv.FormatUint(uint64(u), 10) }
func (u UInt16) String() string  { return strconv.FormatUint(uint64(u), 10) }
func (u UInt32) String() string  { return strconv.FormatUint(uint64(u), 10) }
func (u UInt64) String() string  { return strconv.FormatUint(uint64(u), 10) }
func (f Float32) String() string { return strconv.FormatFloat(float64(f), 'f', -1, 32) }
func (f Float64) String() string { return strconv.FormatFloat(float64(f), 'f', -1, 64) }
func (b Bool) String() string    { return strconv.FormatBool(bool(b)) }

func (c Char) Equal(o Value) bool   { return equalComparable(c, o) }
func (s String) Equal(o Value) bool { return equalComparable(s, o) }
func (i Int8) Equal(o Value) bool   { return equalComparable(i, o) }
func (i Int16) Equal(o Value) bool  { return equalComparable(i, o) }
func (i Int32) Equal(o Value) bool  { return equalComparable(i, o) }
func (i Int64) Equal(o Value) bool  { return equalComparable(i, o) }
func (u UInt8) Equal(o Value) bool  { return equalComparable(u, o) }
func (u UInt16) Equal(o Value) bool { return equalComparable(u, o) }
func (u UInt32) Equal(o Value) bool { return equalComparable(u, o) }
func (u UInt64) Equal(o Value) bool { return equalComparable(u, o) }
func (b Bool) Equal(o Value) bool   { return equalComparable(b, o) }

// Equal treats NaN as equal to NaN so that every value equals itself.
func (f Float32) Equal(o Value) bool {
	g, ok := o.(Float32)
	return ok && (f == g || (f != f && g != g))
}

// Equal treats NaN as equal to NaN so that every value equals itself.
func (f Float64) Equal(o Value) bool {
	g, ok := o.(Float64)
	return ok && (f == g || (f != f && g != g))
}

func equalComparable[T interface {
	Value
	comparable
}](v T, o Value) bool {
	w, ok := o.(T)
	return ok && v == w
}

func (Char) isValue()    {}
func (String) isValue()  {}
func (Int8) isValue()    {}
func (Int16) isValue()   {}
func (Int32) isValue()   {}
func (Int64) isValue()   {}
func (UInt8) isValue()   {}
func (UInt16) isValue()  {}
func (UInt32) isValue()  {}
func (UInt64) isValue()  {}
func (Float32) isValue() {}
func (Float64) isValue() {}
func (Bool) isValue()    {}

// Default returns the canonical default of t, or nil if t is not a valid ValueType.
func Default(t ValueType) Value {
	switch t {
	case TypeChar:
		return Char(0)
	case TypeString:
		return String("")
	case TypeInt8:
		return Int8(0)
	case TypeInt16:
		return Int16(0)
	case TypeInt32:
		return Int32(0)
	case TypeInt64:
		return Int64(0)
	case TypeInt128:
		return Int128{}
	case TypeUInt8:
		return UInt8(0)
	case TypeUInt16:
		return UInt16(0)
	case TypeUInt32:
		return UInt32(0)
	case TypeUInt64:
		return UInt64(0)
	case TypeUInt128:
		return UInt128{}
	case TypeFloat32:
		return Float32(0)
	case TypeFloat64:
		return Float64(0)
	case TypeBool:
		return Bool(false)
	case TypeDecimal:
		return Decimal{}
	case TypeNaiveDate:
		return NaiveDate{t: unixEpoch}
	case TypeNaiveDateTime:
		return NaiveDateTime{t: unixEpoch}
	case TypeDateTime:
		return DateTime{t: unixEpoch}
	default:
		return nil
	}
}

// DefaultOf returns the default of the kind v holds, or nil for a nil v.
func DefaultOf(v Value) Value {
	if v == nil {
		return nil
	}
	return Default(v.Type())
}

// As unwraps v as the concrete value type T.
func As[T Value](v Value) (T, error) {
	var zero T
	if v == nil {
		return zero, errNoValue("unwrap")
	}
	t, ok := v.(T)
	if !ok {
		return zero, wrongType(v, fmt.Sprintf("%T", zero))
	}
	return t, nil
}

// ValueOf wraps a native Go value. Only natives with a single obvious kind are accepted:
// a rune is an int32 to Go, so characters must be wrapped with Char explicitly.
func ValueOf(x any) (Value, error) {
	switch x := x.(type) {
	case Value:
		return x, nil
	case string:
		return String(x), nil
	case bool:
		return Bool(x), nil
	case int8:
		return Int8(x), nil
	case int16:
		return Int16(x), nil
	case int32:
		return Int32(x), nil
	case int64:
		return Int64(x), nil
	case int:
		return Int64(x), nil
	case uint8:
		return UInt8(x), nil
	case uint16:
		return UInt16(x), nil
	case uint32:
		return UInt32(x), nil
	case uint64:
		return UInt64(x), nil
	case uint:
		return UInt64(x), nil
	case float32:
		return Float32(x), nil
	case float64:
		return Float64(x), nil
	case *apd.Decimal:
		return NewDecimal(x), nil
	case apd.Decimal:
		return NewDecimal(&x), nil
	case time.Time:
		return NewDateTime(x), nil
	default:
		return nil, &GenericError{Msg: fmt.Sprintf("no scalar value type for %T", x)}
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// big.Int constants shared by the 128-bit kinds and the conversion limits.
var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

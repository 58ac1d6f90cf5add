package scalar

import (
	"fmt"
	"math"
	"math/big"

	"github.com/samber/mo"
)

// Convert returns v as a value of type target.
//
// Conversions never round or truncate: a value that has no exact counterpart in the
// target type is rejected with a ConversionError of kind KindNotRepresentableAs.
// Every value converts to String through its canonical rendering and every value
// converts to its own type unchanged. Date kinds only convert to String and from
// non-empty String with the default parse rules.
func Convert(v Value, target ValueType) (Value, error) {
	if v == nil {
		return nil, errNoValue("convert")
	}
	if !target.Valid() {
		return nil, &GenericError{Msg: fmt.Sprintf("convert: invalid value type %d", uint8(target))}
	}
	if v.Type() == target {
		return v, nil
	}
	if target == TypeString {
		return String(v.String()), nil
	}
	if v.Type().IsDate() || target.IsDate() {
		return convertDate(v, target)
	}

	switch src := v.(type) {
	case String:
		return convertString(src, target)
	case Char:
		return convertChar(src, target)
	case Bool:
		return convertBool(src, target)
	case Float32:
		return convertFloat(src, float64(src), target)
	case Float64:
		return convertFloat(src, float64(src), target)
	case Decimal:
		return convertDecimal(src, target)
	}
	if b, ok := integerValue(v); ok {
		return convertInteger(v, b, target)
	}
	return nil, notRepresentable(v, target)
}

// ConvertOptional converts a present value and passes an absent one through.
func ConvertOptional(v mo.Option[Value], target ValueType) (mo.Option[Value], error) {
	inner, ok := v.Get()
	if !ok {
		return mo.None[Value](), nil
	}
	converted, err := Convert(inner, target)
	if err != nil {
		return mo.None[Value](), err
	}
	return mo.Some(converted), nil
}

// intLimits is the closed range of an integer kind.
type intLimits struct {
	min, max *big.Int
}

func (l intLimits) contains(b *big.Int) bool {
	return b.Cmp(l.min) >= 0 && b.Cmp(l.max) <= 0
}

func signedLimits(bits uint) intLimits {
	half := new(big.Int).Lsh(bigOne, bits-1)
	return intLimits{
		min: new(big.Int).Neg(half),
		max: new(big.Int).Sub(half, bigOne),
	}
}

func unsignedLimits(bits uint) intLimits {
	return intLimits{
		min: bigZero,
		max: new(big.Int).Sub(new(big.Int).Lsh(bigOne, bits), bigOne),
	}
}

var integerLimits = map[ValueType]intLimits{
	TypeInt8:    signedLimits(8),
	TypeInt16:   signedLimits(16),
	TypeInt32:   signedLimits(32),
	TypeInt64:   signedLimits(64),
	TypeInt128:  signedLimits(128),
	TypeUInt8:   unsignedLimits(8),
	TypeUInt16:  unsignedLimits(16),
	TypeUInt32:  unsignedLimits(32),
	TypeUInt64:  unsignedLimits(64),
	TypeUInt128: unsignedLimits(128),
}

type nativeInt interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// narrow converts b, which must already be inside the range of T.
func narrow[T nativeInt](b *big.Int) T {
	if b.Sign() < 0 {
		return T(b.Int64())
	}
	return T(b.Uint64())
}

// integerValue returns a fresh copy of the value held by an integer kind.
func integerValue(v Value) (*big.Int, bool) {
	switch v := v.(type) {
	case Int8:
		return big.NewInt(int64(v)), true
	case Int16:
		return big.NewInt(int64(v)), true
	case Int32:
		return big.NewInt(int64(v)), true
	case Int64:
		return big.NewInt(int64(v)), true
	case Int128:
		return v.BigInt(), true
	case UInt8:
		return new(big.Int).SetUint64(uint64(v)), true
	case UInt16:
		return new(big.Int).SetUint64(uint64(v)), true
	case UInt32:
		return new(big.Int).SetUint64(uint64(v)), true
	case UInt64:
		return new(big.Int).SetUint64(uint64(v)), true
	case UInt128:
		return v.BigInt(), true
	}
	return nil, false
}

// integerOf builds the integer kind target from b. b is owned by the result.
func integerOf(src Value, b *big.Int, target ValueType) (Value, error) {
	if !integerLimits[target].contains(b) {
		return nil, notRepresentableBecause(src, target, "out of range")
	}
	switch target {
	case TypeInt8:
		return narrow[Int8](b), nil
	case TypeInt16:
		return narrow[Int16](b), nil
	case TypeInt32:
		return narrow[Int32](b), nil
	case TypeInt64:
		return narrow[Int64](b), nil
	case TypeInt128:
		return Int128{v: b}, nil
	case TypeUInt8:
		return narrow[UInt8](b), nil
	case TypeUInt16:
		return narrow[UInt16](b), nil
	case TypeUInt32:
		return narrow[UInt32](b), nil
	case TypeUInt64:
		return narrow[UInt64](b), nil
	case TypeUInt128:
		return UInt128{v: b}, nil
	}
	return nil, notRepresentable(src, target)
}

// boolOf maps 0 and 1 to false and true.
func boolOf(src Value, b *big.Int, target ValueType) (Value, error) {
	switch {
	case b.Sign() == 0:
		return Bool(false), nil
	case b.Cmp(bigOne) == 0:
		return Bool(true), nil
	}
	return nil, notRepresentableBecause(src, target, "only 0 and 1 map to a boolean")
}

// digitOf maps 0 to 9 to the characters '0' to '9'.
func digitOf(src Value, b *big.Int, target ValueType) (Value, error) {
	if b.Sign() < 0 || b.Cmp(big.NewInt(9)) > 0 {
		return nil, notRepresentableBecause(src, target, "not a single decimal digit")
	}
	return Char('0' + rune(b.Int64())), nil
}

// floatOf succeeds if b is exactly representable in the float kind target.
func floatOf(src Value, b *big.Int, target ValueType) (Value, error) {
	f := new(big.Float).SetInt(b)
	if target == TypeFloat32 {
		if x, acc := f.Float32(); acc == big.Exact {
			return Float32(x), nil
		}
	} else {
		if x, acc := f.Float64(); acc == big.Exact {
			return Float64(x), nil
		}
	}
	return nil, notRepresentableBecause(src, target, "precision loss")
}

func convertInteger(src Value, b *big.Int, target ValueType) (Value, error) {
	switch {
	case target.IsInt():
		return integerOf(src, b, target)
	case target.IsFloat():
		return floatOf(src, b, target)
	case target == TypeDecimal:
		return DecimalFromBig(b), nil
	case target == TypeBool:
		return boolOf(src, b, target)
	case target == TypeChar:
		return digitOf(src, b, target)
	}
	return nil, notRepresentable(src, target)
}

func convertFloat(src Value, f float64, target ValueType) (Value, error) {
	switch {
	case target.IsInt(), target == TypeBool:
		if !isFinite(f) || f != math.Trunc(f) {
			return nil, notRepresentableBecause(src, target, "not an integral number")
		}
		b, _ := new(big.Float).SetFloat64(f).Int(nil)
		if target == TypeBool {
			return boolOf(src, b, target)
		}
		return integerOf(src, b, target)
	case target == TypeFloat32:
		g := float32(f)
		if isFinite(f) && float64(g) != f {
			return nil, notRepresentableBecause(src, target, "precision loss")
		}
		return Float32(g), nil
	case target == TypeFloat64:
		return Float64(f), nil
	case target == TypeDecimal:
		if !isFinite(f) {
			return nil, notRepresentableBecause(src, target, errNotFinite.Error())
		}
		d, err := decimalFromFloat(f, src.Type().Bits(), src.Type())
		if err != nil {
			return nil, notRepresentable(src, target)
		}
		return d, nil
	}
	return nil, notRepresentable(src, target)
}

func convertDecimal(src Decimal, target ValueType) (Value, error) {
	if !target.IsInt() && target != TypeBool {
		return nil, notRepresentable(src, target)
	}
	b, ok := decimalInteger(src.ref())
	if !ok {
		return nil, notRepresentableBecause(src, target, "not an integral number in range")
	}
	if target == TypeBool {
		return boolOf(src, b, target)
	}
	return integerOf(src, b, target)
}

func convertChar(src Char, target ValueType) (Value, error) {
	if src < '0' || src > '9' {
		return nil, notRepresentableBecause(src, target, "not a decimal digit")
	}
	digit := int64(src - '0')
	switch {
	case target.IsInt():
		return integerOf(src, big.NewInt(digit), target)
	case target == TypeDecimal:
		return DecimalFromInt64(digit), nil
	}
	return nil, notRepresentable(src, target)
}

func convertBool(src Bool, target ValueType) (Value, error) {
	var i int64
	if src {
		i = 1
	}
	switch {
	case target.IsInt():
		return integerOf(src, big.NewInt(i), target)
	case target == TypeDecimal:
		return DecimalFromInt64(i), nil
	}
	return nil, notRepresentable(src, target)
}

func convertString(src String, target ValueType) (Value, error) {
	if src == "" {
		return nil, notRepresentableBecause(src, target, "empty string")
	}
	v, err := parseDefault(string(src), target)
	if err != nil {
		return nil, notRepresentableBecause(src, target, err.Error())
	}
	return v, nil
}

func convertDate(src Value, target ValueType) (Value, error) {
	if s, ok := src.(String); ok && target.IsDate() {
		return convertString(s, target)
	}
	return nil, notRepresentable(src, target)
}

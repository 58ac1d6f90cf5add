package scalar

import (
	"fmt"
	"math/big"
)

// Int128 is a signed 128-bit integer. The zero value is 0.
type Int128 struct {
	v *big.Int
}

// NewInt128 returns b as an Int128 and fails if b is outside the 128-bit signed range.
// b is copied.
func NewInt128(b *big.Int) (Int128, error) {
	if b == nil {
		return Int128{}, nil
	}
	if !integerLimits[TypeInt128].contains(b) {
		return Int128{}, fmt.Errorf("%s overflows Int128: %w", b, ErrNotRepresentable)
	}
	return Int128{v: new(big.Int).Set(b)}, nil
}

// Int128From returns i as an Int128.
func Int128From(i int64) Int128 {
	return Int128{v: big.NewInt(i)}
}

// BigInt returns a copy of the value.
func (i Int128) BigInt() *big.Int {
	if i.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(i.v)
}

func (Int128) Type() ValueType { return TypeInt128 }

func (i Int128) String() string { return i.ref().String() }

func (i Int128) Equal(o Value) bool {
	j, ok := o.(Int128)
	return ok && i.ref().Cmp(j.ref()) == 0
}

func (Int128) isValue() {}

func (i Int128) ref() *big.Int {
	if i.v == nil {
		return bigZero
	}
	return i.v
}

// UInt128 is an unsigned 128-bit integer. The zero value is 0.
type UInt128 struct {
	v *big.Int
}

// NewUInt128 returns b as a UInt128 and fails if b is negative or exceeds 2^128-1.
// b is copied.
func NewUInt128(b *big.Int) (UInt128, error) {
	if b == nil {
		return UInt128{}, nil
	}
	if !integerLimits[TypeUInt128].contains(b) {
		return UInt128{}, fmt.Errorf("%s overflows UInt128: %w", b, ErrNotRepresentable)
	}
	return UInt128{v: new(big.Int).Set(b)}, nil
}

// UInt128From returns u as a UInt128.
func UInt128From(u uint64) UInt128 {
	return UInt128{v: new(big.Int).SetUint64(u)}
}

// BigInt returns a copy of the value.
func (u UInt128) BigInt() *big.Int {
	if u.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(u.v)
}

func (UInt128) Type() ValueType { return TypeUInt128 }

func (u UInt128) String() string { return u.ref().String() }

func (u UInt128) Equal(o Value) bool {
	w, ok := o.(UInt128)
	return ok && u.ref().Cmp(w.ref()) == 0
}

func (UInt128) isValue() {}

func (u UInt128) ref() *big.Int {
	if u.v == nil {
		return bigZero
	}
	return u.v
}

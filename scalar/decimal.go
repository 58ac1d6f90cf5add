package scalar

import (
	"math/big"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Decimal is an exact, arbitrary precision decimal number. The zero value is 0.
type Decimal struct {
	v *apd.Decimal
}

// NewDecimal returns d as a Decimal. d is copied, a nil d yields 0.
func NewDecimal(d *apd.Decimal) Decimal {
	if d == nil {
		return Decimal{}
	}
	return Decimal{v: new(apd.Decimal).Set(d)}
}

// Apd returns a copy of the value.
func (d Decimal) Apd() *apd.Decimal {
	return new(apd.Decimal).Set(d.ref())
}

func (Decimal) Type() ValueType { return TypeDecimal }

func (d Decimal) String() string { return d.ref().Text('f') }

// Equal compares numerically, so 1.0 equals 1.00.
func (d Decimal) Equal(o Value) bool {
	e, ok := o.(Decimal)
	if !ok {
		return false
	}
	a, b := d.ref(), e.ref()
	if a.Form != apd.Finite || b.Form != apd.Finite {
		return a.Form == b.Form && a.Negative == b.Negative
	}
	return a.Cmp(b) == 0
}

func (Decimal) isValue() {}

func (d Decimal) ref() *apd.Decimal {
	if d.v == nil {
		return &apd.Decimal{}
	}
	return d.v
}

// DecimalFromInt64 returns i as a Decimal with exponent 0.
func DecimalFromInt64(i int64) Decimal {
	return Decimal{v: apd.New(i, 0)}
}

// DecimalFromUint64 returns u as a Decimal with exponent 0.
func DecimalFromUint64(u uint64) Decimal {
	return DecimalFromBig(new(big.Int).SetUint64(u))
}

// DecimalFromBig returns b as a Decimal. b is copied.
func DecimalFromBig(b *big.Int) Decimal {
	if b == nil {
		return Decimal{}
	}
	return Decimal{v: apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(b), 0)}
}

// DecimalFromFloat32 returns the shortest decimal that reads back as f.
// NaN and infinities have no decimal form.
func DecimalFromFloat32(f float32) (Decimal, error) {
	return decimalFromFloat(float64(f), 32, TypeFloat32)
}

// DecimalFromFloat64 returns the shortest decimal that reads back as f.
// NaN and infinities have no decimal form.
func DecimalFromFloat64(f float64) (Decimal, error) {
	return decimalFromFloat(f, 64, TypeFloat64)
}

func decimalFromFloat(f float64, bitSize int, source ValueType) (Decimal, error) {
	text := strconv.FormatFloat(f, 'g', -1, bitSize)
	if !isFinite(f) {
		return Decimal{}, notRepresentableAsDecimal(source.String(), text)
	}
	d, _, err := apd.NewFromString(text)
	if err != nil {
		return Decimal{}, notRepresentableAsDecimal(source.String(), text)
	}
	return Decimal{v: d}, nil
}

// parseDecimal parses text exactly. Non-finite forms such as "NaN" or "Infinity" are
// rejected.
func parseDecimal(text string) (Decimal, error) {
	d, _, err := apd.NewFromString(text)
	if err != nil {
		return Decimal{}, err
	}
	if d.Form != apd.Finite {
		return Decimal{}, errNotFinite
	}
	return Decimal{v: d}, nil
}

// decimalInteger returns the integral value of d, or false if d is not finite or has a
// nonzero fractional part.
func decimalInteger(d *apd.Decimal) (*big.Int, bool) {
	if d.Form != apd.Finite {
		return nil, false
	}
	if d.IsZero() {
		return new(big.Int), true
	}
	var integ, frac apd.Decimal
	d.Modf(&integ, &frac)
	if !frac.IsZero() {
		return nil, false
	}
	// Anything beyond 10^40 is outside every integer kind, keep big.Int work bounded.
	if int64(integ.Exponent)+integ.NumDigits() > 40 {
		return nil, false
	}
	b := integ.Coeff.MathBigInt()
	if integ.Exponent > 0 {
		scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(integ.Exponent)), nil)
		b.Mul(b, scale)
	}
	if integ.Negative {
		b.Neg(b)
	}
	return b, true
}

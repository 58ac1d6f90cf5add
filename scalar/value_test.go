package scalar_test

import (
	"errors"
	"math"
	"math/big"
	"testing"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/damedic/scalar-toolbox-go/scalar"
	"github.com/damedic/scalar-toolbox-go/testdata/assert"
	"github.com/stretchr/testify/require"
)

func mustDecimal(t *testing.T, s string) scalar.Decimal {
	t.Helper()
	d, _, err := apd.NewFromString(s)
	require.NoError(t, err)
	return scalar.NewDecimal(d)
}

func mustBig(t *testing.T, s string) *big.Int {
	t.Helper()
	b, ok := new(big.Int).SetString(s, 10)
	require.True(t, ok, s)
	return b
}

func TestDefault(t *testing.T) {
	tests := []struct {
		vt   scalar.ValueType
		want string
	}{
		{vt: scalar.TypeChar, want: "\x00"},
		{vt: scalar.TypeString, want: ""},
		{vt: scalar.TypeInt8, want: "0"},
		{vt: scalar.TypeInt16, want: "0"},
		{vt: scalar.TypeInt32, want: "0"},
		{vt: scalar.TypeInt64, want: "0"},
		{vt: scalar.TypeInt128, want: "0"},
		{vt: scalar.TypeUInt8, want: "0"},
		{vt: scalar.TypeUInt16, want: "0"},
		{vt: scalar.TypeUInt32, want: "0"},
		{vt: scalar.TypeUInt64, want: "0"},
		{vt: scalar.TypeUInt128, want: "0"},
		{vt: scalar.TypeFloat32, want: "0"},
		{vt: scalar.TypeFloat64, want: "0"},
		{vt: scalar.TypeBool, want: "false"},
		{vt: scalar.TypeDecimal, want: "0"},
		{vt: scalar.TypeNaiveDate, want: "1970-01-01"},
		{vt: scalar.TypeNaiveDateTime, want: "1970-01-01T00:00:00"},
		{vt: scalar.TypeDateTime, want: "1970-01-01T00:00:00Z"},
	}

	require.Len(t, tests, len(scalar.ValueTypes()))
	for _, tt := range tests {
		t.Run(tt.vt.String(), func(t *testing.T) {
			v := scalar.Default(tt.vt)
			require.NotNil(t, v)
			require.Equal(t, tt.vt, v.Type())
			require.Equal(t, tt.want, v.String())
			assert.ValueEqual(t, v, scalar.DefaultOf(v))
		})
	}

	require.Nil(t, scalar.Default(scalar.ValueType(0)))
	require.Nil(t, scalar.DefaultOf(nil))
}

func TestGeneratedDefaults(t *testing.T) {
	assert.ValueEqual(t, scalar.Char(0), scalar.DefaultChar())
	assert.ValueEqual(t, scalar.Int128From(0), scalar.DefaultInt128())
	assert.ValueEqual(t, scalar.DecimalFromInt64(0), scalar.DefaultDecimal())
	require.True(t, scalar.DefaultNaiveDate().Time().Equal(time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, 0, scalar.DefaultDateTime().Offset())
}

func TestAs(t *testing.T) {
	i, err := scalar.As[scalar.Int16](scalar.Int16(-3))
	require.NoError(t, err)
	require.Equal(t, scalar.Int16(-3), i)

	_, err = scalar.As[scalar.Int16](scalar.String("-3"))
	require.ErrorIs(t, err, scalar.ErrWrongType)
	var convErr *scalar.ConversionError
	require.True(t, errors.As(err, &convErr))
	require.Equal(t, scalar.KindWrongType, convErr.Kind)
	require.Equal(t, "String", convErr.SourceType)
	require.Equal(t, "scalar.Int16", convErr.Target)

	_, err = scalar.As[scalar.Int16](nil)
	require.ErrorIs(t, err, scalar.ErrGeneric)
}

func TestAsNative(t *testing.T) {
	r, err := scalar.AsChar(scalar.Char('x'))
	require.NoError(t, err)
	require.Equal(t, 'x', r)

	u, err := scalar.AsUInt64(scalar.UInt64(math.MaxUint64))
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), u)

	b, err := scalar.AsInt128(scalar.Int128From(-7))
	require.NoError(t, err)
	require.Equal(t, 0, b.Cmp(big.NewInt(-7)))

	d, err := scalar.AsDecimal(mustDecimal(t, "1.25"))
	require.NoError(t, err)
	require.Equal(t, "1.25", d.Text('f'))

	_, err = scalar.AsBool(scalar.Int8(1))
	require.ErrorIs(t, err, scalar.ErrWrongType)

	_, err = scalar.AsNaiveDate(scalar.DefaultNaiveDateTime())
	require.ErrorIs(t, err, scalar.ErrWrongType)
}

func TestValueOf(t *testing.T) {
	decimal125 := mustDecimal(t, "1.25")
	tests := []struct {
		name    string
		in      any
		want    scalar.Value
		wantErr bool
	}{
		{name: "string", in: "abc", want: scalar.String("abc")},
		{name: "bool", in: true, want: scalar.Bool(true)},
		{name: "int", in: 42, want: scalar.Int64(42)},
		{name: "int8", in: int8(-1), want: scalar.Int8(-1)},
		{name: "rune is int32", in: 'a', want: scalar.Int32('a')},
		{name: "uint", in: uint(7), want: scalar.UInt64(7)},
		{name: "uint16", in: uint16(7), want: scalar.UInt16(7)},
		{name: "float32", in: float32(0.5), want: scalar.Float32(0.5)},
		{name: "apd decimal", in: apd.New(125, -2), want: decimal125},
		{name: "value", in: scalar.Char('c'), want: scalar.Char('c')},
		{name: "unsupported", in: []byte("x"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scalar.ValueOf(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, scalar.ErrGeneric)
				return
			}
			require.NoError(t, err)
			assert.ValueEqual(t, tt.want, got)
		})
	}
}

func TestValueOfTime(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	got, err := scalar.ValueOf(time.Date(2022, 12, 31, 6, 0, 0, 0, loc))
	require.NoError(t, err)
	require.Equal(t, "2022-12-31T06:00:00+01:00", got.String())
}

func TestInt128Range(t *testing.T) {
	maxInt := mustBig(t, "170141183460469231731687303715884105727")
	v, err := scalar.NewInt128(maxInt)
	require.NoError(t, err)
	require.Equal(t, maxInt.String(), v.String())

	// the value is copied in and out
	maxInt.SetInt64(0)
	require.Equal(t, "170141183460469231731687303715884105727", v.String())
	v.BigInt().SetInt64(1)
	require.Equal(t, "170141183460469231731687303715884105727", v.String())

	_, err = scalar.NewInt128(mustBig(t, "170141183460469231731687303715884105728"))
	require.ErrorIs(t, err, scalar.ErrNotRepresentable)
	_, err = scalar.NewInt128(mustBig(t, "-170141183460469231731687303715884105729"))
	require.ErrorIs(t, err, scalar.ErrNotRepresentable)

	var zero scalar.Int128
	require.Equal(t, "0", zero.String())
	require.True(t, zero.Equal(scalar.Int128From(0)))
}

func TestUInt128Range(t *testing.T) {
	v, err := scalar.NewUInt128(mustBig(t, "340282366920938463463374607431768211455"))
	require.NoError(t, err)
	require.Equal(t, "340282366920938463463374607431768211455", v.String())

	_, err = scalar.NewUInt128(mustBig(t, "340282366920938463463374607431768211456"))
	require.ErrorIs(t, err, scalar.ErrNotRepresentable)
	_, err = scalar.NewUInt128(big.NewInt(-1))
	require.ErrorIs(t, err, scalar.ErrNotRepresentable)

	require.False(t, scalar.UInt128From(1).Equal(scalar.Int128From(1)))
}

func TestEqual(t *testing.T) {
	nan := math.NaN()
	require.True(t, scalar.Float64(nan).Equal(scalar.Float64(nan)))
	require.True(t, scalar.Float32(nan).Equal(scalar.Float32(nan)))
	require.False(t, scalar.Float64(1).Equal(scalar.Float32(1)))
	require.False(t, scalar.Int8(1).Equal(scalar.Int16(1)))
	require.True(t, mustDecimal(t, "1.0").Equal(mustDecimal(t, "1.00")))
	require.False(t, mustDecimal(t, "1.0").Equal(mustDecimal(t, "1.01")))

	utc := scalar.NewDateTime(time.Date(2022, 12, 31, 1, 0, 0, 0, time.UTC))
	plusFive := scalar.NewDateTime(time.Date(2022, 12, 31, 6, 0, 0, 0, time.FixedZone("", 5*3600)))
	require.False(t, utc.Equal(plusFive), "same instant, different offset")
	require.True(t, plusFive.Equal(plusFive))
}

func TestDecimalCopies(t *testing.T) {
	src := apd.New(5, 0)
	d := scalar.NewDecimal(src)
	src.SetInt64(6)
	require.Equal(t, "5", d.String())
	d.Apd().SetInt64(7)
	require.Equal(t, "5", d.String())
}

func TestDecimalFromFloat(t *testing.T) {
	d, err := scalar.DecimalFromFloat64(0.1)
	require.NoError(t, err)
	require.Equal(t, "0.1", d.String())

	d, err = scalar.DecimalFromFloat32(0.1)
	require.NoError(t, err)
	require.Equal(t, "0.1", d.String())

	d, err = scalar.DecimalFromFloat64(1e21)
	require.NoError(t, err)
	require.Equal(t, "1000000000000000000000", d.String())

	_, err = scalar.DecimalFromFloat64(math.NaN())
	require.ErrorIs(t, err, scalar.ErrNotRepresentableAsDecimal)
	_, err = scalar.DecimalFromFloat32(float32(math.Inf(-1)))
	require.ErrorIs(t, err, scalar.ErrNotRepresentableAsDecimal)

	require.Equal(t, "18446744073709551615", scalar.DecimalFromUint64(math.MaxUint64).String())
	require.Equal(t, "-9223372036854775808", scalar.DecimalFromInt64(math.MinInt64).String())
}

func TestDateConstructors(t *testing.T) {
	loc := time.FixedZone("", -3*3600)
	at := time.Date(2022, 12, 31, 23, 30, 15, 250*int(time.Millisecond), loc)

	require.Equal(t, "2022-12-31", scalar.NewNaiveDate(at).String())
	require.Equal(t, "2022-12-31T23:30:15.25", scalar.NewNaiveDateTime(at).String())
	dt := scalar.NewDateTime(at)
	require.Equal(t, "2022-12-31T23:30:15.25-03:00", dt.String())
	require.Equal(t, -3*3600, dt.Offset())
}

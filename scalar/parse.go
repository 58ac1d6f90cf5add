package scalar

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"net/mail"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/itchyny/timefmt-go"
	"github.com/samber/mo"
)

var (
	errNotFinite     = errors.New("value is not finite")
	errNotOneChar    = errors.New("expected exactly one character")
	errNotBool       = errors.New(`expected "true" or "false"`)
	errFractionWidth = errors.New("fractional seconds must have one to three digits")
	errHexFloat      = errors.New("hexadecimal floats are not accepted")
)

// Parse turns text into a value of type target.
//
// Empty text, and text equal to one of absentTokens, yields mo.None. A present pattern
// is a strftime format and is only accepted for NaiveDate, NaiveDateTime and DateTime;
// a DateTime pattern has to contain a UTC offset directive (%z or %:z). Without a
// pattern the default rules apply:
//
//   - Char: exactly one character
//   - String: the text itself
//   - integers: base 10, range checked
//   - Float32, Float64: finite numbers only, see ParseFloat64AllowNonFinite
//   - Bool: "true" or "false"
//   - Decimal: exact decimal notation
//   - NaiveDate: 2006-01-02
//   - NaiveDateTime: 2006-01-02T15:04:05, then 2006-01-02T15:04:05.000
//   - DateTime: RFC 3339
func Parse(text string, target ValueType, pattern mo.Option[string], absentTokens []string) (mo.Option[Value], error) {
	if text == "" || slices.Contains(absentTokens, text) {
		return mo.None[Value](), nil
	}

	var (
		v   Value
		err error
	)
	if p, ok := pattern.Get(); ok {
		v, err = parsePattern(text, target, p)
	} else {
		v, err = parseDefault(text, target)
	}
	if err != nil {
		return mo.None[Value](), err
	}
	return mo.Some(v), nil
}

// ParseText parses text with the default rules of target.
func ParseText(text string, target ValueType) (mo.Option[Value], error) {
	return Parse(text, target, mo.None[string](), nil)
}

// ParseWithPattern parses text of a date kind with a strftime pattern.
func ParseWithPattern(text string, target ValueType, pattern string) (mo.Option[Value], error) {
	return Parse(text, target, mo.Some(pattern), nil)
}

// ParseWithAbsentTokens parses text with the default rules of target, treating every
// token in absentTokens as a missing value.
func ParseWithAbsentTokens(text string, target ValueType, absentTokens []string) (mo.Option[Value], error) {
	return Parse(text, target, mo.None[string](), absentTokens)
}

// ParseLike parses text as a value of the same type as template.
func ParseLike(text string, template Value) (mo.Option[Value], error) {
	target, err := TypeOf(template)
	if err != nil {
		return mo.None[Value](), err
	}
	return ParseText(text, target)
}

func parseFailed(text string, target ValueType, err error) error {
	return &ParseError{Text: text, Target: target, Err: err}
}

func parseDefault(text string, target ValueType) (Value, error) {
	switch target {
	case TypeChar:
		r, size := utf8.DecodeRuneInString(text)
		if (r == utf8.RuneError && size == 1) || size != len(text) {
			return nil, parseFailed(text, target, errNotOneChar)
		}
		return Char(r), nil
	case TypeString:
		return String(text), nil
	case TypeInt8:
		return parseSigned[Int8](text, target)
	case TypeInt16:
		return parseSigned[Int16](text, target)
	case TypeInt32:
		return parseSigned[Int32](text, target)
	case TypeInt64:
		return parseSigned[Int64](text, target)
	case TypeUInt8:
		return parseUnsigned[UInt8](text, target)
	case TypeUInt16:
		return parseUnsigned[UInt16](text, target)
	case TypeUInt32:
		return parseUnsigned[UInt32](text, target)
	case TypeUInt64:
		return parseUnsigned[UInt64](text, target)
	case TypeInt128, TypeUInt128:
		return parseBig(text, target)
	case TypeFloat32:
		return ParseFloat32(text)
	case TypeFloat64:
		return ParseFloat64(text)
	case TypeBool:
		switch text {
		case "true":
			return Bool(true), nil
		case "false":
			return Bool(false), nil
		}
		return nil, parseFailed(text, target, errNotBool)
	case TypeDecimal:
		d, err := parseDecimal(text)
		if err != nil {
			return nil, parseFailed(text, target, err)
		}
		return d, nil
	case TypeNaiveDate:
		t, err := time.Parse(naiveDateLayout, text)
		if err != nil {
			return nil, parseFailed(text, target, err)
		}
		return NaiveDate{t: t}, nil
	case TypeNaiveDateTime:
		return parseNaiveDateTime(text)
	case TypeDateTime:
		return ParseRFC3339(text)
	default:
		return nil, &GenericError{Msg: fmt.Sprintf("parse: invalid value type %d", uint8(target))}
	}
}

func parseSigned[T interface {
	~int8 | ~int16 | ~int32 | ~int64
	Value
}](text string, target ValueType) (Value, error) {
	i, err := strconv.ParseInt(text, 10, target.Bits())
	if err != nil {
		return nil, parseFailed(text, target, err)
	}
	return T(i), nil
}

func parseUnsigned[T interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
	Value
}](text string, target ValueType) (Value, error) {
	u, err := strconv.ParseUint(strings.TrimPrefix(text, "+"), 10, target.Bits())
	if err != nil {
		return nil, parseFailed(text, target, err)
	}
	return T(u), nil
}

func parseBig(text string, target ValueType) (Value, error) {
	b, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, parseFailed(text, target, strconv.ErrSyntax)
	}
	if !integerLimits[target].contains(b) {
		return nil, parseFailed(text, target, strconv.ErrRange)
	}
	if target == TypeInt128 {
		return Int128{v: b}, nil
	}
	return UInt128{v: b}, nil
}

// parseNaiveDateTime tries whole seconds first and falls back to millisecond precision.
func parseNaiveDateTime(text string) (Value, error) {
	if !strings.ContainsAny(text, ".,") {
		t, err := time.Parse(naiveDateTimeLayout, text)
		if err != nil {
			// without a fraction the millisecond layout can not match either
			return nil, parseFailed(text, TypeNaiveDateTime, err)
		}
		return NaiveDateTime{t: t}, nil
	}
	if i := strings.LastIndexByte(text, '.'); i < 0 || !isDigits(text[i+1:], 1, 3) {
		return nil, parseFailed(text, TypeNaiveDateTime, errFractionWidth)
	}
	t, err := time.Parse(naiveDateTimeMillisLayout, text)
	if err != nil {
		return nil, parseFailed(text, TypeNaiveDateTime, err)
	}
	return NaiveDateTime{t: t}, nil
}

func isDigits(s string, minLen, maxLen int) bool {
	if len(s) < minLen || len(s) > maxLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func parsePattern(text string, target ValueType, pattern string) (Value, error) {
	fail := func(details string, err error) error {
		return &ParseError{Text: text, Target: target, Pattern: pattern, Details: details, Err: err}
	}
	if !target.IsDate() {
		return nil, fail("patterns only apply to date types", nil)
	}
	t, err := timefmt.Parse(text, pattern)
	if err != nil {
		return nil, fail("", err)
	}
	switch target {
	case TypeNaiveDate:
		return NewNaiveDate(t), nil
	case TypeNaiveDateTime:
		return NewNaiveDateTime(t), nil
	default:
		if !patternHasOffset(pattern) {
			return nil, fail("pattern carries no UTC offset", nil)
		}
		return NewDateTime(t), nil
	}
}

// patternHasOffset reports whether pattern contains a %z or %:z directive.
func patternHasOffset(pattern string) bool {
	for i := 0; i < len(pattern)-1; i++ {
		if pattern[i] != '%' {
			continue
		}
		i++
		switch pattern[i] {
		case 'z':
			return true
		case ':':
			if i+1 < len(pattern) && pattern[i+1] == 'z' {
				return true
			}
		}
	}
	return false
}

// ParseFloat32 parses a finite 32-bit float.
func ParseFloat32(text string) (Float32, error) {
	f, err := parseFloat(text, TypeFloat32, false)
	return Float32(f), err
}

// ParseFloat64 parses a finite 64-bit float.
func ParseFloat64(text string) (Float64, error) {
	f, err := parseFloat(text, TypeFloat64, false)
	return Float64(f), err
}

// ParseFloat32AllowNonFinite parses a 32-bit float and also accepts "inf", "-inf" and
// "NaN". Finite text too large for the type yields an infinity.
func ParseFloat32AllowNonFinite(text string) (Float32, error) {
	f, err := parseFloat(text, TypeFloat32, true)
	return Float32(f), err
}

// ParseFloat64AllowNonFinite parses a 64-bit float and also accepts "inf", "-inf" and
// "NaN". Finite text too large for the type yields an infinity.
func ParseFloat64AllowNonFinite(text string) (Float64, error) {
	f, err := parseFloat(text, TypeFloat64, true)
	return Float64(f), err
}

func parseFloat(text string, target ValueType, allowNonFinite bool) (float64, error) {
	if isHexFloat(text) {
		return 0, parseFailed(text, target, errHexFloat)
	}
	f, err := strconv.ParseFloat(text, target.Bits())
	if err != nil {
		if !allowNonFinite || !errors.Is(err, strconv.ErrRange) || !math.IsInf(f, 0) {
			return 0, parseFailed(text, target, err)
		}
	}
	if !allowNonFinite && !isFinite(f) {
		return 0, parseFailed(text, target, errNotFinite)
	}
	return f, nil
}

func isHexFloat(text string) bool {
	text = strings.TrimLeft(text, "+-")
	return strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X")
}

// ParseRFC3339 parses a date time like "2022-12-31T06:00:00+05:00", with optional
// fractional seconds.
func ParseRFC3339(text string) (DateTime, error) {
	t, err := time.Parse(time.RFC3339, text)
	if err != nil {
		return DateTime{}, parseFailed(text, TypeDateTime, err)
	}
	return NewDateTime(t), nil
}

// ParseRFC2822 parses a date time like "Tue, 1 Jul 2003 10:52:37 +0200". The day of the
// week is optional.
func ParseRFC2822(text string) (DateTime, error) {
	t, err := mail.ParseDate(text)
	if err != nil {
		return DateTime{}, parseFailed(text, TypeDateTime, err)
	}
	return NewDateTime(t), nil
}

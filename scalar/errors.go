package scalar

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors matched by the concrete error types via errors.Is.
var (
	ErrParse                     = errors.New("value from string failed")
	ErrWrongType                 = errors.New("wrong type")
	ErrNotRepresentable          = errors.New("not representable")
	ErrNotRepresentableAsDecimal = errors.New("not representable as decimal")
	ErrGeneric                   = errors.New("generic error")
)

// ParseError is returned when text can not be turned into a value of the target type.
type ParseError struct {
	Text   string
	Target ValueType
	// Pattern is the strftime pattern that was used, empty for the default rules.
	Pattern string
	Details string
	Err     error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "could not parse %q as %s", e.Text, e.Target)
	var details []string
	if e.Pattern != "" {
		details = append(details, "pattern "+e.Pattern)
	}
	if e.Details != "" {
		details = append(details, e.Details)
	}
	if e.Err != nil {
		details = append(details, e.Err.Error())
	}
	if len(details) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(details, ": "))
	}
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }

// ConversionErrorKind distinguishes the ways a conversion can fail.
type ConversionErrorKind uint8

const (
	_ ConversionErrorKind = iota
	// KindWrongType is reported when a value is unwrapped as a primitive it does not hold.
	KindWrongType
	// KindNotRepresentableAs is the general rejection of the conversion matrix.
	KindNotRepresentableAs
	// KindNotRepresentableAsDecimal is reported when a number has no exact decimal form.
	KindNotRepresentableAsDecimal
	KindGeneric
)

func (k ConversionErrorKind) String() string {
	switch k {
	case KindWrongType:
		return "WrongType"
	case KindNotRepresentableAs:
		return "NotRepresentableAs"
	case KindNotRepresentableAsDecimal:
		return "NotRepresentableAsDecimal"
	case KindGeneric:
		return "Generic"
	default:
		return fmt.Sprintf("ConversionErrorKind(%d)", uint8(k))
	}
}

// ConversionError is returned when a value can not be converted or unwrapped.
type ConversionError struct {
	Kind ConversionErrorKind
	// Source is the offending value, nil when the failure happened on a native Go value.
	Source     Value
	SourceType string
	SourceText string
	Target     string
	Details    string
}

func (e *ConversionError) Error() string {
	var msg string
	switch e.Kind {
	case KindWrongType:
		msg = fmt.Sprintf("%s(%s) is not of type %s", e.SourceType, e.SourceText, e.Target)
	case KindNotRepresentableAs:
		msg = fmt.Sprintf("%s(%s) is not representable as %s", e.SourceType, e.SourceText, e.Target)
	case KindNotRepresentableAsDecimal:
		msg = fmt.Sprintf("%s(%s) is not representable as Decimal", e.SourceType, e.SourceText)
	default:
		msg = "conversion failed"
	}
	if e.Details != "" {
		msg += ": " + e.Details
	}
	return msg
}

func (e *ConversionError) Is(target error) bool {
	switch e.Kind {
	case KindWrongType:
		return target == ErrWrongType
	case KindNotRepresentableAs:
		return target == ErrNotRepresentable
	case KindNotRepresentableAsDecimal:
		return target == ErrNotRepresentableAsDecimal
	case KindGeneric:
		return target == ErrGeneric
	}
	return false
}

// GenericError reports structural misuse, e.g. handing a nil Value to Convert.
type GenericError struct {
	Msg string
}

func (e *GenericError) Error() string { return e.Msg }

func (e *GenericError) Is(target error) bool { return target == ErrGeneric }

func notRepresentable(v Value, target ValueType) error {
	return &ConversionError{
		Kind:       KindNotRepresentableAs,
		Source:     v,
		SourceType: v.Type().String(),
		SourceText: sourceText(v),
		Target:     target.String(),
	}
}

func notRepresentableBecause(v Value, target ValueType, details string) error {
	err := notRepresentable(v, target).(*ConversionError)
	err.Details = details
	return err
}

func wrongType(v Value, target string) error {
	return &ConversionError{
		Kind:       KindWrongType,
		Source:     v,
		SourceType: v.Type().String(),
		SourceText: sourceText(v),
		Target:     target,
	}
}

func notRepresentableAsDecimal(sourceType, text string) error {
	return &ConversionError{
		Kind:       KindNotRepresentableAsDecimal,
		SourceType: sourceType,
		SourceText: text,
		Target:     TypeDecimal.String(),
	}
}

// maxPlainExponent bounds the exponent of decimals rendered in plain notation in error
// messages. "1e100000" would otherwise expand to 100001 digits.
const maxPlainExponent = 40

func sourceText(v Value) string {
	if d, ok := v.(Decimal); ok {
		if e := d.ref().Exponent; e > maxPlainExponent || e < -maxPlainExponent {
			return d.ref().Text('G')
		}
	}
	return v.String()
}

func errNoValue(op string) error {
	return &GenericError{Msg: op + ": no value"}
}

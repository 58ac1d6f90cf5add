package generate

import (
	"fmt"
	"strings"
	"testing"

	. "github.com/dave/jennifer/jen"
)

func TestGenerateScalar(t *testing.T) {
	f := NewFile("scalar")
	GenerateScalar(f, ScalarKinds)
	src := fmt.Sprintf("%#v", f)

	tests := []string{
		"// Code generated by internal/cmd/generate. DO NOT EDIT.",
		"package scalar",
		"func (t ValueType) String() string {",
		`return "NaiveDateTime"`,
		`"naivedatetime": TypeNaiveDateTime,`,
		"func DefaultInt8() Int8 {",
		"return Default(TypeInt8).(Int8)",
		"func AsInt8(v Value) (x int8, err error) {",
		"value, err := As[Int8](v)",
		"return int8(value), nil",
		"func AsInt128(v Value) (x *big.Int, err error) {",
		"return value.BigInt(), nil",
		"func AsDecimal(v Value) (x *apd.Decimal, err error) {",
		"func AsNaiveDate(v Value) (x time.Time, err error) {",
		"// AsUInt8 unwraps v as an 8-bit unsigned integer.",
		"// ConvertToBool converts v to a boolean.",
		"func ConvertToInt8(v Value) (int8Value Int8, err error) {",
		"converted, err := Convert(v, TypeInt8)",
		"return converted.(Int8), nil",
	}

	for _, want := range tests {
		if !strings.Contains(src, want) {
			t.Errorf("generated source does not contain %q", want)
		}
	}

	for _, k := range ScalarKinds {
		for _, prefix := range []string{"Default", "As", "ConvertTo"} {
			if !strings.Contains(src, "func "+prefix+k.Name+"(") {
				t.Errorf("missing %s%s", prefix, k.Name)
			}
		}
	}
}

func TestArticle(t *testing.T) {
	tests := []struct {
		noun string
		want string
	}{
		{noun: "8-bit signed integer", want: "an"},
		{noun: "16-bit signed integer", want: "a"},
		{noun: "decimal", want: "a"},
		{noun: "unsigned thing", want: "an"},
	}
	for _, tt := range tests {
		if got := article(tt.noun); got != tt.want {
			t.Errorf("article(%q) = %q, want %q", tt.noun, got, tt.want)
		}
	}
}

package generate

import (
	"fmt"
	"strings"

	. "github.com/dave/jennifer/jen"
	"github.com/iancoleman/strcase"
)

// ScalarKind describes one value type of the scalar package.
type ScalarKind struct {
	Name string
	// Native is the Go type returned by the AsX unwrapper.
	Native func() *Statement
	// Unwrap turns the scalar value x into its native Go value.
	Unwrap func(x Code) Code
	// Doc is the noun used in doc comments.
	Doc string
}

func basicKind(name, native, doc string) ScalarKind {
	return ScalarKind{
		Name:   name,
		Native: func() *Statement { return Id(native) },
		Unwrap: func(x Code) Code { return Id(native).Call(x) },
		Doc:    doc,
	}
}

func methodKind(name string, native func() *Statement, method, doc string) ScalarKind {
	return ScalarKind{
		Name:   name,
		Native: native,
		Unwrap: func(x Code) Code { return Add(x).Dot(method).Call() },
		Doc:    doc,
	}
}

func bigInt() *Statement     { return Op("*").Qual("math/big", "Int") }
func apdDecimal() *Statement { return Op("*").Qual("github.com/cockroachdb/apd/v3", "Decimal") }
func timeTime() *Statement   { return Qual("time", "Time") }

// ScalarKinds lists the value types in declaration order.
var ScalarKinds = []ScalarKind{
	basicKind("Char", "rune", "character"),
	basicKind("String", "string", "string"),
	basicKind("Int8", "int8", "8-bit signed integer"),
	basicKind("Int16", "int16", "16-bit signed integer"),
	basicKind("Int32", "int32", "32-bit signed integer"),
	basicKind("Int64", "int64", "64-bit signed integer"),
	methodKind("Int128", bigInt, "BigInt", "128-bit signed integer"),
	basicKind("UInt8", "uint8", "8-bit unsigned integer"),
	basicKind("UInt16", "uint16", "16-bit unsigned integer"),
	basicKind("UInt32", "uint32", "32-bit unsigned integer"),
	basicKind("UInt64", "uint64", "64-bit unsigned integer"),
	methodKind("UInt128", bigInt, "BigInt", "128-bit unsigned integer"),
	basicKind("Float32", "float32", "32-bit float"),
	basicKind("Float64", "float64", "64-bit float"),
	basicKind("Bool", "bool", "boolean"),
	methodKind("Decimal", apdDecimal, "Apd", "decimal"),
	methodKind("NaiveDate", timeTime, "Time", "date"),
	methodKind("NaiveDateTime", timeTime, "Time", "date time without time zone"),
	methodKind("DateTime", timeTime, "Time", "date time with UTC offset"),
}

func article(noun string) string {
	if strings.ContainsAny(noun[:1], "aeiou8") {
		return "an"
	}
	return "a"
}

func typeConst(k ScalarKind) string {
	return "Type" + k.Name
}

// GenerateScalar writes the per-type boilerplate of the scalar package into f.
func GenerateScalar(f *File, kinds []ScalarKind) {
	f.HeaderComment("Code generated by internal/cmd/generate. DO NOT EDIT.")

	generateValueTypeString(f, kinds)
	generateValueTypeNames(f, kinds)
	for _, k := range kinds {
		generateDefault(f, k)
	}
	for _, k := range kinds {
		generateAs(f, k)
	}
	for _, k := range kinds {
		generateConvertTo(f, k)
	}
}

func generateValueTypeString(f *File, kinds []ScalarKind) {
	f.Func().Params(Id("t").Id("ValueType")).Id("String").Params().String().Block(
		Switch(Id("t")).BlockFunc(func(g *Group) {
			for _, k := range kinds {
				g.Case(Id(typeConst(k))).Block(Return(Lit(k.Name)))
			}
			g.Default().Block(
				Return(Qual("fmt", "Sprintf").Call(Lit("ValueType(%d)"), Id("uint8").Call(Id("t")))),
			)
		}),
	)
}

func generateValueTypeNames(f *File, kinds []ScalarKind) {
	f.Var().Id("valueTypesByName").Op("=").Map(String()).Id("ValueType").Values(DictFunc(func(d Dict) {
		for _, k := range kinds {
			d[Lit(strings.ToLower(k.Name))] = Id(typeConst(k))
		}
	}))
}

func generateDefault(f *File, k ScalarKind) {
	f.Comment(fmt.Sprintf("Default%s returns the default %s.", k.Name, k.Doc))
	f.Func().Id("Default" + k.Name).Params().Id(k.Name).Block(
		Return(Id("Default").Call(Id(typeConst(k))).Assert(Id(k.Name))),
	)
}

func generateAs(f *File, k ScalarKind) {
	f.Comment(fmt.Sprintf("As%s unwraps v as %s %s.", k.Name, article(k.Doc), k.Doc))
	f.Func().Id("As"+k.Name).Params(Id("v").Id("Value")).Params(
		Id("x").Add(k.Native()),
		Err().Error(),
	).Block(
		List(Id("value"), Err()).Op(":=").Id("As").Types(Id(k.Name)).Call(Id("v")),
		If(Err().Op("!=").Nil()).Block(
			Return(Id("x"), Err()),
		),
		Return(k.Unwrap(Id("value")), Nil()),
	)
}

func generateConvertTo(f *File, k ScalarKind) {
	result := strcase.ToLowerCamel(k.Name) + "Value"
	f.Comment(fmt.Sprintf("ConvertTo%s converts v to %s %s.", k.Name, article(k.Doc), k.Doc))
	f.Func().Id("ConvertTo"+k.Name).Params(Id("v").Id("Value")).Params(
		Id(result).Id(k.Name),
		Err().Error(),
	).Block(
		List(Id("converted"), Err()).Op(":=").Id("Convert").Call(Id("v"), Id(typeConst(k))),
		If(Err().Op("!=").Nil()).Block(
			Return(Id(result), Err()),
		),
		Return(Id("converted").Assert(Id(k.Name)), Nil()),
	)
}

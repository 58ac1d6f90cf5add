package scalar_test

import (
	"fmt"

	"github.com/damedic/scalar-toolbox-go/scalar"
)

func ExampleConvert() {
	v, err := scalar.Convert(scalar.UInt16(300), scalar.TypeUInt8)
	fmt.Println(v, err)

	v, err = scalar.Convert(scalar.Char('8'), scalar.TypeUInt8)
	fmt.Println(v, err)

	v, err = scalar.Convert(scalar.Int64(64), scalar.TypeFloat32)
	fmt.Println(v, err)
	// Output:
	// <nil> UInt16(300) is not representable as UInt8: out of range
	// 8 <nil>
	// 64 <nil>
}

func ExampleParseWithAbsentTokens() {
	for _, cell := range []string{"42", "", "NA", "x"} {
		v, err := scalar.ParseWithAbsentTokens(cell, scalar.TypeInt32, []string{"NA"})
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		if x, ok := v.Get(); ok {
			fmt.Println(x.Type(), x)
		} else {
			fmt.Println("absent")
		}
	}
	// Output:
	// Int32 42
	// absent
	// absent
	// error: could not parse "x" as Int32: strconv.ParseInt: parsing "x": invalid syntax
}

func ExampleParseWithPattern() {
	v, err := scalar.ParseWithPattern("31.12.2022", scalar.TypeNaiveDate, "%d.%m.%Y")
	if err != nil {
		panic(err)
	}
	fmt.Println(v.MustGet())
	// Output:
	// 2022-12-31
}

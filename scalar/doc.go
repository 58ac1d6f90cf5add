// Package scalar implements a runtime-typed scalar value model.
//
// A Value holds exactly one of 19 primitive kinds, identified by its ValueType:
// characters, strings, signed and unsigned integers from 8 to 128 bits, 32 and 64-bit
// floats, booleans, exact decimals, and three date kinds (NaiveDate, NaiveDateTime and
// DateTime). Parse turns untyped text into a Value of a requested type, and Convert
// moves a Value to another type without ever rounding, truncating or wrapping: a value
// that can not be represented exactly in the target type is rejected with a
// ConversionError.
//
// Missing data is not a Value. Parse reports it as mo.None[Value](), for example for an
// empty CSV cell, and ConvertOptional passes it through unchanged.
package scalar

//go:generate go run ../internal/cmd/generate -out scalar_gen.go

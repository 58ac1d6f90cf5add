// Generates the per-type boilerplate of the scalar package.
package main

import (
	"flag"
	"log"

	"github.com/damedic/scalar-toolbox-go/internal/generate"
	"github.com/dave/jennifer/jen"
)

func main() {
	out := flag.String("out", "scalar/scalar_gen.go", "file to write the generated code to")
	flag.Parse()

	log.Println("generating scalar boilerplate...")
	f := jen.NewFile("scalar")
	generate.GenerateScalar(f, generate.ScalarKinds)

	if err := f.Save(*out); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", *out)
}

package quicktype_test

import (
	"context"
	"fmt"
	"log"

	"github.com/grovetools/qtschema/pkg/langs"
	"github.com/grovetools/qtschema/pkg/quicktype"
)

type Order struct {
	ID    int      `json:"id"`
	Items []string `json:"items"`
}

func ExampleContext_Finish() {
	ctx := context.Background()

	// Create a session whose top-level type is called MyData
	qt := quicktype.NewContext("MyData")

	// Add a type by reflection and a hand-written fragment
	if err := qt.AddType(&Order{}); err != nil {
		log.Fatal(err)
	}
	qt.MustAddSchema(`{"title": "Status", "type": "string", "enum": ["open", "closed"]}`)

	// Generate TypeScript and Rust from the same schema
	for _, lang := range []langs.Language{
		langs.TypeScript{JustTypes: true},
		langs.Rust{DeriveDebug: true, DeriveClone: true},
	} {
		code, err := qt.Finish(ctx, lang)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("--- %s\n%s\n", lang.Name(), code)
	}
}

func ExampleContext_Args() {
	qt := quicktype.NewContext("MyData")
	args := qt.Args(langs.Elm{ArrayType: langs.ArrayTypeList}, "/tmp/schema.json", "/tmp/out")
	fmt.Println(args)
	// Output: [--quiet -t MyData -o /tmp/out --src-lang schema /tmp/schema.json -l elm --array-type list]
}

// Package quicktype drives the quicktype code generator from Go.
//
// A Context collects JSON Schema fragments, either as raw text or reflected
// from Go types, merges them into one draft-07 document and hands that
// document to the quicktype executable once per target language.
//
// The package provides functionality to:
//   - Accumulate schema fragments into a single merged schema
//   - Translate a language selection into quicktype flags
//   - Resolve quicktype directly or through npx
//   - Run the generator and read back the generated source
//
// Example usage:
//
//	qt := quicktype.NewContext("MyData")
//	if err := qt.AddType(&Order{}); err != nil {
//	    log.Fatal(err)
//	}
//
//	code, err := qt.Finish(ctx, langs.TypeScript{JustTypes: true})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(code)
package quicktype

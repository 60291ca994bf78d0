package schema

import (
	"bytes"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const documentURL = "merged.schema.json"

// Validate compiles the merged document as a draft-07 schema. It catches
// dangling references and malformed keywords before quicktype sees them.
func (a *Accumulator) Validate() error {
	data, err := a.MarshalJSON()
	if err != nil {
		return err
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	if err := compiler.AddResource(documentURL, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to add merged schema resource: %w", err)
	}
	if _, err := compiler.Compile(documentURL); err != nil {
		return fmt.Errorf("invalid merged schema: %w", err)
	}
	return nil
}

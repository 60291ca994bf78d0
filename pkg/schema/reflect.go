package schema

import (
	"fmt"
	"reflect"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/invopop/jsonschema"
)

const (
	defsRefPrefix        = "#/$defs/"
	definitionsRefPrefix = "#/definitions/"
)

// NewReflector returns the reflector used for Go types. The root struct is
// expanded inline and nested types are emitted as definitions.
func NewReflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		Anonymous:      true,
		ExpandedStruct: true,
	}
}

// Reflect produces a fragment for the Go type of v. The fragment's title is
// the type name; nested types land under "definitions" with their references
// rewritten to match, so the result can be pushed as-is.
func Reflect(r *jsonschema.Reflector, v any) (string, error) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Name() == "" {
		return "", fmt.Errorf("cannot reflect unnamed type %T", v)
	}

	s := r.Reflect(v)
	s.Title = t.Name()

	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema for %s: %w", t.Name(), err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("failed to decode schema for %s: %w", t.Name(), err)
	}

	delete(doc, "$schema")
	delete(doc, "$id")
	if defs, ok := doc["$defs"]; ok {
		delete(doc, "$defs")
		doc["definitions"] = defs
	}
	rewriteRefs(doc)

	out, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("failed to encode fragment for %s: %w", t.Name(), err)
	}
	return string(out), nil
}

// rewriteRefs walks a decoded schema and points $defs references at the
// draft-07 definitions section.
func rewriteRefs(node any) {
	switch n := node.(type) {
	case map[string]any:
		for k, v := range n {
			if ref, ok := v.(string); ok && k == "$ref" && strings.HasPrefix(ref, defsRefPrefix) {
				n[k] = definitionsRefPrefix + strings.TrimPrefix(ref, defsRefPrefix)
				continue
			}
			rewriteRefs(v)
		}
	case []any:
		for _, v := range n {
			rewriteRefs(v)
		}
	}
}

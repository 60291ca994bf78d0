package schema

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type address struct {
	Street string `json:"street"`
}

type Customer struct {
	Name    string   `json:"name"`
	Home    address  `json:"home"`
	Billing *address `json:"billing,omitempty"`
}

func TestReflect(t *testing.T) {
	text, err := Reflect(NewReflector(), &Customer{})
	require.NoError(t, err)

	var frag map[string]any
	require.NoError(t, json.Unmarshal([]byte(text), &frag))

	assert.Equal(t, "Customer", frag["title"])
	assert.NotContains(t, frag, "$defs")
	assert.NotContains(t, frag, "$schema")
	require.Contains(t, frag, "definitions")
	assert.Contains(t, frag["definitions"].(map[string]any), "address")

	props := frag["properties"].(map[string]any)
	assert.Equal(t, "#/definitions/address", props["home"].(map[string]any)["$ref"])

	a := New()
	require.NoError(t, a.Push(text))
	assert.Contains(t, a.Definitions(), "Customer")
	assert.Contains(t, a.Definitions(), "address")
	assert.NoError(t, a.Validate())
}

func TestReflectRejectsUnnamedTypes(t *testing.T) {
	_, err := Reflect(NewReflector(), struct{ A int }{})
	assert.Error(t, err)

	_, err = Reflect(NewReflector(), nil)
	assert.Error(t, err)
}

func TestRewriteRefs(t *testing.T) {
	node := map[string]any{
		"$ref": "#/$defs/A",
		"items": []any{
			map[string]any{"$ref": "#/$defs/B"},
			map[string]any{"$ref": "https://example.com/x.json"},
		},
	}
	rewriteRefs(node)

	assert.Equal(t, "#/definitions/A", node["$ref"])
	items := node["items"].([]any)
	assert.Equal(t, "#/definitions/B", items[0].(map[string]any)["$ref"])
	assert.Equal(t, "https://example.com/x.json", items[1].(map[string]any)["$ref"])
}

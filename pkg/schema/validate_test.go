package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("resolvable references", func(t *testing.T) {
		a := New()
		require.NoError(t, a.Push(`{
			"title": "Order",
			"type": "object",
			"properties": {"line": {"$ref": "#/definitions/Line"}},
			"definitions": {"Line": {"type": "object"}}
		}`))
		assert.NoError(t, a.Validate())
	})

	t.Run("dangling reference", func(t *testing.T) {
		a := New()
		require.NoError(t, a.Push(`{
			"title": "Order",
			"type": "object",
			"properties": {"line": {"$ref": "#/definitions/Missing"}}
		}`))
		assert.Error(t, a.Validate())
	})

	t.Run("bad keyword value", func(t *testing.T) {
		a := New()
		require.NoError(t, a.Push(`{"title":"Odd","type":"not-a-type"}`))
		assert.Error(t, a.Validate())
	})

	t.Run("empty document", func(t *testing.T) {
		assert.NoError(t, New().Validate())
	})
}

package hclloader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestToCtyValue(t *testing.T) {
	t.Run("nested inventory data becomes an object", func(t *testing.T) {
		val, err := ToCtyValue(map[string]any{
			"host":  "10.0.0.5",
			"port":  8000,
			"roles": []any{"db", "api"},
			"tls":   map[string]any{"enabled": true},
		})
		require.NoError(t, err)

		assert.Equal(t, cty.StringVal("10.0.0.5"), val.GetAttr("host"))
		assert.Equal(t, cty.NumberIntVal(8000), val.GetAttr("port"))
		assert.Equal(t, cty.TupleVal([]cty.Value{cty.StringVal("db"), cty.StringVal("api")}), val.GetAttr("roles"))
		assert.Equal(t, cty.True, val.GetAttr("tls").GetAttr("enabled"))
	})

	t.Run("empty containers", func(t *testing.T) {
		obj, err := ToCtyValue(map[string]any{})
		require.NoError(t, err)
		assert.Equal(t, cty.EmptyObjectVal, obj)

		tup, err := ToCtyValue([]any{})
		require.NoError(t, err)
		assert.Equal(t, cty.EmptyTupleVal, tup)
	})

	t.Run("nil becomes null", func(t *testing.T) {
		val, err := ToCtyValue(nil)
		require.NoError(t, err)
		assert.True(t, val.IsNull())
	})

	t.Run("unconvertible value is an error", func(t *testing.T) {
		_, err := ToCtyValue(map[string]any{"fn": func() {}})
		assert.ErrorContains(t, err, `in attribute "fn"`)
	})
}

func TestFromCtyValue(t *testing.T) {
	t.Run("object round-trips to a map with float numbers", func(t *testing.T) {
		native, err := FromCtyValue(cty.ObjectVal(map[string]cty.Value{
			"name":  cty.StringVal("migrate"),
			"count": cty.NumberIntVal(3),
			"flags": cty.TupleVal([]cty.Value{cty.True, cty.False}),
		}))
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"name":  "migrate",
			"count": float64(3),
			"flags": []any{true, false},
		}, native)
	})

	t.Run("null and unknown become nil", func(t *testing.T) {
		native, err := FromCtyValue(cty.NullVal(cty.String))
		require.NoError(t, err)
		assert.Nil(t, native)

		native, err = FromCtyValue(cty.UnknownVal(cty.String))
		require.NoError(t, err)
		assert.Nil(t, native)
	})

	t.Run("map type converts like an object", func(t *testing.T) {
		native, err := FromCtyValue(cty.MapVal(map[string]cty.Value{
			"a": cty.StringVal("1"),
		}))
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": "1"}, native)
	})
}

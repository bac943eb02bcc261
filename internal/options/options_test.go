package options_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shapestone/shape-jsonx/internal/options"
)

func TestJson_IsZeroValue(t *testing.T) {
	t.Parallel()
	assert.Equal(t, options.Options{}, options.Json, "strict JSON is every flag defaulted to false")
}

func TestPresets_AreDistinctFromStrictJSON(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, options.Json, options.Jsonc)
	assert.NotEqual(t, options.Json, options.Json5)
	assert.NotEqual(t, options.Json, options.Hjson)
}

func TestJsonc_EnablesCommentsAndTrailingCommasOnly(t *testing.T) {
	t.Parallel()

	assert.True(t, options.Jsonc.LineComments)
	assert.True(t, options.Jsonc.BlockComments)
	assert.True(t, options.Jsonc.TrailingCommas)
	assert.False(t, options.Jsonc.QuotelessStrings, "JSONC stays closer to strict JSON than JSON5/Hjson")
	assert.False(t, options.Jsonc.EcmaPropertyNames)
	assert.Equal(t, options.Options{LineComments: true, BlockComments: true, TrailingCommas: true}, options.Jsonc)
}

func TestHjson_EnablesQuotelessGrammar(t *testing.T) {
	t.Parallel()

	assert.True(t, options.Hjson.QuotelessPropertyNames)
	assert.True(t, options.Hjson.QuotelessStrings)
	assert.True(t, options.Hjson.OmittedCommas)
	assert.True(t, options.Hjson.OmittedRootObjectBraces)
	assert.True(t, options.Hjson.MultiQuotedStrings)
}

package json_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapestone/shape-jsonx/pkg/json"
)

func parseValue(t *testing.T, input string) json.Value {
	t.Helper()
	r := json.NewReaderFromString(input, json.Json)
	val, err := r.ParseElement(true)
	require.NoError(t, err)
	return val
}

func TestValue_AsFloat64(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		opts  json.Options
		want  float64
	}{
		"integer":    {input: "42", opts: json.Json, want: 42},
		"negative":   {input: "-17", opts: json.Json, want: -17},
		"fraction":   {input: "3.5", opts: json.Json, want: 3.5},
		"hex json5":  {input: "0x1F", opts: json.Json5, want: 31},
		"negative hex json5": {input: "-0x10", opts: json.Json5, want: -16},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			r := json.NewReaderFromString(tc.input, tc.opts)
			val, err := r.ParseElement(true)
			require.NoError(t, err)
			f, err := val.AsFloat64()
			require.NoError(t, err)
			assert.Equal(t, tc.want, f)
		})
	}
}

func TestValue_AsNumberLiteral_PreservesVerbatimText(t *testing.T) {
	t.Parallel()

	val := parseValue(t, "1.50")
	lit, err := val.AsNumberLiteral()
	require.NoError(t, err)
	assert.Equal(t, "1.50", lit, "the verbatim lexeme is kept, not a re-formatted float")
}

func TestValue_TypeMismatchErrors(t *testing.T) {
	t.Parallel()

	val := parseValue(t, `"hello"`)
	_, err := val.AsBool()
	assert.Error(t, err)
	_, err = val.AsFloat64()
	assert.Error(t, err)
	_, err = val.AsArray()
	assert.Error(t, err)
}

func TestValue_NestedAccess(t *testing.T) {
	t.Parallel()

	val := parseValue(t, `{"outer": {"inner": [1, 2, {"deep": true}]}}`)

	outer, ok := val.Member("outer")
	require.True(t, ok)
	inner, ok := outer.Member("inner")
	require.True(t, ok)
	assert.Equal(t, 3, inner.Len())

	deep, ok := inner.Element(2)
	require.True(t, ok)
	d, ok := deep.Member("deep")
	require.True(t, ok)
	b, err := d.AsBool()
	require.NoError(t, err)
	assert.True(t, b)
}

func TestValue_MemberAndElementMissOnWrongType(t *testing.T) {
	t.Parallel()

	obj := parseValue(t, `{"a": 1}`)
	_, ok := obj.Element(0)
	assert.False(t, ok)

	arr := parseValue(t, `[1, 2]`)
	_, ok = arr.Member("a")
	assert.False(t, ok)
	_, ok = arr.Element(5)
	assert.False(t, ok)
}

func TestRender(t *testing.T) {
	t.Parallel()

	val := parseValue(t, `{"a": 1, "b": [true, null, "x"]}`)
	assert.Equal(t, `{"a":1,"b":[true,null,"x"]}`, json.Render(val))
}

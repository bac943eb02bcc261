package json_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapestone/shape-jsonx/pkg/json"
)

func TestParseElement_SimpleObject(t *testing.T) {
	t.Parallel()

	r := json.NewReaderFromString(`{"name": "Alice", "age": 30}`, json.Json)
	val, err := r.ParseElement(true)
	require.NoError(t, err)

	assert.Equal(t, json.TypeObject, val.Type())
	keys, err := val.ObjectKeys()
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "age"}, keys, "object members keep parse order")

	name, ok := val.Member("name")
	require.True(t, ok)
	s, err := name.AsString()
	require.NoError(t, err)
	assert.Equal(t, "Alice", s)
}

func TestParseElement_Array(t *testing.T) {
	t.Parallel()

	r := json.NewReaderFromString(`[1, 2.5, "three", null, true]`, json.Json)
	val, err := r.ParseElement(true)
	require.NoError(t, err)

	elems, err := val.AsArray()
	require.NoError(t, err)
	require.Len(t, elems, 5)

	f, err := elems[0].AsFloat64()
	require.NoError(t, err)
	assert.Equal(t, 1.0, f)
	assert.True(t, elems[3].IsNull())
	b, err := elems[4].AsBool()
	require.NoError(t, err)
	assert.True(t, b)
}

func TestParseElement_Dialects(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		opts  json.Options
	}{
		"jsonc comments":      {input: "{\n  // hi\n  \"a\": 1\n}", opts: json.Jsonc},
		"json5 unquoted keys": {input: `{a: 1, b: 'two'}`, opts: json.Json5},
		"hjson quoteless":     {input: "{\n  greeting: hello there\n}", opts: json.Hjson},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			r := json.NewReaderFromString(tc.input, tc.opts)
			val, err := r.ParseElement(true)
			require.NoError(t, err)
			assert.Equal(t, json.TypeObject, val.Type())
		})
	}
}

func TestParseElement_RejectsDialectFeaturesUnderStrictJSON(t *testing.T) {
	t.Parallel()

	r := json.NewReaderFromString(`{a: 1}`, json.Json)
	_, err := r.ParseElement(true)
	require.Error(t, err)
}

func TestParseElement_IgnoresComments(t *testing.T) {
	t.Parallel()

	r := json.NewReaderFromString("{\n  // a comment\n  \"a\" /* before colon */: 1\n}", json.Jsonc)
	val, err := r.ParseElement(true)
	require.NoError(t, err)

	keys, err := val.ObjectKeys()
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, keys)
}

func TestReadElement_TokenStream_SurfacesComments(t *testing.T) {
	t.Parallel()

	r := json.NewReaderFromString("[ /* note */ \"a\"]", json.Jsonc)
	stream := r.ReadElement(true)
	defer stream.Close()

	var kinds []json.Kind
	var values []string
	for {
		tok, err := stream.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		kinds = append(kinds, tok.Kind)
		values = append(values, tok.Value)
	}
	assert.Equal(t, []json.Kind{json.KindStartArray, json.KindComment, json.KindString, json.KindEndArray}, kinds)
	assert.Equal(t, " note ", values[1])
}

func TestFindProperty_SkipsComments(t *testing.T) {
	t.Parallel()

	r := json.NewReaderFromString("{ // a\n\"a\": 1, /* b */ \"b\": {\"c\": 2} }", json.Jsonc)
	val, err := r.FindProperty("b")
	require.NoError(t, err)
	inner, ok := val.Member("c")
	require.True(t, ok)
	f, err := inner.AsFloat64()
	require.NoError(t, err)
	assert.Equal(t, 2.0, f)
}

func TestReadElement_TokenStream(t *testing.T) {
	t.Parallel()

	r := json.NewReaderFromString(`["a", "b"]`, json.Json)
	stream := r.ReadElement(true)
	defer stream.Close()

	var kinds []json.Kind
	for {
		tok, err := stream.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []json.Kind{json.KindStartArray, json.KindString, json.KindString, json.KindEndArray}, kinds)
}

func TestReadElement_CloseBeforeExhaustion(t *testing.T) {
	t.Parallel()

	r := json.NewReaderFromString(`["a", "b", "c"]`, json.Json)
	stream := r.ReadElement(true)

	_, err := stream.Next()
	require.NoError(t, err)
	stream.Close() // must not hang or panic even though more tokens remain
}

func TestFindProperty(t *testing.T) {
	t.Parallel()

	r := json.NewReaderFromString(`{"a": 1, "b": {"c": 2}, "d": 3}`, json.Json)
	val, err := r.FindProperty("b")
	require.NoError(t, err)
	assert.Equal(t, json.TypeObject, val.Type())

	inner, ok := val.Member("c")
	require.True(t, ok)
	f, err := inner.AsFloat64()
	require.NoError(t, err)
	assert.Equal(t, 2.0, f)
}

func TestFindProperty_NotFound(t *testing.T) {
	t.Parallel()

	r := json.NewReaderFromString(`{"a": 1}`, json.Json)
	_, err := r.FindProperty("missing")
	require.ErrorIs(t, err, json.ErrNotFound)
}

func TestFindProperty_NotAnObject(t *testing.T) {
	t.Parallel()

	r := json.NewReaderFromString(`[1, 2, 3]`, json.Json)
	_, err := r.FindProperty("a")
	require.Error(t, err)
}

func TestFindIndex(t *testing.T) {
	t.Parallel()

	r := json.NewReaderFromString(`[10, 20, {"x": 30}, 40]`, json.Json)
	val, err := r.FindIndex(2)
	require.NoError(t, err)

	x, ok := val.Member("x")
	require.True(t, ok)
	f, err := x.AsFloat64()
	require.NoError(t, err)
	assert.Equal(t, 30.0, f)
}

func TestFindIndex_OutOfRange(t *testing.T) {
	t.Parallel()

	r := json.NewReaderFromString(`[1, 2]`, json.Json)
	_, err := r.FindIndex(5)
	require.ErrorIs(t, err, json.ErrNotFound)
}

func TestReadElementLength(t *testing.T) {
	t.Parallel()

	input := `{"a": 1}   `
	r := json.NewReaderFromString(input, json.Json)
	n, err := r.ReadElementLength()
	require.NoError(t, err)
	assert.Equal(t, int64(len(`{"a": 1}`)), n, "trailing whitespace must not be counted")
}

func TestNewReaderFromBytesAutodetect_UTF8BOM(t *testing.T) {
	t.Parallel()

	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`{"a":1}`)...)
	r, err := json.NewReaderFromBytesAutodetect(data, json.Json)
	require.NoError(t, err)
	val, err := r.ParseElement(true)
	require.NoError(t, err)
	assert.Equal(t, json.TypeObject, val.Type())
}

func TestNewReaderFromStream(t *testing.T) {
	t.Parallel()

	r := json.NewReaderFromStreamAutodetect(strings.NewReader(`{"a": [1, 2, 3]}`), json.Json)
	val, err := r.ParseElement(true)
	require.NoError(t, err)
	a, ok := val.Member("a")
	require.True(t, ok)
	elems, err := a.AsArray()
	require.NoError(t, err)
	assert.Len(t, elems, 3)
}

func TestParseElementAt(t *testing.T) {
	t.Parallel()

	r := json.NewReaderFromString(`{"a": 1}{"b": 2}`, json.Json)
	first, err := r.ParseElement(true)
	require.NoError(t, err)
	_, ok := first.Member("a")
	require.True(t, ok)

	pos := r.Position()
	second, err := r.ParseElementAt(pos, true)
	require.NoError(t, err)
	_, ok = second.Member("b")
	require.True(t, ok)
}

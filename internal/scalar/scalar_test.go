package scalar_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapestone/shape-jsonx/internal/scalar"
)

// readers returns one constructed Reader each for the string, list and
// stream variants over the same ASCII text, so the shared
// Reader-interface behavior can be tested once across all three; the
// byte-buffer variant has its own tests below.
func readers(t *testing.T, s string) map[string]scalar.Reader {
	t.Helper()
	return map[string]scalar.Reader{
		"string": scalar.NewStringReader(s),
		"list":   scalar.NewListReader([]rune(s)),
		"stream": scalar.NewStreamReader(strings.NewReader(s), scalar.UTF8),
	}
}

func TestReader_PeekDoesNotConsume(t *testing.T) {
	t.Parallel()

	for name, r := range readers(t, "abc") {
		t.Run(name, func(t *testing.T) {
			c1, ok := r.Peek()
			require.True(t, ok)
			c2, ok := r.Peek()
			require.True(t, ok)
			assert.Equal(t, c1, c2)
			assert.Equal(t, 'a', c1)
		})
	}
}

func TestReader_ReadAdvances(t *testing.T) {
	t.Parallel()

	for name, r := range readers(t, "abc") {
		t.Run(name, func(t *testing.T) {
			var out []rune
			for {
				c, ok := r.Read()
				if !ok {
					break
				}
				out = append(out, c)
			}
			assert.Equal(t, []rune("abc"), out)
		})
	}
}

func TestReader_TryRead(t *testing.T) {
	t.Parallel()

	for name, r := range readers(t, "abc") {
		t.Run(name, func(t *testing.T) {
			assert.False(t, r.TryRead('x'), "TryRead must not consume on mismatch")
			assert.True(t, r.TryRead('a'))
			c, ok := r.Peek()
			require.True(t, ok)
			assert.Equal(t, 'b', c)
		})
	}
}

func TestReader_SetPositionRestores(t *testing.T) {
	t.Parallel()

	for name, r := range readers(t, "abcdef") {
		t.Run(name, func(t *testing.T) {
			r.Read()
			r.Read()
			save := r.Position()
			r.Read()
			r.Read()
			r.SetPosition(save)
			c, ok := r.Peek()
			require.True(t, ok)
			assert.Equal(t, 'c', c)
		})
	}
}

func TestStringReader_SurrogatePair(t *testing.T) {
	t.Parallel()

	// U+1F600 (an emoji) encodes as a UTF-16 surrogate pair; the reader
	// must decode it as a single scalar and advance by two code units.
	s := "a\U0001F600b"
	r := scalar.NewStringReader(s)

	c, ok := r.Read()
	require.True(t, ok)
	assert.Equal(t, 'a', c)

	before := r.Position()
	c, ok = r.Read()
	require.True(t, ok)
	assert.Equal(t, rune(0x1F600), c)
	assert.Equal(t, scalar.Position(2), r.Position()-before, "a surrogate pair spans two UTF-16 code units")

	c, ok = r.Read()
	require.True(t, ok)
	assert.Equal(t, 'b', c)
}

func TestDetectEncoding(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		prefix  []byte
		wantEnc scalar.Encoding
		wantLen int
	}{
		"no bom defaults utf-8": {prefix: []byte("{\"a\":1}"), wantEnc: scalar.UTF8, wantLen: 0},
		"utf-8 bom":             {prefix: []byte{0xEF, 0xBB, 0xBF, '{'}, wantEnc: scalar.UTF8, wantLen: 3},
		"utf-16le bom":          {prefix: []byte{0xFF, 0xFE, '{', 0x00}, wantEnc: scalar.UTF16LE, wantLen: 2},
		"utf-16be bom":          {prefix: []byte{0xFE, 0xFF, 0x00, '{'}, wantEnc: scalar.UTF16BE, wantLen: 2},
		"utf-32le bom":          {prefix: []byte{0xFF, 0xFE, 0x00, 0x00}, wantEnc: scalar.UTF32LE, wantLen: 4},
		"utf-32be bom":          {prefix: []byte{0x00, 0x00, 0xFE, 0xFF}, wantEnc: scalar.UTF32BE, wantLen: 4},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			enc, bomLen := scalar.DetectEncoding(tc.prefix)
			assert.Equal(t, tc.wantEnc, enc)
			assert.Equal(t, tc.wantLen, bomLen)
		})
	}
}

func TestByteReader_Autodetect(t *testing.T) {
	t.Parallel()

	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`"hi"`)...)
	r, err := scalar.NewByteReaderAutodetect(data)
	require.NoError(t, err)
	assert.Equal(t, scalar.Position(0), r.Position(), "the BOM is consumed and never visible through Position")
	assert.Equal(t, []rune(`"hi"`), r.ReadToEnd())
}

func TestByteReader_ValidatesOnConstruction(t *testing.T) {
	t.Parallel()

	// 0xFF is not a valid UTF-8 lead byte.
	_, err := scalar.NewByteReader([]byte{0xFF}, scalar.UTF8)
	assert.Error(t, err)
}

func TestByteReader_UTF16LE(t *testing.T) {
	t.Parallel()

	// "ab" encoded as UTF-16LE.
	data := []byte{'a', 0x00, 'b', 0x00}
	r, err := scalar.NewByteReader(data, scalar.UTF16LE)
	require.NoError(t, err)
	assert.Equal(t, []rune("ab"), r.ReadToEnd())
}

func TestStreamReader_Autodetect(t *testing.T) {
	t.Parallel()

	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`"hi"`)...)
	r := scalar.NewStreamReaderAutodetect(strings.NewReader(string(data)))
	assert.Equal(t, []rune(`"hi"`), r.ReadToEnd())
}

func TestStreamReader_RewindPastAlreadyReadBytes(t *testing.T) {
	t.Parallel()

	r := scalar.NewStreamReader(strings.NewReader("hello world"), scalar.UTF8)
	for i := 0; i < 5; i++ {
		r.Read()
	}
	save := r.Position()
	assert.Equal(t, []rune(" world"), r.ReadToEnd())

	r.SetPosition(save)
	assert.Equal(t, []rune(" world"), r.ReadToEnd(), "a stream reader can rewind to any previously visited position")
}

func TestListReader_Length(t *testing.T) {
	t.Parallel()

	r := scalar.NewListReader([]rune("hello"))
	assert.Equal(t, scalar.Position(5), r.Length())
}

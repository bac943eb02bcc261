package scalar

// ByteReader is the byte-buffer-backed Reader variant: a fixed byte slice
// with a declared (or autodetected) encoding. Position is a byte offset
// into the original buffer, measured from the start of the buffer
// passed to NewByteReader (a BOM, if present, is skipped automatically
// and is never re-observable through Position/SetPosition).
type ByteReader struct {
	data []byte
	enc  Encoding
	pos  int
}

// NewByteReader constructs a Reader over data using the declared
// encoding. The caller is responsible for BOM handling when an encoding
// is declared explicitly; use NewByteReaderAutodetect to sniff it.
func NewByteReader(data []byte, enc Encoding) (*ByteReader, error) {
	if err := ValidateAll(data, enc); err != nil {
		return nil, err
	}
	return &ByteReader{data: data, enc: enc}, nil
}

// NewByteReaderAutodetect constructs a Reader over data, detecting its
// encoding from a leading byte-order mark per spec.md §6 and defaulting
// to UTF-8 when none is present. The BOM bytes, if any, are consumed and
// excluded from the visible scalar sequence.
func NewByteReaderAutodetect(data []byte) (*ByteReader, error) {
	enc, bomLen := DetectEncoding(data)
	return NewByteReader(data[bomLen:], enc)
}

func (r *ByteReader) Peek() (rune, bool) {
	c, _, ok := decodeScalar(r.data[r.pos:], r.enc)
	return c, ok
}

func (r *ByteReader) Read() (rune, bool) {
	c, width, ok := decodeScalar(r.data[r.pos:], r.enc)
	if !ok {
		return 0, false
	}
	r.pos += width
	return c, true
}

func (r *ByteReader) TryRead(want rune) bool {
	c, width, ok := decodeScalar(r.data[r.pos:], r.enc)
	if !ok || c != want {
		return false
	}
	r.pos += width
	return true
}

func (r *ByteReader) ReadToEnd() []rune {
	var out []rune
	for {
		c, ok := r.Read()
		if !ok {
			return out
		}
		out = append(out, c)
	}
}

func (r *ByteReader) Position() Position     { return Position(r.pos) }
func (r *ByteReader) SetPosition(p Position) { r.pos = int(p) }
func (r *ByteReader) Length() Position       { return Position(len(r.data)) }

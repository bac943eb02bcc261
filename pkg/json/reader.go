package json

import (
	"fmt"
	"io"

	"github.com/shapestone/shape-jsonx/internal/lexer"
	"github.com/shapestone/shape-jsonx/internal/scalar"
	"github.com/shapestone/shape-jsonx/internal/structural"
	"github.com/shapestone/shape-jsonx/internal/token"
)

// Reader parses one document, at a time, from an underlying Scalar
// Reader under a fixed Options. A Reader's three consumption modes
// (ParseElement, ReadElement, and the Navigator methods) all share the
// same cursor, so calls against one Reader must not be interleaved from
// multiple goroutines.
type Reader struct {
	src  scalar.Reader
	opts Options
}

// NewReaderFromString wraps s, a string already in memory.
func NewReaderFromString(s string, opts Options) *Reader {
	return &Reader{src: scalar.NewStringReader(s), opts: opts}
}

// NewReaderFromScalars wraps a slice of Unicode scalar values directly,
// skipping decoding entirely.
func NewReaderFromScalars(scalars []rune, opts Options) *Reader {
	return &Reader{src: scalar.NewListReader(scalars), opts: opts}
}

// NewReaderFromBytes wraps data, a byte buffer in a declared encoding.
func NewReaderFromBytes(data []byte, enc Encoding, opts Options) (*Reader, error) {
	src, err := scalar.NewByteReader(data, enc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return &Reader{src: src, opts: opts}, nil
}

// NewReaderFromBytesAutodetect wraps data, sniffing its encoding from a
// leading byte-order mark and defaulting to UTF-8 absent one.
func NewReaderFromBytesAutodetect(data []byte, opts Options) (*Reader, error) {
	src, err := scalar.NewByteReaderAutodetect(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return &Reader{src: src, opts: opts}, nil
}

// NewReaderFromStream wraps rd, a byte stream in a declared encoding. The
// stream is read lazily and every byte seen is retained so the cursor can
// be rewound; see internal/scalar.StreamReader.
func NewReaderFromStream(rd io.Reader, enc Encoding, opts Options) *Reader {
	return &Reader{src: scalar.NewStreamReader(rd, enc), opts: opts}
}

// NewReaderFromStreamAutodetect wraps rd, sniffing its encoding from a
// leading byte-order mark and defaulting to UTF-8 absent one.
func NewReaderFromStreamAutodetect(rd io.Reader, opts Options) *Reader {
	return &Reader{src: scalar.NewStreamReaderAutodetect(rd), opts: opts}
}

// Position returns the Reader's current cursor position.
func (r *Reader) Position() Position { return r.src.Position() }

// SetPosition relocates the Reader's cursor to a Position previously
// obtained from this same Reader.
func (r *Reader) SetPosition(pos Position) { r.src.SetPosition(pos) }

func (r *Reader) newParser(isRoot bool) *structural.Parser {
	return structural.New(lexer.New(r.src, r.opts), r.opts, isRoot)
}

// ParseElement parses one element at the cursor into an in-memory Value
// tree. isRoot enables root-only grammar (OmittedRootObjectBraces).
func (r *Reader) ParseElement(isRoot bool) (Value, error) {
	p := r.newParser(isRoot)
	defer p.Close()
	return buildValue(p)
}

// ParseElementAt seeks to pos and parses one element there, leaving the
// cursor just past it. It pairs with Position: a position saved earlier
// from this Reader can be parsed again later.
func (r *Reader) ParseElementAt(pos Position, isRoot bool) (Value, error) {
	r.src.SetPosition(pos)
	return r.ParseElement(isRoot)
}

// TokenStream is the pull-based token iterator returned by ReadElement.
type TokenStream struct {
	p *structural.Parser
}

// Next returns the next Token in document order, or io.EOF once the
// element has been fully read.
func (ts *TokenStream) Next() (Token, error) {
	tok, err := ts.p.Next()
	if err == structural.ErrDone {
		return Token{}, io.EOF
	}
	return tok, err
}

// Close abandons the stream before it has been read to completion,
// releasing the parser goroutine backing it. Safe to call after the
// stream has already finished on its own.
func (ts *TokenStream) Close() { ts.p.Close() }

// ReadElement parses one element at the cursor, exposing its tokens one
// at a time instead of building a Value tree. isRoot enables root-only
// grammar (OmittedRootObjectBraces). Callers that stop reading early must
// call Close.
func (r *Reader) ReadElement(isRoot bool) *TokenStream {
	return &TokenStream{p: r.newParser(isRoot)}
}

// FindProperty searches the object at the cursor for a member named
// name, returning its value. It returns ErrNotFound if the cursor is not
// on an object or the object has no such member.
func (r *Reader) FindProperty(name string) (Value, error) {
	p := r.newParser(false)
	defer p.Close()

	tok, err := nextToken(p)
	if err != nil {
		return Value{}, err
	}
	if tok.Kind != token.StartObject {
		return Value{}, fmt.Errorf("%w: value is not an object", ErrNotFound)
	}

	for {
		tok, err := nextToken(p)
		if err != nil {
			if err == structural.ErrDone {
				return Value{}, ErrNotFound
			}
			return Value{}, err
		}
		if tok.Kind == token.EndObject {
			return Value{}, ErrNotFound
		}
		if tok.Kind != token.PropertyName {
			return Value{}, fmt.Errorf("json: expected property name, got %v", tok.Kind)
		}
		if tok.Value == name {
			return buildValue(p)
		}
		if err := skipValue(p); err != nil {
			return Value{}, err
		}
	}
}

// FindIndex searches the array at the cursor for its i-th element,
// returning it. It returns ErrNotFound if the cursor is not on an array
// or i is out of range.
func (r *Reader) FindIndex(i int) (Value, error) {
	p := r.newParser(false)
	defer p.Close()

	tok, err := nextToken(p)
	if err != nil {
		return Value{}, err
	}
	if tok.Kind != token.StartArray {
		return Value{}, fmt.Errorf("%w: value is not an array", ErrNotFound)
	}

	idx := 0
	for {
		tok, err := nextToken(p)
		if err != nil {
			if err == structural.ErrDone {
				return Value{}, ErrNotFound
			}
			return Value{}, err
		}
		if tok.Kind == token.EndArray {
			return Value{}, ErrNotFound
		}
		if idx == i {
			return buildFromToken(p, tok)
		}
		if err := skipFromToken(p, tok); err != nil {
			return Value{}, err
		}
		idx++
	}
}

// ReadElementLength reports the length, in the Reader's native Position
// units, of the element at the cursor — the span from the cursor up to
// but excluding any trailing whitespace or comments, without
// constructing a Value for it.
func (r *Reader) ReadElementLength() (int64, error) {
	start := r.src.Position()
	lx := lexer.New(r.src, r.opts)
	p := structural.New(lx, r.opts, false)
	defer p.Close()

	if err := skipValue(p); err != nil {
		return 0, err
	}
	return int64(lx.Position() - start), nil
}

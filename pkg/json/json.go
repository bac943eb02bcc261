// Package json provides a streaming, pull-based parser for a family of
// JSON-like grammars — strict JSON, JSONC, JSON5 and Hjson — selected by
// a single Options value rather than by separate packages per dialect.
//
// A Reader wraps one of four input representations (a string, a slice of
// runes, a byte buffer, or a byte stream) and exposes three ways to
// consume it: ParseElement builds an in-memory Value tree, ReadElement
// yields the underlying token stream directly, and the Navigator methods
// (FindProperty, FindIndex, ReadElementLength) jump to a single member or
// element without materializing the rest of the document.
//
// All three modes share the same Structural Parser underneath; none of
// them buffer more of the input than the concrete Reader variant itself
// does.
//
//	r := json.NewReaderFromString(`{"name": "Alice", "age": 30}`, json.Json)
//	doc, err := r.ParseElement(true)
//
//	r = json.NewReaderFromString(`{unquoted: 'json5', trailing: [1, 2,]}`, json.Json5)
//	doc, err = r.ParseElement(true)
package json

import (
	"github.com/shapestone/shape-jsonx/internal/options"
	"github.com/shapestone/shape-jsonx/internal/scalar"
	"github.com/shapestone/shape-jsonx/internal/token"
)

// Position is an opaque, restorable cursor position into whatever a
// Reader wraps; see Reader.Position, Reader.SetPosition and
// Reader.ParseElementAt.
type Position = scalar.Position

// Encoding identifies the byte encoding of a []byte or io.Reader source.
type Encoding = scalar.Encoding

// Encoding values, re-exported from internal/scalar.
const (
	UTF8    = scalar.UTF8
	UTF16LE = scalar.UTF16LE
	UTF16BE = scalar.UTF16BE
	UTF32LE = scalar.UTF32LE
	UTF32BE = scalar.UTF32BE
	ASCII   = scalar.ASCII
)

// Options selects which grammar a Reader accepts. The zero value is
// strict RFC 8259 JSON; Jsonc, Json5 and Hjson are presets for the three
// other supported dialects.
type Options = options.Options

// Preset Options values, one per supported dialect.
var (
	Json  = options.Json
	Jsonc = options.Jsonc
	Json5 = options.Json5
	Hjson = options.Hjson
)

// Kind identifies the syntactic unit a Token represents.
type Kind = token.Kind

// Token kinds, re-exported from internal/token for callers consuming the
// ReadElement token stream directly.
const (
	KindNull         = token.Null
	KindTrue         = token.True
	KindFalse        = token.False
	KindString       = token.String
	KindNumber       = token.Number
	KindStartObject  = token.StartObject
	KindEndObject    = token.EndObject
	KindStartArray   = token.StartArray
	KindEndArray     = token.EndArray
	KindPropertyName = token.PropertyName
	KindComment      = token.Comment
)

// Token is one syntactic unit of the input: its kind, source span, and
// decoded payload.
type Token = token.Token

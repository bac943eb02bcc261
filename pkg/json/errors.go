package json

import "errors"

// ErrSyntax is wrapped by the error Unmarshal, UnmarshalOptions and
// Decoder.Decode return for malformed input, at either the lexical or
// structural level. The Reader methods (ParseElement, ReadElement and the
// Navigator methods) return parse errors without wrapping ErrSyntax.
var ErrSyntax = errors.New("json: syntax error")

// ErrEncoding is wrapped by any error arising from a malformed or
// unsupported byte encoding.
var ErrEncoding = errors.New("json: encoding error")

// ErrNotFound is returned by the Navigator methods (FindProperty,
// FindIndex) when the requested member or element does not exist. It is
// a plain miss, not a syntax error — the surrounding document may be
// perfectly well-formed.
var ErrNotFound = errors.New("json: not found")

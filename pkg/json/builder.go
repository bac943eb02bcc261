package json

import (
	"fmt"

	"github.com/shapestone/shape-jsonx/internal/token"
)

// tokenSource is satisfied by *internal/structural.Parser; kept narrow
// here so this file doesn't need to import that package at all.
type tokenSource interface {
	Next() (token.Token, error)
}

// nextToken pulls the next non-comment token from src, silently passing
// over any Comment tokens in between — the tree builder has no place to
// put a comment, so it ignores them exactly where the raw token stream
// would otherwise have to intrude on every caller here.
func nextToken(src tokenSource) (token.Token, error) {
	for {
		tok, err := src.Next()
		if err != nil || tok.Kind != token.Comment {
			return tok, err
		}
	}
}

// buildValue pulls one complete value's worth of tokens from src and
// assembles them into a Value tree.
func buildValue(src tokenSource) (Value, error) {
	tok, err := nextToken(src)
	if err != nil {
		return Value{}, err
	}
	return buildFromToken(src, tok)
}

// buildFromToken is buildValue for a token already pulled from src —
// used by the Navigator methods, which must inspect a token before
// deciding whether to build or skip it.
func buildFromToken(src tokenSource, tok token.Token) (Value, error) {
	switch tok.Kind {
	case token.Null:
		return newNull(), nil
	case token.True:
		return newBool(true), nil
	case token.False:
		return newBool(false), nil
	case token.String:
		return newString(tok.Value), nil
	case token.Number:
		return newNumber(tok.Value), nil
	case token.StartObject:
		return buildObject(src)
	case token.StartArray:
		return buildArray(src)
	default:
		return Value{}, fmt.Errorf("json: unexpected %v token building a value", tok.Kind)
	}
}

func buildObject(src tokenSource) (Value, error) {
	var members []property
	for {
		tok, err := nextToken(src)
		if err != nil {
			return Value{}, err
		}
		if tok.Kind == token.EndObject {
			return newObject(members), nil
		}
		if tok.Kind != token.PropertyName {
			return Value{}, fmt.Errorf("json: expected property name, got %v", tok.Kind)
		}
		val, err := buildValue(src)
		if err != nil {
			return Value{}, err
		}
		members = append(members, property{name: tok.Value, value: val})
	}
}

func buildArray(src tokenSource) (Value, error) {
	var elems []Value
	for {
		tok, err := nextToken(src)
		if err != nil {
			return Value{}, err
		}
		if tok.Kind == token.EndArray {
			return newArray(elems), nil
		}
		val, err := buildFromToken(src, tok)
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, val)
	}
}

// skipValue discards one complete value's worth of tokens from src
// without building anything, used by the Navigator methods to pass over
// members/elements that don't match what's being searched for.
func skipValue(src tokenSource) error {
	tok, err := nextToken(src)
	if err != nil {
		return err
	}
	return skipFromToken(src, tok)
}

func skipFromToken(src tokenSource, tok token.Token) error {
	switch tok.Kind {
	case token.StartObject:
		for {
			t, err := nextToken(src)
			if err != nil {
				return err
			}
			if t.Kind == token.EndObject {
				return nil
			}
			if t.Kind != token.PropertyName {
				return fmt.Errorf("json: expected property name, got %v", t.Kind)
			}
			if err := skipValue(src); err != nil {
				return err
			}
		}
	case token.StartArray:
		for {
			t, err := nextToken(src)
			if err != nil {
				return err
			}
			if t.Kind == token.EndArray {
				return nil
			}
			if err := skipFromToken(src, t); err != nil {
				return err
			}
		}
	default:
		return nil
	}
}

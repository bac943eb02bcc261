package lexer

import (
	"strings"

	"github.com/shapestone/shape-jsonx/internal/scalar"
	"github.com/shapestone/shape-jsonx/internal/token"
)

// NextPropertyName reads one object key — quoted, ECMA-identifier, or
// fully quoteless depending on Options — and consumes the separating
// colon (and any whitespace/comments before the name and before the
// colon) itself, leaving the cursor just past the colon; whitespace after
// the colon is left for the caller to skip. The colon is never emitted as
// its own token.
func (l *Lexer) NextPropertyName() (token.Token, error) {
	if err := l.SkipWhitespaceAndComments(); err != nil {
		return token.Token{}, err
	}
	start := l.r.Position()
	r, ok := l.r.Peek()
	if !ok {
		return token.Token{}, l.errorAt(start, "expected property name")
	}

	var value string
	var err error
	switch {
	case r == '"':
		value, err = l.readQuotedPropertyName(start, '"')
	case r == '\'' && l.opts.SingleQuotedStrings:
		value, err = l.readQuotedPropertyName(start, '\'')
	case l.opts.EcmaPropertyNames && (isEcmaIdentifierStart(r) || r == '\\'):
		value, err = l.readEcmaPropertyName(start)
	case l.opts.QuotelessPropertyNames:
		value, err = l.readQuotelessPropertyName(start)
	default:
		return token.Token{}, l.errorAt(start, "expected property name")
	}
	if err != nil {
		return token.Token{}, err
	}

	if err := l.SkipWhitespaceAndComments(); err != nil {
		return token.Token{}, err
	}
	if !l.r.TryRead(':') {
		return token.Token{}, l.errorAt(start, "expected ':' after property name")
	}

	return token.Token{
		Kind:     token.PropertyName,
		Position: start,
		Length:   int64(l.r.Position() - start),
		Value:    value,
	}, nil
}

// readQuotedPropertyName reuses the string body reader so quoted keys get
// the same escape handling as quoted string values.
func (l *Lexer) readQuotedPropertyName(start scalar.Position, quote rune) (string, error) {
	tok, err := l.readQuotedString(start, quote)
	if err != nil {
		return "", err
	}
	return tok.Value, nil
}

// readEcmaPropertyName reads a JSON5-style identifier key, which may also
// spell any of its scalars as a \uHHHH escape (a backslash, `u`, then four hex digits, e.g. `0061` for `a`).
func (l *Lexer) readEcmaPropertyName(start scalar.Position) (string, error) {
	var out []rune
	first := true
	for {
		c, ok := l.r.Peek()
		if !ok {
			break
		}
		if c == '\\' {
			save := l.r.Position()
			l.r.Read()
			if u, ok2 := l.r.Peek(); !ok2 || u != 'u' {
				l.r.SetPosition(save)
				break
			}
			l.r.Read()
			r, err := l.readHexEscape(start, 4)
			if err != nil {
				return "", err
			}
			if (first && !isEcmaIdentifierStart(r)) || (!first && !isEcmaIdentifierPart(r)) {
				return "", l.errorAt(start, "invalid identifier escape")
			}
			out = append(out, r)
			first = false
			continue
		}
		if (first && !isEcmaIdentifierStart(c)) || (!first && !isEcmaIdentifierPart(c)) {
			break
		}
		l.r.Read()
		out = append(out, c)
		first = false
	}
	if len(out) == 0 {
		return "", l.errorAt(start, "expected identifier")
	}
	return string(out), nil
}

// readQuotelessPropertyName reads a Hjson-style bareword key: everything
// up to the separating colon, with trailing horizontal whitespace
// trimmed.
func (l *Lexer) readQuotelessPropertyName(start scalar.Position) (string, error) {
	var out []rune
	for {
		c, ok := l.r.Peek()
		if !ok || c == ':' || c == '\n' {
			break
		}
		l.r.Read()
		out = append(out, c)
	}
	value := strings.TrimRight(string(out), " \t\r")
	if value == "" {
		return "", l.errorAt(start, "empty property name")
	}
	return value, nil
}

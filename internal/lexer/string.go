package lexer

import (
	"fmt"
	"strings"

	"github.com/shapestone/shape-jsonx/internal/scalar"
	"github.com/shapestone/shape-jsonx/internal/token"
)

// readQuotedString consumes the opening quote scalar and reads a
// double- or single-quoted string, delegating to the triple-quoted body
// reader when MultiQuotedStrings is enabled and the opener repeats three
// times (Hjson's ''' / """ multiline strings).
func (l *Lexer) readQuotedString(start scalar.Position, quote rune) (token.Token, error) {
	l.r.Read() // opening quote

	if l.opts.MultiQuotedStrings {
		save := l.r.Position()
		if q2, ok := l.r.Read(); ok && q2 == quote {
			if q3, ok := l.r.Read(); ok && q3 == quote {
				return l.readTripleQuotedBody(start, quote)
			}
		}
		l.r.SetPosition(save)
	}

	return l.readQuotedBody(start, quote)
}

func (l *Lexer) readQuotedBody(start scalar.Position, quote rune) (token.Token, error) {
	var out []rune
	for {
		c, ok := l.r.Read()
		if !ok {
			if l.opts.IncompleteInputs {
				break
			}
			return token.Token{}, l.errorAt(start, "unterminated string")
		}
		if c == quote {
			break
		}
		if c == '\n' {
			return token.Token{}, l.errorAt(start, "unescaped newline in string")
		}
		if c != '\\' {
			out = append(out, c)
			continue
		}

		esc, ok := l.r.Read()
		if !ok {
			if l.opts.IncompleteInputs {
				break
			}
			return token.Token{}, l.errorAt(start, "unterminated escape sequence")
		}

		switch esc {
		case '"', '\\', '/':
			out = append(out, esc)
		case '\'':
			if !l.opts.SingleQuotedStrings && !l.opts.InvalidStringEscapeSequences {
				return token.Token{}, l.errorAt(start, `escape sequence "\'" not allowed`)
			}
			out = append(out, esc)
		case 'b':
			out = append(out, '\b')
		case 'f':
			out = append(out, '\f')
		case 'n':
			out = append(out, '\n')
		case 'r':
			out = append(out, '\r')
		case 't':
			out = append(out, '\t')
		case 'v':
			out = append(out, '\v')
		case 'u':
			r, err := l.readHexEscape(start, 4)
			if err != nil {
				return token.Token{}, err
			}
			out = append(out, r)
		case 'x':
			if !l.opts.EscapedStringShortHex {
				if l.opts.InvalidStringEscapeSequences {
					out = append(out, 'x')
					continue
				}
				return token.Token{}, l.errorAt(start, `unknown escape sequence "\x"`)
			}
			r, err := l.readHexEscape(start, 2)
			if err != nil {
				return token.Token{}, err
			}
			out = append(out, r)
		case '\n', '\u2028', '\u2029':
			if !l.opts.EscapedStringNewlines {
				return token.Token{}, l.errorAt(start, "escaped newline not allowed")
			}
		case '\r':
			if !l.opts.EscapedStringNewlines {
				return token.Token{}, l.errorAt(start, "escaped newline not allowed")
			}
			if nxt, ok := l.r.Peek(); ok && nxt == '\n' {
				l.r.Read()
			}
		default:
			if l.opts.InvalidStringEscapeSequences {
				out = append(out, esc)
				continue
			}
			return token.Token{}, l.errorAt(start, fmt.Sprintf("invalid escape sequence \\%c", esc))
		}
	}

	return token.Token{
		Kind:     token.String,
		Position: start,
		Length:   int64(l.r.Position() - start),
		Value:    string(out),
	}, nil
}

func (l *Lexer) readHexEscape(start scalar.Position, n int) (rune, error) {
	var v rune
	for i := 0; i < n; i++ {
		c, ok := l.r.Read()
		if !ok || !isHexDigit(c) {
			return 0, l.errorAt(start, "invalid hex escape")
		}
		v = v<<4 | hexValue(c)
	}
	return v, nil
}

func hexValue(c rune) rune {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// readTripleQuotedBody reads a Hjson-style triple-quoted string body; the
// three opening quote scalars have already been consumed. Escapes are not
// processed inside triple-quoted strings — only the matching triple
// closer ends them.
func (l *Lexer) readTripleQuotedBody(start scalar.Position, quote rune) (token.Token, error) {
	var raw []rune
	for {
		c, ok := l.r.Read()
		if !ok {
			if l.opts.IncompleteInputs {
				break
			}
			return token.Token{}, l.errorAt(start, "unterminated triple-quoted string")
		}
		if c == quote {
			save := l.r.Position()
			if q2, ok2 := l.r.Read(); ok2 && q2 == quote {
				if q3, ok3 := l.r.Read(); ok3 && q3 == quote {
					break
				}
			}
			l.r.SetPosition(save)
		}
		raw = append(raw, c)
	}

	value := trimTripleQuoteIndent(string(raw))
	return token.Token{
		Kind:     token.String,
		Position: start,
		Length:   int64(l.r.Position() - start),
		Value:    value,
	}, nil
}

// trimTripleQuoteIndent implements the closing-delimiter-anchored
// indentation trim described in spec.md §9: the whitespace prefix of the
// line holding the closing delimiter is stripped from every line, a
// leading blank line right after the opener is dropped, and a trailing
// line left blank by that trim is dropped too. This is a deliberate
// simplification of upstream Hjson's column-tracking algorithm.
func trimTripleQuoteIndent(raw string) string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	lines := strings.Split(raw, "\n")
	if len(lines) <= 1 {
		return raw
	}
	if lines[0] == "" {
		lines = lines[1:]
	}
	if len(lines) == 0 {
		return ""
	}
	indent := leadingWhitespace(lines[len(lines)-1])
	if indent != "" {
		for i, ln := range lines {
			lines[i] = strings.TrimPrefix(ln, indent)
		}
	}
	if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func leadingWhitespace(s string) string {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return s[:i]
}

// readUnquotedString reads a bareword value token: everything up to a
// comma, closing bracket/brace, newline, EOF, or the start of a comment
// the current Options recognize, with trailing horizontal whitespace
// trimmed. This is both the direct value form under QuotelessStrings and
// the fallback path when a literal, number, or quoted-string scalar
// sequence turns out not to match its expected grammar.
func (l *Lexer) readUnquotedString(start scalar.Position) (token.Token, error) {
	var out []rune
	for {
		c, ok := l.r.Peek()
		if !ok || c == '\n' || c == ',' || c == '}' || c == ']' {
			break
		}
		if c == '#' && l.opts.HashComments {
			break
		}
		if c == '/' {
			save := l.r.Position()
			l.r.Read()
			nxt, ok2 := l.r.Peek()
			l.r.SetPosition(save)
			if ok2 && ((nxt == '/' && l.opts.LineComments) || (nxt == '*' && l.opts.BlockComments)) {
				break
			}
		}
		l.r.Read()
		out = append(out, c)
	}

	value := strings.TrimRight(string(out), " \t\r")
	if value == "" {
		return token.Token{}, l.errorAt(start, "empty unquoted string")
	}
	return token.Token{
		Kind:     token.String,
		Position: start,
		Length:   int64(l.r.Position() - start),
		Value:    value,
	}, nil
}

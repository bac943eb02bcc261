// Package lexer implements the Tokenizer: it consumes from a
// internal/scalar.Reader under a set of internal/options.Options and
// produces one internal/token.Token (or error) at a time for whichever
// primitive, comment, or property name sits at the cursor.
//
// It does not know about objects or arrays — composing primitive tokens
// into structures is internal/structural's job.
package lexer

import (
	"fmt"

	"github.com/shapestone/shape-jsonx/internal/options"
	"github.com/shapestone/shape-jsonx/internal/scalar"
	"github.com/shapestone/shape-jsonx/internal/token"
)

// Lexer reads tokens from a Scalar Reader under a fixed set of Options.
type Lexer struct {
	r    scalar.Reader
	opts options.Options

	// comments accumulates Comment tokens recorded by
	// SkipWhitespaceAndComments since the last DrainComments call. A
	// SetPosition that rewinds past a recorded comment's start discards
	// it again, so speculative lookahead (finishNumber's number/
	// unquoted-string disambiguation, the structural parser's
	// root-object sniff) never double-reports or leaks a comment from a
	// path that didn't actually take it.
	comments []token.Token
}

// New constructs a Lexer over r under opts.
func New(r scalar.Reader, opts options.Options) *Lexer {
	return &Lexer{r: r, opts: opts}
}

// Position returns the lexer's current cursor position.
func (l *Lexer) Position() scalar.Position { return l.r.Position() }

// SetPosition relocates the cursor; used by the structural parser's
// speculative lookahead paths (number/literal → unquoted-string fallback,
// root omitted-brace detection) to restore state after a failed guess.
// Any recorded comment starting at or after p is discarded along with it
// — a rewind means the comment was never really "seen" by the parse.
func (l *Lexer) SetPosition(p scalar.Position) {
	l.r.SetPosition(p)
	for len(l.comments) > 0 && l.comments[len(l.comments)-1].Position >= p {
		l.comments = l.comments[:len(l.comments)-1]
	}
}

// DrainComments returns every Comment token accumulated by
// SkipWhitespaceAndComments since the last DrainComments call, in
// document order, and clears the pending set. Callers that want comments
// to surface on the token stream — currently only the structural parser
// — must call this after every SkipWhitespaceAndComments to pick them up
// before emitting whatever comes next.
func (l *Lexer) DrainComments() []token.Token {
	c := l.comments
	l.comments = nil
	return c
}

// Peek, Read and TryRead expose the underlying Scalar Reader directly for
// the structural parser's own use when recognizing single structural
// characters ('{', '}', '[', ']', ','), which aren't tokens in their own
// right.
func (l *Lexer) Peek() (rune, bool)        { return l.r.Peek() }
func (l *Lexer) Read() (rune, bool)        { return l.r.Read() }
func (l *Lexer) TryRead(want rune) bool    { return l.r.TryRead(want) }

// errorAt wraps msg with the offending position, in the style the whole
// package uses for lexical errors.
func (l *Lexer) errorAt(pos scalar.Position, msg string) error {
	return fmt.Errorf("%w: %s at position %d", ErrLexical, msg, pos)
}

func (l *Lexer) makeToken(kind token.Kind, start scalar.Position, value string) token.Token {
	return token.Token{
		Kind:     kind,
		Position: start,
		Length:   int64(l.r.Position() - start),
		Value:    value,
	}
}

// --- whitespace & comments -------------------------------------------------

func isBasicWhitespace(r rune) bool {
	return r == '\n' || r == '\r' || r == ' ' || r == '\t'
}

// SkipWhitespaceAndComments consumes any run of whitespace and, when
// enabled, line/block/hash comments. It is idempotent and safe to call
// even when the cursor already sits on significant content. Each comment
// skipped is recorded as a Comment token (decoded text as its Value,
// delimiters stripped) for DrainComments to pick up.
func (l *Lexer) SkipWhitespaceAndComments() error {
	for {
		r, ok := l.r.Peek()
		if !ok {
			return nil
		}

		switch {
		case isBasicWhitespace(r):
			l.r.Read()
			continue

		case isUnicodeSpace(r):
			if !l.opts.AllWhitespace {
				return l.errorAt(l.r.Position(), "non-JSON whitespace scalar")
			}
			l.r.Read()
			continue

		case r == '/':
			start := l.r.Position()
			l.r.Read()
			next, ok := l.r.Peek()
			switch {
			case ok && next == '/' && l.opts.LineComments:
				l.r.Read()
				text := l.readLineCommentText()
				l.comments = append(l.comments, l.makeToken(token.Comment, start, text))
				continue
			case ok && next == '*' && l.opts.BlockComments:
				l.r.Read()
				text, err := l.readBlockCommentText(start)
				if err != nil {
					return err
				}
				l.comments = append(l.comments, l.makeToken(token.Comment, start, text))
				continue
			default:
				l.r.SetPosition(start)
				return nil
			}

		case r == '#' && l.opts.HashComments:
			start := l.r.Position()
			l.r.Read()
			text := l.readLineCommentText()
			l.comments = append(l.comments, l.makeToken(token.Comment, start, text))
			continue

		default:
			return nil
		}
	}
}

// readLineCommentText consumes through end of line (or EOF), returning
// everything after the opening "//" or "#" delimiter.
func (l *Lexer) readLineCommentText() string {
	var out []rune
	for {
		r, ok := l.r.Peek()
		if !ok || r == '\n' {
			return string(out)
		}
		l.r.Read()
		out = append(out, r)
	}
}

// readBlockCommentText consumes through the closing "*/", returning
// everything between the delimiters.
func (l *Lexer) readBlockCommentText(start scalar.Position) (string, error) {
	var out []rune
	for {
		r, ok := l.r.Read()
		if !ok {
			if l.opts.IncompleteInputs {
				return string(out), nil
			}
			return "", l.errorAt(start, "unterminated block comment")
		}
		if r == '*' {
			if next, ok := l.r.Peek(); ok && next == '/' {
				l.r.Read()
				return string(out), nil
			}
		}
		out = append(out, r)
	}
}

// --- primitive dispatch -----------------------------------------------------

// isStructuralOrQuote reports whether r is one of the characters that
// let a number stand as a number under the disambiguation rule in
// spec.md §4.2 ("after a number ... if the next scalar is a JSON
// structural/quote character").
func isStructuralOrQuote(r rune) bool {
	switch r {
	case ',', ':', '{', '}', '[', ']', '"', '\'':
		return true
	default:
		return false
	}
}

// NextValue reads one primitive token (null/true/false/string/number or,
// under QuotelessStrings, an unquoted string fallback) starting at the
// current cursor position, which must already sit past any leading
// whitespace/comments.
func (l *Lexer) NextValue() (token.Token, error) {
	start := l.r.Position()
	r, ok := l.r.Peek()
	if !ok {
		return token.Token{}, fmt.Errorf("%w: unexpected end of input", ErrLexical)
	}

	switch {
	case r == 'n':
		return l.readKeywordOrUnquoted(start, "null", token.Null)
	case r == 't':
		return l.readKeywordOrUnquoted(start, "true", token.True)
	case r == 'f':
		return l.readKeywordOrUnquoted(start, "false", token.False)
	case r == '"':
		return l.readQuotedString(start, '"')
	case r == '\'':
		if l.opts.SingleQuotedStrings {
			return l.readQuotedString(start, '\'')
		}
		if l.opts.QuotelessStrings {
			return l.readUnquotedString(start)
		}
		return token.Token{}, l.errorAt(start, "single-quoted strings are not allowed")
	case isDigit(r) || r == '-' || (r == '+' && l.opts.ExplicitPlusSigns) ||
		(r == '.' && l.opts.LeadingDecimalPoints) ||
		(l.opts.NamedFloatingPointLiterals && (r == 'I' || r == 'N')):
		return l.readNumber(start)
	default:
		if l.opts.QuotelessStrings {
			return l.readUnquotedString(start)
		}
		return token.Token{}, l.errorAt(start, fmt.Sprintf("unexpected character %q", r))
	}
}

// readKeywordOrUnquoted reads a fixed keyword (null/true/false), falling
// back to an unquoted string when it doesn't match and QuotelessStrings
// is enabled — the literal-matcher speculative path from spec.md §4.2/§9.
func (l *Lexer) readKeywordOrUnquoted(start scalar.Position, keyword string, kind token.Kind) (token.Token, error) {
	if l.matchKeyword(keyword) {
		return l.makeToken(kind, start, ""), nil
	}
	l.r.SetPosition(start)
	if l.opts.QuotelessStrings {
		return l.readUnquotedString(start)
	}
	return token.Token{}, l.errorAt(start, fmt.Sprintf("expected %q", keyword))
}

// matchKeyword consumes scalars matching word exactly, or returns false
// having consumed a non-restored prefix — callers always restore the
// cursor to their own saved start position on failure.
func (l *Lexer) matchKeyword(word string) bool {
	for _, want := range word {
		got, ok := l.r.Read()
		if !ok || got != want {
			return false
		}
	}
	return true
}

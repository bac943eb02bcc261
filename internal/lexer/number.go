package lexer

import (
	"github.com/shapestone/shape-jsonx/internal/scalar"
	"github.com/shapestone/shape-jsonx/internal/token"
)

// readNumber scans a JSON-family number starting at the cursor (which has
// not yet consumed anything of it) and returns it as a Number token
// carrying the verbatim lexeme. Under NamedFloatingPointLiterals a signed
// Infinity/NaN is recognized here too, but emitted as a String token per
// spec.md §4.2 — the grammar has no binary representation for either, so
// the verbatim lexeme is all that's carried forward.
//
// Every rejection point restores the cursor to start and hands off to
// numberFallback, which is how the unquoted-string dialects recover a
// malformed "number" as a bareword instead of a hard error.
func (l *Lexer) readNumber(start scalar.Position) (token.Token, error) {
	if ch, ok := l.r.Peek(); ok && (ch == '-' || ch == '+') {
		l.r.Read()
	}

	if l.opts.NamedFloatingPointLiterals {
		if ch, ok := l.r.Peek(); ok && (ch == 'I' || ch == 'N') {
			word := "Infinity"
			if ch == 'N' {
				word = "NaN"
			}
			if l.matchKeyword(word) {
				return l.makeToken(token.String, start, l.lexeme(start)), nil
			}
			return l.numberFallback(start)
		}
	}

	if consumed, ok := l.readHexBody(); consumed {
		if !ok {
			return l.numberFallback(start)
		}
		return l.finishNumber(start)
	}

	leadingDot := false
	if ch, ok := l.r.Peek(); ok && ch == '.' && l.opts.LeadingDecimalPoints {
		leadingDot = true
	}

	if !leadingDot {
		first, ok := l.r.Peek()
		if !ok || !isDigit(first) {
			return l.numberFallback(start)
		}
		if first == '0' {
			l.r.Read()
			if ch, ok2 := l.r.Peek(); ok2 && isDigit(ch) {
				if !l.opts.LeadingZeroes {
					return l.numberFallback(start)
				}
				l.readDigits()
			}
		} else {
			l.readDigits()
		}
	}

	if ch, ok := l.r.Peek(); ok && ch == '.' {
		l.r.Read()
		digits := l.readDigits()
		if digits == 0 && (leadingDot || !l.opts.TrailingDecimalPoints) {
			return l.numberFallback(start)
		}
	}

	if ch, ok := l.r.Peek(); ok && (ch == 'e' || ch == 'E') {
		l.r.Read()
		if sign, ok2 := l.r.Peek(); ok2 && (sign == '+' || sign == '-') {
			l.r.Read()
		}
		if l.readDigits() == 0 {
			return l.numberFallback(start)
		}
	}

	return l.finishNumber(start)
}

// readHexBody checks for, and if present consumes, a "0x"/"0X" prefix and
// its hex digits. consumed is true once the "0x" prefix itself has been
// committed to; ok is false if that commitment turned out to have no
// digits after it, in which case the caller must treat the whole number
// as malformed rather than falling back to decimal parsing.
func (l *Lexer) readHexBody() (consumed, ok bool) {
	if !l.opts.HexadecimalNumbers {
		return false, false
	}
	zero, have := l.r.Peek()
	if !have || zero != '0' {
		return false, false
	}
	save := l.r.Position()
	l.r.Read()
	x, have2 := l.r.Peek()
	if !have2 || (x != 'x' && x != 'X') {
		l.r.SetPosition(save)
		return false, false
	}
	l.r.Read()
	digits := l.readHexDigits()
	return true, digits > 0
}

func (l *Lexer) readHexDigits() int {
	n := 0
	for {
		c, ok := l.r.Peek()
		if !ok || !isHexDigit(c) {
			return n
		}
		l.r.Read()
		n++
	}
}

func (l *Lexer) readDigits() int {
	n := 0
	for {
		c, ok := l.r.Peek()
		if !ok || !isDigit(c) {
			return n
		}
		l.r.Read()
		n++
	}
}

// finishNumber applies the number → unquoted-string disambiguation rule:
// once QuotelessStrings is enabled, a syntactically complete number is
// only accepted as a number if the scalar immediately following it (past
// whitespace/comments) is EOF or one of the JSON structural/quote
// characters; otherwise the whole span from start is re-read as a single
// unquoted string, so "5 apples" lexes as one bareword rather than a
// number token followed by a stray "apples".
func (l *Lexer) finishNumber(start scalar.Position) (token.Token, error) {
	if !l.opts.QuotelessStrings {
		return l.makeToken(token.Number, start, l.lexeme(start)), nil
	}

	save := l.r.Position()
	accept := true
	// A lookahead error (e.g. an unterminated comment) just means: stop
	// guessing and keep the number as-is.
	if err := l.SkipWhitespaceAndComments(); err == nil {
		if ch, ok := l.r.Peek(); ok && !isStructuralOrQuote(ch) {
			accept = false
		}
	}
	l.SetPosition(save)

	if accept {
		return l.makeToken(token.Number, start, l.lexeme(start)), nil
	}
	l.r.SetPosition(start)
	return l.readUnquotedString(start)
}

func (l *Lexer) numberFallback(start scalar.Position) (token.Token, error) {
	l.r.SetPosition(start)
	if l.opts.QuotelessStrings {
		return l.readUnquotedString(start)
	}
	return token.Token{}, l.errorAt(start, "invalid number")
}

// lexeme re-reads the scalars between start and the current position into
// a string, used once a token's span is already known to be valid so the
// verbatim text can be captured without having threaded a buffer through
// every intermediate Read call.
func (l *Lexer) lexeme(start scalar.Position) string {
	end := l.r.Position()
	l.r.SetPosition(start)
	var out []rune
	for l.r.Position() < end {
		c, ok := l.r.Read()
		if !ok {
			break
		}
		out = append(out, c)
	}
	return string(out)
}

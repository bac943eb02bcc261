// Package structural implements the Structural Parser: it drives an
// internal/lexer.Lexer through a recursive-descent grammar for objects,
// arrays, and root-level elements, and exposes the result as a pull-based
// token stream.
//
// The parse itself runs as a goroutine — a "recursive coroutine" in the
// literal sense: the recursive-descent functions below call emit to hand
// a token to whatever is pulling from Next, blocking until it's consumed
// or the stream is abandoned via Close. This is the most direct way to
// express a lazy, resumable generator over a recursive grammar in Go
// without hand-rolling an explicit stack machine.
package structural

import (
	"errors"
	"fmt"

	"github.com/shapestone/shape-jsonx/internal/lexer"
	"github.com/shapestone/shape-jsonx/internal/options"
	"github.com/shapestone/shape-jsonx/internal/token"
)

// ErrDone is returned by Next once the token stream is exhausted with no
// error — a clean end of input.
var ErrDone = errors.New("structural: token stream exhausted")

// maxNestingDepth bounds how many objects and arrays may nest inside one
// another. Input deeper than this is almost certainly pathological or
// adversarial rather than a document anyone intends to navigate by hand.
const maxNestingDepth = 1024

// item is what flows over the parser's internal channel: exactly one of a
// token or a terminal error.
type item struct {
	tok token.Token
	err error
}

// Parser pulls tokens one at a time from a single pass over a Lexer. A
// Parser is single-use: it enumerates exactly one root element and then
// the stream ends.
type Parser struct {
	lex    *lexer.Lexer
	opts   options.Options
	isRoot bool
	depth  int

	out  chan item
	stop chan struct{}
}

// New starts a Parser over lex, beginning at the lexer's current cursor
// position. isRoot controls whether root-only grammar (currently,
// OmittedRootObjectBraces) applies to the element being parsed; pass
// false when parsing a value nested inside some other structure, such as
// from the Navigator methods. The parse runs in its own goroutine;
// callers must either drain Next to completion or call Close to abandon
// it, or the goroutine leaks blocked on its send.
func New(lex *lexer.Lexer, opts options.Options, isRoot bool) *Parser {
	p := &Parser{
		lex:    lex,
		opts:   opts,
		isRoot: isRoot,
		out:    make(chan item),
		stop:   make(chan struct{}),
	}
	go p.run()
	return p
}

// Next returns the next token in document order, or ErrDone once the
// stream is exhausted. Any other error is itself the final item the
// stream yields; Next must not be called again afterward.
func (p *Parser) Next() (token.Token, error) {
	it, open := <-p.out
	if !open {
		return token.Token{}, ErrDone
	}
	return it.tok, it.err
}

// Close abandons the parse, releasing the goroutine if it is blocked
// mid-emit. Safe to call multiple times and safe to call after the
// stream has already finished on its own.
func (p *Parser) Close() {
	select {
	case <-p.stop:
	default:
		close(p.stop)
	}
}

func (p *Parser) run() {
	defer close(p.out)
	if err := p.parseElement(p.isRoot); err != nil {
		p.fail(err)
	}
}

// emit hands tok to the consumer, or returns false if the stream has been
// abandoned, in which case every recursive caller up the stack must
// unwind without doing further work.
func (p *Parser) emit(tok token.Token) bool {
	select {
	case p.out <- item{tok: tok}:
		return true
	case <-p.stop:
		return false
	}
}

func (p *Parser) fail(err error) {
	select {
	case p.out <- item{err: err}:
	case <-p.stop:
	}
}

// skipWhitespaceAndComments runs the lexer's whitespace/comment skip and
// emits a Comment token for each comment it actually consumed, in
// document order, before returning its error (if any). Comments from a
// speculative lookahead that the lexer later rewinds past (see
// Lexer.SetPosition) are dropped before they ever reach here.
func (p *Parser) skipWhitespaceAndComments() error {
	err := p.lex.SkipWhitespaceAndComments()
	for _, c := range p.lex.DrainComments() {
		if !p.emit(c) {
			return nil
		}
	}
	return err
}

// nextPropertyName wraps Lexer.NextPropertyName, surfacing any comments
// the lexer skipped while reading the name (both before it and between
// it and the separating colon) as Comment tokens ahead of the name
// itself.
func (p *Parser) nextPropertyName() (token.Token, error) {
	tok, err := p.lex.NextPropertyName()
	for _, c := range p.lex.DrainComments() {
		if !p.emit(c) {
			return token.Token{}, nil
		}
	}
	return tok, err
}

// parseElement parses one value at the cursor: an object, an array, a
// primitive, or — at the root, under OmittedRootObjectBraces — an
// unwrapped sequence of members.
func (p *Parser) parseElement(isRoot bool) error {
	if err := p.skipWhitespaceAndComments(); err != nil {
		return err
	}
	r, ok := p.lex.Peek()

	switch {
	case ok && r == '{':
		return p.parseObject()
	case ok && r == '[':
		return p.parseArray()
	}

	if isRoot && p.opts.OmittedRootObjectBraces && p.looksLikeRootObject() {
		return p.parseObjectMembers(false)
	}

	if !ok {
		if p.opts.IncompleteInputs {
			return nil
		}
		return fmt.Errorf("structural: unexpected end of input")
	}

	return p.parseValue()
}

// looksLikeRootObject speculatively tries to read a property name at the
// cursor, restoring the cursor regardless of the outcome. A successful
// read means the root document is an implicit (brace-less) object.
func (p *Parser) looksLikeRootObject() bool {
	save := p.lex.Position()
	_, err := p.lex.NextPropertyName()
	p.lex.SetPosition(save)
	return err == nil
}

func (p *Parser) enterNesting() error {
	p.depth++
	if p.depth > maxNestingDepth {
		return fmt.Errorf("structural: nesting depth exceeds maximum of %d", maxNestingDepth)
	}
	return nil
}

func (p *Parser) exitNesting() {
	p.depth--
}

func (p *Parser) parseValue() error {
	if err := p.skipWhitespaceAndComments(); err != nil {
		return err
	}
	tok, err := p.lex.NextValue()
	if err != nil {
		return err
	}
	if !p.emit(tok) {
		return nil
	}
	return nil
}

func (p *Parser) parseObject() error {
	if err := p.enterNesting(); err != nil {
		return err
	}
	defer p.exitNesting()

	start := p.lex.Position()
	p.lex.Read() // '{'
	if !p.emit(token.Token{Kind: token.StartObject, Position: start, Length: int64(p.lex.Position() - start)}) {
		return nil
	}
	return p.parseObjectMembers(true)
}

// parseObjectMembers parses the name:value members of an object. braced
// is false for a root document under OmittedRootObjectBraces, in which
// case there is no closing '}' to look for — the members simply run to
// end of input.
func (p *Parser) parseObjectMembers(braced bool) error {
	seenAny := false
	for {
		if err := p.skipWhitespaceAndComments(); err != nil {
			return err
		}
		r, ok := p.lex.Peek()

		if closed, err := p.tryEndObject(braced, r, ok); err != nil {
			return err
		} else if closed {
			return nil
		}

		if seenAny {
			sep, err := p.consumeSeparator(r, ok)
			if err != nil {
				return err
			}
			if sep {
				if err := p.skipWhitespaceAndComments(); err != nil {
					return err
				}
				r, ok = p.lex.Peek()
				if braced && ok && r == '}' && !p.opts.TrailingCommas {
					return fmt.Errorf("structural: trailing comma not allowed")
				}
				if closed, err := p.tryEndObject(braced, r, ok); err != nil {
					return err
				} else if closed {
					if !p.opts.TrailingCommas {
						return fmt.Errorf("structural: trailing comma not allowed")
					}
					return nil
				}
			}
		}
		seenAny = true

		nameTok, err := p.nextPropertyName()
		if err != nil {
			return err
		}
		if !p.emit(nameTok) {
			return nil
		}
		if err := p.parseElement(false); err != nil {
			return err
		}
	}
}

func (p *Parser) tryEndObject(braced bool, r rune, ok bool) (bool, error) {
	if braced {
		if ok && r == '}' {
			start := p.lex.Position()
			p.lex.Read()
			p.emit(token.Token{Kind: token.EndObject, Position: start, Length: int64(p.lex.Position() - start)})
			return true, nil
		}
		if !ok {
			if p.opts.IncompleteInputs {
				pos := p.lex.Position()
				p.emit(token.Token{Kind: token.EndObject, Position: pos, Length: 0})
				return true, nil
			}
			return false, fmt.Errorf("structural: unterminated object")
		}
		return false, nil
	}
	return !ok, nil
}

func (p *Parser) parseArray() error {
	if err := p.enterNesting(); err != nil {
		return err
	}
	defer p.exitNesting()

	start := p.lex.Position()
	p.lex.Read() // '['
	if !p.emit(token.Token{Kind: token.StartArray, Position: start, Length: int64(p.lex.Position() - start)}) {
		return nil
	}
	return p.parseArrayElements()
}

func (p *Parser) parseArrayElements() error {
	seenAny := false
	for {
		if err := p.skipWhitespaceAndComments(); err != nil {
			return err
		}
		r, ok := p.lex.Peek()

		if ok && r == ']' {
			start := p.lex.Position()
			p.lex.Read()
			p.emit(token.Token{Kind: token.EndArray, Position: start, Length: int64(p.lex.Position() - start)})
			return nil
		}
		if !ok {
			if p.opts.IncompleteInputs {
				p.emit(token.Token{Kind: token.EndArray, Position: p.lex.Position(), Length: 0})
				return nil
			}
			return fmt.Errorf("structural: unterminated array")
		}

		if seenAny {
			sep, err := p.consumeSeparator(r, ok)
			if err != nil {
				return err
			}
			if sep {
				if err := p.skipWhitespaceAndComments(); err != nil {
					return err
				}
				r, ok = p.lex.Peek()
				if ok && r == ']' {
					if !p.opts.TrailingCommas {
						return fmt.Errorf("structural: trailing comma not allowed")
					}
					start := p.lex.Position()
					p.lex.Read()
					p.emit(token.Token{Kind: token.EndArray, Position: start, Length: int64(p.lex.Position() - start)})
					return nil
				}
			}
		}
		seenAny = true

		if err := p.parseElement(false); err != nil {
			return err
		}
	}
}

// consumeSeparator consumes a ',' if present, or — under OmittedCommas —
// allows the next member/element to follow directly with nothing
// consumed.
func (p *Parser) consumeSeparator(r rune, ok bool) (consumed bool, err error) {
	if ok && r == ',' {
		p.lex.Read()
		return true, nil
	}
	if p.opts.OmittedCommas {
		return false, nil
	}
	return false, fmt.Errorf("structural: expected ','")
}

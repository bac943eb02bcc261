package lexer

import "errors"

// ErrLexical is wrapped by every error the lexer returns, so callers can
// distinguish a malformed token from a structural or navigation error
// with errors.Is.
var ErrLexical = errors.New("lexer: malformed token")

// Package options holds the grammar toggles shared by the tokenizer and
// structural parser. It has no dependents below it in the import graph so
// that both the lexer and the public pkg/json package can depend on it
// without creating a cycle.
package options

// Options selects which non-strict-JSON features the tokenizer and
// structural parser accept. The zero value is strict JSON: every flag
// defaults to false. Beyond RFC 8259, a reader constructed with the zero
// value still accepts the "\v" escape, and it does not reject unescaped
// control characters other than line feed inside strings.
type Options struct {
	LineComments     bool // "//" through end of line
	BlockComments    bool // "/* ... */", non-nested
	HashComments     bool // "#" through end of line

	TrailingCommas bool // one comma allowed before a closing "}" or "]"
	OmittedCommas  bool // a separator is optional between siblings

	AllWhitespace bool // any Unicode whitespace scalar is accepted, not just space/tab/CR/LF

	QuotelessPropertyNames bool // bareword keys, terminated by ":"
	EcmaPropertyNames      bool // ECMAScript IdentifierName keys

	SingleQuotedStrings bool // '...'
	MultiQuotedStrings  bool // '''...''' with indent trimming
	QuotelessStrings    bool // unquoted values, terminated by a line break

	EscapedStringNewlines  bool // "\" followed by a line terminator inside a string is elided
	EscapedStringShortHex  bool // \xHH escapes
	InvalidStringEscapeSequences bool // any other "\" + char is accepted literally

	LeadingZeroes          bool // "007" style integers
	LeadingDecimalPoints   bool // ".5"
	TrailingDecimalPoints  bool // "5."
	ExplicitPlusSigns      bool // "+5"
	NamedFloatingPointLiterals bool // Infinity, NaN (optionally signed)
	HexadecimalNumbers     bool // "0x..." / "0X..."

	OmittedRootObjectBraces bool // a root-level object need not be wrapped in "{" "}"

	IncompleteInputs bool // EOF inside an open construct ends it cleanly instead of erroring
}

// Json is strict RFC 8259 JSON: every flag is false.
var Json = Options{}

// Jsonc is JSON with comments and trailing commas, the dialect used by
// tsconfig.json and similar tooling configuration files.
var Jsonc = Options{
	LineComments:   true,
	BlockComments:  true,
	TrailingCommas: true,
}

// Json5 is the JSON5 specification: ECMAScript-style object keys, single
// quoted strings, more permissive numbers, and comments.
var Json5 = Options{
	EcmaPropertyNames:         true,
	TrailingCommas:            true,
	SingleQuotedStrings:       true,
	EscapedStringNewlines:     true,
	EscapedStringShortHex:     true,
	InvalidStringEscapeSequences: true,
	HexadecimalNumbers:        true,
	LeadingDecimalPoints:      true,
	TrailingDecimalPoints:     true,
	NamedFloatingPointLiterals: true,
	ExplicitPlusSigns:         true,
	LineComments:              true,
	BlockComments:             true,
	AllWhitespace:             true,
}

// Hjson is the Hjson dialect: quoteless keys and values, omitted root
// braces, and three comment styles.
var Hjson = Options{
	QuotelessPropertyNames:  true,
	TrailingCommas:          true,
	OmittedCommas:           true,
	SingleQuotedStrings:     true,
	MultiQuotedStrings:      true,
	QuotelessStrings:        true,
	EscapedStringNewlines:   true,
	LineComments:            true,
	BlockComments:           true,
	HashComments:            true,
	OmittedRootObjectBraces: true,
}

// Package scalar implements the Scalar Reader: a seekable cursor over
// Unicode scalar values, with one concrete variant per input
// representation (string, scalar list, byte buffer, byte stream).
//
// All four variants satisfy the same Reader interface so the lexer above
// them never needs to know which one it was handed.
package scalar

// Position is a monotonically increasing index into the underlying
// source. Its unit is opaque and variant-specific (a UTF-16 code unit
// index for the string-backed reader, a scalar count for the list-backed
// reader, a byte offset for the buffer- and stream-backed readers); the
// only operations a caller may perform on it are storing it and later
// restoring it on the same Reader.
type Position int64

// Reader is a seekable cursor over a sequence of Unicode scalar values.
//
// Peek must not consume input. TryRead consumes the next scalar iff it
// equals the argument; otherwise the cursor is left exactly where it was.
// Implementations must make Position cheap to read and to restore, since
// the lexer saves and restores it on every speculative lookahead path.
type Reader interface {
	// Peek returns the next scalar without consuming it. ok is false at
	// end of input.
	Peek() (r rune, ok bool)

	// Read consumes and returns the next scalar. ok is false at end of
	// input, in which case the cursor does not advance.
	Read() (r rune, ok bool)

	// TryRead consumes the next scalar iff it equals want, returning
	// whether it did. The cursor is unchanged when it returns false.
	TryRead(want rune) bool

	// ReadToEnd consumes and returns every remaining scalar.
	ReadToEnd() []rune

	// Position returns the current cursor position.
	Position() Position

	// SetPosition moves the cursor. pos must have been obtained from a
	// prior call to Position on the same Reader.
	SetPosition(pos Position)

	// Length returns the position just past the final scalar of the
	// source.
	Length() Position
}

package pathd

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCommand is reported for a letter outside the path grammar.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrBadNumber is reported for an operand that is not a number.
	ErrBadNumber = errors.New("malformed number")
	// ErrOperandCount is reported when a command's operands do not fill
	// a whole number of segments.
	ErrOperandCount = errors.New("wrong number of operands")
	// ErrNoMoveTo is reported for path data that does not start with a move.
	ErrNoMoveTo = errors.New("path data must start with a move")
)

// SyntaxError describes where in the path data parsing failed.
type SyntaxError struct {
	// Offset is the byte position of the offending command in the input.
	Offset int
	Cmd    byte
	Text   string
	Err    error
}

func (e *SyntaxError) Error() string {
	if e.Cmd == 0 {
		return fmt.Sprintf("offset %d: %s: %q", e.Offset, e.Err, e.Text)
	}
	return fmt.Sprintf("offset %d: %c: %s: %q", e.Offset, e.Cmd, e.Err, e.Text)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

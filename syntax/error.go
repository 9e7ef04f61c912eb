package syntax

import "fmt"

// Error is a parse error: the pattern failed to match the grammar.
// It carries a human-readable message naming the offending token or
// condition. Parse sees only tokens and leaves Pattern empty; the root
// package's tinyregex.Error carries the pattern text.
//
// Offset is the byte offset of the offending token in the source pattern,
// or -1 when no single token is to blame.
type Error struct {
	Pattern string
	Msg     string
	Offset  int
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Pattern != "" {
		if e.Offset >= 0 {
			return fmt.Sprintf("parse error in %q at byte %d: %s", e.Pattern, e.Offset, e.Msg)
		}
		return fmt.Sprintf("parse error in %q: %s", e.Pattern, e.Msg)
	}
	if e.Offset >= 0 {
		return fmt.Sprintf("parse error at byte %d: %s", e.Offset, e.Msg)
	}
	return fmt.Sprintf("parse error: %s", e.Msg)
}

func errf(pos int, format string, args ...any) error {
	return &Error{Msg: fmt.Sprintf(format, args...), Offset: pos}
}

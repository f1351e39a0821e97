package bitvec

import (
	"errors"
	"fmt"
)

var (
	// ErrIndefinite is returned when a finite answer is requested from an
	// indefinite (co-finite) set: cardinality, array materialization,
	// iteration, the most significant bit, or any conversion that would
	// have to enumerate an unbounded number of members.
	ErrIndefinite = errors.New("bitvec: operation undefined on an indefinite set")

	// ErrUnsupportedBase is returned by ToString for bases other than 2 and 16.
	ErrUnsupportedBase = errors.New("bitvec: unsupported base")
)

// ParseError describes malformed textual, numeric, byte or index input to
// one of the constructors.
type ParseError struct {
	// Input is the rejected input, abbreviated if very long.
	Input string
	// Pos is the byte offset of the offending character, or -1 when the
	// error is not positional (e.g. a negative integer input).
	Pos int
	// Reason is a short human-readable cause.
	Reason string
}

func (e *ParseError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("bitvec: cannot parse %q: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("bitvec: cannot parse %q at offset %d: %s", e.Input, e.Pos, e.Reason)
}

// IndexError reports an input-constraint violation at an index-taking
// operation: a negative index, an inverted range, or a negative shift
// count. Operations panic with an *IndexError value rather than
// returning it.
type IndexError struct {
	// Op is the operation that rejected its arguments, e.g. "SetRange".
	Op string
	// From and To are the offending arguments. Single-index operations
	// leave To equal to From.
	From, To int
}

func (e *IndexError) Error() string {
	if e.From == e.To {
		return fmt.Sprintf("bitvec: %s: invalid index %d", e.Op, e.From)
	}
	return fmt.Sprintf("bitvec: %s: invalid range [%d,%d)", e.Op, e.From, e.To)
}

// checkIndex panics unless i is a valid bit index.
func checkIndex(op string, i int) {
	if i < 0 {
		panic(&IndexError{Op: op, From: i, To: i})
	}
}

// checkRange panics unless [from,to) is a valid half-open bit range.
func checkRange(op string, from, to int) {
	if from < 0 || from > to {
		panic(&IndexError{Op: op, From: from, To: to})
	}
}

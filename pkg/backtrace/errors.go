package backtrace

import "fmt"

// ParseError describes the first point at which the input stopped matching
// the trace grammar. Parsing is all-or-nothing: a failed parse produces
// only a ParseError, never a partial Backtrace.
type ParseError struct {
	// Offset is the byte position in the input where matching failed.
	Offset int

	// Expected describes the token the grammar required at Offset.
	Expected string
}

// Error renders the failure as a human-readable message with its position.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: expected %s", e.Offset, e.Expected)
}

package backtrace

import (
	"strconv"
	"strings"
)

// scanner is a single left-to-right cursor over the input. Recognizers
// advance pos on success and report a ParseError positioned at the point
// of mismatch on failure. Callers that try ordered-choice alternatives
// save and restore pos themselves.
type scanner struct {
	input string
	pos   int
}

func (s *scanner) errf(offset int, expected string) *ParseError {
	return &ParseError{Offset: offset, Expected: expected}
}

// skipSpaces advances past spaces, tabs, carriage returns and newlines.
// Whitespace separates tokens and carries no meaning, so frames and
// symbols may be rendered on one line or spread over several.
func (s *scanner) skipSpaces() {
	for s.pos < len(s.input) {
		switch s.input[s.pos] {
		case ' ', '\t', '\r', '\n':
			s.pos++
		default:
			return
		}
	}
}

// atEnd reports whether only consumed input remains.
func (s *scanner) atEnd() bool {
	return s.pos >= len(s.input)
}

// literal consumes lit if it appears at the cursor.
func (s *scanner) literal(lit string) bool {
	if strings.HasPrefix(s.input[s.pos:], lit) {
		s.pos += len(lit)
		return true
	}
	return false
}

// decimalDigits consumes the run of ASCII digits at the cursor, which may
// be empty.
func (s *scanner) decimalDigits() string {
	start := s.pos
	for s.pos < len(s.input) && isDigit(s.input[s.pos]) {
		s.pos++
	}
	return s.input[start:s.pos]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// frameIndex recognizes one-or-more decimal digits followed by ":" and
// converts them to uint64. Digits that do not fit invalidate the whole
// frame: that is a structural error, not a degradation.
func (s *scanner) frameIndex() (uint64, error) {
	start := s.pos
	digits := s.decimalDigits()
	if digits == "" {
		return 0, s.errf(start, "frame index digits")
	}
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, s.errf(start, "frame index that fits in 64 bits")
	}
	if !s.literal(":") {
		return 0, s.errf(s.pos, `":" after frame index`)
	}
	return n, nil
}

// framePointer recognizes "0x" followed by one-or-more hex digits,
// converted to uint64.
func (s *scanner) framePointer() (uint64, error) {
	if !s.literal("0x") {
		return 0, s.errf(s.pos, `"0x" frame pointer prefix`)
	}
	start := s.pos
	for s.pos < len(s.input) && isHexDigit(s.input[s.pos]) {
		s.pos++
	}
	digits := s.input[start:s.pos]
	if digits == "" {
		return 0, s.errf(start, "frame pointer hex digits")
	}
	n, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, s.errf(start, "frame pointer that fits in 64 bits")
	}
	return n, nil
}

// symbolName tries the <unknown> marker first, then falls back to taking
// everything up to the next newline (or the end of input). Ordered choice:
// a literal <unknown> never becomes a name. A zero-length run at the end
// of input is a mismatch, so a bare trailing "-" fails rather than
// producing a symbol with an empty name.
func (s *scanner) symbolName() (name string, hasName bool, err error) {
	if s.literal("<unknown>") {
		return "", false, nil
	}
	start := s.pos
	if i := strings.IndexByte(s.input[s.pos:], '\n'); i >= 0 {
		s.pos += i
	} else {
		s.pos = len(s.input)
	}
	if s.pos == start && s.atEnd() {
		return "", false, s.errf(start, "symbol name")
	}
	return s.input[start:s.pos], true, nil
}

// symbolLocation recognizes `at <path>:<line>`, where the path runs up to
// the next ":". A line number too large for uint32 degrades to hasLine ==
// false while the filename is still returned; that is the only non-fatal
// numeric failure in the grammar.
func (s *scanner) symbolLocation() (file string, line uint32, hasLine bool, err error) {
	if !s.literal("at") {
		return "", 0, false, s.errf(s.pos, `"at" location clause`)
	}
	s.skipSpaces()
	rel := strings.IndexByte(s.input[s.pos:], ':')
	if rel < 0 {
		return "", 0, false, s.errf(s.pos, `":" separating path and line number`)
	}
	file = s.input[s.pos : s.pos+rel]
	s.pos += rel + 1
	start := s.pos
	digits := s.decimalDigits()
	if digits == "" {
		return "", 0, false, s.errf(start, "line number digits")
	}
	if n, perr := strconv.ParseUint(digits, 10, 32); perr == nil {
		return file, uint32(n), true, nil
	}
	return file, 0, false, nil
}

// noSymbolMarker consumes `- <unresolved>` or `- <no info>` if present.
// Both mark a frame whose symbols could not be resolved at capture time.
func (s *scanner) noSymbolMarker() bool {
	save := s.pos
	if !s.literal("-") {
		return false
	}
	s.skipSpaces()
	if s.literal("<unresolved>") || s.literal("<no info>") {
		return true
	}
	s.pos = save
	return false
}

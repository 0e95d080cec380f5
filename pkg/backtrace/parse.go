package backtrace

// Parse parses a captured stack-trace dump into a Backtrace.
//
// The input must begin with the "stack backtrace:" header and contain at
// least one frame; arbitrary whitespace, including newlines, may separate
// every token after the header. Parsing is atomic: any structural mismatch
// returns a *ParseError carrying the failing byte offset and the expected
// token, and no partial result.
//
// Parse is pure and deterministic. Independent calls, including calls on
// the same input, may run concurrently.
func Parse(input string) (*Backtrace, error) {
	s := &scanner{input: input}

	if !s.literal("stack backtrace:") {
		return nil, s.errf(0, `"stack backtrace:" header`)
	}

	// Frame repetition is iterative so that traces with thousands of
	// frames cannot exhaust the stack.
	var frames []Frame
	for {
		s.skipSpaces()
		if s.atEnd() {
			break
		}
		f, err := s.frame()
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}

	if len(frames) == 0 {
		return nil, s.errf(s.pos, "at least one frame after the header")
	}
	return &Backtrace{frames: frames}, nil
}

// frame recognizes one frame: index, pointer, then either the no-symbol
// marker or one-or-more symbol entries. Index and pointer are validated
// and discarded.
func (s *scanner) frame() (Frame, error) {
	if _, err := s.frameIndex(); err != nil {
		return Frame{}, err
	}
	s.skipSpaces()
	if _, err := s.framePointer(); err != nil {
		return Frame{}, err
	}
	s.skipSpaces()
	symbols, err := s.frameSymbols()
	if err != nil {
		return Frame{}, err
	}
	return Frame{symbols: symbols}, nil
}

// frameSymbols recognizes a frame's symbol section. Alternatives in
// order: the <unresolved> / <no info> marker (empty list), otherwise
// one-or-more symbols. The symbol loop stops at the first position that
// does not open another symbol entry, restoring the cursor so the next
// frame (or end of input) is matched from there.
func (s *scanner) frameSymbols() ([]Symbol, error) {
	if s.noSymbolMarker() {
		return nil, nil
	}

	var symbols []Symbol
	for {
		save := s.pos
		s.skipSpaces()
		sym, err := s.symbol()
		if err != nil {
			s.pos = save
			if len(symbols) == 0 {
				// A frame needs a symbol section; surface the
				// mismatch that ended the first attempt.
				return nil, err
			}
			return symbols, nil
		}
		symbols = append(symbols, sym)
	}
}

// symbol recognizes one symbol entry: the "-" marker, a name, and an
// optional location clause. The location attempt is fully backtracked
// when `at <path>:<digits>` does not match, so text that merely resembles
// a location stays untouched for the next symbol or frame.
func (s *scanner) symbol() (Symbol, error) {
	if !s.literal("-") {
		return Symbol{}, s.errf(s.pos, `"-" symbol marker`)
	}
	s.skipSpaces()

	name, hasName, err := s.symbolName()
	if err != nil {
		return Symbol{}, err
	}
	sym := Symbol{name: name, hasName: hasName}

	save := s.pos
	s.skipSpaces()
	file, line, hasLine, err := s.symbolLocation()
	if err != nil {
		s.pos = save
		return sym, nil
	}
	sym.filename = file
	sym.hasFile = true
	sym.lineno = line
	sym.hasLine = hasLine
	return sym, nil
}

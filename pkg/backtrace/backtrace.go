// Package backtrace parses the textual stack-trace dump format emitted by
// runtime backtrace capture into a structured, navigable representation.
//
// All text values in a parsed result are substrings of the original input
// and share its backing storage; nothing is copied. The input must be
// treated as immutable for as long as any parsed value is in use.
package backtrace

// Backtrace is the root of a parsed trace: an ordered list of frames in
// their order of appearance in the input.
type Backtrace struct {
	frames []Frame
}

// Frames returns the parsed frames in source order. A successful parse
// always yields at least one frame.
func (b *Backtrace) Frames() []Frame {
	return b.frames
}

// Frame is one stack level: an ordered list of resolved or partially
// resolved symbols. The frame's numeric index and instruction pointer are
// validated during parsing but carry no meaning afterwards and are not
// retained.
type Frame struct {
	symbols []Symbol
}

// Symbols returns the frame's symbols in source order. The slice is empty
// exactly when the frame was marked <no info> or <unresolved>.
func (f *Frame) Symbols() []Symbol {
	return f.symbols
}

// Symbol is one identifier within a frame. Name and location are
// independently optional. Filename and line number are supplied together
// by a location clause, except that a line number too large for uint32
// drops just the line number while keeping the filename.
type Symbol struct {
	name     string
	filename string
	lineno   uint32
	hasName  bool
	hasFile  bool
	hasLine  bool
}

// Name returns the symbol name. ok is false when the input used the
// <unknown> marker in place of a name.
func (s Symbol) Name() (name string, ok bool) {
	return s.name, s.hasName
}

// Filename returns the source path from the symbol's location clause, if
// one was present.
func (s Symbol) Filename() (filename string, ok bool) {
	return s.filename, s.hasFile
}

// Lineno returns the line number from the symbol's location clause. ok is
// false when there was no location clause, or when the line number did not
// fit in 32 bits.
func (s Symbol) Lineno() (lineno uint32, ok bool) {
	return s.lineno, s.hasLine
}

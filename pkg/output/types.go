// Package output provides formatting and output generation for parsed traces.
package output

import (
	"time"

	"github.com/stackparse/stackparse/pkg/backtrace"
)

// Report is the renderable form of one parsed trace. Unlike the backtrace
// package's zero-copy views, report fields are owned copies: a report may
// outlive the input buffer it was built from.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary

	// Frames lists the stack levels in source order.
	Frames []FrameReport

	// Metadata provides context about the parse.
	Metadata Metadata
}

// Summary provides aggregate statistics.
type Summary struct {
	// Frames is the number of stack levels in the trace.
	Frames int

	// Symbols is the total number of symbols across all frames.
	Symbols int

	// Named is the number of symbols with a resolved name.
	Named int

	// Located is the number of symbols with a source location.
	Located int

	// UnresolvedFrames is the number of frames with no symbol
	// information at all.
	UnresolvedFrames int
}

// FrameReport is one stack level. Index is the frame's position in the
// parsed trace, outermost call last.
type FrameReport struct {
	Index   int
	Symbols []SymbolReport
}

// SymbolReport is one symbol. Nil fields were absent in the trace.
type SymbolReport struct {
	Name     *string
	Filename *string
	Lineno   *uint32
}

// Metadata provides context about the parse.
type Metadata struct {
	// Source identifies where the trace text came from.
	Source string

	// ParsedAt is when the trace was parsed.
	ParsedAt time.Time

	// Duration is how long parsing took.
	Duration time.Duration
}

// NewReport builds a Report from a parsed trace.
func NewReport(bt *backtrace.Backtrace, source string) *Report {
	report := &Report{
		Metadata: Metadata{
			Source:   source,
			ParsedAt: time.Now(),
		},
	}

	for i, frame := range bt.Frames() {
		fr := FrameReport{Index: i}

		symbols := frame.Symbols()
		if len(symbols) == 0 {
			report.Summary.UnresolvedFrames++
		}

		for _, sym := range symbols {
			var sr SymbolReport
			if name, ok := sym.Name(); ok {
				n := name
				sr.Name = &n
				report.Summary.Named++
			}
			if file, ok := sym.Filename(); ok {
				f := file
				sr.Filename = &f
				report.Summary.Located++
			}
			if line, ok := sym.Lineno(); ok {
				l := line
				sr.Lineno = &l
			}
			fr.Symbols = append(fr.Symbols, sr)
			report.Summary.Symbols++
		}

		report.Frames = append(report.Frames, fr)
	}

	report.Summary.Frames = len(report.Frames)
	return report
}

// HasUnresolvedFrames returns true if any frame lacked symbol information.
func (r *Report) HasUnresolvedFrames() bool {
	return r.Summary.UnresolvedFrames > 0
}

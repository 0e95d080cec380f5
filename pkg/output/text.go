package output

import (
	"context"
	"fmt"
	"io"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "stackparse: %d frames, %d symbols, %d unresolved frame(s)\n",
		report.Summary.Frames,
		report.Summary.Symbols,
		report.Summary.UnresolvedFrames)
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	if report.Metadata.Source != "" {
		fmt.Fprintf(w, "=== Stack trace: %s ===\n", report.Metadata.Source)
	} else {
		fmt.Fprintln(w, "=== Stack trace ===")
	}
	fmt.Fprintln(w)

	for _, frame := range report.Frames {
		f.formatFrame(&frame, w)
	}

	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d frames, %d symbols (%d named, %d with location), %d unresolved frame(s)\n",
		report.Summary.Frames,
		report.Summary.Symbols,
		report.Summary.Named,
		report.Summary.Located,
		report.Summary.UnresolvedFrames)

	if f.opts.Verbose {
		fmt.Fprintf(w, "Parsed at: %s\n", report.Metadata.ParsedAt.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e3))
	}

	return nil
}

func (f *TextFormatter) formatFrame(frame *FrameReport, w io.Writer) {
	if len(frame.Symbols) == 0 {
		fmt.Fprintf(w, "Frame %d: <no symbol info>\n", frame.Index)
		return
	}

	fmt.Fprintf(w, "Frame %d:\n", frame.Index)
	for _, sym := range frame.Symbols {
		name := "<unknown>"
		if sym.Name != nil {
			name = *sym.Name
		}
		fmt.Fprintf(w, "  - %s\n", name)

		if sym.Filename != nil {
			if sym.Lineno != nil {
				fmt.Fprintf(w, "      at %s:%d\n", *sym.Filename, *sym.Lineno)
			} else {
				fmt.Fprintf(w, "      at %s\n", *sym.Filename)
			}
		}
	}
}

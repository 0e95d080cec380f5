// Package detector locates stack-trace dumps embedded in log streams.
//
// Crash reports rarely arrive as clean trace files: the dump is usually
// interleaved with ordinary log lines and prefixed by whatever the logger
// writes before each message. The detector finds the "stack backtrace:"
// header and carves out the contiguous block of frame, symbol and location
// lines that follows it, producing text that the backtrace package can
// parse directly.
package detector

import (
	"context"
	"regexp"
	"strings"
)

// headerMarker opens every trace block.
const headerMarker = "stack backtrace:"

// Continuation-line shapes. A block ends at the first line that matches
// none of them.
var (
	frameLine    = regexp.MustCompile(`^\s*\d+:\s+0x[0-9a-fA-F]+(\s.*)?$`)
	symbolLine   = regexp.MustCompile(`^\s*-\s`)
	locationLine = regexp.MustCompile(`^\s*at\s+.*:\d+\s*$`)
)

// Block is one candidate trace carved out of a log stream. Text begins at
// the header (any log prefix on the header line is stripped) and spans
// every continuation line.
type Block struct {
	// Text is the extracted trace, ready for backtrace.Parse.
	Text string

	// Source is the file the block came from, when detection ran over a
	// file.
	Source string

	// StartLine is the 1-based line number of the header line.
	StartLine int

	// Lines is the number of lines in the block, header included.
	Lines int
}

// DetectionResult holds the blocks found in one scan.
type DetectionResult struct {
	Blocks       []Block
	ScannedLines int
}

// HasBlocks returns true if at least one trace block was found.
func (r *DetectionResult) HasBlocks() bool {
	return len(r.Blocks) > 0
}

// Detector scans log text for embedded trace blocks.
type Detector struct {
	maxBlockLines int
}

// Option configures the Detector.
type Option func(*Detector)

// WithMaxBlockLines caps how many lines a single block may span
// (default 1000). Runaway matches in pathological logs stop at the cap.
func WithMaxBlockLines(n int) Option {
	return func(d *Detector) {
		if n > 0 {
			d.maxBlockLines = n
		}
	}
}

// New creates a Detector.
func New(opts ...Option) *Detector {
	d := &Detector{
		maxBlockLines: 1000,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DetectFromFile scans a log file for trace blocks.
func (d *Detector) DetectFromFile(ctx context.Context, path string) (*DetectionResult, error) {
	lines, err := readLines(ctx, path)
	if err != nil {
		return nil, err
	}

	result := d.DetectFromLines(lines)
	for i := range result.Blocks {
		result.Blocks[i].Source = path
	}
	return result, nil
}

// DetectFromLines scans a slice of log lines for trace blocks.
func (d *Detector) DetectFromLines(lines []string) *DetectionResult {
	result := &DetectionResult{ScannedLines: len(lines)}

	i := 0
	for i < len(lines) {
		idx := strings.Index(lines[i], headerMarker)
		if idx < 0 {
			i++
			continue
		}

		// Keep the remainder of the header line: the first frame may
		// share it.
		start := i
		blockLines := []string{lines[i][idx:]}
		i++

		for i < len(lines) && len(blockLines) < d.maxBlockLines && isContinuation(lines[i]) {
			blockLines = append(blockLines, lines[i])
			i++
		}

		result.Blocks = append(result.Blocks, Block{
			Text:      strings.Join(blockLines, "\n"),
			StartLine: start + 1,
			Lines:     len(blockLines),
		})
	}

	return result
}

// isContinuation reports whether a line belongs to an open trace block.
func isContinuation(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	return frameLine.MatchString(line) ||
		symbolLine.MatchString(line) ||
		locationLine.MatchString(line)
}

package output

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stackparse/stackparse/pkg/backtrace"
)

const sampleTrace = "stack backtrace:\n" +
	"  0: 0x1234 - main\n" +
	"       at src/main.rs:6\n" +
	"  1: 0xdead - <unknown>\n" +
	"  2: 0x0 - <no info>\n"

func sampleReport(t *testing.T) *Report {
	t.Helper()
	bt, err := backtrace.Parse(sampleTrace)
	if err != nil {
		t.Fatal(err)
	}
	return NewReport(bt, "crash.log")
}

func TestNewReport_Summary(t *testing.T) {
	report := sampleReport(t)

	want := Summary{
		Frames:           3,
		Symbols:          2,
		Named:            1,
		Located:          1,
		UnresolvedFrames: 1,
	}
	if report.Summary != want {
		t.Errorf("Summary = %+v, want %+v", report.Summary, want)
	}
	if !report.HasUnresolvedFrames() {
		t.Error("HasUnresolvedFrames() = false, want true")
	}
}

func TestTextFormatter_Full(t *testing.T) {
	report := sampleReport(t)

	var buf bytes.Buffer
	f := NewTextFormatter(FormatOptions{})
	if err := f.Format(context.Background(), report, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	got := buf.String()
	for _, want := range []string{
		"=== Stack trace: crash.log ===",
		"Frame 0:",
		"  - main",
		"      at src/main.rs:6",
		"  - <unknown>",
		"Frame 2: <no symbol info>",
		"Summary: 3 frames, 2 symbols (1 named, 1 with location), 1 unresolved frame(s)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q\n---\n%s", want, got)
		}
	}
}

func TestTextFormatter_Quiet(t *testing.T) {
	report := sampleReport(t)

	var buf bytes.Buffer
	f := NewTextFormatter(FormatOptions{Quiet: true})
	if err := f.Format(context.Background(), report, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	got := buf.String()
	if got != "stackparse: 3 frames, 2 symbols, 1 unresolved frame(s)\n" {
		t.Errorf("quiet output = %q", got)
	}
}

func TestTextFormatter_MissingLineNumber(t *testing.T) {
	bt, err := backtrace.Parse("stack backtrace: 0: 0x0 - main\nat src/main.rs:1208925819614629174706176")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	f := NewTextFormatter(FormatOptions{})
	if err := f.Format(context.Background(), NewReport(bt, ""), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "at src/main.rs\n") {
		t.Errorf("output should show the filename without a line number:\n%s", got)
	}
}

func TestNewFormatter(t *testing.T) {
	for _, name := range []string{"text", "json"} {
		f, ok := NewFormatter(name, FormatOptions{})
		if !ok {
			t.Errorf("NewFormatter(%q) not found", name)
			continue
		}
		if f.Name() != name {
			t.Errorf("Name() = %q, want %q", f.Name(), name)
		}
	}

	if _, ok := NewFormatter("xml", FormatOptions{}); ok {
		t.Error("NewFormatter(\"xml\") succeeded, want failure")
	}
}

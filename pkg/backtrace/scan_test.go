package backtrace

import "testing"

func TestScanner_FrameIndex(t *testing.T) {
	s := &scanner{input: "1:"}
	idx, err := s.frameIndex()
	if err != nil {
		t.Fatalf("frameIndex() error = %v", err)
	}
	if idx != 1 {
		t.Errorf("frameIndex() = %d, want 1", idx)
	}
	if !s.atEnd() {
		t.Errorf("cursor at %d, want end of input", s.pos)
	}
}

func TestScanner_FrameIndex_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no digits", ":"},
		{"no colon", "12"},
		{"overflow", "99999999999999999999:"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &scanner{input: tt.input}
			if _, err := s.frameIndex(); err == nil {
				t.Errorf("frameIndex(%q) succeeded, want error", tt.input)
			}
		})
	}
}

func TestScanner_FramePointer(t *testing.T) {
	tests := []struct {
		input string
		want  uint64
	}{
		{"0x0", 0},
		{"0x1234", 0x1234},
		{"0x55e06f94d05d", 94422433058909},
		{"0xDEADbeef", 0xdeadbeef},
	}

	for _, tt := range tests {
		s := &scanner{input: tt.input}
		got, err := s.framePointer()
		if err != nil {
			t.Errorf("framePointer(%q) error = %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("framePointer(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestScanner_FramePointer_Invalid(t *testing.T) {
	for _, input := range []string{"1234", "0x", "0xZZ", ""} {
		s := &scanner{input: input}
		if _, err := s.framePointer(); err == nil {
			t.Errorf("framePointer(%q) succeeded, want error", input)
		}
	}
}

func TestScanner_SymbolName_Unknown(t *testing.T) {
	s := &scanner{input: "<unknown>"}
	name, ok, err := s.symbolName()
	if err != nil {
		t.Fatalf("symbolName() error = %v", err)
	}
	if ok {
		t.Errorf("symbolName() = %q, want no name for <unknown>", name)
	}
	if !s.atEnd() {
		t.Errorf("cursor at %d, want end of input", s.pos)
	}
}

func TestScanner_SymbolName_StopsAtNewline(t *testing.T) {
	s := &scanner{input: "main\nrest"}
	name, ok, err := s.symbolName()
	if err != nil {
		t.Fatalf("symbolName() error = %v", err)
	}
	if !ok || name != "main" {
		t.Errorf("symbolName() = %q, %v, want \"main\", true", name, ok)
	}
	if s.input[s.pos:] != "\nrest" {
		t.Errorf("remaining input = %q, want %q", s.input[s.pos:], "\nrest")
	}
}

func TestScanner_SymbolName_EmptyBeforeNewline(t *testing.T) {
	s := &scanner{input: "\nrest"}
	name, ok, err := s.symbolName()
	if err != nil {
		t.Fatalf("symbolName() error = %v", err)
	}
	if !ok || name != "" {
		t.Errorf("symbolName() = %q, %v, want \"\", true", name, ok)
	}
}

func TestScanner_SymbolName_EmptyAtEnd(t *testing.T) {
	s := &scanner{input: ""}
	if _, _, err := s.symbolName(); err == nil {
		t.Error("symbolName() succeeded on empty input, want mismatch")
	}
}

func TestScanner_SymbolLocation(t *testing.T) {
	tests := []struct {
		input    string
		wantFile string
		wantLine uint32
	}{
		{"at src/main.rs:6", "src/main.rs", 6},
		{
			"at /root/.cargo/registry/src/github.com-1ecc6299db9ec823/backtrace-0.3.9/src/capture.rs:63",
			"/root/.cargo/registry/src/github.com-1ecc6299db9ec823/backtrace-0.3.9/src/capture.rs",
			63,
		},
	}

	for _, tt := range tests {
		s := &scanner{input: tt.input}
		file, line, hasLine, err := s.symbolLocation()
		if err != nil {
			t.Errorf("symbolLocation(%q) error = %v", tt.input, err)
			continue
		}
		if file != tt.wantFile {
			t.Errorf("file = %q, want %q", file, tt.wantFile)
		}
		if !hasLine || line != tt.wantLine {
			t.Errorf("line = %d, %v, want %d, true", line, hasLine, tt.wantLine)
		}
	}
}

func TestScanner_SymbolLocation_LineOverflow(t *testing.T) {
	s := &scanner{input: "at src/main.rs:1208925819614629174706176"}
	file, _, hasLine, err := s.symbolLocation()
	if err != nil {
		t.Fatalf("symbolLocation() error = %v", err)
	}
	if file != "src/main.rs" {
		t.Errorf("file = %q, want %q", file, "src/main.rs")
	}
	if hasLine {
		t.Error("hasLine = true, want false for a line number beyond 32 bits")
	}
}

func TestScanner_NoSymbolMarker(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"- <no info>", true},
		{"- <unresolved>", true},
		{"-    <no info>", true},
		{"- main", false},
		{"- <unknown>", false},
		{"<no info>", false},
	}

	for _, tt := range tests {
		s := &scanner{input: tt.input}
		if got := s.noSymbolMarker(); got != tt.want {
			t.Errorf("noSymbolMarker(%q) = %v, want %v", tt.input, got, tt.want)
		}
		if !tt.want && s.pos != 0 {
			t.Errorf("noSymbolMarker(%q) moved cursor to %d without a match", tt.input, s.pos)
		}
	}
}

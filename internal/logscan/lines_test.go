package logscan_test

import (
	"testing"

	"texlog/internal/logscan"
	"texlog/internal/source"
)

func splitText(text string) []logscan.Line {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.log", []byte(text))
	return logscan.Split(fs.Get(id))
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single line no newline", "abc", []string{"abc"}},
		{"single line with newline", "abc\n", []string{"abc"}},
		{"blank line kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"trailing blank dropped", "a\n\n", []string{"a", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := splitText(tt.input)
			if len(lines) != len(tt.want) {
				t.Fatalf("Split() got %d lines, want %d", len(lines), len(tt.want))
			}
			for i, line := range lines {
				if line.Text != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, line.Text, tt.want[i])
				}
				if line.Num != i+1 {
					t.Errorf("line %d Num = %d, want %d", i, line.Num, i+1)
				}
			}
		})
	}
}

func TestSplitSpans(t *testing.T) {
	lines := splitText("ab\ncdef\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].Span.Start != 0 || lines[0].Span.End != 2 {
		t.Errorf("line 1 span = %v, want 0-2", lines[0].Span)
	}
	if lines[1].Span.Start != 3 || lines[1].Span.End != 7 {
		t.Errorf("line 2 span = %v, want 3-7", lines[1].Span)
	}
}

package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"texlog/internal/diag"
	"texlog/internal/diagfmt"
)

func sampleBag() *diag.Bag {
	bag := diag.NewBag(0)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LogUndefinedCommand,
		Message:  `unknown command \foo`,
		File:     "b.tex",
		Loc:      diag.AtLine(12),
	})
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.LogUnderfullBox,
		Message:  "line cannot be stretched enough (badness 10000, very bad)",
		File:     "a.tex",
		Loc:      diag.AtLine(5),
	})
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LogMissingPackage,
		Message:  "missing package xcolor",
	})
	return bag
}

func TestBuildGroupsAndOrders(t *testing.T) {
	rep := diagfmt.Build(sampleBag())
	if rep.Count != 3 {
		t.Fatalf("Count = %d, want 3", rep.Count)
	}
	if len(rep.Files) != 3 {
		t.Fatalf("got %d file groups, want 3", len(rep.Files))
	}
	if rep.Files[0].File != "a.tex" || rep.Files[1].File != "b.tex" || rep.Files[2].File != "" {
		t.Errorf("group order = %q, %q, %q; want a.tex, b.tex, unattributed",
			rep.Files[0].File, rep.Files[1].File, rep.Files[2].File)
	}
	if !rep.HasErrors() || !rep.HasWarnings() {
		t.Error("report should carry both errors and warnings")
	}
}

func TestBuildDeduplicates(t *testing.T) {
	bag := diag.NewBag(0)
	d := diag.Diagnostic{Severity: diag.SevError, Code: diag.LogBraceMismatch, Message: "m", File: "a.tex", Loc: diag.AtLine(3)}
	bag.Add(d)
	bag.Add(d)
	rep := diagfmt.Build(bag)
	if rep.Count != 1 {
		t.Fatalf("Count = %d, want 1 after dedup", rep.Count)
	}
}

func TestPretty(t *testing.T) {
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, diagfmt.Build(sampleBag()), diagfmt.PrettyOpts{})
	out := buf.String()

	for _, want := range []string{
		"File: a.tex",
		"File: b.tex",
		"File: (unattributed)",
		"error [LOG1001] line 12: unknown command \\foo",
		"warning [LOG1005] line 5:",
		"error [LOG1007]: missing package xcolor",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Pretty output missing %q\n%s", want, out)
		}
	}
}

func TestPrettyEmpty(t *testing.T) {
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, diagfmt.Build(diag.NewBag(0)), diagfmt.PrettyOpts{})
	if got := buf.String(); got != "no problems found\n" {
		t.Errorf("Pretty on empty report = %q", got)
	}
}

func TestPrettyTruncates(t *testing.T) {
	bag := diag.NewBag(0)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LogBraceMismatch,
		Message:  strings.Repeat("x", 200),
		File:     "a.tex",
	})
	var buf bytes.Buffer
	diagfmt.Pretty(&buf, diagfmt.Build(bag), diagfmt.PrettyOpts{Width: 40})
	if strings.Contains(buf.String(), strings.Repeat("x", 60)) {
		t.Error("Pretty should truncate long messages to the width")
	}
}

func TestShort(t *testing.T) {
	var buf bytes.Buffer
	diagfmt.Short(&buf, diagfmt.Build(sampleBag()))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{
		"a.tex:5: warning[LOG1005]: line cannot be stretched enough (badness 10000, very bad)",
		"b.tex:12: error[LOG1001]: unknown command \\foo",
		"-:-: error[LOG1007]: missing package xcolor",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := diagfmt.JSON(&buf, diagfmt.Build(sampleBag()), diagfmt.JSONOpts{}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	var out diagfmt.Output
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Count != 3 || len(out.Diagnostics) != 3 {
		t.Fatalf("Count = %d with %d diagnostics, want 3", out.Count, len(out.Diagnostics))
	}
	first := out.Diagnostics[0]
	if first.File != "a.tex" || first.Severity != "warning" || first.Code != "LOG1005" || first.Line != 5 {
		t.Errorf("first diagnostic = %+v", first)
	}
}

func TestJSONMulti(t *testing.T) {
	second := diag.NewBag(0)
	second.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LogBraceMismatch,
		Message:  `number of curly braces near "}" does not match`,
		File:     "c.tex",
		Loc:      diag.AtLine(3),
	})
	named := []diagfmt.NamedReport{
		{Path: "one.log", Report: diagfmt.Build(sampleBag())},
		{Path: "two.log", Report: diagfmt.Build(second)},
	}

	var buf bytes.Buffer
	if err := diagfmt.JSONMulti(&buf, named, diagfmt.JSONOpts{}); err != nil {
		t.Fatalf("JSONMulti() error: %v", err)
	}
	var out diagfmt.MultiOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not one valid JSON document: %v", err)
	}
	if len(out.Logs) != 2 {
		t.Fatalf("got %d logs, want 2", len(out.Logs))
	}
	if out.Logs[0].Path != "one.log" || out.Logs[1].Path != "two.log" {
		t.Errorf("paths = %q, %q", out.Logs[0].Path, out.Logs[1].Path)
	}
	if out.Logs[0].Count != 3 || out.Logs[1].Count != 1 || out.Count != 4 {
		t.Errorf("counts = %d, %d, total %d; want 3, 1, 4", out.Logs[0].Count, out.Logs[1].Count, out.Count)
	}
}

func TestJSONMax(t *testing.T) {
	var buf bytes.Buffer
	if err := diagfmt.JSON(&buf, diagfmt.Build(sampleBag()), diagfmt.JSONOpts{Max: 1}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	var out diagfmt.Output
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Count != 1 {
		t.Errorf("Count = %d, want 1", out.Count)
	}
}

package rules

import (
	"fmt"
	"strings"

	"texlog/internal/diag"
	"texlog/internal/logscan"
	"texlog/internal/source"
)

// MathModeOnly matches the inserted-dollar complaint:
//
//	! Missing $ inserted.
//	<inserted text>
//	                $
//	l.4 _
//
// The offending input is the context after the "l.<N>" marker.
type MathModeOnly struct{}

func (MathModeOnly) Name() string            { return "math-mode" }
func (MathModeOnly) Code() diag.Code         { return diag.LogMathModeOnly }
func (MathModeOnly) Severity() diag.Severity { return diag.SevError }

func (MathModeOnly) TryMatch(lines []logscan.Line) (Match, bool) {
	if len(lines) < 4 || lines[0].Text != "! Missing $ inserted." {
		return Match{}, false
	}
	if !strings.HasPrefix(lines[1].Text, "<inserted text>") {
		return Match{}, false
	}
	if !strings.HasSuffix(lines[2].Text, "$") {
		return Match{}, false
	}
	idx, num, rest, ok := findLocation(lines, 3, 6)
	if !ok || rest == "" {
		return Match{}, false
	}
	return Match{
		Consumed: idx + 1,
		Loc:      diag.AtLine(num),
		Args:     []string{rest},
	}, true
}

func (r MathModeOnly) Render(m Match, file string, span source.Span) diag.Diagnostic {
	return render(r, m, file, span, fmt.Sprintf("%q is valid only in math mode", m.Args[0]))
}

package rules

import (
	"fmt"

	"texlog/internal/diag"
	"texlog/internal/logscan"
	"texlog/internal/source"
)

// BraceMismatch matches
//
//	! Too many }'s.
//	l.4 \date April 2018}
//
// and points at the context text after the "l.<N>" marker.
type BraceMismatch struct{}

func (BraceMismatch) Name() string            { return "brace-mismatch" }
func (BraceMismatch) Code() diag.Code         { return diag.LogBraceMismatch }
func (BraceMismatch) Severity() diag.Severity { return diag.SevError }

func (BraceMismatch) TryMatch(lines []logscan.Line) (Match, bool) {
	if len(lines) == 0 || lines[0].Text != "! Too many }'s." {
		return Match{}, false
	}
	idx, num, rest, ok := findLocation(lines, 1, 4)
	if !ok || rest == "" {
		return Match{}, false
	}
	return Match{
		Consumed: idx + 1,
		Loc:      diag.AtLine(num),
		Args:     []string{rest},
	}, true
}

func (r BraceMismatch) Render(m Match, file string, span source.Span) diag.Diagnostic {
	return render(r, m, file, span, fmt.Sprintf("number of curly braces near %q does not match", m.Args[0]))
}

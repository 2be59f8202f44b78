package rules

import (
	"fmt"
	"strings"

	"texlog/internal/diag"
	"texlog/internal/logscan"
	"texlog/internal/source"
)

// ExtraAlignment matches a row with more &'s than the environment's column
// count:
//
//	! Extra alignment tab has been changed to \cr.
//	<recently read> \endtemplate
//
//	l.7     Foo &
type ExtraAlignment struct{}

func (ExtraAlignment) Name() string            { return "extra-alignment" }
func (ExtraAlignment) Code() diag.Code         { return diag.LogExtraAlignment }
func (ExtraAlignment) Severity() diag.Severity { return diag.SevError }

func (ExtraAlignment) TryMatch(lines []logscan.Line) (Match, bool) {
	if len(lines) == 0 || lines[0].Text != `! Extra alignment tab has been changed to \cr.` {
		return Match{}, false
	}
	idx, num, rest, ok := findLocation(lines, 1, 5)
	if !ok || strings.TrimSpace(rest) == "" {
		return Match{}, false
	}
	return Match{
		Consumed: idx + 1,
		Loc:      diag.AtLine(num),
		Args:     []string{strings.TrimSpace(rest)},
	}, true
}

func (r ExtraAlignment) Render(m Match, file string, span source.Span) diag.Diagnostic {
	msg := fmt.Sprintf("more &'s than columns in an aligned environment near %q", m.Args[0])
	return render(r, m, file, span, msg)
}

package rules

import (
	"fmt"
	"regexp"

	"texlog/internal/diag"
	"texlog/internal/logscan"
	"texlog/internal/source"
)

// UndefinedCommand matches
//
//	! Undefined control sequence.
//	l.4 \foo
//
// The engine sometimes prints two lines of expansion context before the
// "l.<N>" pointer, so the location is searched within a short window. The
// offending command is the last control word on the pointer line.
type UndefinedCommand struct{}

var commandRe = regexp.MustCompile(`\\[^{\\\s]+`)

func (UndefinedCommand) Name() string            { return "undefined-command" }
func (UndefinedCommand) Code() diag.Code         { return diag.LogUndefinedCommand }
func (UndefinedCommand) Severity() diag.Severity { return diag.SevError }

func (UndefinedCommand) TryMatch(lines []logscan.Line) (Match, bool) {
	if len(lines) == 0 || lines[0].Text != "! Undefined control sequence." {
		return Match{}, false
	}
	idx, num, rest, ok := findLocation(lines, 1, 4)
	if !ok {
		return Match{}, false
	}
	cmds := commandRe.FindAllString(rest, -1)
	if len(cmds) == 0 {
		return Match{}, false
	}
	return Match{
		Consumed: idx + 1,
		Loc:      diag.AtLine(num),
		Args:     []string{cmds[len(cmds)-1]},
	}, true
}

func (r UndefinedCommand) Render(m Match, file string, span source.Span) diag.Diagnostic {
	return render(r, m, file, span, fmt.Sprintf("unknown command %s", m.Args[0]))
}

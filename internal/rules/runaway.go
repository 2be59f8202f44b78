package rules

import (
	"fmt"
	"regexp"

	"texlog/internal/diag"
	"texlog/internal/logscan"
	"texlog/internal/source"
)

// RunawayArgument matches the paragraph form of a runaway argument:
//
//	Runaway argument?
//	{April 2018 \maketitle
//	! Paragraph ended before \date was complete.
//	<to be read again>
//	                   \par
//	l.5
//
// The "l.<N>" marker points one line past the end of the broken paragraph,
// so the reported line is N-1.
type RunawayArgument struct{}

var paragraphEndedRe = regexp.MustCompile(`^! Paragraph ended before (\S+) was complete\.$`)

func (RunawayArgument) Name() string            { return "runaway-argument" }
func (RunawayArgument) Code() diag.Code         { return diag.LogRunawayArgument }
func (RunawayArgument) Severity() diag.Severity { return diag.SevError }

func (RunawayArgument) TryMatch(lines []logscan.Line) (Match, bool) {
	if len(lines) < 3 || lines[0].Text != "Runaway argument?" {
		return Match{}, false
	}
	m := paragraphEndedRe.FindStringSubmatch(lines[2].Text)
	if m == nil {
		return Match{}, false
	}
	idx, num, _, ok := findLocation(lines, 3, 7)
	if !ok {
		return Match{}, false
	}
	if num > 1 {
		num--
	}
	return Match{
		Consumed: idx + 1,
		Loc:      diag.AtLine(num),
		Args:     []string{m[1]},
	}, true
}

func (r RunawayArgument) Render(m Match, file string, span source.Span) diag.Diagnostic {
	return render(r, m, file, span, fmt.Sprintf("command %s was not properly ended with a curly brace", m.Args[0]))
}

// RunawayArgumentEOF matches the end-of-input form:
//
//	Runaway argument?
//	{April 2018 \maketitle \end {document}
//	! File ended while scanning use of \date.
//
// There is no line marker; the problem sits at the end of the file.
type RunawayArgumentEOF struct{}

var fileEndedRe = regexp.MustCompile(`^! File ended while scanning use of (\S+)\.$`)

func (RunawayArgumentEOF) Name() string            { return "runaway-argument-eof" }
func (RunawayArgumentEOF) Code() diag.Code         { return diag.LogRunawayArgument }
func (RunawayArgumentEOF) Severity() diag.Severity { return diag.SevError }

func (RunawayArgumentEOF) TryMatch(lines []logscan.Line) (Match, bool) {
	if len(lines) < 3 || lines[0].Text != "Runaway argument?" {
		return Match{}, false
	}
	m := fileEndedRe.FindStringSubmatch(lines[2].Text)
	if m == nil {
		return Match{}, false
	}
	return Match{
		Consumed: 3,
		Loc:      diag.AtEnd(),
		Args:     []string{m[1]},
	}, true
}

func (r RunawayArgumentEOF) Render(m Match, file string, span source.Span) diag.Diagnostic {
	return render(r, m, file, span, fmt.Sprintf("command %s was not properly ended with a curly brace", m.Args[0]))
}

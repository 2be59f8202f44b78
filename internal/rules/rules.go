package rules

import (
	"regexp"
	"strconv"

	"texlog/internal/diag"
	"texlog/internal/logscan"
	"texlog/internal/source"
)

// Match describes what one rule consumed: the number of lines taken from the
// cursor, the location the log itself reported (via "l.<N>" markers or the
// lines range of a box complaint), and the captured substrings the rule needs
// to render its message.
type Match struct {
	Consumed int
	Loc      diag.Location
	Args     []string
}

// Rule recognizes one category of compiler complaint. Rules are stateless;
// TryMatch inspects the lines starting at the engine's cursor and either
// claims a span of them or declines. A pattern cut short by log truncation
// must decline, never claim a partial match.
type Rule interface {
	Name() string
	Code() diag.Code
	Severity() diag.Severity
	TryMatch(lines []logscan.Line) (Match, bool)
	Render(m Match, file string, span source.Span) diag.Diagnostic
}

// locationRe matches the engine's own source pointer: "l.<N> <context>".
var locationRe = regexp.MustCompile(`^l\.(\d+)(?:\s+(.*))?$`)

// findLocation scans lines[from:to] (bounded by len) for an "l.<N>" marker
// and returns its index, the line number and the trailing context text.
func findLocation(lines []logscan.Line, from, to int) (idx int, num uint32, rest string, ok bool) {
	if to > len(lines) {
		to = len(lines)
	}
	for i := from; i < to; i++ {
		m := locationRe.FindStringSubmatch(lines[i].Text)
		if m == nil {
			continue
		}
		n, err := strconv.ParseUint(m[1], 10, 32)
		if err != nil {
			continue
		}
		return i, uint32(n), m[2], true
	}
	return 0, 0, "", false
}

// render builds the one Diagnostic shape every rule shares.
func render(r Rule, m Match, file string, span source.Span, msg string) diag.Diagnostic {
	return diag.Diagnostic{
		Severity: r.Severity(),
		Code:     r.Code(),
		Message:  msg,
		File:     file,
		Loc:      m.Loc,
		Primary:  span,
	}
}

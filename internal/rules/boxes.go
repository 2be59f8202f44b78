package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"texlog/internal/diag"
	"texlog/internal/logscan"
	"texlog/internal/source"
)

// UnderfullBox matches
//
//	Underfull \hbox (badness 10000) in paragraph at lines 5--6
//	 []
//
// Badness buckets follow the engine's own thresholds: below 2000 the gap is
// barely visible, below 6000 it is noticeable, anything above is severe.
type UnderfullBox struct{}

var underfullRe = regexp.MustCompile(`^Underfull \\hbox \(badness (\d+)\) in paragraph at lines (\d+)--\d+`)

func (UnderfullBox) Name() string            { return "underfull-hbox" }
func (UnderfullBox) Code() diag.Code         { return diag.LogUnderfullBox }
func (UnderfullBox) Severity() diag.Severity { return diag.SevWarning }

func (UnderfullBox) TryMatch(lines []logscan.Line) (Match, bool) {
	if len(lines) == 0 {
		return Match{}, false
	}
	m := underfullRe.FindStringSubmatch(lines[0].Text)
	if m == nil {
		return Match{}, false
	}
	num, err := strconv.ParseUint(m[2], 10, 32)
	if err != nil {
		return Match{}, false
	}
	consumed := 1
	excerpt := ""
	if len(lines) > 1 {
		// The following line holds the troubled text, or just "[]".
		consumed = 2
		excerpt = strings.TrimSpace(strings.ReplaceAll(lines[1].Text, "[]", ""))
	}
	return Match{
		Consumed: consumed,
		Loc:      diag.AtLine(uint32(num)),
		Args:     []string{m[1], excerpt},
	}, true
}

func (r UnderfullBox) Render(m Match, file string, span source.Span) diag.Diagnostic {
	badness, _ := strconv.Atoi(m.Args[0])
	grade := "very bad"
	switch {
	case badness < 2000:
		grade = "ignorable"
	case badness < 6000:
		grade = "not as bad"
	}
	msg := fmt.Sprintf("line cannot be stretched enough (badness %d, %s)", badness, grade)
	if m.Args[1] != "" {
		msg = fmt.Sprintf("due to %q the line cannot be stretched enough (badness %d, %s)", m.Args[1], badness, grade)
	}
	return render(r, m, file, span, msg)
}

// OverfullBox matches
//
//	Overfull \hbox (35.0259pt too wide) in paragraph at lines 5--6
//	[]\OT1/cmr/m/n/10 Lorem ip-sum do-lor sit amet, con-secte-tur adip-isc-ing elit
//	. Sed in $[]$
//	 []
//
// and consumes the hyphenated excerpt up to the closing "[]" line.
type OverfullBox struct{}

var overfullRe = regexp.MustCompile(`^Overfull \\hbox \(([^)]+)\) in paragraph at lines (\d+)--\d+`)

// overfullMaxExcerpt bounds how far the excerpt scan looks for the closing
// "[]" before giving up on the pattern.
const overfullMaxExcerpt = 6

func (OverfullBox) Name() string            { return "overfull-hbox" }
func (OverfullBox) Code() diag.Code         { return diag.LogOverfullBox }
func (OverfullBox) Severity() diag.Severity { return diag.SevWarning }

func (OverfullBox) TryMatch(lines []logscan.Line) (Match, bool) {
	if len(lines) < 2 {
		return Match{}, false
	}
	m := overfullRe.FindStringSubmatch(lines[0].Text)
	if m == nil {
		return Match{}, false
	}
	num, err := strconv.ParseUint(m[2], 10, 32)
	if err != nil {
		return Match{}, false
	}
	var excerpt []string
	end := 0
	for i := 1; i < len(lines) && i <= overfullMaxExcerpt; i++ {
		text := lines[i].Text
		if strings.TrimSpace(text) == "[]" {
			end = i
			break
		}
		excerpt = append(excerpt, strings.TrimPrefix(text, "[]"))
	}
	if end == 0 {
		return Match{}, false
	}
	return Match{
		Consumed: end + 1,
		Loc:      diag.AtLine(uint32(num)),
		Args:     []string{m[1], strings.TrimSpace(strings.Join(excerpt, ""))},
	}, true
}

func (r OverfullBox) Render(m Match, file string, span source.Span) diag.Diagnostic {
	msg := fmt.Sprintf("text after %q (displayed hyphenated) overflows the line end (%s)", m.Args[1], m.Args[0])
	return render(r, m, file, span, msg)
}

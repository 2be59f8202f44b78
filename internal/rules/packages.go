package rules

import (
	"fmt"
	"regexp"

	"texlog/internal/diag"
	"texlog/internal/logscan"
	"texlog/internal/source"
)

// MissingPackage matches
//
//	! LaTeX Error: File `missing.sty' not found.
//
// The log gives no usable line number, so the diagnostic is unlocated.
type MissingPackage struct{}

var missingPackageRe = regexp.MustCompile("^! LaTeX Error: File `([^']+)\\.sty' not found\\.$")

func (MissingPackage) Name() string            { return "missing-package" }
func (MissingPackage) Code() diag.Code         { return diag.LogMissingPackage }
func (MissingPackage) Severity() diag.Severity { return diag.SevError }

func (MissingPackage) TryMatch(lines []logscan.Line) (Match, bool) {
	if len(lines) == 0 {
		return Match{}, false
	}
	m := missingPackageRe.FindStringSubmatch(lines[0].Text)
	if m == nil {
		return Match{}, false
	}
	return Match{
		Consumed: 1,
		Loc:      diag.NoLocation(),
		Args:     []string{m[1]},
	}, true
}

func (r MissingPackage) Render(m Match, file string, span source.Span) diag.Diagnostic {
	return render(r, m, file, span, fmt.Sprintf("missing package %s", m.Args[0]))
}

// InvalidOption matches
//
//	! LaTeX Error: Unknown option `invalid' for package `graphics'.
type InvalidOption struct{}

var invalidOptionRe = regexp.MustCompile("^! LaTeX Error: Unknown option `([^']+)' for package `([^']+)'\\.$")

func (InvalidOption) Name() string            { return "invalid-option" }
func (InvalidOption) Code() diag.Code         { return diag.LogInvalidOption }
func (InvalidOption) Severity() diag.Severity { return diag.SevError }

func (InvalidOption) TryMatch(lines []logscan.Line) (Match, bool) {
	if len(lines) == 0 {
		return Match{}, false
	}
	m := invalidOptionRe.FindStringSubmatch(lines[0].Text)
	if m == nil {
		return Match{}, false
	}
	return Match{
		Consumed: 1,
		Loc:      diag.NoLocation(),
		Args:     []string{m[1], m[2]},
	}, true
}

func (r InvalidOption) Render(m Match, file string, span source.Span) diag.Diagnostic {
	return render(r, m, file, span, fmt.Sprintf("invalid option %s of package %s", m.Args[0], m.Args[1]))
}

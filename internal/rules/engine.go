package rules

import (
	"texlog/internal/diag"
	"texlog/internal/logscan"
	"texlog/internal/source"
)

// Engine walks a transcript's lines once, trying every active rule at each
// position. The first registered rule that matches wins and its span of
// lines is consumed; lines no rule claims feed the file-context tracker so
// attribution stays current.
type Engine struct {
	rules   []Rule
	tracker *logscan.Tracker
}

// NewEngine creates an engine over an ordered rule set. Registration order
// is the sole tie-break between overlapping patterns.
func NewEngine(active []Rule, opts logscan.Options) *Engine {
	return &Engine{
		rules:   active,
		tracker: logscan.NewTracker(opts),
	}
}

// Scan runs one pass over lines and reports every diagnostic it finds, in
// input order. The engine owns no state across calls; scanning the same
// lines twice reports the same sequence.
func (e *Engine) Scan(lines []logscan.Line, rep diag.Reporter) {
	e.tracker.Reset()

	i := 0
	for i < len(lines) {
		m, r, ok := e.tryRules(lines[i:])
		if !ok {
			e.tracker.Observe(lines[i])
			i++
			continue
		}
		span := lines[i].Span
		for j := i + 1; j < i+m.Consumed && j < len(lines); j++ {
			span = span.Cover(lines[j].Span)
		}
		file, _ := e.tracker.CurrentFile()
		rep.Report(r.Render(m, file, span))
		i += m.Consumed
	}
}

func (e *Engine) tryRules(rest []logscan.Line) (Match, Rule, bool) {
	for _, r := range e.rules {
		m, ok := r.TryMatch(rest)
		if !ok {
			continue
		}
		if m.Consumed < 1 {
			m.Consumed = 1
		}
		return m, r, true
	}
	return Match{}, nil, false
}

// ScanFile is a convenience wrapper: split the file into lines and scan.
func ScanFile(f *source.File, active []Rule, opts logscan.Options, rep diag.Reporter) {
	NewEngine(active, opts).Scan(logscan.Split(f), rep)
}

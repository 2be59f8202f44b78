package diagfmt

import (
	"encoding/json"
	"io"
	"strings"

	"texlog/internal/diag"
)

// DiagnosticJSON is the wire shape of one diagnostic.
type DiagnosticJSON struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	File     string `json:"file,omitempty"`
	Line     uint32 `json:"line,omitempty"`
	AtEnd    bool   `json:"at_end,omitempty"`
	LogStart uint32 `json:"log_start_byte"`
	LogEnd   uint32 `json:"log_end_byte"`
}

// Output is the root JSON structure for a single log.
type Output struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// NamedReport pairs a report with the log file it came from.
type NamedReport struct {
	Path   string
	Report Report
}

// LogJSON is one checked log inside a multi-log document.
type LogJSON struct {
	Path        string           `json:"path"`
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// MultiOutput is the root JSON structure when several logs are checked in
// one invocation: one document, keyed by log path.
type MultiOutput struct {
	Logs  []LogJSON `json:"logs"`
	Count int       `json:"count"`
}

// JSON writes a grouped report as indented JSON.
func JSON(w io.Writer, rep Report, opts JSONOpts) error {
	out := Output{Diagnostics: make([]DiagnosticJSON, 0, rep.Count)}
	for _, fr := range rep.Files {
		for _, d := range fr.Items {
			if opts.Max > 0 && len(out.Diagnostics) >= opts.Max {
				break
			}
			out.Diagnostics = append(out.Diagnostics, makeDiagnostic(d))
		}
	}
	out.Count = len(out.Diagnostics)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// JSONMulti writes one indented JSON document covering several logs. The
// opts.Max cap applies to the document as a whole, not per log.
func JSONMulti(w io.Writer, reps []NamedReport, opts JSONOpts) error {
	out := MultiOutput{Logs: make([]LogJSON, 0, len(reps))}
	for _, nr := range reps {
		lj := LogJSON{Path: nr.Path, Diagnostics: make([]DiagnosticJSON, 0, nr.Report.Count)}
		for _, fr := range nr.Report.Files {
			for _, d := range fr.Items {
				if opts.Max > 0 && out.Count+len(lj.Diagnostics) >= opts.Max {
					break
				}
				lj.Diagnostics = append(lj.Diagnostics, makeDiagnostic(d))
			}
		}
		lj.Count = len(lj.Diagnostics)
		out.Count += lj.Count
		out.Logs = append(out.Logs, lj)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func makeDiagnostic(d diag.Diagnostic) DiagnosticJSON {
	out := DiagnosticJSON{
		Severity: strings.ToLower(d.Severity.String()),
		Code:     d.Code.ID(),
		Message:  d.Message,
		File:     d.File,
		LogStart: d.Primary.Start,
		LogEnd:   d.Primary.End,
	}
	switch d.Loc.Kind {
	case diag.LocLine:
		out.Line = d.Loc.Line
	case diag.LocEnd:
		out.AtEnd = true
	}
	return out
}

package diagfmt

import (
	"sort"

	"texlog/internal/diag"
)

// FileReport groups the diagnostics attributed to one source file.
type FileReport struct {
	File  string // empty for unattributed diagnostics
	Items []diag.Diagnostic
}

// Report is the grouped, deduplicated view of one checker run: files sorted
// by name, unattributed diagnostics last, entries within a file ordered by
// location.
type Report struct {
	Files []FileReport
	Count int
}

// Build groups a bag into a Report. The bag is sorted and deduplicated in
// place first.
func Build(bag *diag.Bag) Report {
	bag.Sort()
	bag.Dedup()

	byFile := make(map[string][]diag.Diagnostic)
	for _, d := range bag.Items() {
		byFile[d.File] = append(byFile[d.File], d)
	}

	names := make([]string, 0, len(byFile))
	for name := range byFile {
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	if _, ok := byFile[""]; ok {
		names = append(names, "")
	}

	out := Report{Files: make([]FileReport, 0, len(names))}
	for _, name := range names {
		out.Files = append(out.Files, FileReport{File: name, Items: byFile[name]})
		out.Count += len(byFile[name])
	}
	return out
}

// HasErrors reports whether any grouped diagnostic is an error.
func (r Report) HasErrors() bool {
	for _, fr := range r.Files {
		for _, d := range fr.Items {
			if d.Severity >= diag.SevError {
				return true
			}
		}
	}
	return false
}

// HasWarnings reports whether any grouped diagnostic is a warning.
func (r Report) HasWarnings() bool {
	for _, fr := range r.Files {
		for _, d := range fr.Items {
			if d.Severity == diag.SevWarning {
				return true
			}
		}
	}
	return false
}

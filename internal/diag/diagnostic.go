package diag

import (
	"texlog/internal/source"
)

// Diagnostic is one detected problem, normalized from raw log text.
//
// File is the source document the problem is attributed to (the innermost
// file open in the log at match time); empty when the context stack was
// empty. Primary is the span of consumed log text, useful for tooling that
// wants to point back into the transcript itself.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	File     string
	Loc      Location
	Primary  source.Span
}

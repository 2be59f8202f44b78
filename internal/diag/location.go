package diag

import "fmt"

// LocKind says where in the source document a diagnostic points.
type LocKind uint8

const (
	// LocNone is for complaints the log does not locate (missing packages).
	LocNone LocKind = iota
	// LocLine points at a 1-based line of the attributed source file.
	LocLine
	// LocEnd points at the end of the attributed source file (the engine ran
	// out of input mid-pattern).
	LocEnd
)

// Location is an optional position inside the attributed source file. Line
// numbers come from the log's own "l.<N>" markers, not from the log file.
type Location struct {
	Kind LocKind
	Line uint32
}

func AtLine(n uint32) Location { return Location{Kind: LocLine, Line: n} }
func AtEnd() Location          { return Location{Kind: LocEnd} }
func NoLocation() Location     { return Location{} }

func (l Location) String() string {
	switch l.Kind {
	case LocLine:
		return fmt.Sprintf("line %d", l.Line)
	case LocEnd:
		return "at the end"
	}
	return ""
}

// order ranks locations the way reports list them: unlocated entries first,
// then located lines ascending, then end-of-file entries.
func (l Location) order() (rank uint8, line uint32) {
	switch l.Kind {
	case LocNone:
		return 0, 0
	case LocLine:
		return 1, l.Line
	default:
		return 2, 0
	}
}

// Before reports whether l sorts ahead of other in a per-file report.
func (l Location) Before(other Location) bool {
	lr, ll := l.order()
	or, ol := other.order()
	if lr != or {
		return lr < or
	}
	return ll < ol
}

package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevWarning is for quality complaints the engine recovered from
	// (under/overfull boxes).
	SevWarning Severity = iota
	// SevError is for complaints the engine flagged with "!".
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

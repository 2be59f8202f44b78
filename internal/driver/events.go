package driver

// Stage tracks one log file through a multi-file run.
type Stage uint8

const (
	StageQueued Stage = iota
	StageScanning
	StageDone
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageQueued:
		return "queued"
	case StageScanning:
		return "scanning"
	case StageDone:
		return "done"
	case StageFailed:
		return "failed"
	}
	return "unknown"
}

// Event is one progress update from CheckAll, consumed by the UI.
type Event struct {
	Path  string
	Stage Stage
	Count int // diagnostics found, set at StageDone
	Err   error
}

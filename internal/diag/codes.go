package diag

import "fmt"

// Code identifies one category of log complaint.
type Code uint16

const (
	UnknownCode Code = 0

	// Rule codes. One per detection rule; both runaway forms share a code.
	LogUndefinedCommand Code = 1001
	LogBraceMismatch    Code = 1002
	LogMathModeOnly     Code = 1003
	LogRunawayArgument  Code = 1004
	LogUnderfullBox     Code = 1005
	LogOverfullBox      Code = 1006
	LogMissingPackage   Code = 1007
	LogInvalidOption    Code = 1008
	LogExtraAlignment   Code = 1009

	// I/O codes, emitted by the driver rather than a detection rule.
	IOCannotRead Code = 4001
	IOEmptyLog   Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:         "Unknown problem",
	LogUndefinedCommand: "Undefined control sequence",
	LogBraceMismatch:    "Curly braces do not match",
	LogMathModeOnly:     "Math-mode material outside math mode",
	LogRunawayArgument:  "Runaway argument",
	LogUnderfullBox:     "Underfull horizontal box",
	LogOverfullBox:      "Overfull horizontal box",
	LogMissingPackage:   "Package file not found",
	LogInvalidOption:    "Unknown package option",
	LogExtraAlignment:   "Extra alignment tab",
	IOCannotRead:        "Cannot read log file",
	IOEmptyLog:          "Log file is empty",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LOG%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

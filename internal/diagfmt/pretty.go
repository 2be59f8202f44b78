package diagfmt

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"texlog/internal/diag"
)

var (
	fileHeader   = color.New(color.FgCyan, color.Bold)
	errorLabel   = color.New(color.FgRed, color.Bold)
	warningLabel = color.New(color.FgYellow, color.Bold)
	locationText = color.New(color.Faint)
)

// Pretty renders a grouped report for humans:
//
//	File: chapter.tex
//
//	  error [LOG1001] line 12: unknown command \foo
//	  warning [LOG1005] line 5: line cannot be stretched enough (badness 10000, very bad)
//
// Coloring is switched by opts; long messages are truncated to opts.Width.
func Pretty(w io.Writer, rep Report, opts PrettyOpts) {
	if rep.Count == 0 {
		fmt.Fprintln(w, "no problems found")
		return
	}

	restore := color.NoColor
	color.NoColor = !opts.Color
	defer func() { color.NoColor = restore }()

	for i, fr := range rep.Files {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if fr.File == "" {
			fmt.Fprintf(w, "%s\n\n", fileHeader.Sprint("File: (unattributed)"))
		} else {
			fmt.Fprintf(w, "%s %s\n\n", fileHeader.Sprint("File:"), fr.File)
		}
		for _, d := range fr.Items {
			fmt.Fprintf(w, "  %s\n", renderItem(d, opts.Width))
		}
	}
}

func renderItem(d diag.Diagnostic, width int) string {
	label := warningLabel.Sprint("warning")
	if d.Severity == diag.SevError {
		label = errorLabel.Sprint("error")
	}
	line := fmt.Sprintf("%s [%s]", label, d.Code.ID())
	if loc := d.Loc.String(); loc != "" {
		line += " " + locationText.Sprint(loc)
	}
	line += ": " + truncate(d.Message, width)
	return line
}

// truncate cuts msg to the given display width, honoring wide runes.
func truncate(msg string, width int) string {
	if width <= 0 || runewidth.StringWidth(msg) <= width {
		return msg
	}
	return runewidth.Truncate(msg, width, "…")
}

package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"texlog/internal/diag"
)

// Short renders one stable, greppable line per diagnostic:
//
//	chapter.tex:12: error[LOG1001]: unknown command \foo
//	-:-: error[LOG1007]: missing package missing
//
// Unattributed fields render as "-" so the column layout never shifts.
func Short(w io.Writer, rep Report) {
	var sb strings.Builder
	for _, fr := range rep.Files {
		file := fr.File
		if file == "" {
			file = "-"
		}
		for _, d := range fr.Items {
			loc := "-"
			switch d.Loc.Kind {
			case diag.LocLine:
				loc = fmt.Sprintf("%d", d.Loc.Line)
			case diag.LocEnd:
				loc = "end"
			}
			sb.WriteString(fmt.Sprintf("%s:%s: %s[%s]: %s\n",
				file, loc, strings.ToLower(d.Severity.String()), d.Code.ID(), d.Message))
		}
	}
	io.WriteString(w, sb.String())
}

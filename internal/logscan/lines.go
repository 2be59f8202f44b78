package logscan

import "texlog/internal/source"

// Line is one physical line of the log: its 1-based position, its text
// without the trailing newline, and the span of the text inside the file.
type Line struct {
	Num  int
	Text string
	Span source.Span
}

// Split cuts a log file into physical lines. The trailing newline byte is
// not part of any line's span.
func Split(f *source.File) []Line {
	lines := make([]Line, 0, 128)
	c := NewCursor(f)
	num := 1
	mark := c.Mark()
	for !c.EOF() {
		if c.Bump() == '\n' {
			sp := c.SpanFrom(mark)
			sp.End-- // drop the newline itself
			lines = append(lines, Line{
				Num:  num,
				Text: string(f.Content[sp.Start:sp.End]),
				Span: sp,
			})
			num++
			mark = c.Mark()
		}
	}
	// A last line without a trailing newline still counts.
	if sp := c.SpanFrom(mark); !sp.Empty() {
		lines = append(lines, Line{
			Num:  num,
			Text: string(f.Content[sp.Start:sp.End]),
			Span: sp,
		})
	}
	return lines
}

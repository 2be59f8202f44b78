package logscan

import "strings"

// DefaultWrapColumn is TeX's max_print_line: the engine hard-wraps its
// transcript at this many characters, so a line of exactly this length
// continues on the next physical line.
const DefaultWrapColumn = 79

// Options configures a Tracker.
type Options struct {
	// WrapColumn is the column the engine wraps output at; 0 means
	// DefaultWrapColumn. Lines shorter than this end a pending file name.
	WrapColumn int
}

// Tracker maintains the stack of files the compiler currently has open,
// derived from the "(name" and ")" markers interleaved with everything else
// in the transcript. Feed it lines in order with Observe; CurrentFile then
// answers "which source file does this point of the log belong to".
//
// Every "(" pushes exactly one entry so that every ")" pops the group it
// actually closes: groups whose token does not look like a file name (font
// chatter, "(see the transcript...)" and friends) are pushed anonymously and
// only keep the parenthesis accounting straight.
type Tracker struct {
	stack   []string // "" marks an anonymous group
	wrapCol int

	// token state carried across wrapped line boundaries
	collecting bool
	pending    []byte
}

// NewTracker creates an empty tracker.
func NewTracker(opts Options) *Tracker {
	wrap := opts.WrapColumn
	if wrap == 0 {
		wrap = DefaultWrapColumn
	}
	return &Tracker{
		stack:   make([]string, 0, 8),
		wrapCol: wrap,
	}
}

// Observe feeds one physical line to the tracker.
func (t *Tracker) Observe(line Line) {
	text := line.Text
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if t.collecting {
			switch ch {
			case ' ', '\t', '(', ')':
				t.finishToken()
			default:
				t.pending = append(t.pending, ch)
				continue
			}
		}
		switch ch {
		case '(':
			t.collecting = true
			t.pending = t.pending[:0]
		case ')':
			t.pop()
		}
	}
	// The newline ends a pending token unless the engine wrapped the line,
	// in which case the name continues on the next physical line.
	if t.collecting && len(text) < t.wrapCol {
		t.finishToken()
	}
}

// CurrentFile returns the innermost open file, skipping anonymous groups.
func (t *Tracker) CurrentFile() (string, bool) {
	for i := len(t.stack) - 1; i >= 0; i-- {
		if t.stack[i] != "" {
			return t.stack[i], true
		}
	}
	return "", false
}

// Depth returns the number of open groups, anonymous ones included.
func (t *Tracker) Depth() int {
	return len(t.stack)
}

// Reset clears all state so the tracker can observe another log.
func (t *Tracker) Reset() {
	t.stack = t.stack[:0]
	t.collecting = false
	t.pending = t.pending[:0]
}

func (t *Tracker) finishToken() {
	name := string(t.pending)
	t.collecting = false
	t.pending = t.pending[:0]
	if !looksLikeFile(name) {
		name = ""
	}
	t.stack = append(t.stack, strings.TrimPrefix(name, "./"))
}

// pop tolerates excess closing parens: a ")" with nothing open is a no-op.
func (t *Tracker) pop() {
	if len(t.stack) > 0 {
		t.stack = t.stack[:len(t.stack)-1]
	}
}

// looksLikeFile reports whether a token after "(" names a file rather than
// free-form chatter: it must carry a path separator or a dotted extension.
func looksLikeFile(name string) bool {
	if name == "" {
		return false
	}
	if strings.ContainsAny(name, "/\\") {
		return true
	}
	dot := strings.LastIndexByte(name, '.')
	return dot > 0 && dot < len(name)-1
}

package diagfmt

// PrettyOpts configures the human-readable renderer.
type PrettyOpts struct {
	Color bool
	// Width caps rendered line width; 0 means unlimited.
	Width int
}

// JSONOpts configures structured output.
type JSONOpts struct {
	// Max truncates the emitted list, not the underlying bag; 0 means all.
	Max int
}

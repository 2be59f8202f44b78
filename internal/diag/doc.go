// Package diag defines the diagnostic model shared by the log scanner and
// the output formatters: severities, rule codes, source locations and the
// Bag container that collects results of one run.
package diag

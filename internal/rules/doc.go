// Package rules holds the detection rule catalogue and the engine that runs
// it over a transcript. Each rule is a self-contained multi-line pattern for
// one category of compiler complaint; the engine dispatches them in
// registration order and delegates file attribution to logscan.
package rules

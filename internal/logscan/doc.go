// Package logscan provides the lexical layer over a compiler transcript:
// splitting the raw bytes into physical lines and tracking which source file
// the compiler currently has open as it balances "(file" and ")" markers
// across arbitrarily wrapped lines.
package logscan

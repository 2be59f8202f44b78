package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"texlog/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "texlog",
	Short: "LaTeX compiler log checker",
	Long:  `texlog parses the transcript of a LaTeX run and reports errors and warnings in a readable, located form`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics per log (0 = unlimited)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"texlog/internal/config"
	"texlog/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the detection rule catalogue",
	Long:  `List every detection rule with its code, severity and whether the current configuration enables it`,
	Args:  cobra.NoArgs,
	RunE:  runRules,
}

func runRules(cmd *cobra.Command, _ []string) error {
	cmd.SilenceUsage = true

	cfg, _, err := config.Discover(".")
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tCODE\tSEVERITY\tENABLED\tDESCRIPTION")
	for _, r := range rules.Default() {
		enabled := "yes"
		if on, found := cfg.Rules[r.Name()]; found && !on {
			enabled = "no"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			r.Name(), r.Code().ID(), strings.ToLower(r.Severity().String()), enabled, r.Code().Title())
	}
	return w.Flush()
}

package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"texlog/internal/config"
	"texlog/internal/diag"
	"texlog/internal/diagfmt"
	"texlog/internal/driver"
	"texlog/internal/rules"
	"texlog/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.log>...",
	Short: "Check one or more LaTeX log files",
	Long:  `Check parses each log transcript, runs the detection rules over it and prints the problems it recognizes, grouped by source file`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "", "output format (pretty|short|json); overrides texlog.toml")
	checkCmd.Flags().String("config", "", "explicit path to texlog.toml")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for multiple logs (0=auto)")
	checkCmd.Flags().Bool("ui", false, "show live progress while checking many logs")
	checkCmd.Flags().Bool("no-warnings", false, "drop warning diagnostics from the report")
	checkCmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors")
	checkCmd.Flags().Bool("cache", false, "cache scan results for unchanged logs")
	checkCmd.Flags().Int("wrap-column", 0, "log wrap column (max_print_line) if the engine was built with a non-default one")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	noWarnings, err := cmd.Flags().GetBool("no-warnings")
	if err != nil {
		return fmt.Errorf("failed to get no-warnings flag: %w", err)
	}
	warningsAsErrors, err := cmd.Flags().GetBool("warnings-as-errors")
	if err != nil {
		return fmt.Errorf("failed to get warnings-as-errors flag: %w", err)
	}
	if noWarnings && warningsAsErrors {
		return fmt.Errorf("no-warnings and warnings-as-errors flags cannot be used together")
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	format, err := resolveFormat(cmd, cfg)
	if err != nil {
		return err
	}
	colorOn, err := resolveColor(cmd, cfg)
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	showUI, err := cmd.Flags().GetBool("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	wrapColumn, err := cmd.Flags().GetInt("wrap-column")
	if err != nil {
		return fmt.Errorf("failed to get wrap-column flag: %w", err)
	}
	if wrapColumn == 0 {
		wrapColumn = cfg.Output.WrapColumn
	}

	active, err := rules.Select(cfg.Rules)
	if err != nil {
		return err
	}

	opts := driver.Options{
		Rules:          active,
		WrapColumn:     wrapColumn,
		MaxDiagnostics: maxDiagnostics,
	}
	if useCache {
		cache, err := driver.OpenDiskCache("texlog")
		if err != nil {
			return fmt.Errorf("failed to open result cache: %w", err)
		}
		opts.Cache = cache
	}

	results, err := checkAll(cmd.Context(), args, jobs, opts, showUI && isTerminal(os.Stdout))
	if err != nil {
		return err
	}

	hasErrors := false
	switch format {
	case "json":
		// One document regardless of how many logs were checked.
		named := make([]diagfmt.NamedReport, 0, len(results))
		for _, res := range results {
			if res == nil {
				continue
			}
			rep := diagfmt.Build(filterBag(res.Bag, noWarnings, warningsAsErrors))
			if rep.HasErrors() {
				hasErrors = true
			}
			named = append(named, diagfmt.NamedReport{Path: res.Path, Report: rep})
		}
		var encErr error
		if len(named) == 1 {
			encErr = diagfmt.JSON(os.Stdout, named[0].Report, diagfmt.JSONOpts{})
		} else {
			encErr = diagfmt.JSONMulti(os.Stdout, named, diagfmt.JSONOpts{})
		}
		if encErr != nil {
			return fmt.Errorf("failed to encode JSON output: %w", encErr)
		}
	case "short":
		// Merged across logs so the output stays one greppable stream.
		merged := diag.NewBag(0)
		for _, res := range results {
			if res == nil {
				continue
			}
			merged.Merge(filterBag(res.Bag, noWarnings, warningsAsErrors))
		}
		rep := diagfmt.Build(merged)
		hasErrors = rep.HasErrors()
		diagfmt.Short(os.Stdout, rep)
	default:
		for i, res := range results {
			if res == nil {
				continue
			}
			rep := diagfmt.Build(filterBag(res.Bag, noWarnings, warningsAsErrors))
			if rep.HasErrors() {
				hasErrors = true
			}
			if quiet && rep.Count == 0 {
				continue
			}
			if len(results) > 1 && !quiet {
				fmt.Printf("== %s ==\n", res.Path)
			}
			diagfmt.Pretty(os.Stdout, rep, diagfmt.PrettyOpts{Color: colorOn, Width: prettyWidth()})
			if len(results) > 1 && i < len(results)-1 && !quiet {
				fmt.Println()
			}
		}
	}

	if hasErrors {
		os.Exit(1)
	}
	return nil
}

// checkAll runs the driver, with or without the live progress UI.
func checkAll(ctx context.Context, paths []string, jobs int, opts driver.Options, showUI bool) ([]*driver.Result, error) {
	if !showUI {
		return driver.CheckAll(ctx, paths, jobs, opts, nil)
	}

	events := make(chan driver.Event, len(paths)*2)
	type outcome struct {
		results []*driver.Result
		err     error
	}
	done := make(chan outcome, 1)
	go func() {
		results, err := driver.CheckAll(ctx, paths, jobs, opts, events)
		done <- outcome{results, err}
	}()

	prog := tea.NewProgram(ui.NewProgressModel("checking logs", paths, events))
	if _, err := prog.Run(); err != nil {
		return nil, fmt.Errorf("progress UI failed: %w", err)
	}
	out := <-done
	return out.results, out.err
}

// filterBag applies the warning policy flags to a fresh bag.
func filterBag(bag *diag.Bag, noWarnings, warningsAsErrors bool) *diag.Bag {
	if !noWarnings && !warningsAsErrors {
		return bag
	}
	out := diag.NewBag(bag.Len())
	for _, d := range bag.Items() {
		if d.Severity == diag.SevWarning {
			if noWarnings {
				continue
			}
			d.Severity = diag.SevError
		}
		out.Add(d)
	}
	return out
}

func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	explicit, err := cmd.Flags().GetString("config")
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to get config flag: %w", err)
	}
	if explicit != "" {
		return config.Load(explicit)
	}
	cfg, _, err := config.Discover(".")
	return cfg, err
}

func resolveFormat(cmd *cobra.Command, cfg config.Config) (string, error) {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", fmt.Errorf("failed to get format flag: %w", err)
	}
	if format == "" {
		format = cfg.Output.Format
	}
	switch format {
	case "", "pretty":
		return "pretty", nil
	case "short", "json":
		return format, nil
	}
	return "", fmt.Errorf("unknown format %q (want pretty, short or json)", format)
}

func resolveColor(cmd *cobra.Command, cfg config.Config) (bool, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	if !cmd.Root().PersistentFlags().Changed("color") && cfg.Output.Color != "" {
		mode = cfg.Output.Color
	}
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return isTerminal(os.Stdout), nil
	}
	return false, fmt.Errorf("unknown color mode %q (want auto, on or off)", mode)
}

func prettyWidth() int {
	if !isTerminal(os.Stdout) {
		return 0
	}
	// Leave the indent some room; 0 on query failure means unlimited.
	if w := terminalWidth(os.Stdout); w > 20 {
		return w - 4
	}
	return 0
}

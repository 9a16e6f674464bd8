package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"cslines/internal/diagfmt"
	"cslines/internal/driver"
	"cslines/internal/format"
	"cslines/internal/source"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path> [path...]",
	Short: "Normalize line breaks in C# source files",
	Long: `fmt rewrites the line breaks between tokens of the given files and
directories (recursively collecting .cs and .csx files). Pass - to format
standard input to standard output.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

func init() {
	addFormatFlags(fmtCmd)
	fmtCmd.Flags().Bool("check", false, "check if files are properly formatted")
	fmtCmd.Flags().String("format", "text", "output format (text|json)")
	fmtCmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	fmtCmd.Flags().Int("jobs", 0, "parallel workers (0 = from config, then GOMAXPROCS)")
	fmtCmd.Flags().Bool("no-cache", false, "disable the decision cache")
	fmtCmd.Flags().Bool("watch", false, "keep running and reformat files as they change")
	fmtUI := uiModeAuto
	fmtCmd.Flags().Var(&fmtUI, "ui", "progress UI")
	fmtCmd.Flags().Int("max-blank-lines", 2, "collapse longer runs of blank lines (negative = keep all)")
	fmtCmd.Flags().Bool("strict", false, "refuse to format files with parse errors")
}

func runFmt(cmd *cobra.Command, args []string) error {
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return err
	}
	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	writeToStdout, err := cmd.Flags().GetBool("stdout")
	if err != nil {
		return err
	}
	watch, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	mode, err := readUIMode(cmd.Flags().Lookup("ui").Value.String())
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return err
	}

	if writeToStdout && check {
		return fmt.Errorf("fmt: --stdout cannot be used with --check")
	}
	if writeToStdout && outputFormat != "text" {
		return fmt.Errorf("fmt: --stdout is only supported with text output")
	}
	if watch && (check || writeToStdout) {
		return fmt.Errorf("fmt: --watch rewrites files and cannot be combined with --check or --stdout")
	}
	if outputFormat != "text" && outputFormat != "json" {
		return fmt.Errorf("fmt: unsupported output format %q", outputFormat)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	fopts, err := formatOptions(cmd, cfg)
	if err != nil {
		return fmt.Errorf("fmt: %w", err)
	}

	if len(args) == 1 && args[0] == "-" {
		return formatStdin(cmd, fopts)
	}

	timer, err := newTimer(cmd)
	if err != nil {
		return err
	}
	if jobs == 0 {
		jobs = cfg.Driver.Jobs
	}
	opts := driver.FormatOptions{
		Check:      check,
		Stdout:     writeToStdout,
		Jobs:       jobs,
		Options:    fopts,
		Extensions: cfg.Driver.Extensions,
		Exclude:    cfg.Driver.Exclude,
		Timer:      timer,
	}
	if cfg.Driver.Cache && !noCache {
		opts.Cache = openCache(cfg, quiet)
	}

	if watch {
		return runWatch(cmd, args, opts, quiet)
	}

	var results []driver.FormatResult
	if progressWanted(mode, cmd.OutOrStdout(), fmtOutput{quiet: quiet, stdout: writeToStdout, format: outputFormat}) {
		files, err := driver.Collect(cmd.Context(), args, opts)
		if err != nil {
			return err
		}
		results, err = runFormatWithUI(cmd.Context(), "cslines fmt", files, args, opts)
		if err != nil {
			return err
		}
	} else {
		results, err = driver.FormatPaths(cmd.Context(), args, opts)
		if err != nil {
			return err
		}
	}

	var hasErrors, hasChanges bool
	out := cmd.OutOrStdout()
	switch {
	case writeToStdout:
		hasErrors = renderFmtStdout(out, results)
	case outputFormat == "json":
		if err := renderFmtJSON(out, results, check); err != nil {
			return err
		}
		s := driver.Summarize(results)
		hasErrors, hasChanges = s.Failed > 0, s.Changed > 0
	default:
		hasErrors, hasChanges = renderFmtText(out, results, check, quiet)
	}

	if timer != nil {
		printTimings(cmd.ErrOrStderr(), timer, opts.Cache)
	}
	if hasErrors {
		return fmt.Errorf("fmt: failed to format some files")
	}
	if check && hasChanges {
		return fmt.Errorf("fmt: formatting changes required")
	}
	return nil
}

func formatStdin(cmd *cobra.Command, opts format.Options) error {
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return err
	}
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual("<stdin>", data))
	res, err := format.FormatFile(cmd.Context(), sf, opts)
	if err != nil {
		if errors.Is(err, format.ErrParse) {
			_ = diagfmt.Pretty(cmd.ErrOrStderr(), res.Diagnostics, fs, diagfmt.PrettyOpts{Color: useColor(os.Stderr), Context: 1})
		}
		return err
	}
	_, err = cmd.OutOrStdout().Write(res.Output)
	return err
}

func runWatch(cmd *cobra.Command, args []string, opts driver.FormatOptions, quiet bool) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	if !quiet {
		fmt.Fprintln(errOut, "watching for changes, press Ctrl+C to stop")
	}
	return driver.Watch(ctx, args, opts, func(res driver.FormatResult) {
		switch {
		case res.Err != nil:
			fmt.Fprintf(errOut, "fmt: %s: %v\n", res.Path, res.Err)
		case res.Changed && !quiet:
			fmt.Fprintf(out, "reformatted %s\n", res.Path)
		}
	})
}

func renderFmtStdout(out io.Writer, results []driver.FormatResult) (hasErrors bool) {
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}
		_, _ = out.Write(res.Formatted)
	}
	return hasErrors
}

func renderFmtText(out io.Writer, results []driver.FormatResult, check, quiet bool) (hasErrors, hasChanges bool) {
	for _, res := range results {
		if res.Err != nil {
			hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}
		if !res.Changed {
			continue
		}
		hasChanges = true
		if quiet {
			continue
		}
		if check {
			fmt.Fprintln(out, res.Path)
		} else {
			fmt.Fprintf(out, "reformatted %s\n", res.Path)
		}
	}
	if !quiet && !check {
		s := driver.Summarize(results)
		fmt.Fprintf(out, "%d file(s), %d reformatted, %d cached, %d failed\n", s.Files, s.Changed, s.Cached, s.Failed)
	}
	return hasErrors, hasChanges
}

func renderFmtJSON(out io.Writer, results []driver.FormatResult, check bool) error {
	type jsonResult struct {
		Path        string `json:"path"`
		Changed     bool   `json:"changed"`
		Cached      bool   `json:"cached,omitempty"`
		ParseErrors uint   `json:"parse_errors,omitempty"`
		Error       string `json:"error,omitempty"`
		CheckRun    bool   `json:"check"`
	}

	payload := make([]jsonResult, 0, len(results))
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, Cached: res.Cached, ParseErrors: res.ParseErrors, CheckRun: check}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		payload = append(payload, jr)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

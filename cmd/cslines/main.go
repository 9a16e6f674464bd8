package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cslines/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "cslines",
	Short: "Line-break formatter for C# sources",
	Long: `cslines decides how many line breaks separate adjacent tokens of C# code
and rewrites files accordingly. Horizontal spacing is left untouched.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// main registers subcommands and persistent flags, then executes the root command.
// If command execution returns an error, the process exits with status code 1.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version
	rootCmd.PersistentPreRunE = setupRun

	// Добавляем команды
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("config", "", "path to cslines.toml (default: nearest one above the working directory)")
	colorFlag := uiModeAuto
	rootCmd.PersistentFlags().Var(&colorFlag, "color", "colorize output")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	rootCmd.PersistentFlags().String("trace", "", "write trace events to file (- for stderr)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-mode", "stream", "trace storage (stream|ring|both)")
	rootCmd.PersistentFlags().Int("trace-ring-size", 4096, "events kept in ring mode")
	rootCmd.PersistentFlags().Duration("trace-heartbeat", 0, "emit heartbeat events at this interval (0 = off)")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a Go runtime trace to file")

	err := rootCmd.Execute()
	finishTracing(err != nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cslines:", err)
		os.Exit(1)
	}
}

var (
	traceCleanup   func(failed bool)
	profileCleanup func()
)

func setupRun(cmd *cobra.Command, _ []string) error {
	if err := setupColor(); err != nil {
		return err
	}
	cleanup, err := setupTracing(cmd)
	if err != nil {
		return err
	}
	traceCleanup = cleanup
	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	profileCleanup = stopProfiling
	return nil
}

// finishTracing runs after Execute so cleanup also happens when a command fails.
func finishTracing(failed bool) {
	if profileCleanup != nil {
		profileCleanup()
		profileCleanup = nil
	}
	if traceCleanup != nil {
		traceCleanup(failed)
		traceCleanup = nil
	}
}

func setupColor() error {
	mode, err := colorMode()
	if err != nil {
		return err
	}
	color.NoColor = !mode.enabledFor(os.Stdout)
	return nil
}

func colorMode() (uiMode, error) {
	return readUIMode(rootCmd.PersistentFlags().Lookup("color").Value.String())
}

func useColor(f *os.File) bool {
	mode, err := colorMode()
	if err != nil {
		return false
	}
	return mode.enabledFor(f)
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}

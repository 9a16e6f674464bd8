package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"cslines/internal/config"
	"cslines/internal/linebreak"
	"cslines/internal/version"
)

const versionTagline = "one token pair at a time"

// buildReport is everything `cslines version` knows about the binary and the
// setup it would format with.
type buildReport struct {
	Tool       string   `json:"tool"`
	Version    string   `json:"version"`
	Tagline    string   `json:"tagline"`
	Revision   int      `json:"rules_revision"`
	Rules      []string `json:"rules"`
	Config     string   `json:"config"`
	Reason     string   `json:"reason"`
	ConfigErr  string   `json:"config_error,omitempty"`
	GitCommit  string   `json:"git_commit,omitempty"`
	GitMessage string   `json:"git_message,omitempty"`
	BuildDate  string   `json:"build_date,omitempty"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show cslines build information and the rules in use",
	Long: `version prints the build, the revision of the line-break rule chain and
the configuration file (with its formatting reason) found from the working
directory. Cached results are keyed by the version and the revision.`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

func init() {
	flags := versionCmd.Flags()
	flags.Bool("hash", false, "include git commit hash")
	flags.Bool("message", false, "include git commit message")
	flags.Bool("date", false, "include build timestamp")
	flags.Bool("full", false, "show every recorded bit of build metadata")
	flags.String("format", "pretty", "output format (pretty|json)")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	outputFormat, err := flags.GetString("format")
	if err != nil {
		return err
	}
	outputFormat = strings.ToLower(outputFormat)
	if outputFormat != "pretty" && outputFormat != "json" {
		return fmt.Errorf("version: unsupported format %q (must be pretty or json)", outputFormat)
	}
	full, _ := flags.GetBool("full")
	want := func(name string) bool {
		on, _ := flags.GetBool(name)
		return on || full
	}

	report := newBuildReport()
	// битый конфиг не мешает показать версию
	cfg, err := loadConfig(cmd)
	if err != nil {
		report.ConfigErr = err.Error()
		cfg = config.Default()
	}
	report.withConfig(cfg)
	if want("hash") {
		report.GitCommit = orUnknown(version.GitCommit)
	}
	if want("message") {
		report.GitMessage = orUnknown(version.GitMessage)
	}
	if want("date") {
		report.BuildDate = orUnknown(version.BuildDate)
	}

	if outputFormat == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	return report.render(cmd.OutOrStdout(), version.Colored())
}

func newBuildReport() buildReport {
	rules := linebreak.Rules()
	names := make([]string, len(rules))
	for i, id := range rules {
		names[i] = id.String()
	}
	v := strings.TrimSpace(version.Version)
	if v == "" {
		v = "dev"
	}
	return buildReport{
		Tool:     "cslines",
		Version:  v,
		Tagline:  versionTagline,
		Revision: linebreak.Revision,
		Rules:    names,
	}
}

func (r *buildReport) withConfig(cfg config.Config) {
	r.Config = cfg.Path
	if r.Config == "" {
		r.Config = "built-in defaults"
	}
	r.Reason = cfg.Format.Reason.String()
}

func (r buildReport) render(out io.Writer, colored string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s: %s\n", r.Tool, colored, r.Tagline)
	fmt.Fprintf(&b, "rules:   revision %d (%s)\n", r.Revision, strings.Join(r.Rules, ", "))
	fmt.Fprintf(&b, "config:  %s, reason %s\n", r.Config, r.Reason)
	if r.ConfigErr != "" {
		fmt.Fprintf(&b, "         %s\n", r.ConfigErr)
	}
	if r.GitCommit != "" {
		fmt.Fprintf(&b, "commit:  %s\n", r.GitCommit)
	}
	if r.GitMessage != "" {
		fmt.Fprintf(&b, "message: %s\n", r.GitMessage)
	}
	if r.BuildDate != "" {
		fmt.Fprintf(&b, "built:   %s\n", r.BuildDate)
	}
	_, err := io.WriteString(out, b.String())
	return err
}

func orUnknown(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return "unknown"
	}
	return s
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"cslines/internal/config"
	"cslines/internal/driver"
	"cslines/internal/format"
	"cslines/internal/linebreak"
	"cslines/internal/observ"
)

// loadConfig resolves --config or the nearest cslines.toml.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	explicit, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	wd, err := os.Getwd()
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Discover(wd, explicit)
	if err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// formatOptions merges the [format] section with the command's flags.
// Flags win when they were set explicitly.
func formatOptions(cmd *cobra.Command, cfg config.Config) (format.Options, error) {
	opts := cfg.FormatOptions()
	flags := cmd.Flags()
	if flags.Changed("reason") {
		s, err := flags.GetString("reason")
		if err != nil {
			return opts, err
		}
		reason, err := linebreak.ParseReason(s)
		if err != nil {
			return opts, err
		}
		opts.Reason = reason
	}
	if flags.Lookup("max-blank-lines") != nil && flags.Changed("max-blank-lines") {
		n, err := flags.GetInt("max-blank-lines")
		if err != nil {
			return opts, err
		}
		opts.MaxBlankLines = n
	}
	if flags.Lookup("strict") != nil && flags.Changed("strict") {
		strict, err := flags.GetBool("strict")
		if err != nil {
			return opts, err
		}
		opts.StrictParse = strict
	}
	maxDiag, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return opts, err
	}
	opts.MaxDiagnostics = maxDiag
	return opts, opts.Validate()
}

func addFormatFlags(cmd *cobra.Command) {
	cmd.Flags().String("reason", "", "formatting reason (edit|paste|command|codegen|template); default from config")
}

// openCache builds the decision cache described by cfg. A disk cache that
// cannot be opened degrades to memory only.
func openCache(cfg config.Config, quiet bool) *driver.Cache {
	var disk *driver.DiskCache
	var err error
	if cfg.Driver.CacheDir != "" {
		disk, err = driver.NewDiskCache(cfg.Driver.CacheDir)
	} else {
		disk, err = driver.OpenDiskCache("cslines")
	}
	if err != nil {
		disk = nil
		if !quiet {
			fmt.Fprintf(os.Stderr, "cache: disk cache disabled: %v\n", err)
		}
	}
	return driver.NewCache(0, 30*time.Minute, disk)
}

func newTimer(cmd *cobra.Command) (*observ.Timer, error) {
	on, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil || !on {
		return nil, err
	}
	return observ.NewTimer(), nil
}

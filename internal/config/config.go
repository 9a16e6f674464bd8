// Package config discovers and decodes cslines.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"cslines/internal/format"
	"cslines/internal/linebreak"
)

// FileName is the configuration file looked up from the working directory upwards.
const FileName = "cslines.toml"

// ErrInvalid marks a configuration that decoded but cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Format mirrors the [format] section.
type Format struct {
	Reason        linebreak.Reason `toml:"reason"`
	MaxBlankLines int              `toml:"max_blank_lines"`
	FinalNewline  bool             `toml:"final_newline"`
	StrictParse   bool             `toml:"strict_parse"`
}

// Driver mirrors the [driver] section.
type Driver struct {
	Jobs       int      `toml:"jobs"`
	Cache      bool     `toml:"cache"`
	CacheDir   string   `toml:"cache_dir"`
	Extensions []string `toml:"extensions"`
	Exclude    []string `toml:"exclude"`
}

// Config is the decoded file plus where it came from.
type Config struct {
	Path   string `toml:"-"`
	Format Format `toml:"format"`
	Driver Driver `toml:"driver"`
}

// Default returns the configuration used without a file.
func Default() Config {
	fo := format.DefaultOptions()
	return Config{
		Format: Format{
			Reason:        fo.Reason,
			MaxBlankLines: fo.MaxBlankLines,
			FinalNewline:  fo.FinalNewline,
			StrictParse:   fo.StrictParse,
		},
		Driver: Driver{
			Cache:      true,
			Extensions: []string{".cs", ".csx"},
		},
	}
}

// Find walks up from startDir to locate cslines.toml.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes path on top of Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("%s: %w: unknown keys %s", path, ErrInvalid, strings.Join(keys, ", "))
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover loads explicit when given, otherwise the nearest cslines.toml
// above startDir, otherwise Default.
func Discover(startDir, explicit string) (Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks values that decode fine but make no sense.
func (c Config) Validate() error {
	var errs []error
	if !c.Format.Reason.Valid() {
		errs = append(errs, fmt.Errorf("format.reason: invalid value %s", c.Format.Reason))
	}
	if c.Format.MaxBlankLines < -1 {
		errs = append(errs, fmt.Errorf("format.max_blank_lines: %d (use -1 to disable the cap)", c.Format.MaxBlankLines))
	}
	if c.Driver.Jobs < 0 {
		errs = append(errs, fmt.Errorf("driver.jobs: must not be negative, got %d", c.Driver.Jobs))
	}
	if len(c.Driver.Extensions) == 0 {
		errs = append(errs, errors.New("driver.extensions: at least one extension is required"))
	}
	for _, ext := range c.Driver.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			errs = append(errs, fmt.Errorf("driver.extensions: %q must look like \".cs\"", ext))
		}
	}
	for _, pat := range c.Driver.Exclude {
		if _, err := filepath.Match(pat, ""); err != nil {
			errs = append(errs, fmt.Errorf("driver.exclude: %q: %w", pat, err))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
}

// FormatOptions converts the [format] section.
func (c Config) FormatOptions() format.Options {
	opts := format.DefaultOptions()
	opts.Reason = c.Format.Reason
	opts.MaxBlankLines = c.Format.MaxBlankLines
	opts.FinalNewline = c.Format.FinalNewline
	opts.StrictParse = c.Format.StrictParse
	return opts
}

// Template is what `cslines init` writes.
func Template() string {
	d := Default()
	return fmt.Sprintf(`# cslines configuration

[format]
reason = %q          # edit|paste|command|codegen|template
max_blank_lines = %d
final_newline = %t
strict_parse = %t

[driver]
jobs = 0                 # 0 = GOMAXPROCS
cache = %t
extensions = [".cs", ".csx"]
exclude = ["bin", "obj"]
`, d.Format.Reason.String(), d.Format.MaxBlankLines, d.Format.FinalNewline, d.Format.StrictParse, d.Driver.Cache)
}

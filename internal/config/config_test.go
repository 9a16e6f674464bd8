package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"

	"cslines/internal/linebreak"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeConfig(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	got, ok, err := Find(nested)
	if err != nil || !ok {
		t.Fatalf("Find: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("Find = %q, want %q", got, want)
	}
}

func TestDiscoverWithoutFile(t *testing.T) {
	cfg, err := Discover(t.TempDir(), "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Path != "" || cfg.Format.Reason != linebreak.Command || !cfg.Driver.Cache {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[format]
reason = "codegen"
max_blank_lines = 1

[driver]
jobs = 3
extensions = [".cs"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Format.Reason != linebreak.CodeGen || cfg.Format.MaxBlankLines != 1 {
		t.Fatalf("format section: %+v", cfg.Format)
	}
	if !cfg.Format.FinalNewline {
		t.Fatalf("final_newline default lost")
	}
	if cfg.Driver.Jobs != 3 || len(cfg.Driver.Extensions) != 1 || !cfg.Driver.Cache {
		t.Fatalf("driver section: %+v", cfg.Driver)
	}
	opts := cfg.FormatOptions()
	if opts.Reason != linebreak.CodeGen || opts.MaxBlankLines != 1 || !opts.FinalNewline {
		t.Fatalf("format options: %+v", opts)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		invalid bool
		substr  string
	}{
		{"unknown key", "[format]\nwidth = 80\n", true, "format.width"},
		{"bad reason", "[format]\nreason = \"typing\"\n", false, "typing"},
		{"negative jobs", "[driver]\njobs = -2\n", true, "driver.jobs"},
		{"bad extension", "[driver]\nextensions = [\"cs\"]\n", true, "driver.extensions"},
		{"bad exclude", "[driver]\nexclude = [\"[\"]\n", true, "driver.exclude"},
		{"syntax", "[format\n", false, "failed to parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, t.TempDir(), tt.body))
			if err == nil {
				t.Fatalf("expected error")
			}
			if errors.Is(err, ErrInvalid) != tt.invalid {
				t.Fatalf("errors.Is(ErrInvalid) = %v for %v", !tt.invalid, err)
			}
			if !strings.Contains(err.Error(), tt.substr) {
				t.Fatalf("error %q does not mention %q", err, tt.substr)
			}
		})
	}
}

func TestTemplateDecodes(t *testing.T) {
	var cfg Config
	meta, err := toml.Decode(Template(), &cfg)
	if err != nil {
		t.Fatalf("template: %v", err)
	}
	if len(meta.Undecoded()) != 0 {
		t.Fatalf("template has unknown keys: %v", meta.Undecoded())
	}
	if cfg.Format.Reason != linebreak.Command {
		t.Fatalf("template reason = %s", cfg.Format.Reason)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
}

package format

import (
	"errors"
	"fmt"

	"cslines/internal/linebreak"
)

// Options configures a formatting pass.
type Options struct {
	Reason linebreak.Reason
	// MaxBlankLines caps runs of blank lines; negative disables the cap.
	MaxBlankLines int
	// FinalNewline makes the document end with exactly one line break.
	FinalNewline bool
	// StrictParse turns parse errors into ErrParse instead of formatting anyway.
	StrictParse bool
	// MaxPasses bounds CheckConverges.
	MaxPasses int
	// MaxDiagnostics bounds the diagnostics kept per file (0 = unbounded).
	MaxDiagnostics int
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Reason:         linebreak.Command,
		MaxBlankLines:  2,
		FinalNewline:   true,
		MaxPasses:      4,
		MaxDiagnostics: 256,
	}
}

func (o Options) withDefaults() Options {
	if o.MaxPasses <= 0 {
		o.MaxPasses = 4
	}
	return o
}

// Validate reports options no pass can honor.
func (o Options) Validate() error {
	var errs []error
	if !o.Reason.Valid() {
		errs = append(errs, fmt.Errorf("invalid formatting reason %s", o.Reason))
	}
	if o.MaxPasses < 0 {
		errs = append(errs, fmt.Errorf("max passes must not be negative, got %d", o.MaxPasses))
	}
	if o.MaxDiagnostics < 0 {
		errs = append(errs, fmt.Errorf("max diagnostics must not be negative, got %d", o.MaxDiagnostics))
	}
	return errors.Join(errs...)
}

// Fingerprint identifies the options that influence output.
func (o Options) Fingerprint() string {
	return fmt.Sprintf("reason=%s;blank=%d;eol=%t;strict=%t", o.Reason, o.MaxBlankLines, o.FinalNewline, o.StrictParse)
}

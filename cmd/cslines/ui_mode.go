package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// uiMode is the auto|on|off switch shared by --color and --ui.
type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	default:
		return "", fmt.Errorf("invalid value %q (expected auto|on|off)", value)
	}
}

// String, Set and Type make *uiMode a flag value.
func (m uiMode) String() string { return string(m) }

func (m *uiMode) Set(s string) error {
	v, err := readUIMode(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func (m *uiMode) Type() string { return "auto|on|off" }

// enabledFor resolves auto against w: on only for a terminal.
func (m uiMode) enabledFor(w io.Writer) bool {
	switch m {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

// fmtOutput is what fmt prints besides rewriting files.
type fmtOutput struct {
	quiet  bool
	stdout bool
	format string
}

// progressWanted decides whether fmt shows the Bubble Tea progress view.
// Formatted code or JSON on stdout rule it out, whatever the mode.
func progressWanted(mode uiMode, w io.Writer, out fmtOutput) bool {
	if out.quiet || out.stdout || out.format != "text" {
		return false
	}
	return mode.enabledFor(w)
}

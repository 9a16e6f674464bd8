package linebreak

import (
	"fmt"
)

// Mode tells how an Adjustment's line count is applied.
type Mode uint8

const (
	// ModeNone is the zero value: the rule made no decision.
	ModeNone Mode = iota
	// ModeForce requires exactly Lines line breaks.
	ModeForce
	// ModePreserve requires at least Lines line breaks; more are kept.
	ModePreserve
)

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "None"
	case ModeForce:
		return "Force"
	case ModePreserve:
		return "Preserve"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

func (m *Mode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "None", "":
		*m = ModeNone
	case "Force":
		*m = ModeForce
	case "Preserve":
		*m = ModePreserve
	default:
		return fmt.Errorf("unknown adjustment mode %q", text)
	}
	return nil
}

// Adjustment is a line-break decision for one token pair. Lines counts line
// breaks between the tokens: 0 keeps them on one line, 1 puts the second
// token on the next line, 2 leaves one blank line.
type Adjustment struct {
	Lines int  `json:"lines" yaml:"lines" msgpack:"l"`
	Mode  Mode `json:"mode" yaml:"mode" msgpack:"m"`
}

// None is the empty decision returned by a declining rule.
var None = Adjustment{}

func Force(lines int) Adjustment    { return Adjustment{Lines: lines, Mode: ModeForce} }
func Preserve(lines int) Adjustment { return Adjustment{Lines: lines, Mode: ModePreserve} }

func (a Adjustment) IsNone() bool { return a.Mode == ModeNone }

// Resolve returns the number of line breaks a gap that currently holds
// existing breaks should hold after the adjustment.
func (a Adjustment) Resolve(existing int) int {
	switch a.Mode {
	case ModeForce:
		return a.Lines
	case ModePreserve:
		return max(existing, a.Lines)
	}
	return existing
}

func (a Adjustment) String() string {
	if a.Mode == ModeNone {
		return "None"
	}
	return fmt.Sprintf("%s(%d)", a.Mode, a.Lines)
}

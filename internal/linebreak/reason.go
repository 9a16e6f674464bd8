package linebreak

import (
	"fmt"
	"strings"
)

// Reason is what triggered formatting. It selects which rules are eligible.
type Reason uint8

const (
	InteractiveEdit Reason = iota
	Paste
	Command
	CodeGen
	CodeGenFromTemplate
)

var reasonNames = [...]string{
	InteractiveEdit:     "edit",
	Paste:               "paste",
	Command:             "command",
	CodeGen:             "codegen",
	CodeGenFromTemplate: "template",
}

func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return fmt.Sprintf("Reason(%d)", uint8(r))
}

// ParseReason accepts edit, paste, command, codegen and template.
func ParseReason(s string) (Reason, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range reasonNames {
		if n == name {
			return Reason(i), nil
		}
	}
	return 0, fmt.Errorf("unknown formatting reason %q (want edit|paste|command|codegen|template)", s)
}

func (r Reason) MarshalText() ([]byte, error) {
	if int(r) >= len(reasonNames) {
		return nil, fmt.Errorf("invalid formatting reason %d", uint8(r))
	}
	return []byte(r.String()), nil
}

func (r *Reason) UnmarshalText(text []byte) error {
	v, err := ParseReason(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Set and Type let a *Reason serve as a command-line flag value.
func (r *Reason) Set(s string) error {
	return r.UnmarshalText([]byte(s))
}

func (r *Reason) Type() string { return "reason" }

// Valid reports whether r is one of the named reasons.
func (r Reason) Valid() bool { return int(r) < len(reasonNames) }

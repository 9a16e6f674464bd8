package linebreak

import "fmt"

// Revision identifies the behavior of the rule chain. Bump it whenever a rule
// decides differently, so cached formatting results are not reused.
const Revision = 1

// RuleID names the rule that produced a decision.
type RuleID uint8

const (
	RuleNone RuleID = iota
	RulePropertyAccessor
	RuleBraceAdjacency
	RuleSynthesizedSemicolon
	RuleTopLevelSpacing
	RuleGeneratedSymbolSpacing
	// RuleFallback marks decisions returned by the caller's fallback.
	RuleFallback
	// RuleEndOfFile marks the fallback invoked for a pair ending at EOF.
	RuleEndOfFile

	ruleCount
)

var ruleNames = [ruleCount]string{
	RuleNone:                   "none",
	RulePropertyAccessor:       "property-accessor",
	RuleBraceAdjacency:         "brace-adjacency",
	RuleSynthesizedSemicolon:   "synthesized-semicolon",
	RuleTopLevelSpacing:        "top-level-spacing",
	RuleGeneratedSymbolSpacing: "generated-symbol-spacing",
	RuleFallback:               "fallback",
	RuleEndOfFile:              "end-of-file",
}

func (r RuleID) String() string {
	if r < ruleCount {
		return ruleNames[r]
	}
	return fmt.Sprintf("RuleID(%d)", uint8(r))
}

func (r RuleID) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *RuleID) UnmarshalText(text []byte) error {
	for i, n := range ruleNames {
		if n == string(text) {
			*r = RuleID(i)
			return nil
		}
	}
	return fmt.Errorf("unknown rule %q", text)
}

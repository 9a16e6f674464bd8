package linebreak

import (
	"fmt"

	"cslines/internal/syntax"
	"cslines/internal/token"
)

type ruleFunc func(prev, curr syntax.Token, reason Reason) Adjustment

// chain is evaluated in order; the first decision wins.
var chain = [...]struct {
	id    RuleID
	apply ruleFunc
}{
	{RulePropertyAccessor, propertyAccessor},
	{RuleBraceAdjacency, braceAdjacency},
	{RuleSynthesizedSemicolon, synthesizedSemicolon},
	{RuleTopLevelSpacing, topLevelSpacing},
	{RuleGeneratedSymbolSpacing, generatedSymbolSpacing},
}

// Rules lists the rule chain in evaluation order.
func Rules() []RuleID {
	ids := make([]RuleID, len(chain))
	for i, r := range chain {
		ids[i] = r.id
	}
	return ids
}

// Evaluate returns the line-break decision between prev and curr. When no
// rule decides, or curr is the end of file, it returns next().
//
// Both tokens must be valid tokens of a tree with parents; Evaluate panics
// otherwise.
func Evaluate(prev, curr syntax.Token, reason Reason, next func() Adjustment) Adjustment {
	adj, _ := Explain(prev, curr, reason, next)
	return adj
}

// Explain is Evaluate that also reports which rule decided.
func Explain(prev, curr syntax.Token, reason Reason, next func() Adjustment) (Adjustment, RuleID) {
	mustAttached("current", curr)
	if curr.Kind() == token.EOF {
		return callNext(next), RuleEndOfFile
	}
	mustAttached("previous", prev)
	for _, r := range chain {
		if adj := r.apply(prev, curr, reason); !adj.IsNone() {
			return adj, r.id
		}
	}
	return callNext(next), RuleFallback
}

func callNext(next func() Adjustment) Adjustment {
	if next == nil {
		return None
	}
	return next()
}

func mustAttached(role string, tok syntax.Token) {
	if !tok.Valid() {
		panic(fmt.Sprintf("linebreak: %s token is not a tree token", role))
	}
	if !tok.Parent().Valid() {
		panic(fmt.Sprintf("linebreak: %s token %d (%s) has no parent node", role, tok.ID(), tok.Kind()))
	}
}

package linebreak

import (
	"cslines/internal/syntax"
	"cslines/internal/token"
)

// propertyAccessor puts accessors of a property on their own lines as soon
// as one accessor with a written keyword has a body.
func propertyAccessor(_, curr syntax.Token, _ Reason) Adjustment {
	if curr.Width() == 0 {
		return None
	}
	switch curr.Kind() {
	case token.KwGet, token.KwSet, token.RBrace:
	default:
		return None
	}
	decl := curr.Ancestor(&syntax.PropertyLike)
	if !decl.Valid() {
		return None
	}
	for _, acc := range accessors(decl) {
		if kw := accessorKeyword(acc); kw.Valid() && kw.Width() > 0 && hasBody(acc) {
			return Force(1)
		}
	}
	return None
}

// braceAdjacency stacks closing braces in generated code and otherwise
// keeps delimiters where the author put them.
func braceAdjacency(prev, curr syntax.Token, reason Reason) Adjustment {
	if curr.Width() == 0 {
		return None
	}
	if reason == CodeGen {
		if prev.Kind() == token.RBrace {
			if curr.Kind() == token.RBrace {
				return Force(1)
			}
			if curr.Kind() == token.Semicolon && curr.Next().Kind() == token.RBrace {
				return Force(1)
			}
		}
		return None
	}
	if curr.Kind().IsDelimiter() {
		return Preserve(0)
	}
	return None
}

// synthesizedSemicolon keeps a parser-inserted ';' attached to the
// declaration it terminates.
func synthesizedSemicolon(prev, curr syntax.Token, reason Reason) Adjustment {
	if reason != Paste && reason != Command {
		return None
	}
	currDecl := curr.Ancestor(&syntax.TopLevel)
	if !currDecl.Valid() {
		return None
	}
	prev = prev.RealOrPrev()
	prevDecl := prev.Ancestor(&syntax.TopLevel)
	tree := curr.Tree()
	lineDiff := tree.LineDifference(prev, curr)

	if lineDiff == 0 || curr.Kind() != token.Semicolon || curr.Width() != 0 || prevDecl.ID() != currDecl.ID() {
		return None
	}
	adj := Force(0)
	if tree.LineDifference(curr, curr.Next()) != 0 {
		adj = Preserve(lineDiff)
	}

	switch kind := currDecl.Kind(); {
	case kind == syntax.NodeUsingDirective, kind == syntax.NodeAttributeList, syntax.NamespaceLike.Has(kind):
		return adj
	case kind == syntax.NodeMethodDecl:
		// unreachable while the rule is gated on Paste and Command
		if reason == CodeGen {
			return adj
		}
	}
	return None
}

// topLevelSpacing asks for room between declarations directly inside a
// namespace or the compilation unit.
func topLevelSpacing(prev, curr syntax.Token, reason Reason) Adjustment {
	currDecl := curr.Ancestor(&syntax.TopLevel)
	if !currDecl.Valid() || !syntax.NamespaceLike.Has(currDecl.Parent().Kind()) {
		return None
	}
	prev = prev.RealOrPrev()
	prevDecl := prev.Ancestor(&syntax.TopLevel)
	lineDiff := curr.Tree().LineDifference(prev, curr)
	if currDecl.FirstToken().ID() != curr.ID() {
		return None
	}

	lines := 1
	currKind, prevKind := currDecl.Kind(), prevDecl.Kind()
	switch {
	case currKind == syntax.NodeUsingDirective && syntax.NamespaceLike.Has(prevKind):
		lines++
	case syntax.GlobalMember.Has(currKind) && syntax.GlobalMember.Has(prevKind):
		return None
	case syntax.GlobalMember.Has(currKind) &&
		(prevKind == syntax.NodeUsingDirective || syntax.NamespaceLike.Has(prevKind)) &&
		lineDiff <= 1:
		lines++
	}

	if reason == CodeGenFromTemplate && lines <= 1 {
		return None
	}
	return Preserve(lines)
}

// generatedSymbolSpacing separates distinct members by a blank line, and
// auto-properties in generated code by two.
func generatedSymbolSpacing(prev, curr syntax.Token, reason Reason) Adjustment {
	if reason != InteractiveEdit && reason != CodeGen {
		return None
	}
	currMember := curr.Ancestor(&syntax.Member)
	if !currMember.Valid() {
		return None
	}
	prev = prev.RealOrPrev()
	prevMember := prev.Ancestor(&syntax.Member)
	if prevMember.ID() == currMember.ID() {
		return None
	}
	if reason == CodeGen && syntax.PropertyLike.Has(prevMember.Kind()) && isAutoProperty(prevMember) &&
		curr.Tree().LineDifference(prev, curr) <= 1 {
		return Force(3)
	}
	return Force(2)
}

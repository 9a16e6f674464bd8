package linebreak

import (
	"cslines/internal/syntax"
)

func accessors(decl syntax.Node) []syntax.Node {
	list := decl.Child(syntax.NodeAccessorList)
	if !list.Valid() {
		return nil
	}
	var out []syntax.Node
	for _, c := range list.Children() {
		if c.Kind() == syntax.NodeAccessorDecl {
			out = append(out, c)
		}
	}
	return out
}

// accessorKeyword returns the get/set/init/add/remove token of an accessor,
// synthesized or not.
func accessorKeyword(acc syntax.Node) syntax.Token {
	for _, tok := range acc.OwnTokens() {
		if tok.Kind().IsAccessorKeyword() {
			return tok
		}
	}
	return syntax.Token{}
}

// hasBody: блок или => выражение.
func hasBody(n syntax.Node) bool {
	return n.Child(syntax.NodeBlock).Valid() || n.Child(syntax.NodeArrowExpression).Valid()
}

// isAutoProperty reports whether a property-like declaration has neither an
// expression body nor an accessor with a body.
func isAutoProperty(decl syntax.Node) bool {
	if decl.Child(syntax.NodeArrowExpression).Valid() {
		return false
	}
	for _, acc := range accessors(decl) {
		if hasBody(acc) {
			return false
		}
	}
	return true
}

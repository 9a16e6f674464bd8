package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"cslines/internal/syntax"
)

type treeNode struct {
	label    string
	children []*treeNode
}

// TreeOpts configures FormatTree.
type TreeOpts struct {
	// Tokens lists each node's own tokens under it.
	Tokens bool
}

// FormatTree prints the syntax tree as an indented outline.
func FormatTree(w io.Writer, tree *syntax.Tree, opts TreeOpts) error {
	if tree == nil {
		return nil
	}
	root := buildTreeNode(tree.Root(), opts)
	var b strings.Builder
	b.WriteString(root.label)
	b.WriteString("\n")
	writeChildren(&b, root.children, "")
	_, err := io.WriteString(w, b.String())
	return err
}

func buildTreeNode(n syntax.Node, opts TreeOpts) *treeNode {
	node := &treeNode{label: fmt.Sprintf("%s %s", n.Kind(), n.Span())}
	if !opts.Tokens {
		for _, child := range n.Children() {
			node.children = append(node.children, buildTreeNode(child, opts))
		}
		return node
	}

	// токены и дочерние узлы в порядке документа
	children := n.Children()
	ci := 0
	for _, tok := range n.Tokens() {
		if tok.Parent().ID() == n.ID() {
			node.children = append(node.children, &treeNode{label: tokenLabel(tok)})
			continue
		}
		if ci < len(children) && children[ci].Contains(tok) {
			node.children = append(node.children, buildTreeNode(children[ci], opts))
			ci++
		}
	}
	for ; ci < len(children); ci++ {
		node.children = append(node.children, buildTreeNode(children[ci], opts))
	}
	return node
}

func tokenLabel(tok syntax.Token) string {
	label := tok.Kind().String()
	if text := tok.Text(); text != "" {
		label += fmt.Sprintf(" %q", text)
	}
	if tok.IsMissing() {
		label += " <missing>"
	}
	return label
}

func writeChildren(b *strings.Builder, children []*treeNode, prefix string) {
	for i, child := range children {
		last := i == len(children)-1
		branch, next := "├─ ", "│  "
		if last {
			branch, next = "└─ ", "   "
		}
		b.WriteString(prefix)
		b.WriteString(branch)
		b.WriteString(child.label)
		b.WriteString("\n")
		writeChildren(b, child.children, prefix+next)
	}
}

// Package linebreak decides how many line breaks separate two adjacent
// tokens of a syntax tree.
//
// Evaluate runs a fixed chain of rules over a read-only tree: property
// accessors, brace adjacency, synthesized semicolons, top-level declaration
// spacing and generated member spacing. The first rule that returns a
// decision wins; when none does, the caller's fallback decides. The engine
// keeps no state between calls, so pairs of the same tree may be evaluated
// concurrently and in any order.
package linebreak

// Package syntax holds the immutable token/node tree the formatter reads.
//
// A Tree owns two arenas: tokens in document order and nodes in creation
// order. Every token has exactly one parent node; every node covers a
// contiguous token range, so Prev/Next navigation and containment checks are
// index arithmetic. Token and Node are small handles (tree pointer + 1-based
// id) that compare equal when they denote the same element.
//
// Trees are built once through Builder and never mutated afterwards, which is
// what lets the line-break engine run concurrently over the same tree.
package syntax

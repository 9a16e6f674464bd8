// Package token defines lexical token kinds and trivia for cslines.
// Invariants:
//   - Token.Text is a slice of the original source (no copies); synthesized
//     tokens have empty Text and an empty Span.
//   - Token.Span matches Text exactly (Begin..End).
//   - Contextual keywords (get, set, init, add, remove, record, partial,
//     async, where, global) are lexed as Ident; the parser re-tags them with
//     LookupContextual when they appear in keyword position.
//   - Predefined type names (int, string, void, ...) are identifiers.
//   - '>>' is never produced: two adjacent Gt tokens keep generic type
//     argument lists closable without re-lexing.
package token

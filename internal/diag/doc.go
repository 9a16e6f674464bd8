// Package diag defines the diagnostic model shared by the lexer and parser.
//
// Diagnostics are findings about the source text (unknown characters,
// unterminated literals, missing tokens the parser had to synthesize). They
// never stop formatting by themselves: the formatter works on whatever tree the
// parser recovered, and the driver decides whether parse errors are fatal.
//
// Producers emit through a Reporter; BagReporter stores findings into a bounded
// Bag that the driver and CLI read back.
package diag

// Package diag defines the diagnostic model shared by the lexer and parser.
//
// Diagnostic is the central record: Severity, a stable numeric Code (lexical
// codes in the 1000 range, syntax codes in the 2000 range), a message, the
// primary source.Span and optional Notes. Diagnostics never abort a parse:
// every parse returns a usable tree plus zero or more diagnostics.
//
// Phases emit through the Reporter interface so they stay decoupled from
// storage. BagReporter aggregates into a Bag, which supports capping,
// position sorting and deduplication; DedupReporter filters exact repeats
// before they reach the bag.
//
// Package diag performs no formatting or IO. Rendering lives in
// internal/diagfmt.
package diag

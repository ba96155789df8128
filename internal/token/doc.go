// Package token defines lexical token kinds and trivia for the Nix front end.
// Invariants:
//   - Token.Text is exactly the source text covered by Token.Span (no copies,
//     no unescaping; string escape processing is a consumer concern).
//   - Whitespace and comments are leading Trivia on the next significant
//     token; trailing file trivia rides on the EOF token.
//   - Keywords are fixed at process start; a keyword used where only an
//     attribute name is grammatical is re-read by the parser, not the lexer.
//   - String literals are token sequences (StringStart/Content/End with
//     InterpolStart/InterpolEnd in between), never a single token.
package token

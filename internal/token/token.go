package token

import (
	"nixel/internal/source"
)

// Token represents a single source token with its location and trivia.
// Tokens are immutable once produced by the lexer.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, path, or URI literal.
// String parts are not literals here: a string is a tree node, not a token.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, Path, HomePath, SearchPath, Uri:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwIf, KwThen, KwElse, KwAssert, KwWith, KwLet, KwIn, KwRec, KwInherit, KwOr:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Concat, Update, Plus, Minus, Star, Slash, EqEq, BangEq, Lt, LtEq,
		Gt, GtEq, AndAnd, OrOr, Implies, Bang, Question, At, Ellipsis,
		Assign, Semicolon, Colon, Comma, Dot,
		LParen, RParen, LBrace, RBrace, LBracket, RBracket,
		InterpolStart, InterpolEnd:
		return true
	default:
		return false
	}
}

// IsStringPart reports whether the token belongs to a string literal body.
func (t Token) IsStringPart() bool {
	switch t.Kind {
	case StringStart, StringContent, StringEnd,
		IndStringStart, IndStringContent, IndStringEnd:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// CanBeAttrName reports whether the token may serve as a plain attribute
// name. Keywords are valid attribute names in Nix (x.or, x.then are legal);
// the grammar re-classifies them in that position.
func (t Token) CanBeAttrName() bool {
	return t.Kind == Ident || t.IsKeyword()
}

package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Unknown covers a maximal run of bytes the lexer cannot classify.
	// The run is preserved verbatim so the tree still round-trips.
	Unknown Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwThen represents the 'then' keyword.
	KwThen // then
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwAssert represents the 'assert' keyword.
	KwAssert // assert
	// KwWith represents the 'with' keyword.
	KwWith // with
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwRec represents the 'rec' keyword.
	KwRec // rec
	// KwInherit represents the 'inherit' keyword.
	KwInherit // inherit
	// KwOr represents the 'or' keyword. Doubles as a plain attribute
	// name in attrpath position; the parser re-reads it there.
	KwOr // or

	// IntLit represents the integer literal token.
	IntLit
	// FloatLit represents the float literal token.
	FloatLit
	// Path represents a relative or absolute path literal (./x, /etc/nixos).
	Path
	// HomePath represents a home-relative path literal (~/x).
	HomePath
	// SearchPath represents a search-path literal (<nixpkgs/lib>).
	SearchPath
	// Uri represents a bare URI literal (https://example.org/x).
	Uri

	// StringStart represents the opening '"' of a string literal.
	StringStart
	// StringContent represents a raw text fragment inside a string literal.
	StringContent
	// StringEnd represents the closing '"' of a string literal.
	StringEnd
	// IndStringStart represents the opening '' quote pair of an indented string.
	IndStringStart
	// IndStringContent represents a raw text fragment inside an indented string.
	IndStringContent
	// IndStringEnd represents the closing '' quote pair of an indented string.
	IndStringEnd
	// InterpolStart represents '${' opening an interpolation.
	InterpolStart // ${
	// InterpolEnd represents the '}' that closes an interpolation at
	// brace depth zero. Distinct from RBrace so the parser never needs
	// to know the lexer mode.
	InterpolEnd // }

	// Concat represents the list concatenation operator token.
	Concat // ++
	// Update represents the attrset update operator token.
	Update // //
	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// EqEq represents the equality operator token.
	EqEq // ==
	// BangEq represents the inequality operator token.
	BangEq // !=
	// Lt represents the less-than operator token.
	Lt // <
	// LtEq represents the less-or-equal operator token.
	LtEq // <=
	// Gt represents the greater-than operator token.
	Gt // >
	// GtEq represents the greater-or-equal operator token.
	GtEq // >=
	// AndAnd represents the logical and operator token.
	AndAnd // &&
	// OrOr represents the logical or operator token.
	OrOr // ||
	// Implies represents the implication operator token.
	Implies // ->
	// Bang represents the logical not operator token.
	Bang // !
	// Question represents the has-attribute operator token.
	Question // ?
	// At represents the pattern binding operator token.
	At // @
	// Ellipsis represents the pattern ellipsis token.
	Ellipsis // ...
	// Assign represents the binding assign token.
	Assign // =
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Colon represents the lambda colon token.
	Colon // :
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the attribute selection token.
	Dot // .
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBrace represents the left brace token.
	LBrace // {
	// RBrace represents the right brace token.
	RBrace // }
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]
)

var kindNames = [...]string{
	Unknown:          "Unknown",
	EOF:              "EOF",
	Ident:            "Ident",
	KwIf:             "KwIf",
	KwThen:           "KwThen",
	KwElse:           "KwElse",
	KwAssert:         "KwAssert",
	KwWith:           "KwWith",
	KwLet:            "KwLet",
	KwIn:             "KwIn",
	KwRec:            "KwRec",
	KwInherit:        "KwInherit",
	KwOr:             "KwOr",
	IntLit:           "IntLit",
	FloatLit:         "FloatLit",
	Path:             "Path",
	HomePath:         "HomePath",
	SearchPath:       "SearchPath",
	Uri:              "Uri",
	StringStart:      "StringStart",
	StringContent:    "StringContent",
	StringEnd:        "StringEnd",
	IndStringStart:   "IndStringStart",
	IndStringContent: "IndStringContent",
	IndStringEnd:     "IndStringEnd",
	InterpolStart:    "InterpolStart",
	InterpolEnd:      "InterpolEnd",
	Concat:           "Concat",
	Update:           "Update",
	Plus:             "Plus",
	Minus:            "Minus",
	Star:             "Star",
	Slash:            "Slash",
	EqEq:             "EqEq",
	BangEq:           "BangEq",
	Lt:               "Lt",
	LtEq:             "LtEq",
	Gt:               "Gt",
	GtEq:             "GtEq",
	AndAnd:           "AndAnd",
	OrOr:             "OrOr",
	Implies:          "Implies",
	Bang:             "Bang",
	Question:         "Question",
	At:               "At",
	Ellipsis:         "Ellipsis",
	Assign:           "Assign",
	Semicolon:        "Semicolon",
	Colon:            "Colon",
	Comma:            "Comma",
	Dot:              "Dot",
	LParen:           "LParen",
	RParen:           "RParen",
	LBrace:           "LBrace",
	RBrace:           "RBrace",
	LBracket:         "LBracket",
	RBracket:         "RBracket",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

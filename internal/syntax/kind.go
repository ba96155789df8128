package syntax

// NodeKind represents the category of a concrete syntax tree node.
type NodeKind uint8

const (
	// Error wraps tokens skipped during recovery plus any partial children.
	Error NodeKind = iota
	// Root is the single top node of a parsed document.
	Root

	// Identifier wraps one Ident (or contextually re-read keyword) token.
	Identifier
	// Literal wraps one IntLit/FloatLit/Path/HomePath/SearchPath/Uri token.
	Literal
	// StringNode is a "..." literal: StringStart, content/interpolations, StringEnd.
	StringNode
	// IndString is a ''...'' literal. Indent stripping is semantic and
	// happens downstream; the node keeps the raw parts.
	IndString
	// Interpol is one ${ expr } fragment inside a string or attrpath.
	Interpol

	// Apply is function application by juxtaposition: f x.
	Apply
	// Select is attribute selection: e.a.b, optionally with `or default`.
	Select
	// HasAttr is the postfix has-attribute test: e ? a.b.
	HasAttr
	// BinaryOp covers all infix operators; the operator token is a child.
	BinaryOp
	// UnaryOp is prefix negation or logical not.
	UnaryOp

	// If is if cond then a else b.
	If
	// With is with scope; body.
	With
	// Assert is assert cond; body.
	Assert
	// LetIn is let bindings in body.
	LetIn

	// Lambda is param: body; one node kind for both parameter variants.
	Lambda
	// ParamSimple is a bare identifier parameter.
	ParamSimple
	// ParamPattern is { a, b ? default, ... } with optional @bind.
	ParamPattern
	// PatField is one field of a pattern parameter, with optional default.
	PatField
	// PatBind is the @name whole-argument binding of a pattern.
	PatBind

	// AttrSet is { bindings } or rec { bindings }; rec is a flag token child.
	AttrSet
	// Binding is attrpath = expr ;
	Binding
	// Inherit is inherit a b; or inherit (expr) a b;
	Inherit
	// InheritFrom is the parenthesized source expression of inherit.
	InheritFrom
	// AttrPath is a dotted attribute path; segments are Identifier,
	// StringNode or Dynamic children.
	AttrPath
	// Dynamic is a ${ expr } attrpath segment.
	Dynamic

	// List is [ elements ].
	List
	// Paren is ( expr ).
	Paren
)

var nodeKindNames = [...]string{
	Error:        "Error",
	Root:         "Root",
	Identifier:   "Identifier",
	Literal:      "Literal",
	StringNode:   "String",
	IndString:    "IndString",
	Interpol:     "Interpol",
	Apply:        "Apply",
	Select:       "Select",
	HasAttr:      "HasAttr",
	BinaryOp:     "BinaryOp",
	UnaryOp:      "UnaryOp",
	If:           "If",
	With:         "With",
	Assert:       "Assert",
	LetIn:        "LetIn",
	Lambda:       "Lambda",
	ParamSimple:  "ParamSimple",
	ParamPattern: "ParamPattern",
	PatField:     "PatField",
	PatBind:      "PatBind",
	AttrSet:      "AttrSet",
	Binding:      "Binding",
	Inherit:      "Inherit",
	InheritFrom:  "InheritFrom",
	AttrPath:     "AttrPath",
	Dynamic:      "Dynamic",
	List:         "List",
	Paren:        "Paren",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) && nodeKindNames[k] != "" {
		return nodeKindNames[k]
	}
	return "NodeKind(?)"
}

package parser

import (
	"strconv"
	"strings"

	"nixel/internal/diag"
	"nixel/internal/source"
	"nixel/internal/syntax"
	"nixel/internal/token"
)

// parseAttrSet — { bindings } или rec { bindings }.
func (p *Parser) parseAttrSet() {
	p.b.StartNode(syntax.AttrSet)
	if p.at(token.KwRec) {
		p.advance()
		if !p.at(token.LBrace) {
			p.err(diag.SynUnexpectedToken, "expected '{' after 'rec'")
			p.b.FinishNode()
			return
		}
	}
	p.advance() // '{'
	p.parseBindings(token.RBrace)
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close attribute set")
	p.b.FinishNode()
}

// parseBindings — общий цикл тел attrset и let; closer — RBrace или KwIn.
// seen — статические ключи этой области видимости для поиска дублей.
func (p *Parser) parseBindings(closer token.Kind) {
	seen := make(map[source.StringID]source.Span)
	for !p.at(closer) && !p.at(token.EOF) {
		switch p.lx.Peek().Kind {
		case token.KwInherit:
			p.parseInherit(seen)
		case token.Ident, token.KwOr, token.StringStart, token.InterpolStart:
			p.parseBinding(seen)
		default:
			p.err(diag.SynExpectBinding,
				"expected binding or 'inherit', got "+strconv.Quote(p.lx.Peek().Text))
			if !p.recoverBinding(closer) {
				return
			}
		}
	}
}

// parseBinding — attrpath = expr ;
func (p *Parser) parseBinding(seen map[source.StringID]source.Span) {
	p.b.StartNode(syntax.Binding)
	key, sp, static := p.parseAttrPath()
	if static {
		p.checkDuplicate(seen, key, sp)
	}
	if p.expect(token.Assign, diag.SynExpectAssign, "expected '=' in binding") {
		p.parseExpr()
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after binding")
	p.b.FinishNode()
}

// parseInherit — inherit a b; либо inherit (expr) a b;
func (p *Parser) parseInherit(seen map[source.StringID]source.Span) {
	p.b.StartNode(syntax.Inherit)
	p.advance() // 'inherit'
	if p.at(token.LParen) {
		p.b.StartNode(syntax.InheritFrom)
		p.advance()
		p.parseExpr()
		p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after inherit source")
		p.b.FinishNode()
	}
	for {
		switch p.lx.Peek().Kind {
		case token.Ident, token.KwOr:
			p.b.StartNode(syntax.Identifier)
			tok := p.advance()
			p.checkDuplicate(seen, tok.Text, tok.Span)
			p.b.FinishNode()
		case token.StringStart:
			p.parseString()
		case token.InterpolStart:
			// динамика в inherit запрещена семантикой, но дерево её хранит
			p.parseDynamic()
		default:
			p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after inherit")
			p.b.FinishNode()
			return
		}
	}
}

// checkDuplicate — повторное определение имени в одной области видимости.
// Ключи интернируются: map держит компактные ID, а не копии строк.
func (p *Parser) checkDuplicate(seen map[source.StringID]source.Span, key string, sp source.Span) {
	id := p.names.Intern(key)
	if prev, ok := seen[id]; ok {
		p.report(diag.SynDuplicateBinding, diag.SevError, sp,
			"attribute "+strconv.Quote(key)+" already defined",
			[]diag.Note{{Span: prev, Msg: "first defined here"}})
		return
	}
	seen[id] = sp
}

// parseAttrPath — seg ('.' seg)*, где seg — имя, строка или ${ expr }.
// Возвращает текст пути, его span и признак статичности: путь статичен,
// когда все сегменты — простые имена. Строки и ${...} ключом не считаются.
func (p *Parser) parseAttrPath() (string, source.Span, bool) {
	p.b.StartNode(syntax.AttrPath)
	start := p.lx.Peek().Span
	var key strings.Builder
	static := p.parseAttrName(&key)
	for p.at(token.Dot) {
		p.advance()
		key.WriteByte('.')
		if !p.parseAttrName(&key) {
			static = false
		}
	}
	p.b.FinishNode()
	sp := source.Span{File: start.File, Start: start.Start, End: p.lastSpan.End}
	return key.String(), sp, static
}

func (p *Parser) parseAttrName(key *strings.Builder) bool {
	switch p.lx.Peek().Kind {
	case token.Ident, token.KwOr:
		p.b.StartNode(syntax.Identifier)
		tok := p.advance()
		key.WriteString(tok.Text)
		p.b.FinishNode()
		return true
	case token.StringStart:
		p.parseString()
	case token.InterpolStart:
		p.parseDynamic()
	default:
		p.err(diag.SynExpectAttrName,
			"expected attribute name, got "+strconv.Quote(p.lx.Peek().Text))
		p.b.StartNode(syntax.Error)
		p.b.FinishNode()
	}
	return false
}

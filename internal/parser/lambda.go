package parser

import (
	"strconv"

	"nixel/internal/diag"
	"nixel/internal/source"
	"nixel/internal/syntax"
	"nixel/internal/token"
)

// patternAhead — различить "{ ... }: тело" и литерал attrset, стоя на '{'.
// Решается максимум четырьмя токенами: за "{ x }" надо увидеть ':' или '@'.
func (p *Parser) patternAhead() bool {
	switch p.lx.PeekN(1).Kind {
	case token.RBrace:
		k := p.lx.PeekN(2).Kind
		return k == token.Colon || k == token.At
	case token.Ellipsis:
		return true
	case token.Ident:
		switch p.lx.PeekN(2).Kind {
		case token.Comma, token.Question:
			return true
		case token.RBrace:
			k := p.lx.PeekN(3).Kind
			return k == token.Colon || k == token.At
		}
	}
	return false
}

// parseLambda — param: body. Сюда попадаем из parseExpr, когда предпросмотр
// уже решил, что это лямбда.
func (p *Parser) parseLambda() {
	p.b.StartNode(syntax.Lambda)
	if p.at(token.Ident) && p.atN(1, token.Colon) {
		p.b.StartNode(syntax.ParamSimple)
		p.advance()
		p.b.FinishNode()
	} else {
		p.parseParamPattern()
	}
	p.expect(token.Colon, diag.SynExpectColon, "expected ':' after lambda parameter")
	p.parseExpr()
	p.b.FinishNode()
}

// parseParamPattern — { a, b ? default, ... } с @-связкой до или после скобок.
func (p *Parser) parseParamPattern() {
	p.b.StartNode(syntax.ParamPattern)
	sawBind := false
	if p.at(token.Ident) {
		// x @ { ... }
		p.b.StartNode(syntax.PatBind)
		p.advance() // имя
		p.advance() // '@' — гарантирован предпросмотром в parseExpr
		p.b.FinishNode()
		sawBind = true
	}
	if !p.at(token.LBrace) {
		p.err(diag.SynUnexpectedToken, "expected '{' to start pattern")
		p.b.FinishNode()
		return
	}
	p.advance() // '{'
	p.parsePatternFields()
	p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close pattern")
	if p.at(token.At) {
		if sawBind {
			p.err(diag.SynDuplicatePatBind, "argument is already bound before the pattern")
		}
		p.b.StartNode(syntax.PatBind)
		p.advance() // '@'
		if p.at(token.Ident) {
			p.advance()
		} else {
			p.err(diag.SynExpectIdentifier, "expected identifier after '@'")
		}
		p.b.FinishNode()
	}
	p.b.FinishNode()
}

func (p *Parser) parsePatternFields() {
	sawEllipsis := false
	seen := make(map[source.StringID]source.Span)
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		switch p.lx.Peek().Kind {
		case token.Ellipsis:
			if sawEllipsis {
				p.err(diag.SynDuplicateEllipsis, "duplicate '...' in pattern")
			}
			sawEllipsis = true
			p.advance()
		case token.Ident:
			if sawEllipsis {
				p.err(diag.SynBadPatternField, "'...' must be the last entry of a pattern")
			}
			p.b.StartNode(syntax.PatField)
			tok := p.advance()
			id := p.names.Intern(tok.Text)
			if prev, ok := seen[id]; ok {
				p.report(diag.SynDuplicateParam, diag.SevError, tok.Span,
					"duplicate formal argument "+strconv.Quote(tok.Text),
					[]diag.Note{{Span: prev, Msg: "first defined here"}})
			} else {
				seen[id] = tok.Span
			}
			if p.at(token.Question) {
				p.advance()
				p.parseExpr() // default — полное выражение
			}
			p.b.FinishNode()
		default:
			if p.at(token.Colon) || p.at(token.At) {
				// похоже, скобку забыли закрыть — отдадим токен наверх
				return
			}
			p.err(diag.SynExpectPatternField,
				"expected pattern field, got "+strconv.Quote(p.lx.Peek().Text))
			p.b.StartNode(syntax.Error)
			p.advance()
			p.b.FinishNode()
			continue
		}
		if p.at(token.Comma) {
			p.advance()
		} else if !p.at(token.RBrace) && !p.at(token.EOF) {
			p.err(diag.SynUnexpectedToken, "expected ',' between pattern fields")
		}
	}
}

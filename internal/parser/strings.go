package parser

import (
	"nixel/internal/diag"
	"nixel/internal/syntax"
	"nixel/internal/token"
)

// parseString — "..." с интерполяциями. Содержимое остаётся сырым,
// escape-последовательности не раскрываются.
func (p *Parser) parseString() {
	p.b.StartNode(syntax.StringNode)
	p.advance() // StringStart
	for {
		switch p.lx.Peek().Kind {
		case token.StringContent:
			p.advance()
		case token.InterpolStart:
			p.parseInterpol()
		case token.StringEnd:
			p.advance()
			p.b.FinishNode()
			return
		default:
			// незакрытая строка: лексер уже отрепортовал на EOF
			p.b.FinishNode()
			return
		}
	}
}

// parseIndString — ''...'' той же структуры. Срезание отступов —
// семантика, дерево хранит сырые куски.
func (p *Parser) parseIndString() {
	p.b.StartNode(syntax.IndString)
	p.advance() // IndStringStart
	for {
		switch p.lx.Peek().Kind {
		case token.IndStringContent:
			p.advance()
		case token.InterpolStart:
			p.parseInterpol()
		case token.IndStringEnd:
			p.advance()
			p.b.FinishNode()
			return
		default:
			p.b.FinishNode()
			return
		}
	}
}

// parseInterpol — один фрагмент ${ expr } внутри строки.
func (p *Parser) parseInterpol() {
	p.b.StartNode(syntax.Interpol)
	p.advance() // '${'
	p.parseExpr()
	p.closeInterpol()
	p.b.FinishNode()
}

// parseDynamic — ${ expr } в роли сегмента attrpath.
func (p *Parser) parseDynamic() {
	p.b.StartNode(syntax.Dynamic)
	p.advance() // '${'
	p.parseExpr()
	p.closeInterpol()
	p.b.FinishNode()
}

// closeInterpol — добирается до закрывающей '}' интерполяции.
// Мусор между выражением и скобкой уходит в Error-узел.
func (p *Parser) closeInterpol() {
	if p.expect(token.InterpolEnd, diag.SynUnclosedInterpol, "expected '}' to close interpolation") {
		return
	}
	p.recoverTo(syncInterpol)
	if p.at(token.InterpolEnd) {
		p.advance()
	}
}

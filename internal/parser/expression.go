package parser

import (
	"strconv"

	"nixel/internal/diag"
	"nixel/internal/syntax"
	"nixel/internal/token"
)

// parseExpr — полное выражение. Здесь, и только здесь, распознаются
// лямбды и конструкции let/if/with/assert: внутри операторных цепочек
// они легальны лишь под скобками, как в эталонной грамматике.
func (p *Parser) parseExpr() {
	switch {
	case p.at(token.KwLet):
		p.parseLet()
	case p.at(token.KwIf):
		p.parseIf()
	case p.at(token.KwWith):
		p.parseWith()
	case p.at(token.KwAssert):
		p.parseAssert()
	case p.at(token.Ident) && (p.atN(1, token.Colon) || p.atN(1, token.At)):
		p.parseLambda()
	case p.at(token.LBrace) && p.patternAhead():
		p.parseLambda()
	default:
		p.parseBinary(precLowest)
	}
}

// parseBinary — прецедентное восхождение: унарный операнд, потом цикл
// заворачивания через чекпоинт.
func (p *Parser) parseBinary(minPrec int) {
	cp := p.b.Checkpoint()
	p.parseUnary()
	p.parseBinaryLoop(cp, minPrec)
}

func (p *Parser) parseBinaryLoop(cp syntax.Checkpoint, minPrec int) {
	for {
		kind := p.lx.Peek().Kind

		// e ? attrpath — постфикс, справа не выражение, а attrpath
		if kind == token.Question {
			if precHasAttr < minPrec {
				return
			}
			p.b.StartNodeAt(cp, syntax.HasAttr)
			p.advance()
			p.parseAttrPath()
			p.b.FinishNode()
			if p.at(token.Question) {
				p.err(diag.SynNonAssocChain, "'?' is not associative, use parentheses")
			}
			continue
		}

		prec, assoc := binaryPrec(kind)
		if prec < minPrec {
			return
		}
		p.b.StartNodeAt(cp, syntax.BinaryOp)
		opTok := p.advance()
		next := prec + 1
		if assoc == assocRight {
			next = prec
		}
		p.parseBinary(next)
		if assoc == assocNone && sameBinaryLevel(p.lx.Peek().Kind, prec) {
			p.err(diag.SynNonAssocChain,
				"operator '"+opTok.Text+"' is not associative, use parentheses")
		}
		p.b.FinishNode()
	}
}

// parseUnary — префиксные '!' и '-'. Операнд '-' — на уровне аппликации,
// операнд '!' захватывает всю арифметику (как в эталонной таблице).
func (p *Parser) parseUnary() {
	switch p.lx.Peek().Kind {
	case token.Bang:
		p.b.StartNode(syntax.UnaryOp)
		p.advance()
		p.parseBinary(precNot + 1)
		p.b.FinishNode()
	case token.Minus:
		p.b.StartNode(syntax.UnaryOp)
		p.advance()
		p.parseBinary(precNeg + 1)
		p.b.FinishNode()
	default:
		p.parseApp()
	}
}

// parseApp — аппликация соседством: f a b == (f a) b.
// Ключевое слово or в позиции аргумента читается как имя.
func (p *Parser) parseApp() {
	cp := p.b.Checkpoint()
	p.parseSelect()
	for {
		if p.at(token.KwOr) {
			p.b.StartNodeAt(cp, syntax.Apply)
			p.b.StartNode(syntax.Identifier)
			p.advance()
			p.b.FinishNode()
			p.b.FinishNode()
			continue
		}
		if !atomStart(p.lx.Peek().Kind) {
			return
		}
		p.b.StartNodeAt(cp, syntax.Apply)
		p.parseSelect()
		p.b.FinishNode()
	}
}

// parseSelect — e.attrpath с необязательным `or default`.
// Весь пунктирный путь — один узел: e.a.b.c это ОДИН Select.
func (p *Parser) parseSelect() {
	cp := p.b.Checkpoint()
	p.parseAtom()
	if !p.at(token.Dot) {
		return
	}
	p.b.StartNodeAt(cp, syntax.Select)
	p.advance() // '.'
	p.parseAttrPath()
	if p.at(token.KwOr) {
		p.advance()
		p.parseSelect() // default сам на уровне селекта
	}
	p.b.FinishNode()
}

func (p *Parser) parseAtom() {
	switch p.lx.Peek().Kind {
	case token.Ident:
		p.b.StartNode(syntax.Identifier)
		p.advance()
		p.b.FinishNode()
	case token.IntLit, token.FloatLit,
		token.Path, token.HomePath, token.SearchPath, token.Uri:
		p.b.StartNode(syntax.Literal)
		p.advance()
		p.b.FinishNode()
	case token.StringStart:
		p.parseString()
	case token.IndStringStart:
		p.parseIndString()
	case token.LParen:
		p.b.StartNode(syntax.Paren)
		p.advance()
		p.parseExpr()
		p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'")
		p.b.FinishNode()
	case token.LBracket:
		p.parseList()
	case token.LBrace, token.KwRec:
		p.parseAttrSet()
	default:
		p.errorAtom()
	}
}

// errorAtom — тотальность атома: выражения нет, но узел будет.
// Структурные токены не съедаем — их ждёт объемлющая конструкция.
func (p *Parser) errorAtom() {
	p.err(diag.SynExpectExpression,
		"expected expression, got "+strconv.Quote(p.lx.Peek().Text))
	p.b.StartNode(syntax.Error)
	if !p.atSync(syncExpression) {
		p.advance()
	}
	p.b.FinishNode()
}

// parseList — [ элементы ]. Элементы на уровне селекта:
// [ f x ] — это ДВА элемента, не вызов.
func (p *Parser) parseList() {
	p.b.StartNode(syntax.List)
	p.advance() // '['
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		if atomStart(p.lx.Peek().Kind) {
			p.parseSelect()
			continue
		}
		if p.atSync(syncExpression) && !p.at(token.Comma) && !p.at(token.Semicolon) {
			// закрыватель внешнего контекста — не наш токен
			break
		}
		p.err(diag.SynUnexpectedToken,
			"unexpected "+strconv.Quote(p.lx.Peek().Text)+" in list")
		p.b.StartNode(syntax.Error)
		p.advance()
		p.b.FinishNode()
	}
	p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' to close list")
	p.b.FinishNode()
}

func (p *Parser) parseIf() {
	p.b.StartNode(syntax.If)
	p.advance() // 'if'
	p.parseExpr()
	p.expect(token.KwThen, diag.SynExpectThen, "expected 'then'")
	p.parseExpr()
	p.expect(token.KwElse, diag.SynExpectElse, "expected 'else'")
	p.parseExpr()
	p.b.FinishNode()
}

func (p *Parser) parseWith() {
	p.b.StartNode(syntax.With)
	p.advance() // 'with'
	p.parseExpr()
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after with scope")
	p.parseExpr()
	p.b.FinishNode()
}

func (p *Parser) parseAssert() {
	p.b.StartNode(syntax.Assert)
	p.advance() // 'assert'
	p.parseExpr()
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after assert condition")
	p.parseExpr()
	p.b.FinishNode()
}

func (p *Parser) parseLet() {
	p.b.StartNode(syntax.LetIn)
	p.advance() // 'let'
	p.parseBindings(token.KwIn)
	p.expect(token.KwIn, diag.SynExpectIn, "expected 'in' after let bindings")
	if exprStart(p.lx.Peek().Kind) {
		p.parseExpr()
	} else {
		p.err(diag.SynEmptyLetBody, "let needs a body after 'in'")
		p.b.StartNode(syntax.Error)
		p.b.FinishNode()
	}
	p.b.FinishNode()
}

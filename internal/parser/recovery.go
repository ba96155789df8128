package parser

import (
	"nixel/internal/syntax"
	"nixel/internal/token"
)

// syncContext — грамматический контекст восстановления. Каждому контексту
// отвечает свой набор стоп-токенов в syncSets.
type syncContext uint8

const (
	syncExpression syncContext = iota // внутри выражения
	syncInterpol                      // внутри ${ … }
	syncTopLevel                      // мусор после корневого выражения
)

// syncSets — таблица стоп-токенов по контексту. Восстановление съедает
// всё до ближайшего стоп-токена, сам стоп-токен не трогает.
var syncSets = [...][]token.Kind{
	syncExpression: {
		token.EOF,
		token.RParen, token.RBracket, token.RBrace,
		token.Semicolon, token.Comma,
		token.InterpolEnd,
		token.KwThen, token.KwElse, token.KwIn,
	},
	syncInterpol: {token.InterpolEnd, token.EOF},
	syncTopLevel: {token.EOF},
}

// atSync — стоит ли парсер на стоп-токене контекста.
func (p *Parser) atSync(ctx syncContext) bool {
	return p.atAny(syncSets[ctx]...)
}

// recoverTo — заворачивает токены в Error-узел до стоп-токена контекста.
func (p *Parser) recoverTo(ctx syncContext) {
	p.b.StartNode(syntax.Error)
	for !p.atSync(ctx) {
		p.advance()
	}
	p.b.FinishNode()
}

// recoverBinding — восстановление внутри тела attrset/let: пропускаем
// до ';' (съедая её), либо до начала следующего биндинга, closer или EOF.
// Возвращает false, если не сдвинулись ни на токен.
func (p *Parser) recoverBinding(closer token.Kind) bool {
	moved := false
	p.b.StartNode(syntax.Error)
	for !p.at(token.EOF) && !p.at(closer) {
		if p.at(token.Semicolon) {
			p.advance()
			moved = true
			break
		}
		if moved && bindingStart(p.lx.Peek().Kind) {
			break
		}
		p.advance()
		moved = true
	}
	p.b.FinishNode()
	return moved
}

// bindingStart — токены, с которых может начинаться биндинг.
func bindingStart(kind token.Kind) bool {
	switch kind {
	case token.KwInherit, token.Ident, token.KwOr, token.StringStart, token.InterpolStart:
		return true
	default:
		return false
	}
}

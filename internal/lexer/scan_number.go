package lexer

import (
	"nixel/internal/token"
)

// scanNumber поддерживает целые (123) и вещественные (1.5, .5, 2., 1e-3,
// 1.5e+10) литералы. Знак — унарный оператор на уровне грамматики,
// сканер его не трогает. Экспонента без цифр откатывается: "1e" — это
// IntLit 1 и идентификатор e, как в flex при самом длинном совпадении.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	// ведущая точка — формат ".digits" (вызов после isNumberAfterDot-проверки)
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		kind = token.FloatLit
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		lx.scanExponent(&kind)
		return lx.emit(kind, start)
	}

	// целая часть
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// дробная часть: '.' принадлежит числу, только если это не "..."
	if lx.cursor.Peek() == '.' && lx.cursor.PeekAt(1) != '.' {
		lx.cursor.Bump()
		kind = token.FloatLit
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	lx.scanExponent(&kind)
	return lx.emit(kind, start)
}

// scanExponent пробует съесть [eE][+-]?digits+; без цифр — откат.
func (lx *Lexer) scanExponent(kind *token.Kind) {
	b := lx.cursor.Peek()
	if b != 'e' && b != 'E' {
		return
	}
	mark := lx.cursor.Mark()
	lx.cursor.Bump()
	if b2 := lx.cursor.Peek(); b2 == '+' || b2 == '-' {
		lx.cursor.Bump()
	}
	if !isDec(lx.cursor.Peek()) {
		lx.cursor.Reset(mark)
		return
	}
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	*kind = token.FloatLit
}

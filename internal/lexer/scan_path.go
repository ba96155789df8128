package lexer

import (
	"nixel/internal/diag"
	"nixel/internal/token"
)

// scanPathBody спекулятивно ест [pathchar]* и затем слэш-сегменты
// ('/' + [pathchar]+). Возвращает true, если съеден хотя бы один сегмент —
// только тогда это путь. Откат на вызывающем.
// Двойной слэш сегментом не является: "a//b" — это a, оператор //, b.
func (lx *Lexer) scanPathBody() bool {
	for isPathChar(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	isPath := false
	for lx.cursor.Peek() == '/' && isPathChar(lx.cursor.PeekAt(1)) {
		lx.cursor.Bump() // '/'
		for isPathChar(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		isPath = true
	}
	return isPath
}

// scanPath сканирует абсолютный путь, начинающийся с '/'.
// Вызывается, когда за '/' гарантированно стоит pathchar.
func (lx *Lexer) scanPath() token.Token {
	start := lx.cursor.Mark()
	for lx.cursor.Peek() == '/' && isPathChar(lx.cursor.PeekAt(1)) {
		lx.cursor.Bump()
		for isPathChar(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	return lx.emit(token.Path, start)
}

// scanHomePath сканирует ~/... . Голая '~' без слэш-сегмента — ошибка.
func (lx *Lexer) scanHomePath() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '~'
	if lx.cursor.Peek() != '/' || !isPathChar(lx.cursor.PeekAt(1)) {
		tok := lx.emit(token.Unknown, start)
		lx.errLex(diag.LexBadPath, tok.Span, "expected path after '~'")
		return tok
	}
	for lx.cursor.Peek() == '/' && isPathChar(lx.cursor.PeekAt(1)) {
		lx.cursor.Bump()
		for isPathChar(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	return lx.emit(token.HomePath, start)
}

// trySearchPath пробует распознать <nixpkgs/lib>: '<', первый сегмент из
// pathchar, опциональные слэш-сегменты, '>'. Не совпало — откат, и '<'
// уйдёт оператором сравнения.
func (lx *Lexer) trySearchPath() (token.Token, bool) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '<'
	if !isPathChar(lx.cursor.Peek()) {
		lx.cursor.Reset(start)
		return token.Token{}, false
	}
	for isPathChar(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	for lx.cursor.Peek() == '/' && isPathChar(lx.cursor.PeekAt(1)) {
		lx.cursor.Bump()
		for isPathChar(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}
	if !lx.cursor.Eat('>') {
		lx.cursor.Reset(start)
		return token.Token{}, false
	}
	return lx.emit(token.SearchPath, start), true
}

package lexer

import (
	"strconv"

	"nixel/internal/diag"
	"nixel/internal/token"
)

// scanWordish разбирает токены, начинающиеся с общего класса
// [a-zA-Z0-9._+-]: сначала спекулятивная попытка пути (самое длинное
// совпадение выигрывает, как в flex-лексере Nix: "4/2" — это путь),
// затем число, идентификатор/ключевое слово или URI.
func (lx *Lexer) scanWordish() token.Token {
	start := lx.cursor.Mark()

	if lx.scanPathBody() {
		return lx.emit(token.Path, start)
	}
	lx.cursor.Reset(start)

	if tok, ok := lx.tryURI(); ok {
		return tok
	}

	b := lx.cursor.Peek()
	if isDec(b) || (b == '.' && isDec(lx.cursor.PeekAt(1))) {
		return lx.scanNumber()
	}
	if isIdentStart(b) {
		return lx.scanIdentOrKeyword()
	}
	return lx.scanOperatorOrPunct()
}

// tryURI — спекулятивная попытка URI: scheme ':' body+. Схема шире
// идентификатора ("ssh+git" — одна схема), поэтому пробуем её до слов.
// Самое длинное совпадение бьёт и ключевые слова: "let:x" — URI.
// "x:y" — URI, "x: y" — лямбда. Не совпало — откат.
func (lx *Lexer) tryURI() (token.Token, bool) {
	b := lx.cursor.Peek()
	if !((b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')) {
		return token.Token{}, false
	}
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isSchemeChar(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() != ':' || !isURIChar(lx.cursor.PeekAt(1)) {
		lx.cursor.Reset(start)
		return token.Token{}, false
	}
	lx.cursor.Bump() // ':'
	for isURIChar(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.emit(token.Uri, start), true
}

// scanIdentOrKeyword сканирует идентификатор и проверяет через
// LookupKeyword. Token.Text — ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	lx.cursor.Bump() // первый символ уже проверен
	for {
		b := lx.cursor.Peek()
		if !isIdentContinue(b) {
			break
		}
		// '-' входит в идентификатор только перед продолжением:
		// "a-b" — один идентификатор, "a->b" — a, стрелка, b
		if b == '-' && !isIdentContinue(lx.cursor.PeekAt(1)) {
			break
		}
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanUnknownRun съедает максимальный ран нераспознанных байтов
// в один Unknown-токен. Сканер никогда не падает и не зависает:
// минимум один байт съедается всегда.
func (lx *Lexer) scanUnknownRun() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() && !isTokenStartByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	tok := lx.emit(token.Unknown, start)
	lx.errLex(diag.LexUnknownChar, tok.Span, "unrecognized characters "+strconv.Quote(tok.Text))
	return tok
}

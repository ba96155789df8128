package lexer

import (
	"nixel/internal/token"
)

// Сканеры строковых режимов. Ровно один токен за вызов:
// StringContent / InterpolStart / StringEnd (и IndString-аналоги).
// Текст сохраняется сырым, эскейпы не разворачиваются — дерево обязано
// воспроизводить вход байт в байт.

// scanStringPart — следующий токен внутри "..." литерала.
func (lx *Lexer) scanStringPart() token.Token {
	if lx.cursor.EOF() {
		return lx.emitEOF()
	}
	start := lx.cursor.Mark()

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == '"' {
			if lx.cursor.SpanFrom(start).Empty() {
				lx.cursor.Bump()
				lx.pop()
				return lx.emit(token.StringEnd, start)
			}
			break
		}

		if b == '$' && lx.cursor.PeekAt(1) == '{' {
			if lx.cursor.SpanFrom(start).Empty() {
				lx.cursor.Bump()
				lx.cursor.Bump()
				lx.push(modeDefault)
				return lx.emit(token.InterpolStart, start)
			}
			break
		}

		if b == '\\' {
			// '\' + следующий байт: покрывает \" \\ \${ \n и прочее.
			// Литеральные переводы строки в "..." тоже легальны.
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			continue
		}

		lx.cursor.Bump()
	}

	return lx.emit(token.StringContent, start)
}

// scanIndStringPart — следующий токен внутри ''...'' литерала.
// Эскейпы индент-строк: ''$ (литеральный доллар), ''' (литеральные ''),
// ''\x (экранированный символ) — всё это содержимое, а не закрытие.
func (lx *Lexer) scanIndStringPart() token.Token {
	if lx.cursor.EOF() {
		return lx.emitEOF()
	}
	start := lx.cursor.Mark()

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == '\'' && lx.cursor.PeekAt(1) == '\'' {
			esc := lx.cursor.PeekAt(2)
			switch esc {
			case '$', '\'':
				// ''$ или ''' — эскейп, три байта содержимого
				lx.cursor.Bump()
				lx.cursor.Bump()
				lx.cursor.Bump()
				continue
			case '\\':
				// ''\x — эскейп произвольного символа
				lx.cursor.Bump()
				lx.cursor.Bump()
				lx.cursor.Bump()
				if !lx.cursor.EOF() {
					lx.cursor.Bump()
				}
				continue
			}
			if lx.cursor.SpanFrom(start).Empty() {
				lx.cursor.Bump()
				lx.cursor.Bump()
				lx.pop()
				return lx.emit(token.IndStringEnd, start)
			}
			break
		}

		if b == '$' && lx.cursor.PeekAt(1) == '{' {
			if lx.cursor.SpanFrom(start).Empty() {
				lx.cursor.Bump()
				lx.cursor.Bump()
				lx.push(modeDefault)
				return lx.emit(token.InterpolStart, start)
			}
			break
		}

		lx.cursor.Bump()
	}

	return lx.emit(token.IndStringContent, start)
}

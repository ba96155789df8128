package lexer

import (
	"nixel/internal/diag"
	"nixel/internal/source"
	"nixel/internal/token"
)

// lookAheadMax — размер кольца предпросмотра. Грамматике хватает четырёх:
// два на "лямбда или идентификатор", четыре на "{ x } :" против "{ x }"
// (за закрывающей скобкой нужно увидеть ':' или '@').
const lookAheadMax = 4

// Lexer is a pull-based tokenizer for one source document. It is total:
// any byte sequence produces a finite token stream terminated by EOF.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	modes  []frame        // стек лексических режимов, низ — всегда Default
	look   []token.Token  // кольцо предпросмотра
	hold   []token.Trivia // накопленные leading trivia
	eofHit bool           // EOF уже выдан: незакрытые фреймы отрепорчены
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		modes:  []frame{{m: modeDefault}},
	}
}

// Next возвращает следующий токен с уже собранным Leading.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if len(lx.look) > 0 {
		tok := lx.look[0]
		lx.look = lx.look[:copy(lx.look, lx.look[1:])]
		return tok
	}
	return lx.scanOne()
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	return lx.PeekN(0)
}

// PeekN возвращает n-й предстоящий токен (0 — ближайший), не потребляя.
// n ограничен lookAheadMax-1.
func (lx *Lexer) PeekN(n int) token.Token {
	if n >= lookAheadMax {
		panic("lexer: lookahead beyond fixed window")
	}
	for len(lx.look) <= n {
		lx.look = append(lx.look, lx.scanOne())
	}
	return lx.look[n]
}

// scanOne производит ровно один токен, минуя кольцо предпросмотра.
func (lx *Lexer) scanOne() token.Token {
	// Внутри строковых режимов trivia не бывает: любой байт значим.
	switch lx.top().m {
	case modeString:
		return lx.scanStringPart()
	case modeIndString:
		return lx.scanIndStringPart()
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		return lx.emitEOF()
	}

	tok := lx.dispatchDefault()
	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// emitEOF закрывает незавершённые фреймы (с диагностикой по каждому)
// и выдаёт EOF. Trailing trivia файла приклеивается к EOF.
func (lx *Lexer) emitEOF() token.Token {
	if !lx.eofHit {
		lx.eofHit = true
		for len(lx.modes) > 1 {
			switch lx.top().m {
			case modeString:
				lx.errLex(diag.LexUnterminatedString, lx.emptySpan(), "unterminated string literal; implicitly closed at end of input")
			case modeIndString:
				lx.errLex(diag.LexUnterminatedIndString, lx.emptySpan(), "unterminated indented string; implicitly closed at end of input")
			case modeDefault:
				lx.errLex(diag.LexUnterminatedInterpol, lx.emptySpan(), "unterminated interpolation; implicitly closed at end of input")
			}
			lx.modes = lx.modes[:len(lx.modes)-1]
		}
	}
	tok := token.Token{
		Kind: token.EOF,
		Span: lx.emptySpan(),
		Text: "",
	}
	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// dispatchDefault выбирает сканер по текущему байту в режиме Default.
func (lx *Lexer) dispatchDefault() token.Token {
	start := lx.cursor.Mark()
	ch := lx.cursor.Peek()

	switch {
	case ch == '"':
		lx.cursor.Bump()
		lx.push(modeString)
		return lx.emit(token.StringStart, start)

	case ch == '\'':
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '\'' && b1 == '\'' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.push(modeIndString)
			return lx.emit(token.IndStringStart, start)
		}
		// одиночная кавычка вне идентификатора — нераспознанный ввод
		return lx.scanUnknownRun()

	case ch == '$':
		if lx.cursor.PeekAt(1) == '{' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.push(modeDefault)
			return lx.emit(token.InterpolStart, start)
		}
		return lx.scanUnknownRun()

	case ch == '{':
		lx.cursor.Bump()
		lx.top().braces++
		return lx.emit(token.LBrace, start)

	case ch == '}':
		lx.cursor.Bump()
		fr := lx.top()
		if fr.braces > 0 {
			fr.braces--
			return lx.emit(token.RBrace, start)
		}
		if len(lx.modes) > 1 {
			// закрытие интерполяции: возвращаемся в строковый режим
			lx.modes = lx.modes[:len(lx.modes)-1]
			return lx.emit(token.InterpolEnd, start)
		}
		// лишняя '}' на верхнем уровне — оставляем парсеру
		return lx.emit(token.RBrace, start)

	case ch == '~':
		return lx.scanHomePath()

	case ch == '<':
		if tok, ok := lx.trySearchPath(); ok {
			return tok
		}
		return lx.scanOperatorOrPunct()

	case ch == '/':
		if lx.cursor.PeekAt(1) == '/' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.emit(token.Update, start)
		}
		if isPathChar(lx.cursor.PeekAt(1)) {
			return lx.scanPath()
		}
		lx.cursor.Bump()
		return lx.emit(token.Slash, start)

	case isPathChar(ch):
		// идентификаторы, ключевые слова, числа, пути и URI начинаются
		// с общего класса символов — разбираемся со спекулятивной меткой
		return lx.scanWordish()

	default:
		return lx.scanOperatorOrPunct()
	}
}

// emit собирает токен от метки до текущей позиции.
func (lx *Lexer) emit(k token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: k, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// File returns the source document this lexer reads.
func (lx *Lexer) File() *source.File {
	return lx.file
}

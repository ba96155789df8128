package lexer

import (
	"nixel/internal/diag"
	"nixel/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
// - ' ', '\t', '\r' коалесцируются в один TriviaSpace
// - последовательные '\n' коалесцируются в один TriviaNewline
// - #... до \n -> TriviaLineComment
// - /* ... */ -> TriviaBlockComment (без вложенности, как в Nix;
//   не закрыт — репорт и обрезаем на EOF)
// Вызывается только в режиме Default: внутри строк trivia не существует.
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		// space/tabs/CR
		if isSpaceByte(b) {
			for isSpaceByte(lx.cursor.Peek()) && !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			lx.holdTrivia(token.TriviaSpace, start)
			continue
		}

		// newlines (коалесцируем подряд)
		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.holdTrivia(token.TriviaNewline, start)
			continue
		}

		// line comment: # до конца строки
		if b == '#' {
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			lx.holdTrivia(token.TriviaLineComment, start)
			continue
		}

		// block comment: /* ... */
		if b == '/' && lx.cursor.PeekAt(1) == '*' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			closed := false
			for !lx.cursor.EOF() {
				if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					closed = true
					break
				}
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			if !closed {
				lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment; implicitly closed at end of input")
			}
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaBlockComment,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		// нет больше trivia
		break
	}
}

func (lx *Lexer) holdTrivia(k token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: k,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}

package lexer

import "nixel/internal/diag"

// mode is the lexical mode of one stack frame.
type mode uint8

const (
	// modeDefault — обычный код. Нижний фрейм всегда modeDefault;
	// фреймы выше появляются только внутри интерполяций.
	modeDefault mode = iota
	// modeString — внутри "..." литерала.
	modeString
	// modeIndString — внутри ''...'' литерала.
	modeIndString
)

// frame is one entry of the lexical mode stack. Интерполяции вкладываются
// произвольно глубоко ("${ "${ x }" }"), поэтому стек, а не флаг.
type frame struct {
	m mode
	// braces — глубина незакрытых '{' внутри default-фрейма.
	// '}' на глубине ноль закрывает интерполяцию, а не attrset.
	braces uint32
}

func (lx *Lexer) top() *frame {
	return &lx.modes[len(lx.modes)-1]
}

func (lx *Lexer) push(m mode) {
	lx.modes = append(lx.modes, frame{m: m})
}

// pop removes the top frame. The bottom Default frame is never popped:
// an attempt to do so is a lexer bug surfaced as a diagnostic, not a panic.
func (lx *Lexer) pop() bool {
	if len(lx.modes) <= 1 {
		lx.errLex(diag.LexModeUnderflow, lx.emptySpan(), "lexer mode stack underflow")
		return false
	}
	lx.modes = lx.modes[:len(lx.modes)-1]
	return true
}

func (lx *Lexer) inDefault() bool {
	return lx.top().m == modeDefault
}

// Depth returns the current mode stack depth. Exposed for invariant checks:
// a fully consumed token stream must end with depth 1.
func (lx *Lexer) Depth() int {
	return len(lx.modes)
}

package lexer

// ===== Классификаторы =====
// Nix — ASCII-язык: идентификаторы, пути и URI не содержат не-ASCII байтов;
// всё прочее уходит в Unknown-раны.

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinue(b byte) bool {
	return isIdentStart(b) || isDec(b) || b == '\'' || b == '-'
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

// isPathChar — символы сегмента пути: [a-zA-Z0-9._+-]
func isPathChar(b byte) bool {
	return isIdentStart(b) || isDec(b) || b == '.' || b == '+' || b == '-'
}

// isSchemeChar — символы URI-схемы после первой буквы: [a-zA-Z0-9+.-]
func isSchemeChar(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || isDec(b) ||
		b == '+' || b == '.' || b == '-'
}

// isURIChar — символы тела URI: [a-zA-Z0-9%/?:@&=+$,_.!~*'-]
func isURIChar(b byte) bool {
	if isSchemeChar(b) {
		return true
	}
	switch b {
	case '%', '/', '?', ':', '@', '&', '=', '$', ',', '_', '!', '~', '*', '\'':
		return true
	}
	return false
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r'
}

// isTokenStartByte reports whether b can begin any recognized token or
// trivia. Всё остальное копится в Unknown-ран.
func isTokenStartByte(b byte) bool {
	if isPathChar(b) || isSpaceByte(b) || b == '\n' {
		return true
	}
	switch b {
	case '"', '\'', '$', '{', '}', '~', '<', '>', '/', '#',
		'=', '!', '&', '|', '-', '+', '*', '?', '@', ';', ':', ',', '.',
		'(', ')', '[', ']':
		return true
	}
	return false
}

// ===== Матчеры последовательностей операторов (жадность) =====

// try2/try3 пробуют "съесть" 2/3 байта, если совпадает.
func (lx *Lexer) try3(a, b, c byte) bool {
	b0, b1, b2, ok := lx.cursor.Peek3()
	if !ok || b0 != a || b1 != b || b2 != c {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}

func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.Bump()
	lx.cursor.Bump()
	return true
}

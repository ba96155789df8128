package token

var keywords = map[string]Kind{
	"if":      KwIf,
	"then":    KwThen,
	"else":    KwElse,
	"assert":  KwAssert,
	"with":    KwWith,
	"let":     KwLet,
	"in":      KwIn,
	"rec":     KwRec,
	"inherit": KwInherit,
	"or":      KwOr,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Таблица фиксирована на старте процесса и только читается.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

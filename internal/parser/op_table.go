package parser

import "nixel/internal/token"

// Таблица приоритетов для операторов выражений.
// Чем больше число, тем сильнее связывание. Снизу вверх:
// '->' слабее всех, селект и аппликация сильнее всех.
const (
	precLowest  = 1
	precImplies = 1  // -> (правоассоциативно)
	precOr      = 2  // ||
	precAnd     = 3  // &&
	precEq      = 4  // == != (неассоциативно)
	precCmp     = 5  // < <= > >= (неассоциативно)
	precUpdate  = 6  // // (правоассоциативно)
	precNot     = 7  // !e
	precAdd     = 8  // + -
	precMul     = 9  // * /
	precConcat  = 10 // ++ (правоассоциативно)
	precHasAttr = 11 // e ? attrpath (постфикс, неассоциативно)
	precNeg     = 12 // -e
)

type assocKind uint8

const (
	assocLeft assocKind = iota
	assocRight
	assocNone
)

// binaryPrec возвращает приоритет и ассоциативность бинарного оператора.
// Для не-операторов приоритет отрицательный.
func binaryPrec(kind token.Kind) (int, assocKind) {
	switch kind {
	case token.Implies:
		return precImplies, assocRight
	case token.OrOr:
		return precOr, assocLeft
	case token.AndAnd:
		return precAnd, assocLeft
	case token.EqEq, token.BangEq:
		return precEq, assocNone
	case token.Lt, token.LtEq, token.Gt, token.GtEq:
		return precCmp, assocNone
	case token.Update:
		return precUpdate, assocRight
	case token.Plus, token.Minus:
		return precAdd, assocLeft
	case token.Star, token.Slash:
		return precMul, assocLeft
	case token.Concat:
		return precConcat, assocRight
	default:
		return -1, assocLeft // не бинарный оператор
	}
}

// sameBinaryLevel — следующий оператор того же уровня приоритета?
// Нужно для диагностики цепочек неассоциативных операторов.
func sameBinaryLevel(kind token.Kind, prec int) bool {
	bp, _ := binaryPrec(kind)
	return bp == prec
}

// atomStart — может ли токен начинать простое выражение (атом).
func atomStart(kind token.Kind) bool {
	switch kind {
	case token.Ident,
		token.IntLit, token.FloatLit,
		token.Path, token.HomePath, token.SearchPath, token.Uri,
		token.StringStart, token.IndStringStart,
		token.LParen, token.LBracket, token.LBrace, token.KwRec:
		return true
	default:
		return false
	}
}

// exprStart — может ли токен начинать выражение любого вида.
func exprStart(kind token.Kind) bool {
	switch kind {
	case token.KwLet, token.KwIf, token.KwWith, token.KwAssert,
		token.Bang, token.Minus:
		return true
	default:
		return atomStart(kind)
	}
}

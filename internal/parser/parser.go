package parser

import (
	"slices"
	"strconv"

	"nixel/internal/diag"
	"nixel/internal/lexer"
	"nixel/internal/source"
	"nixel/internal/syntax"
	"nixel/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Tree *syntax.Tree
	Bag  *diag.Bag
}

// Parser — состояние парсера на один файл
type Parser struct {
	lx       *lexer.Lexer     // поток токенов (Peek/PeekN/Next)
	b        *syntax.Builder  // построитель дерева по событиям
	names    *source.Interner // ключи биндингов и формалов для поиска дублей
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

// ParseFile — входная точка для разбора одного файла.
// Всегда возвращает дерево: ошибки оседают в Error-узлах и диагностике,
// сам разбор не прерывается.
func ParseFile(file *source.File, opts Options) Result {
	lx := lexer.New(file, lexer.Options{Reporter: opts.Reporter})
	p := Parser{
		lx:    lx,
		b:     syntax.NewBuilder(file.ID),
		names: source.NewInterner(),
		opts:  opts,
	}

	p.b.StartNode(syntax.Root)
	if p.at(token.EOF) {
		p.err(diag.SynExpectExpression, "expected expression")
	} else {
		p.parseExpr()
		if !p.at(token.EOF) {
			p.err(diag.SynUnexpectedToken, "unexpected "+strconv.Quote(p.lx.Peek().Text)+" after expression")
			p.recoverTo(syncTopLevel)
		}
	}
	// EOF несёт хвостовую тривию файла, без него round-trip не сойдётся
	p.b.AddToken(p.lx.Next())
	root := p.b.FinishNode()
	tree := p.b.Finish(root)

	var bag *diag.Bag
	switch br := opts.Reporter.(type) {
	case *diag.BagReporter:
		bag = br.Bag
	case diag.BagReporter:
		bag = br.Bag
	}
	return Result{Tree: tree, Bag: bag}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atN(n int, k token.Kind) bool {
	return p.lx.PeekN(n).Kind == k
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// advance — съедает следующий токен, кладёт его в дерево и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	p.b.AddToken(tok)
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

// getDiagnosticSpan — возвращает лучший span для диагностики.
// На EOF указываем на позицию сразу за последним съеденным токеном.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{
			File:  p.lastSpan.File,
			Start: p.lastSpan.End,
			End:   p.lastSpan.End,
		}
	}
	return peek.Span
}

// expect — ожидаем конкретный токен. Если нет — репортим и возвращаем false.
// Токен НЕ выдумываем: дерево хранит только реальные токены исходника.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	p.report(code, diag.SevError, p.getDiagnosticSpan(), msg, nil)
	return false
}

// репортует ошибку и передает текущий спан
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg, nil)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string, notes []diag.Note) bool {
	if p.opts.Reporter != nil {
		if sev == diag.SevError {
			p.opts.CurrentErrors++
		}
		if !p.opts.Enough() {
			p.opts.Reporter.Report(code, sev, sp, msg, notes)
			return true
		}
		return false // достигли максимального количества ошибок
	}
	return false // нет reporter - ничего не записали
}

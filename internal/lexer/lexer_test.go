package lexer_test

import (
	"strings"
	"testing"

	"nixel/internal/diag"
	"nixel/internal/lexer"
	"nixel/internal/source"
	"nixel/internal/token"
)

func lexAll(t *testing.T, src string) ([]token.Token, *diag.Bag, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.nix", []byte(src))
	f := fs.Get(id)
	bag := diag.NewBag(64)
	lx := lexer.New(f, lexer.Options{Reporter: &diag.BagReporter{Bag: bag}})

	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, bag, f
		}
		if len(toks) > 10000 {
			t.Fatalf("lexer did not terminate on %q", src)
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tk := range toks {
		out = append(out, tk.Kind)
	}
	return out
}

func kindsEqual(a, b []token.Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func expectKinds(t *testing.T, src string, want ...token.Kind) []token.Token {
	t.Helper()
	toks, _, _ := lexAll(t, src)
	want = append(want, token.EOF)
	if got := kinds(toks); !kindsEqual(got, want) {
		t.Fatalf("%q:\n got  %v\n want %v", src, got, want)
	}
	return toks
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	toks := expectKinds(t, "let foo-bar in rec x' _y",
		token.KwLet, token.Ident, token.KwIn, token.KwRec, token.Ident, token.Ident)
	if toks[1].Text != "foo-bar" {
		t.Fatalf("dashed ident text = %q", toks[1].Text)
	}
	if toks[4].Text != "x'" {
		t.Fatalf("primed ident text = %q", toks[4].Text)
	}
}

func TestDashSplitsBeforeArrow(t *testing.T) {
	// a->b: '-' принадлежит идентификатору только перед продолжением
	expectKinds(t, "a->b", token.Ident, token.Implies, token.Ident)
	expectKinds(t, "a-b", token.Ident)
	expectKinds(t, "a- b", token.Ident, token.Minus, token.Ident)
}

func TestNumbers(t *testing.T) {
	cases := []struct {
		src  string
		kind token.Kind
	}{
		{"0", token.IntLit},
		{"123", token.IntLit},
		{"1.5", token.FloatLit},
		{".5", token.FloatLit},
		{"2.", token.FloatLit},
		{"1e3", token.FloatLit},
		{"1.5e-10", token.FloatLit},
		{"2E+4", token.FloatLit},
	}
	for _, tc := range cases {
		toks := expectKinds(t, tc.src, tc.kind)
		if toks[0].Text != tc.src {
			t.Errorf("%q: text = %q", tc.src, toks[0].Text)
		}
	}
}

func TestExponentWithoutDigitsRollsBack(t *testing.T) {
	expectKinds(t, "1e", token.IntLit, token.Ident)
	expectKinds(t, "1e+", token.IntLit, token.Ident, token.Plus)
}

func TestPathsMaximalMunch(t *testing.T) {
	expectKinds(t, "./foo/bar.nix", token.Path)
	expectKinds(t, "/abs/path", token.Path)
	expectKinds(t, "4/2", token.Path)
	expectKinds(t, "a+b/c", token.Path)
	expectKinds(t, "a.b/c", token.Path)
	// двойной слэш — оператор обновления, не путь
	expectKinds(t, "a//b", token.Ident, token.Update, token.Ident)
	expectKinds(t, "a / b", token.Ident, token.Slash, token.Ident)
}

func TestHomeAndSearchPaths(t *testing.T) {
	expectKinds(t, "~/projects/x", token.HomePath)
	expectKinds(t, "<nixpkgs>", token.SearchPath)
	expectKinds(t, "<nixpkgs/lib>", token.SearchPath)
	// не поисковый путь — оператор сравнения
	expectKinds(t, "a < b", token.Ident, token.Lt, token.Ident)
	expectKinds(t, "a <= b", token.Ident, token.LtEq, token.Ident)
}

func TestBareTildeIsReported(t *testing.T) {
	toks, bag, _ := lexAll(t, "~ x")
	if toks[0].Kind != token.Unknown {
		t.Fatalf("bare tilde kind = %v", toks[0].Kind)
	}
	if !bag.HasErrors() {
		t.Fatal("expected LexBadPath diagnostic")
	}
}

func TestURIs(t *testing.T) {
	toks := expectKinds(t, "https://example.org/a?b=c", token.Uri)
	if toks[0].Text != "https://example.org/a?b=c" {
		t.Fatalf("uri text = %q", toks[0].Text)
	}
	expectKinds(t, "ssh+git://host/repo", token.Uri)
	// "x: y" — лямбда, "x:y" — URI
	expectKinds(t, "x:y", token.Uri)
	expectKinds(t, "x: y", token.Ident, token.Colon, token.Ident)
	// '_' не бывает в схеме
	expectKinds(t, "x_y:z", token.Ident, token.Colon, token.Ident)
}

func TestOperators(t *testing.T) {
	expectKinds(t, "++ // -> && || == != <= >= ! ? @ ... =",
		token.Concat, token.Update, token.Implies, token.AndAnd, token.OrOr,
		token.EqEq, token.BangEq, token.LtEq, token.GtEq,
		token.Bang, token.Question, token.At, token.Ellipsis, token.Assign)
}

func TestSimpleString(t *testing.T) {
	toks := expectKinds(t, `"hello"`,
		token.StringStart, token.StringContent, token.StringEnd)
	if toks[1].Text != "hello" {
		t.Fatalf("content = %q", toks[1].Text)
	}
}

func TestStringInterpolation(t *testing.T) {
	expectKinds(t, `"a${x}b"`,
		token.StringStart, token.StringContent,
		token.InterpolStart, token.Ident, token.InterpolEnd,
		token.StringContent, token.StringEnd)
}

func TestNestedInterpolationModes(t *testing.T) {
	expectKinds(t, `"${"${x}"}"`,
		token.StringStart, token.InterpolStart,
		token.StringStart, token.InterpolStart, token.Ident, token.InterpolEnd, token.StringEnd,
		token.InterpolEnd, token.StringEnd)
}

func TestBracesInsideInterpolation(t *testing.T) {
	// '}' закрывает attrset, а не интерполяцию: скобки считаются по фрейму
	expectKinds(t, `"${{ a = 1; }}"`,
		token.StringStart, token.InterpolStart,
		token.LBrace, token.Ident, token.Assign, token.IntLit, token.Semicolon, token.RBrace,
		token.InterpolEnd, token.StringEnd)
}

func TestEscapedInterpolationStaysContent(t *testing.T) {
	toks, bag, _ := lexAll(t, `"a\${b}c"`)
	for _, tk := range toks {
		if tk.Kind == token.InterpolStart {
			t.Fatal("escaped ${ must not open interpolation")
		}
	}
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics")
	}
}

func TestIndentedString(t *testing.T) {
	expectKinds(t, "''line ''$ and ''' end''",
		token.IndStringStart, token.IndStringContent, token.IndStringEnd)
}

func TestIndStringInterpolation(t *testing.T) {
	expectKinds(t, "''a${x}b''",
		token.IndStringStart, token.IndStringContent,
		token.InterpolStart, token.Ident, token.InterpolEnd,
		token.IndStringContent, token.IndStringEnd)
}

func TestUnterminatedString(t *testing.T) {
	_, bag, _ := lexAll(t, `"never closed`)
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.LexUnterminatedString {
			found = true
		}
	}
	if !found {
		t.Fatal("expected LexUnterminatedString")
	}
}

func TestUnterminatedInterpolation(t *testing.T) {
	_, bag, _ := lexAll(t, `"${x`)
	foundInterpol := false
	foundString := false
	for _, d := range bag.Items() {
		switch d.Code {
		case diag.LexUnterminatedInterpol:
			foundInterpol = true
		case diag.LexUnterminatedString:
			foundString = true
		}
	}
	if !foundInterpol || !foundString {
		t.Fatalf("expected both unterminated diagnostics, got %v", bag.Items())
	}
}

func TestStrayCloseBrace(t *testing.T) {
	expectKinds(t, "}", token.RBrace)
}

func TestUnknownRunCoalesces(t *testing.T) {
	toks, bag, _ := lexAll(t, "\x00\x01\x02 x")
	if toks[0].Kind != token.Unknown {
		t.Fatalf("kind = %v", toks[0].Kind)
	}
	if len(toks[0].Text) != 3 {
		t.Fatalf("unknown run length = %d, want 3", len(toks[0].Text))
	}
	if !bag.HasErrors() {
		t.Fatal("expected LexUnknownChar")
	}
}

func TestTriviaAttachment(t *testing.T) {
	toks, _, _ := lexAll(t, "# лид\n  x /* mid */ y # tail")
	// x несёт комментарий, перевод строки и отступ
	if len(toks[0].Leading) != 3 {
		t.Fatalf("x leading = %d, want 3", len(toks[0].Leading))
	}
	if toks[0].Leading[0].Kind != token.TriviaLineComment {
		t.Fatalf("first trivia = %v", toks[0].Leading[0].Kind)
	}
	// y несёт пробел, блок-комментарий, пробел
	if len(toks[1].Leading) != 3 || toks[1].Leading[1].Kind != token.TriviaBlockComment {
		t.Fatalf("y leading = %v", toks[1].Leading)
	}
	// хвостовой комментарий достаётся EOF
	eof := toks[len(toks)-1]
	if len(eof.Leading) == 0 {
		t.Fatal("EOF must carry trailing trivia")
	}
}

func TestLosslessConcatenation(t *testing.T) {
	seeds := []string{
		"let a = ./x/y; in \"v${a}\" # done",
		"{ x = 1; } // rec { y = ''s''; }",
		"broken \x00 input '",
		"",
	}
	for _, src := range seeds {
		toks, _, f := lexAll(t, src)
		var sb strings.Builder
		for _, tk := range toks {
			for _, tr := range tk.Leading {
				sb.WriteString(tr.Text)
			}
			sb.WriteString(tk.Text)
		}
		if sb.String() != string(f.Content) {
			t.Errorf("%q: concatenation %q differs from source", src, sb.String())
		}
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.nix", []byte("a b c"))
	lx := lexer.New(fs.Get(id), lexer.Options{})
	if lx.PeekN(2).Text != "c" {
		t.Fatalf("PeekN(2) = %q", lx.PeekN(2).Text)
	}
	if lx.Peek().Text != "a" {
		t.Fatalf("Peek = %q", lx.Peek().Text)
	}
	if lx.Next().Text != "a" || lx.Next().Text != "b" || lx.Next().Text != "c" {
		t.Fatal("Next order broken after peeking")
	}
	if lx.Next().Kind != token.EOF {
		t.Fatal("expected EOF")
	}
}

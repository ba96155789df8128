package parser_test

import (
	"testing"

	"nixel/internal/diag"
	"nixel/internal/syntax"
)

func TestRecAttrSet(t *testing.T) {
	want := `(AttrSet "rec" "{" (Binding (AttrPath (Identifier "x")) "=" (Literal "1") ";") "}")`
	if got := exprSexpr(t, "rec { x = 1; }"); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestDottedBindingIsSingleNode(t *testing.T) {
	// a.b.c = 1; — один Binding с трёхсегментным AttrPath, без desugaring
	want := `(AttrSet "{" (Binding (AttrPath (Identifier "a") "." (Identifier "b") "." (Identifier "c")) "=" (Literal "1") ";") "}")`
	if got := exprSexpr(t, "{ a.b.c = 1; }"); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestStringAndDynamicAttrNames(t *testing.T) {
	res, _ := parseSource(t, `{ "a b" = 1; ${k} = 2; }`)
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected errors: %s", diagnosticsSummary(res.Bag))
	}
	if n := len(collectKinds(res.Tree, syntax.StringNode)); n != 1 {
		t.Fatalf("string attr names = %d, want 1", n)
	}
	if n := len(collectKinds(res.Tree, syntax.Dynamic)); n != 1 {
		t.Fatalf("dynamic attr names = %d, want 1", n)
	}
}

func TestInheritForms(t *testing.T) {
	want := `(AttrSet "{" (Inherit "inherit" (Identifier "a") (Identifier "b") ";") (Inherit "inherit" (InheritFrom "(" (Identifier "src") ")") (Identifier "c") ";") "}")`
	if got := exprSexpr(t, "{ inherit a b; inherit (src) c; }"); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestMissingSemicolonIsReported(t *testing.T) {
	res, _ := parseSource(t, "{ a = 1 }")
	if !hasCode(res.Bag, diag.SynExpectSemicolon) {
		t.Fatalf("expected SynExpectSemicolon, got %s", diagnosticsSummary(res.Bag))
	}
}

func TestUnclosedAttrSetIsReported(t *testing.T) {
	res, _ := parseSource(t, "{ a = 1;")
	if !hasCode(res.Bag, diag.SynUnclosedBrace) {
		t.Fatalf("expected SynUnclosedBrace, got %s", diagnosticsSummary(res.Bag))
	}
}

func TestDuplicateBindingIsReported(t *testing.T) {
	res, _ := parseSource(t, "{ a = 1; a = 2; }")
	found := false
	for _, d := range res.Bag.Items() {
		if d.Code != diag.SynDuplicateBinding {
			continue
		}
		found = true
		if len(d.Notes) != 1 || d.Notes[0].Msg != "first defined here" {
			t.Fatalf("notes = %v, want first-defined-here", d.Notes)
		}
		// нота указывает на первое "a", ошибка — на второе
		if d.Notes[0].Span.Start != 2 || d.Primary.Start != 9 {
			t.Fatalf("spans primary=%v note=%v", d.Primary, d.Notes[0].Span)
		}
	}
	if !found {
		t.Fatalf("expected SynDuplicateBinding, got %s", diagnosticsSummary(res.Bag))
	}
}

func TestDuplicateDottedPathIsReported(t *testing.T) {
	res, _ := parseSource(t, "{ a.b = 1; a.b = 2; }")
	if !hasCode(res.Bag, diag.SynDuplicateBinding) {
		t.Fatalf("expected SynDuplicateBinding, got %s", diagnosticsSummary(res.Bag))
	}
}

func TestDistinctPathsAndScopesAreNotDuplicates(t *testing.T) {
	// разные пути, вложенная область и динамика дублями не считаются
	for _, src := range []string{
		"{ a.b = 1; a.c = 2; }",
		"{ a = 1; b = { a = 2; }; }",
		"{ ${k} = 1; ${k} = 2; }",
		`{ "a" = 1; "a" = 2; }`,
	} {
		res, _ := parseSource(t, src)
		if hasCode(res.Bag, diag.SynDuplicateBinding) {
			t.Fatalf("%s: unexpected SynDuplicateBinding", src)
		}
	}
}

func TestInheritCollidesWithBinding(t *testing.T) {
	res, _ := parseSource(t, "{ inherit a; a = 1; }")
	if !hasCode(res.Bag, diag.SynDuplicateBinding) {
		t.Fatalf("expected SynDuplicateBinding, got %s", diagnosticsSummary(res.Bag))
	}
}

func TestLetDuplicateBindingIsReported(t *testing.T) {
	res, _ := parseSource(t, "let x = 1; x = 2; in x")
	if !hasCode(res.Bag, diag.SynDuplicateBinding) {
		t.Fatalf("expected SynDuplicateBinding, got %s", diagnosticsSummary(res.Bag))
	}
}

func TestAttrSetAsFunctionArgument(t *testing.T) {
	want := `(Apply (Identifier "f") (AttrSet "{" (Binding (AttrPath (Identifier "a")) "=" (Literal "1") ";") "}"))`
	if got := exprSexpr(t, "f { a = 1; }"); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

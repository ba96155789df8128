package parser_test

import (
	"testing"

	"nixel/internal/diag"
	"nixel/internal/syntax"
)

func TestRecoveryKeepsNeighborBindings(t *testing.T) {
	src := "{ a = 1; ??? ; b = 2; }"
	res, f := parseSource(t, src)
	if !res.Bag.HasErrors() {
		t.Fatal("expected diagnostics for garbage between bindings")
	}
	bindings := collectKinds(res.Tree, syntax.Binding)
	if len(bindings) != 2 {
		t.Fatalf("bindings survived = %d, want 2 (diags: %s)", len(bindings), diagnosticsSummary(res.Bag))
	}
	if got := res.Tree.NodeText(bindings[0]); got != "a = 1;" {
		t.Fatalf("first binding text = %q", got)
	}
	if got := res.Tree.NodeText(bindings[1]); got != "b = 2;" {
		t.Fatalf("second binding text = %q", got)
	}
	if got := res.Tree.TreeText(); got != string(f.Content) {
		t.Fatalf("round-trip mismatch after recovery: %q", got)
	}
}

func TestMissingRHSRecovers(t *testing.T) {
	src := "{ a = ; b = 2; }"
	res, _ := parseSource(t, src)
	if !hasCode(res.Bag, diag.SynExpectExpression) {
		t.Fatalf("expected SynExpectExpression, got %s", diagnosticsSummary(res.Bag))
	}
	if n := len(collectKinds(res.Tree, syntax.Binding)); n != 2 {
		t.Fatalf("bindings = %d, want 2", n)
	}
}

func TestErrorNodesMarkSkippedTokens(t *testing.T) {
	res, _ := parseSource(t, "let a = 1; %% in a")
	if firstNode(res.Tree, syntax.Error) == syntax.NoNodeID {
		t.Fatal("expected an Error node over skipped tokens")
	}
	if n := len(collectKinds(res.Tree, syntax.Binding)); n != 1 {
		t.Fatalf("bindings = %d, want 1", n)
	}
}

func TestTrailingGarbageAfterExpression(t *testing.T) {
	res, f := parseSource(t, "42 oops )")
	if !hasCode(res.Bag, diag.SynUnexpectedToken) {
		t.Fatalf("expected SynUnexpectedToken, got %s", diagnosticsSummary(res.Bag))
	}
	if got := res.Tree.TreeText(); got != string(f.Content) {
		t.Fatalf("round-trip mismatch: %q", got)
	}
}

func TestUnclosedConstructsAtEOF(t *testing.T) {
	cases := []struct {
		src  string
		code diag.Code
	}{
		{"( 1 + 2", diag.SynUnclosedParen},
		{"[ 1 2", diag.SynUnclosedBracket},
		{"{ a = 1;", diag.SynUnclosedBrace},
		{"if a then b", diag.SynExpectElse},
		{"let a = 1; a", diag.SynExpectIn},
	}
	for _, tc := range cases {
		res, f := parseSource(t, tc.src)
		if !hasCode(res.Bag, tc.code) {
			t.Errorf("%q: expected %s, got %s", tc.src, tc.code, diagnosticsSummary(res.Bag))
		}
		if got := res.Tree.TreeText(); got != string(f.Content) {
			t.Errorf("%q: round-trip mismatch: %q", tc.src, got)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	res, _ := parseSource(t, "")
	if !hasCode(res.Bag, diag.SynExpectExpression) {
		t.Fatalf("expected SynExpectExpression, got %s", diagnosticsSummary(res.Bag))
	}
	if got := res.Tree.TreeText(); got != "" {
		t.Fatalf("round-trip of empty input = %q", got)
	}
}

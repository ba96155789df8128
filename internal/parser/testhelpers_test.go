package parser_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"nixel/internal/diag"
	"nixel/internal/parser"
	"nixel/internal/source"
	"nixel/internal/syntax"
)

func parseSource(t *testing.T, src string) (parser.Result, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.nix", []byte(src))
	f := fs.Get(id)
	bag := diag.NewBag(64)
	res := parser.ParseFile(f, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	if res.Tree == nil {
		t.Fatalf("nil tree for %q", src)
	}
	return res, f
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code, d.Message)
	}
	return strings.Join(lines, "; ")
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	if bag == nil {
		return false
	}
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

// sexpr — скобочная запись поддерева для сравнения форм в тестах.
// Узел: (Kind дети...), токен: его текст в кавычках.
func sexpr(tree *syntax.Tree, id syntax.NodeID) string {
	n := tree.Get(id)
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(n.Kind.String())
	for _, c := range n.Children {
		sb.WriteString(" ")
		if c.IsToken {
			sb.WriteString(strconv.Quote(tree.Token(c).Text))
		} else {
			sb.WriteString(sexpr(tree, c.Node))
		}
	}
	sb.WriteString(")")
	return sb.String()
}

// exprSexpr — форма первого (и обычно единственного) выражения под корнем.
func exprSexpr(t *testing.T, src string) string {
	t.Helper()
	res, _ := parseSource(t, src)
	root := res.Tree.Root()
	kids := res.Tree.NodeChildren(root)
	if len(kids) == 0 {
		t.Fatalf("no expression under root for %q (diags: %s)", src, diagnosticsSummary(res.Bag))
	}
	return sexpr(res.Tree, kids[0])
}

func firstNode(tree *syntax.Tree, kind syntax.NodeKind) syntax.NodeID {
	found := syntax.NoNodeID
	tree.Walk(tree.RootID, func(id syntax.NodeID, n *syntax.Node) bool {
		if found == syntax.NoNodeID && n.Kind == kind {
			found = id
		}
		return found == syntax.NoNodeID
	})
	return found
}

func collectKinds(tree *syntax.Tree, kind syntax.NodeKind) []syntax.NodeID {
	var ids []syntax.NodeID
	tree.Walk(tree.RootID, func(id syntax.NodeID, n *syntax.Node) bool {
		if n.Kind == kind {
			ids = append(ids, id)
		}
		return true
	})
	return ids
}

package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"nixel/internal/source"
	"nixel/internal/syntax"
	"nixel/internal/token"
)

// CheckRoundTrip verifies that the tree reproduces the file byte for byte.
// Это главный контракт дерева: ни один байт входа не теряется,
// какие бы ошибки ни были в исходнике.
func CheckRoundTrip(tree *syntax.Tree, sf *source.File) error {
	if tree == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}
	got := tree.TreeText()
	want := string(sf.Content)
	if got != want {
		return fmt.Errorf("round trip mismatch:\nwant %q\ngot  %q", want, got)
	}
	return nil
}

// CheckSpanInvariants runs a minimal set of span invariants on a parsed tree:
// 1) every node span lies within file content bounds
// 2) every non-empty child span is contained in its parent's span
// 3) a parent span covers the union of its children's spans
func CheckSpanInvariants(tree *syntax.Tree, sf *source.File) error {
	if tree == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var walkErr error
	tree.Walk(tree.RootID, func(id syntax.NodeID, n *syntax.Node) bool {
		if walkErr != nil {
			return false
		}
		if n.Span.End > lenContent {
			walkErr = fmt.Errorf("%s span end beyond content: %d > %d", n.Kind, n.Span.End, lenContent)
			return false
		}
		if n.Span.End < n.Span.Start {
			walkErr = fmt.Errorf("%s span inverted: %v", n.Kind, n.Span)
			return false
		}

		var union source.Span
		haveChild := false
		for _, c := range n.Children {
			var sp source.Span
			if c.IsToken {
				tok := tree.Token(c)
				if tok.Kind == token.EOF {
					continue
				}
				sp = tok.Span
			} else {
				child := tree.Get(c.Node)
				if child.Span.Start == child.Span.End {
					continue
				}
				sp = child.Span
			}
			if !n.Span.Contains(sp) {
				walkErr = fmt.Errorf("%s span %v does not contain child span %v", n.Kind, n.Span, sp)
				return false
			}
			if !haveChild {
				union = sp
				haveChild = true
			} else {
				union = union.Cover(sp)
			}
		}
		if haveChild && (union.Start < n.Span.Start || union.End > n.Span.End) {
			walkErr = fmt.Errorf("%s span %v does not cover union of children %v", n.Kind, n.Span, union)
			return false
		}
		return true
	})
	return walkErr
}

// CheckModeBalance verifies the interpolation discipline of a token stream:
// глубина '${' минус закрытий никогда не уходит в минус, строковые
// открытия и закрытия чередуются корректно. Незакрытые конструкции на
// EOF допустимы (лексер тотален), лишние закрытия — нет.
func CheckModeBalance(tokens []token.Token) error {
	depth := 0
	for i, tok := range tokens {
		switch tok.Kind {
		case token.InterpolStart:
			depth++
		case token.InterpolEnd:
			depth--
			if depth < 0 {
				return fmt.Errorf("token %d: interpolation close without open", i)
			}
		}
	}
	return nil
}

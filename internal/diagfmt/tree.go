package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"nixel/internal/source"
	"nixel/internal/syntax"
	"nixel/internal/token"
)

// DumpTree печатает дерево с отступами в стиле rowan-дампов:
// узлы — именем вида, токены — видом и текстом, опционально со спанами.
// Формат стабилен, по нему пишутся golden-тесты инструментов.
func DumpTree(w io.Writer, tree *syntax.Tree, opts TreeOpts) {
	dumpNode(w, tree, tree.RootID, 0, opts)
}

func dumpNode(w io.Writer, tree *syntax.Tree, id syntax.NodeID, depth int, opts TreeOpts) {
	n := tree.Get(id)
	indent := strings.Repeat("  ", depth)
	if opts.ShowSpans {
		fmt.Fprintf(w, "%s%s @%d..%d\n", indent, n.Kind, n.Span.Start, n.Span.End)
	} else {
		fmt.Fprintf(w, "%s%s\n", indent, n.Kind)
	}
	for _, c := range n.Children {
		if c.IsToken {
			dumpToken(w, tree.Token(c), depth+1, opts)
			continue
		}
		dumpNode(w, tree, c.Node, depth+1, opts)
	}
}

func dumpToken(w io.Writer, tok token.Token, depth int, opts TreeOpts) {
	indent := strings.Repeat("  ", depth)
	if opts.ShowTrivia {
		for _, tr := range tok.Leading {
			if opts.ShowSpans {
				fmt.Fprintf(w, "%s%s %s @%d..%d\n", indent, tr.Kind, strconv.Quote(tr.Text), tr.Span.Start, tr.Span.End)
			} else {
				fmt.Fprintf(w, "%s%s %s\n", indent, tr.Kind, strconv.Quote(tr.Text))
			}
		}
	}
	if opts.ShowSpans {
		fmt.Fprintf(w, "%s%s %s @%d..%d\n", indent, tok.Kind, strconv.Quote(tok.Text), tok.Span.Start, tok.Span.End)
	} else {
		fmt.Fprintf(w, "%s%s %s\n", indent, tok.Kind, strconv.Quote(tok.Text))
	}
}

// NodeJSON — узел дерева в JSON-дампе.
type NodeJSON struct {
	Kind     string      `json:"kind"`
	Span     source.Span `json:"span"`
	Children []ChildJSON `json:"children,omitempty"`
}

// ChildJSON — либо вложенный узел, либо токен-лист.
type ChildJSON struct {
	Node  *NodeJSON    `json:"node,omitempty"`
	Token *TokenOutput `json:"token,omitempty"`
}

// TreeJSON сериализует дерево целиком.
func TreeJSON(w io.Writer, tree *syntax.Tree) error {
	root := buildNodeJSON(tree, tree.RootID)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(root)
}

func buildNodeJSON(tree *syntax.Tree, id syntax.NodeID) *NodeJSON {
	n := tree.Get(id)
	out := &NodeJSON{Kind: n.Kind.String(), Span: n.Span}
	for _, c := range n.Children {
		if c.IsToken {
			tok := tree.Token(c)
			var leading []TriviaOutput
			for _, tr := range tok.Leading {
				leading = append(leading, TriviaOutput{Kind: tr.Kind.String(), Text: tr.Text, Span: tr.Span})
			}
			out.Children = append(out.Children, ChildJSON{Token: &TokenOutput{
				Kind:    tok.Kind.String(),
				Text:    tok.Text,
				Span:    tok.Span,
				Leading: leading,
			}})
			continue
		}
		out.Children = append(out.Children, ChildJSON{Node: buildNodeJSON(tree, c.Node)})
	}
	return out
}

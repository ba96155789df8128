package syntax

import "strings"

// TreeText reconstructs the full document text from the token stream.
// Конкатенация ведущей тривии и текста каждого токена даёт исходник
// байт-в-байт, поэтому редактор может не хранить отдельную копию.
func (t *Tree) TreeText() string {
	var sb strings.Builder
	for _, tok := range t.Tokens {
		for _, tr := range tok.Leading {
			sb.WriteString(tr.Text)
		}
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

// NodeText reconstructs the source text covered by one node.
// Тривия перед первым токеном узла не входит — она принадлежит
// предыдущему значимому токену.
func (t *Tree) NodeText(id NodeID) string {
	var sb strings.Builder
	first := true
	t.writeNodeText(&sb, id, &first)
	return sb.String()
}

func (t *Tree) writeNodeText(sb *strings.Builder, id NodeID, first *bool) {
	n := t.Get(id)
	for _, c := range n.Children {
		if c.IsToken {
			tok := t.Tokens[c.Token]
			if !*first {
				for _, tr := range tok.Leading {
					sb.WriteString(tr.Text)
				}
			}
			*first = false
			sb.WriteString(tok.Text)
			continue
		}
		t.writeNodeText(sb, c.Node, first)
	}
}

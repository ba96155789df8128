package syntax

import (
	"nixel/internal/source"
	"nixel/internal/token"
)

// NodeID is an arena handle; NoNodeID (0) is reserved as "no node".
type NodeID uint32

const NoNodeID NodeID = 0

// Child is one ordered child of a node: either a nested node or a token.
type Child struct {
	IsToken bool
	Node    NodeID // валиден при !IsToken
	Token   uint32 // индекс в Tree.Tokens при IsToken
}

// Node is an immutable tree node. Span покрывает детей без их leading
// trivia; восстановление текста (text.go) trivia учитывает.
type Node struct {
	Kind     NodeKind
	Span     source.Span
	Children []Child
}

// Tree is the finished concrete syntax tree for one document.
// Иммутабельно после сборки; правка в редакторе — это новый полный парс.
type Tree struct {
	RootID NodeID
	// Tokens — полный поток значимых токенов в исходном порядке,
	// включая завершающий EOF. Редактору для подсветки нужен именно он.
	Tokens []token.Token

	nodes []Node // nodes[0] — зарезервированный пустой узел
}

// Get returns the node for the given ID. NoNodeID возвращает пустой узел.
func (t *Tree) Get(id NodeID) *Node {
	return &t.nodes[id]
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return &t.nodes[t.RootID]
}

// Len returns the number of real nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes) - 1
}

// Token returns the token for a token child.
func (t *Tree) Token(c Child) token.Token {
	return t.Tokens[c.Token]
}

// NodeChildren returns only the node children of n, in order.
func (t *Tree) NodeChildren(n *Node) []NodeID {
	out := make([]NodeID, 0, len(n.Children))
	for _, c := range n.Children {
		if !c.IsToken {
			out = append(out, c.Node)
		}
	}
	return out
}

// FindChild returns the first node child of the given kind, or NoNodeID.
func (t *Tree) FindChild(n *Node, kind NodeKind) NodeID {
	for _, c := range n.Children {
		if !c.IsToken && t.nodes[c.Node].Kind == kind {
			return c.Node
		}
	}
	return NoNodeID
}

// HasTokenChild reports whether n directly holds a token of the given kind.
func (t *Tree) HasTokenChild(n *Node, kind token.Kind) bool {
	for _, c := range n.Children {
		if c.IsToken && t.Tokens[c.Token].Kind == kind {
			return true
		}
	}
	return false
}

// Walk calls fn for every node in depth-first order starting at id.
// Возврат false останавливает спуск в детей, но не обход соседей.
func (t *Tree) Walk(id NodeID, fn func(NodeID, *Node) bool) {
	n := &t.nodes[id]
	if !fn(id, n) {
		return
	}
	for _, c := range n.Children {
		if !c.IsToken {
			t.Walk(c.Node, fn)
		}
	}
}

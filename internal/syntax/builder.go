package syntax

import (
	"fmt"

	"fortio.org/safecast"

	"nixel/internal/source"
	"nixel/internal/token"
)

// Builder assembles a Tree from parser events: StartNode / AddToken /
// FinishNode, plus rowan-style checkpoints for wrapping an already built
// left operand. Парсер не знает про арену — только события.
type Builder struct {
	file    source.FileID
	tokens  []token.Token
	nodes   []Node
	stack   []pending
	lastEnd uint32 // конец последнего токена — для пустых спанов
}

type pending struct {
	kind     NodeKind
	children []Child
}

// Checkpoint marks a position in the current node's child list.
// StartNodeAt заворачивает всё, что добавлено после метки, в новый узел.
type Checkpoint int

// NewBuilder creates a builder for one document.
func NewBuilder(file source.FileID) *Builder {
	return &Builder{
		file:  file,
		nodes: make([]Node, 1), // nodes[0] — пустой узел под NoNodeID
	}
}

// StartNode opens a new in-progress node.
func (b *Builder) StartNode(kind NodeKind) {
	b.stack = append(b.stack, pending{kind: kind})
}

// Checkpoint returns a mark in the current in-progress node.
func (b *Builder) Checkpoint() Checkpoint {
	if len(b.stack) == 0 {
		return 0
	}
	return Checkpoint(len(b.stack[len(b.stack)-1].children))
}

// StartNodeAt opens a node that adopts every child added after cp.
// Так левый операнд бинарного выражения становится ребёнком нового узла
// без пересборки событий.
func (b *Builder) StartNodeAt(cp Checkpoint, kind NodeKind) {
	if len(b.stack) == 0 {
		b.StartNode(kind)
		return
	}
	top := &b.stack[len(b.stack)-1]
	if int(cp) > len(top.children) {
		panic(fmt.Errorf("syntax: checkpoint %d beyond children %d", cp, len(top.children)))
	}
	adopted := make([]Child, len(top.children)-int(cp))
	copy(adopted, top.children[cp:])
	top.children = top.children[:cp]
	b.stack = append(b.stack, pending{kind: kind, children: adopted})
}

// AddToken appends a token leaf to the current in-progress node.
func (b *Builder) AddToken(tok token.Token) {
	idx, err := safecast.Conv[uint32](len(b.tokens))
	if err != nil {
		panic(fmt.Errorf("token index overflow: %w", err))
	}
	b.tokens = append(b.tokens, tok)
	if tok.Kind != token.EOF {
		b.lastEnd = tok.Span.End
	}
	if len(b.stack) == 0 {
		// токен вне узла — защита от рассинхрона событий
		panic("syntax: AddToken with no open node")
	}
	top := &b.stack[len(b.stack)-1]
	top.children = append(top.children, Child{IsToken: true, Token: idx})
}

// FinishNode closes the current node and attaches it to its parent.
// Span узла — объединение спанов детей; без детей — пустой спан на
// позиции последнего токена.
func (b *Builder) FinishNode() NodeID {
	if len(b.stack) == 0 {
		panic("syntax: FinishNode with no open node")
	}
	p := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	id, err := safecast.Conv[uint32](len(b.nodes))
	if err != nil {
		panic(fmt.Errorf("node index overflow: %w", err))
	}

	span := source.Span{File: b.file, Start: b.lastEnd, End: b.lastEnd}
	first := true
	for _, c := range p.children {
		var cs source.Span
		if c.IsToken {
			cs = b.tokens[c.Token].Span
		} else {
			cs = b.nodes[c.Node].Span
		}
		if first {
			span = cs
			first = false
		} else {
			span = span.Cover(cs)
		}
	}

	b.nodes = append(b.nodes, Node{Kind: p.kind, Span: span, Children: p.children})
	nid := NodeID(id)
	if len(b.stack) > 0 {
		top := &b.stack[len(b.stack)-1]
		top.children = append(top.children, Child{Node: nid})
	}
	return nid
}

// Finish returns the completed immutable tree.
// Все узлы должны быть закрыты, последний закрытый — корень.
func (b *Builder) Finish(root NodeID) *Tree {
	if len(b.stack) != 0 {
		panic(fmt.Errorf("syntax: %d unfinished nodes at Finish", len(b.stack)))
	}
	return &Tree{
		RootID: root,
		Tokens: b.tokens,
		nodes:  b.nodes,
	}
}

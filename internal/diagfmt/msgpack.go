package diagfmt

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"nixel/internal/diag"
	"nixel/internal/source"
	"nixel/internal/syntax"
	"nixel/internal/token"
)

// Msgpack-выгрузки для редакторных интеграций: те же структуры, что и в
// JSON-выводе, но в компактной бинарной форме. Схема общая, чтобы клиент
// мог выбирать транспорт, не меняя разбор.

// DiagnosticsMsgpack сериализует диагностики в msgpack.
func DiagnosticsMsgpack(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	return msgpack.NewEncoder(w).Encode(buildDiagnosticsOutput(bag, fs, opts))
}

// TokensMsgpack сериализует токен-стрим в msgpack, включая тривию.
func TokensMsgpack(w io.Writer, tokens []token.Token) error {
	return msgpack.NewEncoder(w).Encode(buildTokenOutputs(tokens))
}

// TreeMsgpack сериализует дерево целиком в msgpack.
func TreeMsgpack(w io.Writer, tree *syntax.Tree) error {
	return msgpack.NewEncoder(w).Encode(buildNodeJSON(tree, tree.RootID))
}

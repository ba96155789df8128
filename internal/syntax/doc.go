// Package syntax defines the lossless concrete syntax tree.
//
// Дерево — это арена узлов поверх полного потока токенов: каждый байт
// исходника (включая пробелы и комментарии) доступен из дерева, так что
// TreeText восстанавливает документ байт-в-байт. Узлы храним плоско,
// NodeID == индекс в арене, NoNodeID зарезервирован под "нет узла".
//
// Builder принимает события парсера (StartNode/AddToken/FinishNode) и
// чекпоинты для оборачивания уже разобранного левого операнда.
package syntax

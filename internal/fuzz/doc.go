// Package fuzztests houses Go fuzz harnesses that exercise the front end
// pipeline (source -> lexer -> parser). Its goal is to smoke test
// robustness and guard against panics or hangs on arbitrary inputs.
//
// Назначение: запускать fuzz-обработчики, которые загружают байты в FileSet
// и прогоняют их через лексер/парсер, проверяя тотальность и lossless-контракт.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests

package driver

import (
	"fortio.org/safecast"

	"nixel/internal/diag"
	"nixel/internal/parser"
	"nixel/internal/source"
	"nixel/internal/syntax"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tree    *syntax.Tree
	Bag     *diag.Bag
}

// Parse загружает файл и строит полное дерево.
func Parse(filePath string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	return parseFile(fs, fileID, maxDiagnostics)
}

// ParseSource парсит содержимое без обращения к диску.
func ParseSource(name string, content []byte, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return parseFile(fs, fileID, maxDiagnostics)
}

func parseFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) (*ParseResult, error) {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}

	// повторные диагностики на одном span гасим ещё на входе в Bag
	result := parser.ParseFile(file, parser.Options{
		Reporter:  diag.NewDedupReporter(&diag.BagReporter{Bag: bag}),
		MaxErrors: maxErrors,
	})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Tree:    result.Tree,
		Bag:     bag,
	}, nil
}

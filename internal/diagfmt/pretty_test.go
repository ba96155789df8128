package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"nixel/internal/diag"
	"nixel/internal/source"
)

// TestPrettyBasic проверяет заголовок, контекст и каретку
func TestPrettyBasic(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.nix", []byte("let a = 1; a\nmore"))

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynUnexpectedToken,
		Message:  "unexpected token",
		Primary:  source.Span{File: fileID, Start: 4, End: 5},
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})

	out := buf.String()
	if !strings.Contains(out, "test.nix:1:5: ERROR SynUnexpectedToken: unexpected token") {
		t.Errorf("Missing header line in output:\n%s", out)
	}
	if !strings.Contains(out, "    1 | let a = 1; a") {
		t.Errorf("Missing context line in output:\n%s", out)
	}
	// каретка под 'a' в 5-й колонке
	if !strings.Contains(out, "      |     ^") {
		t.Errorf("Missing caret marker in output:\n%s", out)
	}
}

// TestPrettyMarkerWidth проверяет что подчёркивание тянется на весь span
func TestPrettyMarkerWidth(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.nix", []byte("foobar = 1;"))

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynUnexpectedToken,
		Message:  "unexpected token",
		Primary:  source.Span{File: fileID, Start: 0, End: 6},
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})

	if !strings.Contains(buf.String(), "^~~~~~") {
		t.Errorf("Expected 6-column marker, got:\n%s", buf.String())
	}
}

// TestPrettyNoContext проверяет что отрицательный Context отключает строки исходника
func TestPrettyNoContext(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.nix", []byte("x y z"))

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynUnexpectedToken,
		Message:  "unexpected token",
		Primary:  source.Span{File: fileID, Start: 2, End: 3},
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, Context: -1})

	out := buf.String()
	if strings.Contains(out, "|") {
		t.Errorf("Expected no gutter with Context=-1, got:\n%s", out)
	}
	if lines := strings.Count(out, "\n"); lines != 1 {
		t.Errorf("Expected single header line, got %d lines:\n%s", lines, out)
	}
}

// TestPrettyContextLines проверяет печать строк перед проблемной
func TestPrettyContextLines(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.nix", []byte("one\ntwo\nthree\nbad\n"))

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynUnexpectedToken,
		Message:  "unexpected token",
		Primary:  source.Span{File: fileID, Start: 14, End: 17},
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, Context: 2})

	out := buf.String()
	if strings.Contains(out, "| one") {
		t.Errorf("Line outside context window leaked:\n%s", out)
	}
	if !strings.Contains(out, "| two") || !strings.Contains(out, "| three") {
		t.Errorf("Missing context lines:\n%s", out)
	}
	if !strings.Contains(out, "| bad") {
		t.Errorf("Missing primary line:\n%s", out)
	}
}

// TestPrettyNotes проверяет вывод заметок
func TestPrettyNotes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.nix", []byte("{ a = 1; a = 2; }"))

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.SynExpectBinding,
		Message:  "duplicate attribute",
		Primary:  source.Span{File: fileID, Start: 9, End: 10},
		Notes: []diag.Note{
			{Span: source.Span{File: fileID, Start: 2, End: 3}, Msg: "first defined here"},
		},
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, ShowNotes: true, Context: -1})

	out := buf.String()
	if !strings.Contains(out, "note: test.nix:1:3: first defined here") {
		t.Errorf("Missing note line:\n%s", out)
	}

	// Без ShowNotes заметки молчат
	buf.Reset()
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename, Context: -1})
	if strings.Contains(buf.String(), "note:") {
		t.Errorf("Notes printed despite ShowNotes=false:\n%s", buf.String())
	}
}

// TestPrettyColorDisabled проверяет что без Color вывод чистый ASCII без escape-кодов
func TestPrettyColorDisabled(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.nix", []byte("bad"))

	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.SynUnexpectedToken,
		Message:  "suspicious token",
		Primary:  source.Span{File: fileID, Start: 0, End: 3},
	})

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename})

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("Escape codes in uncolored output:\n%q", buf.String())
	}
	if !strings.Contains(buf.String(), "WARNING") {
		t.Errorf("Missing severity label:\n%s", buf.String())
	}
}

// TestPrettyNilBag не должен паниковать
func TestPrettyNilBag(t *testing.T) {
	fs := source.NewFileSet()
	var buf bytes.Buffer
	Pretty(&buf, nil, fs, PrettyOpts{})
	if buf.Len() != 0 {
		t.Errorf("Expected empty output for nil bag, got %q", buf.String())
	}
}

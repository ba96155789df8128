package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"nixel/internal/diag"
	"nixel/internal/driver"
	"nixel/internal/token"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestTokenizeSourceEndsWithEOF(t *testing.T) {
	res := driver.TokenizeSource("test.nix", []byte("let a = 1; in a"), 10)
	if len(res.Tokens) == 0 {
		t.Fatal("expected tokens")
	}
	if res.Tokens[len(res.Tokens)-1].Kind != token.EOF {
		t.Fatalf("last token is %v, want EOF", res.Tokens[len(res.Tokens)-1].Kind)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
}

func TestTokenizeReportsLexicalErrors(t *testing.T) {
	res := driver.TokenizeSource("test.nix", []byte(`"unterminated`), 10)
	if !res.Bag.HasErrors() {
		t.Fatal("expected unterminated string diagnostic")
	}
}

func TestParseSourceBuildsTree(t *testing.T) {
	res, err := driver.ParseSource("test.nix", []byte("{ a = 1; b = [ 2 3 ]; }"), 10)
	if err != nil {
		t.Fatalf("ParseSource: %v", err)
	}
	if res.Tree == nil {
		t.Fatal("expected tree")
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %v", res.Bag.Items())
	}
	if got := res.Tree.TreeText(); got != "{ a = 1; b = [ 2 3 ]; }" {
		t.Fatalf("round trip broken: %q", got)
	}
}

func TestParseSourceDropsRepeatedDiagnostics(t *testing.T) {
	// "((" даёт два одинаковых "expected ')'" в одной точке: внутренняя и
	// внешняя скобки жалуются на EOF. До Bag должна дойти одна запись.
	res, err := driver.ParseSource("dup.nix", []byte("(("), 16)
	if err != nil {
		t.Fatalf("ParseSource: %v", err)
	}
	n := 0
	for _, d := range res.Bag.Items() {
		if d.Code == diag.SynUnclosedParen {
			n++
		}
	}
	if n != 1 {
		t.Fatalf("SynUnclosedParen reported %d times, want 1", n)
	}
}

func TestParseMissingFile(t *testing.T) {
	if _, err := driver.Parse(filepath.Join(t.TempDir(), "nope.nix"), 10); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCheckDirParsesAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.nix", "{ a = 1; }")
	writeFile(t, dir, "bad.nix", "{ a = ; }")
	writeFile(t, dir, "notes.txt", "not nix")

	fs, results, report, err := driver.CheckDir(context.Background(), dir, driver.CheckOptions{MaxDiagnostics: 10})
	if err != nil {
		t.Fatalf("CheckDir: %v", err)
	}
	if fs == nil {
		t.Fatal("expected file set")
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 nix files, got %d", len(results))
	}
	// порядок детерминирован: сортировка по пути
	if filepath.Base(results[0].Path) != "bad.nix" {
		t.Fatalf("unexpected order: %v", results[0].Path)
	}
	if !results[0].Bag.HasErrors() {
		t.Error("bad.nix should carry errors")
	}
	if results[1].Bag.HasErrors() {
		t.Errorf("good.nix should be clean: %v", results[1].Bag.Items())
	}
	if len(report.Phases) == 0 {
		t.Error("expected timing phases in report")
	}
}

func TestCheckManyReportsLoadErrors(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.nix", "1 + 2")
	missing := filepath.Join(dir, "missing.nix")

	_, results, _, err := driver.CheckMany(context.Background(), dir, []string{good, missing}, driver.CheckOptions{MaxDiagnostics: 10})
	if err != nil {
		t.Fatalf("CheckMany: %v", err)
	}
	if results[0].Bag.HasErrors() {
		t.Error("good file should be clean")
	}
	items := results[1].Bag.Items()
	if len(items) != 1 || items[0].Code != diag.IOLoadFileError {
		t.Fatalf("expected IOLoadFileError, got %v", items)
	}
}

func TestCheckManyUsesCache(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.nix", "{ a = ; }")

	cache, err := driver.OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}
	opts := driver.CheckOptions{MaxDiagnostics: 10, Cache: cache}

	_, first, _, err := driver.CheckMany(context.Background(), dir, []string{path}, opts)
	if err != nil {
		t.Fatalf("CheckMany: %v", err)
	}
	if first[0].Cached {
		t.Fatal("first run must parse")
	}
	if !first[0].Bag.HasErrors() {
		t.Fatal("expected parse errors")
	}

	_, second, _, err := driver.CheckMany(context.Background(), dir, []string{path}, opts)
	if err != nil {
		t.Fatalf("CheckMany: %v", err)
	}
	if !second[0].Cached {
		t.Fatal("second run should hit the cache")
	}
	// диагностики переживают кэш
	if got, want := len(second[0].Bag.Items()), len(first[0].Bag.Items()); got != want {
		t.Fatalf("cached diagnostics differ: got %d, want %d", got, want)
	}
	if second[0].Bag.Items()[0].Code != first[0].Bag.Items()[0].Code {
		t.Fatal("cached diagnostic code differs")
	}

	// правка файла инвалидирует запись
	if err := os.WriteFile(path, []byte("{ a = 1; }"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	_, third, _, err := driver.CheckMany(context.Background(), dir, []string{path}, opts)
	if err != nil {
		t.Fatalf("CheckMany: %v", err)
	}
	if third[0].Cached {
		t.Fatal("changed content must re-parse")
	}
	if third[0].Bag.HasErrors() {
		t.Fatalf("fixed file should be clean: %v", third[0].Bag.Items())
	}
}

func TestCheckManyObserverSeesEveryFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.nix", "1")
	writeFile(t, dir, "b.nix", "2")
	writeFile(t, dir, "c.nix", "3")

	var mu sync.Mutex
	seen := map[string]bool{}
	opts := driver.CheckOptions{
		MaxDiagnostics: 10,
		Jobs:           2,
		Observer: func(ev driver.CheckEvent) {
			mu.Lock()
			defer mu.Unlock()
			seen[filepath.Base(ev.Path)] = true
			if ev.Total != 3 {
				t.Errorf("total = %d, want 3", ev.Total)
			}
		},
	}

	if _, _, _, err := driver.CheckDir(context.Background(), dir, opts); err != nil {
		t.Fatalf("CheckDir: %v", err)
	}
	if len(seen) != 3 {
		t.Fatalf("observer saw %d files, want 3: %v", len(seen), seen)
	}
}

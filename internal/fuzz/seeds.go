package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addLanguageSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.nix файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".nix" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

// addLanguageSeeds закладывает выражения, покрывающие все режимы лексера
// и узлы грамматики, плюс заведомо битые входы.
func addLanguageSeeds(f *testing.F) {
	seeds := []string{
		"",
		"x",
		"1 + 2 * 3",
		"{ a, b ? 1, ... } @ args: args.a or null",
		"let a = 1; in rec { b = a; inherit (c) d; }",
		"if a == b then [ 1 2 ] else { x = 1; }",
		"with import <nixpkgs> {}; assert ok; hello",
		"\"pre ${\"nested ${x}\"} post\"",
		"''\n  ind ''$ ${y}\n''",
		"./p/q + ~/h + https://u.example/${v}",
		"!a -> b || c && d // e ++ f ? g",
		"\"unterminated ${",
		"( [ { let if",
		"} ) ] ;;",
		"\x00\xff''${",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) > maxSeedBytes {
		return append([]byte(nil), src[:maxSeedBytes]...)
	}
	return append([]byte(nil), src...)
}

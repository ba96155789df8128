package fuzztests

import (
	"context"
	"testing"
	"time"

	"nixel/internal/diag"
	"nixel/internal/parser"
	"nixel/internal/source"
	"nixel/internal/testkit"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

func FuzzParserBuildsTree(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.nix", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(128)
		result := parser.ParseFile(file, parser.Options{
			Reporter:  diag.BagReporter{Bag: bag},
			MaxErrors: 128,
		})

		// дерево обязано быть полным и без потерь на любом входе
		if err := testkit.CheckRoundTrip(result.Tree, file); err != nil {
			t.Fatal(err)
		}
		if err := testkit.CheckSpanInvariants(result.Tree, file); err != nil {
			t.Fatal(err)
		}
	})
}

// FuzzParserNoHang tests that the parser doesn't hang on any input.
// Восстановление после ошибок обязано продвигаться минимум на токен за шаг;
// таймаут ловит нарушения этого контракта.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	// Add specific edge cases that stress the recovery loops
	f.Add([]byte("{ a = 1 b = 2; }"))      // missing semicolon
	f.Add([]byte("let a = ; in a"))        // missing RHS
	f.Add([]byte("[ ; , ; , ]"))           // separators in a list
	f.Add([]byte("{ ${ { ${ { ${ x"))      // nested unclosed dynamics
	f.Add([]byte("\"${\"${\"${\"${x"))     // nested unclosed interpolation
	f.Add([]byte("a ? b ? c ? d"))         // non-assoc chain
	f.Add([]byte("((((((((((((((((((((x")) // deep paren nesting

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)

			fs := source.NewFileSet()
			fileID := fs.AddVirtual("fuzz.nix", input)
			file := fs.Get(fileID)

			bag := diag.NewBag(128)
			_ = parser.ParseFile(file, parser.Options{
				Reporter:  diag.BagReporter{Bag: bag},
				MaxErrors: 128,
			})
		}()

		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen], []byte("...")...)
}

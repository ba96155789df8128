package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"nixel/internal/diagfmt"
	"nixel/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.nix",
	Short: "Parse a Nix source file and dump the syntax tree",
	Long: `Parse builds the full lossless syntax tree for a Nix source file.
Дерево печатается даже для битого входа: ошибки оборачиваются в Error-узлы.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
	parseCmd.Flags().Bool("spans", false, "show byte spans in the pretty dump")
	parseCmd.Flags().Bool("trivia", false, "show whitespace and comments in the pretty dump")
	parseCmd.Flags().Bool("diag-json", false, "emit diagnostics as JSON on stderr")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	showSpans, _ := cmd.Flags().GetBool("spans")
	showTrivia, _ := cmd.Flags().GetBool("trivia")
	diagJSON, _ := cmd.Flags().GetBool("diag-json")

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	result, err := driver.Parse(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	result.Bag.Sort()
	result.Bag.Dedup()
	if result.Bag.Len() > 0 {
		if diagJSON {
			if err := diagfmt.JSON(os.Stderr, result.Bag, result.FileSet, diagfmt.JSONOpts{
				IncludePositions: true,
				IncludeNotes:     true,
			}); err != nil {
				return err
			}
		} else {
			diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
				Color:     useColor(cmd, os.Stderr),
				Context:   2,
				ShowNotes: true,
			})
		}
	}

	switch format {
	case "pretty":
		diagfmt.DumpTree(os.Stdout, result.Tree, diagfmt.TreeOpts{
			ShowSpans:  showSpans,
			ShowTrivia: showTrivia,
		})
		return nil
	case "json":
		return diagfmt.TreeJSON(os.Stdout, result.Tree)
	case "msgpack":
		return diagfmt.TreeMsgpack(os.Stdout, result.Tree)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

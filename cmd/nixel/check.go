package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"nixel/internal/diag"
	"nixel/internal/diagfmt"
	"nixel/internal/driver"
	"nixel/internal/observ"
	"nixel/internal/project"
	"nixel/internal/source"
	"nixel/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [dir | file.nix...]",
	Short: "Parse every Nix file and report diagnostics",
	Long: `Check parses all *.nix files under a directory (or the given files)
in parallel and prints their diagnostics. Неизменённые файлы
обслуживаются из дискового кэша.`,
	Args:         cobra.ArbitraryArgs,
	RunE:         runCheck,
	SilenceUsage: true,
}

func init() {
	checkCmd.Flags().Int("jobs", 0, "parallel workers (0 = GOMAXPROCS)")
	checkCmd.Flags().Bool("no-cache", false, "disable the on-disk result cache")
	checkCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	checkCmd.Flags().String("format", "pretty", "diagnostics format (pretty|json)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	jobs, _ := cmd.Flags().GetInt("jobs")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	uiFlag, _ := cmd.Flags().GetString("ui")
	format, _ := cmd.Flags().GetString("format")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	maxDiagnostics, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics")

	baseDir, files, err := collectCheckTargets(args)
	if err != nil {
		return err
	}

	// nixel.toml подкручивает лимиты и отбор файлов, если найден
	cfg, manifestPath, hasManifest, err := project.LoadConfigFromDir(baseDir)
	if err != nil {
		return err
	}
	if hasManifest {
		if !cmd.Root().PersistentFlags().Changed("max-diagnostics") {
			maxDiagnostics = cfg.Tool.MaxDiagnostics
		}
		if !cmd.Root().PersistentFlags().Changed("color") {
			_ = cmd.Root().PersistentFlags().Set("color", cfg.Tool.Color)
		}
		root := filepath.Dir(manifestPath)
		files = filterByConfig(&cfg, root, files)
	}

	if len(files) == 0 {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "no .nix files to check")
		}
		return nil
	}

	opts := driver.CheckOptions{
		MaxDiagnostics: maxDiagnostics,
		Jobs:           jobs,
	}
	if !noCache {
		cache, err := driver.OpenDiskCache("nixel")
		if err == nil {
			opts.Cache = cache
		}
		// кэш не критичен: при ошибке просто работаем без него
	}

	useTUI := false
	switch strings.TrimSpace(strings.ToLower(uiFlag)) {
	case "on":
		useTUI = true
	case "off", "":
	case "auto":
		useTUI = format == "pretty" && !quiet && isTerminal(os.Stdout)
	default:
		return fmt.Errorf("invalid --ui value %q (expected auto|on|off)", uiFlag)
	}

	var fileSet *source.FileSet
	var results []driver.CheckResult
	var report observ.Report
	if useTUI {
		fileSet, results, report, err = runCheckWithUI(cmd.Context(), baseDir, files, opts)
	} else {
		fileSet, results, report, err = driver.CheckMany(cmd.Context(), baseDir, files, opts)
	}
	if err != nil {
		return err
	}

	errFiles := printCheckResults(cmd, fileSet, results, format, quiet)

	if timings && !quiet {
		printTimings(cmd.ErrOrStderr(), format, fileSet, report)
	}

	if errFiles > 0 {
		return fmt.Errorf("%d of %d files have errors", errFiles, len(results))
	}
	return nil
}

// collectCheckTargets понимает оба вида аргументов: каталог или список файлов.
func collectCheckTargets(args []string) (string, []string, error) {
	if len(args) == 0 {
		files, err := driver.ListNixFiles(".")
		return ".", files, err
	}
	if len(args) == 1 {
		info, err := os.Stat(args[0])
		if err != nil {
			return "", nil, err
		}
		if info.IsDir() {
			files, err := driver.ListNixFiles(args[0])
			return args[0], files, err
		}
	}
	return filepath.Dir(args[0]), args, nil
}

// printTimings выводит отчёт таймера. В json-режиме отчёт едет той же
// диагностической структурой: ObsTimings-запись с машинным JSON в заметке.
func printTimings(w io.Writer, format string, fileSet *source.FileSet, report observ.Report) {
	if format == "json" {
		bag := diag.NewBag(1)
		driver.AppendTimingDiagnostic(bag, "check", "", report)
		_ = diagfmt.JSON(w, bag, fileSet, diagfmt.JSONOpts{IncludeNotes: true})
		return
	}
	fmt.Fprint(w, report.Summary())
}

func filterByConfig(cfg *project.Config, root string, files []string) []string {
	kept := files[:0]
	for _, f := range files {
		rel, err := filepath.Rel(root, f)
		if err != nil {
			rel = f
		}
		if cfg.Selects(filepath.ToSlash(rel)) {
			kept = append(kept, f)
		}
	}
	return kept
}

// runCheckWithUI прогоняет CheckMany под bubbletea-моделью прогресса.
func runCheckWithUI(ctx context.Context, baseDir string, files []string, opts driver.CheckOptions) (*source.FileSet, []driver.CheckResult, observ.Report, error) {
	events := make(chan driver.CheckEvent, 256)

	type outcome struct {
		fs      *source.FileSet
		results []driver.CheckResult
		report  observ.Report
		err     error
	}
	outcomeCh := make(chan outcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Observer = func(ev driver.CheckEvent) { events <- ev }
		fs, results, report, err := driver.CheckMany(ctx, baseDir, files, optsCopy)
		outcomeCh <- outcome{fs: fs, results: results, report: report, err: err}
		close(events)
	}()

	model := ui.NewCheckModel("checking", files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	out := <-outcomeCh
	if uiErr != nil {
		return out.fs, out.results, out.report, uiErr
	}
	return out.fs, out.results, out.report, out.err
}

// printCheckResults печатает диагностики всех файлов и возвращает число
// файлов с ошибками.
func printCheckResults(cmd *cobra.Command, fileSet *source.FileSet, results []driver.CheckResult, format string, quiet bool) int {
	errFiles := 0
	for i := range results {
		res := &results[i]
		res.Bag.Sort()
		res.Bag.Dedup()
		if res.Bag.HasErrors() {
			errFiles++
		}
		if res.Bag.Len() == 0 {
			continue
		}
		switch format {
		case "json":
			_ = diagfmt.JSON(cmd.ErrOrStderr(), res.Bag, fileSet, diagfmt.JSONOpts{
				IncludePositions: true,
				IncludeNotes:     true,
				PathMode:         diagfmt.PathModeRelative,
			})
		default:
			diagfmt.Pretty(cmd.ErrOrStderr(), res.Bag, fileSet, diagfmt.PrettyOpts{
				Color:     useColor(cmd, os.Stderr),
				Context:   2,
				ShowNotes: true,
				PathMode:  diagfmt.PathModeRelative,
			})
		}
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "checked %d files, %d with errors\n", len(results), errFiles)
	}
	return errFiles
}

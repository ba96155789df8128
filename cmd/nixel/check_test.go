package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nixel/internal/observ"
	"nixel/internal/project"
	"nixel/internal/source"
)

func TestCollectCheckTargetsDirectory(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.nix", "a.nix"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("1"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	base, files, err := collectCheckTargets([]string{dir})
	if err != nil {
		t.Fatalf("collectCheckTargets: %v", err)
	}
	if base != dir {
		t.Errorf("base = %q, want %q", base, dir)
	}
	if len(files) != 2 || filepath.Base(files[0]) != "a.nix" {
		t.Errorf("unexpected files: %v", files)
	}
}

func TestCollectCheckTargetsExplicitFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.nix")
	if err := os.WriteFile(a, []byte("1"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	base, files, err := collectCheckTargets([]string{a})
	if err != nil {
		t.Fatalf("collectCheckTargets: %v", err)
	}
	if base != dir {
		t.Errorf("base = %q, want %q", base, dir)
	}
	if len(files) != 1 || files[0] != a {
		t.Errorf("unexpected files: %v", files)
	}
}

func TestPrintTimingsJSON(t *testing.T) {
	report := observ.Report{
		TotalMS: 3.5,
		Phases: []observ.PhaseReport{
			{Name: "load", DurationMS: 1.5},
			{Name: "check", DurationMS: 2.0},
		},
	}

	var buf bytes.Buffer
	printTimings(&buf, "json", source.NewFileSet(), report)
	out := buf.String()
	for _, want := range []string{"ObsTimings", "timings (check)", "total_ms", `\"name\":\"load\"`} {
		if !strings.Contains(out, want) {
			t.Errorf("json timings output misses %q:\n%s", want, out)
		}
	}

	buf.Reset()
	printTimings(&buf, "pretty", source.NewFileSet(), report)
	if !strings.Contains(buf.String(), "load") || !strings.Contains(buf.String(), "3.50") {
		t.Errorf("pretty timings output unexpected:\n%s", buf.String())
	}
}

func TestFilterByConfig(t *testing.T) {
	cfg := project.DefaultConfig()
	cfg.Check.Exclude = []string{"skip.nix"}

	root := string(filepath.Separator) + "proj"
	files := []string{
		filepath.Join(root, "keep.nix"),
		filepath.Join(root, "skip.nix"),
	}
	got := filterByConfig(&cfg, root, files)
	if len(got) != 1 || filepath.Base(got[0]) != "keep.nix" {
		t.Errorf("unexpected filter result: %v", got)
	}
}

package driver_test

import (
	"encoding/json"
	"strings"
	"testing"

	"nixel/internal/diag"
	"nixel/internal/driver"
	"nixel/internal/observ"
)

func TestAppendTimingDiagnostic(t *testing.T) {
	timer := observ.NewTimer()
	idx := timer.Begin("parse")
	timer.End(idx, "1 file")

	bag := diag.NewBag(4)
	driver.AppendTimingDiagnostic(bag, "check", "a.nix", timer.Report())

	items := bag.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(items))
	}
	d := items[0]
	if d.Code != diag.ObsTimings || d.Severity != diag.SevInfo {
		t.Fatalf("unexpected diagnostic: %+v", d)
	}
	if !strings.Contains(d.Message, "timings (check)") || !strings.Contains(d.Message, "a.nix") {
		t.Errorf("unexpected message: %q", d.Message)
	}

	// заметка несёт машиночитаемый JSON
	var payload struct {
		Kind   string `json:"kind"`
		Phases []struct {
			Name string `json:"name"`
		} `json:"phases"`
	}
	if err := json.Unmarshal([]byte(d.Notes[0].Msg), &payload); err != nil {
		t.Fatalf("note is not JSON: %v", err)
	}
	if payload.Kind != "check" || len(payload.Phases) != 1 || payload.Phases[0].Name != "parse" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestAppendTimingDiagnosticGrowsFullBag(t *testing.T) {
	bag := diag.NewBag(1)
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.SynUnexpectedToken, Message: "x"})

	driver.AppendTimingDiagnostic(bag, "", "", observ.Report{})
	if bag.Len() != 2 {
		t.Fatalf("timing entry lost: len=%d", bag.Len())
	}
}

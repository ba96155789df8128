package lexer

import "nixel/internal/diag"

// ReporterAdapter адаптирует diag.Bag для использования в лексере
type ReporterAdapter struct {
	Bag *diag.Bag
}

// Reporter returns a diag.Reporter that forwards diagnostics to the adapter's
// bag, dropping exact repeats of the same code, span and message.
func (r *ReporterAdapter) Reporter() diag.Reporter {
	return diag.NewDedupReporter(&diag.BagReporter{Bag: r.Bag})
}

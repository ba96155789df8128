package diag

import (
	"nixel/internal/source"
)

// Note is a secondary span/message pair adding context to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one structured finding with a primary source range.
// Immutable once collected.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
